package cmd

import (
	"context"
	"fmt"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/unStatiK/RSocket-sandbox/cmd/util"
	"github.com/unStatiK/RSocket-sandbox/rpc/client"
	"github.com/unStatiK/RSocket-sandbox/rpc/common"
	"github.com/unStatiK/RSocket-sandbox/rpc/serializer"
	"github.com/unStatiK/RSocket-sandbox/rpc/transport"
	"github.com/unStatiK/RSocket-sandbox/rpc/transport/tcp"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

const (
	Version = "1.0.0"
)

var Logger = logger.GetLogger("rpc")

// NewRootCmd creates the client command. Transports are created with newTransport
// only after the configuration was validated.
func NewRootCmd(newTransport transport.ClientTransportFactory) *cobra.Command {
	v := viper.New()
	config := &common.ClientConfig{}

	rootCmd := &cobra.Command{
		Use:   "rsclient",
		Short: "request/response protocol demo client",
		Long: fmt.Sprintf(`rsclient (v%s)

Sends a single typed request over RSocket (TCP) and prints the typed response.
The protocol version selects where the message type is placed:

  1  type is a field of the wrapper sent as payload data
  2  type is a 4 byte big endian integer in the payload metadata
  3  type is a single opcode byte in the payload metadata

Optional settings can also be given as environment variables in the format
RSCLIENT_<flag> (e.g. RSCLIENT_TIMEOUT=5), .env files are loaded as well.`, Version),
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return processConfig(cmd, v, config)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			// configuration is valid, usage would only hide runtime errors
			cmd.SilenceUsage = true
			return run(cmd, *config, newTransport())
		},
	}

	util.SetupRPCClientFlags(rootCmd)

	return rootCmd
}

// processConfig reads the configuration from the command line flags and environment variables and validates it
func processConfig(cmd *cobra.Command, v *viper.Viper, config *common.ClientConfig) error {
	// cobra checks required flags only after PreRunE
	if err := cmd.ValidateRequiredFlags(); err != nil {
		return err
	}

	util.InitClientConfig(v)

	// bind the flags to viper
	if err := util.BindCommandFlags(cmd, v); err != nil {
		return err
	}

	*config = *util.GetClientConfig(v)
	if err := config.Validate(); err != nil {
		return err
	}

	common.InitLoggers(*config)
	Logger.Debugf("configuration:%s", config.String())

	return nil
}

// run performs the exchange and prints the response
func run(cmd *cobra.Command, config common.ClientConfig, t transport.IRPCClientTransport) error {
	c, err := client.NewRPCClient(config, t, serializer.NewProtobufSerializer())
	if err != nil {
		return err
	}

	msg, err := c.Exchange(cmd.Context())

	// the type is known even if the body could not be decoded
	if msg != nil {
		printMessage(cmd.OutOrStdout(), msg)
	}

	// exchange metrics are only dumped when debugging
	if strings.EqualFold(config.LogLevel, "debug") {
		fmt.Fprintln(cmd.ErrOrStderr(), "exchange metrics:")
		c.WriteMetrics(cmd.ErrOrStderr())
	}

	return err
}

// Execute creates the root command and runs it.
// This is called by main.main(). It exits with status 1 on any error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd(tcp.NewTCPClientTransport)
	rootCmd.SetOut(os.Stdout)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
