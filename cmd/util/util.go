package util

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/unStatiK/RSocket-sandbox/rpc/common"
	"strings"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50

	// EnvPrefix is the prefix of all environment variables read by the client
	EnvPrefix = "rsclient"
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupRPCClientFlags adds the connection and request flags to a command.
// -h is taken by host, so help is only available as --help.
func SetupRPCClientFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.Bool("help", false, "help for "+cmd.Name())

	key := "host"
	flags.StringP(key, "h", "", WrapString("server host"))

	key = "port"
	flags.IntP(key, "p", 0, WrapString("server port"))

	key = "version"
	flags.IntP(key, "v", 0, WrapString("protocol version [1 - type in payload, 2 - type in metadata, 3 - opcode in metadata]"))

	key = "type"
	flags.IntP(key, "t", 0, WrapString("msg type [1 - status, 2 - container]"))

	for _, key := range []string{"host", "port", "version", "type"} {
		_ = cmd.MarkFlagRequired(key)
	}

	key = "timeout"
	flags.Int(key, common.DefaultTimeoutSecond, WrapString("The timeout in seconds for connecting and waiting for the response (0 waits forever)"))

	key = "log-level"
	flags.String(key, common.DefaultLogLevel, WrapString("LogLevel is the level at which logs will be written to stderr (debug, info, warn, error)"))
}

// InitClientConfig initializes configuration from environment variables
func InitClientConfig(v *viper.Viper) {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // read in environment variables that match
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command, v *viper.Viper) error {
	return v.BindPFlags(cmd.Flags())
}

// GetClientConfig reads client configuration from viper
func GetClientConfig(v *viper.Viper) *common.ClientConfig {
	return &common.ClientConfig{
		Host:          v.GetString("host"),
		Port:          v.GetInt("port"),
		Version:       v.GetInt("version"),
		MsgType:       common.MessageType(v.GetInt("type")),
		TimeoutSecond: v.GetInt("timeout"),
		LogLevel:      v.GetString("log-level"),
	}
}
