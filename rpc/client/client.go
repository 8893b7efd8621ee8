package client

import (
	"context"
	"fmt"
	"github.com/VictoriaMetrics/metrics"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/unStatiK/RSocket-sandbox/rpc/common"
	"github.com/unStatiK/RSocket-sandbox/rpc/protocol"
	"github.com/unStatiK/RSocket-sandbox/rpc/serializer"
	"github.com/unStatiK/RSocket-sandbox/rpc/transport"
	"io"
	"time"
)

var (
	Logger = logger.GetLogger("rpc")
)

// RPCClient performs a single request/response exchange with one of the protocol versions
type RPCClient struct {
	config     common.ClientConfig
	protocol   protocol.IProtocol
	transport  transport.IRPCClientTransport
	serializer serializer.IRPCSerializer
	metrics    *metrics.Set
}

// NewRPCClient creates a new RPC client
// The function takes a config, a transport and a serializer as parameters
// The config is validated and the protocol resolved, no connection is opened yet
func NewRPCClient(
	config common.ClientConfig,
	transport transport.IRPCClientTransport,
	serializer serializer.IRPCSerializer,
) (*RPCClient, error) {

	if err := config.Validate(); err != nil {
		return nil, err
	}

	p, err := protocol.Lookup(protocol.Version(config.Version), serializer)
	if err != nil {
		return nil, err
	}

	return &RPCClient{
		config:     config,
		protocol:   p,
		transport:  transport,
		serializer: serializer,
		metrics:    metrics.NewSet(),
	}, nil
}

// Exchange connects, sends the request for the configured message type, waits
// for the response, decodes it and closes the connection again.
// The connection is closed on every path. The configured timeout bounds the
// whole exchange.
//
// If only the body could not be decoded, the returned message carries the
// response type next to the error. Responses with an unknown type are returned
// without a body and without an error.
func (c *RPCClient) Exchange(ctx context.Context) (msg *common.Message, err error) {
	start := time.Now()
	defer func() {
		c.recordExchange(err, start)
	}()

	if timeout := c.config.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	// Open the connection
	Logger.Debugf("Connecting to %s", c.config.Endpoint())
	if err := c.transport.Connect(ctx, c.config); err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := c.transport.Close(); closeErr != nil {
			Logger.Warningf("Failed to close connection: %v", closeErr)
		}
	}()

	// Encode and send the request
	req, err := c.protocol.EncodeRequest(c.config.MsgType)
	if err != nil {
		return nil, err
	}
	Logger.Infof("Sending request with version %d and msg with type %d", c.protocol.Version(), c.config.MsgType)

	resp, err := c.transport.RequestResponse(ctx, req)
	if err != nil {
		return nil, err
	}

	// Extract the type and dispatch the body
	msgType, body, err := c.protocol.DecodeResponse(resp)
	if err != nil {
		return nil, err
	}
	Logger.Infof("Received response msg with type: %d (%s)", msgType, msgType)

	msg = &common.Message{}
	if err := c.serializer.Deserialize(msgType, body, msg); err != nil {
		return &common.Message{MsgType: msgType}, fmt.Errorf("failed to decode response body: %w", err)
	}

	if !msgType.IsKnown() {
		Logger.Warningf("Ignoring body of response with unknown msg type %d", msgType)
	}

	return msg, nil
}

// WriteMetrics writes the exchange metrics of this client in Prometheus text format
func (c *RPCClient) WriteMetrics(w io.Writer) {
	c.metrics.WritePrometheus(w)
}
