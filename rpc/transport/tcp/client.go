package tcp

import (
	"context"
	"errors"
	"fmt"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/rsocket/rsocket-go"
	"github.com/rsocket/rsocket-go/payload"
	"github.com/unStatiK/RSocket-sandbox/rpc/common"
	"github.com/unStatiK/RSocket-sandbox/rpc/transport"
	"sync"
)

var Logger = logger.GetLogger("transport/rpc")

// clientTransport implements transport.IRPCClientTransport with a single RSocket connection
type clientTransport struct {
	mu       sync.Mutex // Protects client
	client   rsocket.Client
	endpoint string
}

// --------------------------------------------------------------------------
// Client Transport Factory Method
// --------------------------------------------------------------------------

// NewTCPClientTransport creates a new RSocket over TCP client transport
func NewTCPClientTransport() transport.IRPCClientTransport {
	return &clientTransport{}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IRPCClientTransport)
// --------------------------------------------------------------------------

func (t *clientTransport) Connect(ctx context.Context, config common.ClientConfig) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.client != nil {
		return fmt.Errorf("%w: already connected to %s", common.ErrTransport, t.endpoint)
	}

	endpoint := config.Endpoint()
	client, err := rsocket.Connect().
		Transport(rsocket.TCPClient().SetHostAndPort(config.Host, config.Port).Build()).
		Start(ctx)
	if err != nil {
		return wrapError(ctx, fmt.Sprintf("failed to connect to %s", endpoint), err)
	}

	t.client = client
	t.endpoint = endpoint
	Logger.Infof("Connected to %s using tcp transport", endpoint)
	return nil
}

func (t *clientTransport) RequestResponse(ctx context.Context, req common.Payload) (common.Payload, error) {
	t.mu.Lock()
	client := t.client
	t.mu.Unlock()

	if client == nil {
		return common.Payload{}, fmt.Errorf("%w: connection is closed", common.ErrTransport)
	}

	var metadata []byte
	if req.HasMetadata {
		metadata = req.Metadata
	}

	Logger.Debugf("Sending request to %s (metadata=%d bytes, data=%d bytes)", t.endpoint, len(metadata), len(req.Data))
	resp, err := client.RequestResponse(payload.New(req.Data, metadata)).Block(ctx)
	if err != nil {
		return common.Payload{}, wrapError(ctx, "request/response failed", err)
	}
	if resp == nil {
		return common.Payload{}, fmt.Errorf("%w: empty response from %s", common.ErrTransport, t.endpoint)
	}

	// Copy both sections, the library may reuse the buffers
	result := common.Payload{
		Data: append([]byte{}, resp.Data()...),
	}
	if md, ok := resp.Metadata(); ok {
		result.Metadata = append([]byte{}, md...)
		result.HasMetadata = true
	}

	Logger.Debugf("Received response from %s (metadata=%d bytes, data=%d bytes)", t.endpoint, len(result.Metadata), len(result.Data))
	return result, nil
}

func (t *clientTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.client == nil {
		return nil
	}

	err := t.client.Close()
	t.client = nil
	Logger.Infof("Closed connection to %s", t.endpoint)
	if err != nil {
		return fmt.Errorf("%w: failed to close connection to %s: %w", common.ErrTransport, t.endpoint, err)
	}
	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// wrapError maps a failure of the library to ErrTimeout or ErrTransport
func wrapError(ctx context.Context, msg string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %w", common.ErrTimeout, msg, err)
	}
	return fmt.Errorf("%w: %s: %w", common.ErrTransport, msg, err)
}
