package transport

import (
	"context"
	"github.com/unStatiK/RSocket-sandbox/rpc/common"
)

// --------------------------------------------------------------------------
// Client Transport
// --------------------------------------------------------------------------

// IRPCClientTransport is the interface for the RPC client transport.
// Connection establishment, framing and payload delivery are left to the
// implementation, the client only sees payloads with metadata and data.
type IRPCClientTransport interface {
	// Connect opens the connection to the server in the given configuration
	// The context bounds the connection setup
	Connect(ctx context.Context, config common.ClientConfig) error
	// RequestResponse sends a single request and blocks until its response arrives
	// or the context is done
	RequestResponse(ctx context.Context, req common.Payload) (resp common.Payload, err error)
	// Close closes the transport connection, it is safe to call more than once
	Close() error
}

// ClientTransportFactory creates a new, unconnected client transport
type ClientTransportFactory func() IRPCClientTransport
