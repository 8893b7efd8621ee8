// Package transport defines the client transport abstraction of the RPC client.
// A transport delivers one request payload and returns one response payload,
// both made of two independent sections: metadata and data.
//
// Key Components:
//
//   - IRPCClientTransport: Interface for client-side transport implementations that
//     handles connection management and request/response interactions.
//
//   - ClientTransportFactory: Function type used to inject transports, e.g. fakes in tests.
//
// Implementations:
//
//   - tcp: RSocket request/response over TCP.
package transport
