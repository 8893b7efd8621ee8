// Package tcp implements the RSocket over TCP client transport. Framing,
// setup and keepalive are handled by github.com/rsocket/rsocket-go, this
// package maps its payloads to common.Payload and its failures to the
// client's error values.
//
// Key Components:
//
//   - clientTransport: TCP implementation of transport.IRPCClientTransport
//     holding a single RSocket connection.
//
// Response payloads are copied before they are returned, so they stay valid
// after the underlying buffers are released by the library.
package tcp
