// Package rpc provides the client side of a small request/response protocol
// carried over RSocket. A client asks for one message type and the server
// answers with a message of that type.
//
// The package is organized into several subpackages:
//
//   - common: Message types, client configuration, sentinel errors and logging.
//
//   - serializer: Protobuf encoding of the message bodies and of the version 1 wrapper.
//
//   - protocol: The three protocol versions, each placing the type discriminator
//     somewhere else (payload data, 4 byte metadata, 1 byte opcode metadata).
//
//   - transport: Network communication abstraction, implemented by RSocket over TCP.
//
//   - client: Performs a single exchange by combining a protocol, a serializer
//     and a transport.
package rpc
