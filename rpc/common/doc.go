// Package common provides the data structures and utilities shared by the
// rpc subpackages and the command line.
//
// Key Components:
//
//   - Message: Decoded response with its type and exactly one body (Status or
//     Container), or no body when the type is unknown.
//
//   - Payload: The two sections of an RSocket frame (metadata and data). Metadata
//     may be absent, which is different from being empty.
//
//   - MessageType: Type discriminator shared by all protocol versions.
//
//   - ClientConfig: Connection and request parameters with validation.
//
//   - Errors: Sentinel errors for every failure class, to be checked with errors.Is.
//
//   - Logger: Custom logging implementation that plugs into Dragonboat's
//     logger factory and writes to stderr.
package common
