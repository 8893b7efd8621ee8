// Package serializer provides the structured body serialization of the client.
// The body encoding is a fixed external contract shared with existing servers
// and does not depend on the protocol version.
//
// The package focuses on:
//   - Encoding and decoding the Status and Container bodies
//   - Encoding and decoding the Wrapper envelope used by protocol version 1
//   - Staying byte compatible with protoc generated code for the same schema
//
// Key Components:
//
//   - IRPCSerializer: Core interface for body and envelope serialization.
//
//   - protobufSerializerImpl: Writes and reads the protobuf wire format with
//     google.golang.org/protobuf/encoding/protowire. Zero values are omitted,
//     unknown fields are skipped and repeated packets keep their order.
//
// Thread Safety:
//
//	The serializer is stateless and safe for concurrent use.
//
// Usage:
//
//	s := serializer.NewProtobufSerializer()
//	data, err := s.Serialize(*common.NewStatusMessage(200))
//	// ... send data ...
//	var msg common.Message
//	err = s.Deserialize(common.MsgTStatus, data, &msg)
package serializer
