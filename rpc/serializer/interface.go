package serializer

import "github.com/unStatiK/RSocket-sandbox/rpc/common"

// IRPCSerializer is the interface for the structured body serialization.
// The body encoding is the same for all protocol versions.
type IRPCSerializer interface {
	// Serialize serializes the body selected by msg.MsgType into a byte array
	// It returns the serialized byte array and an error if any
	Serialize(msg common.Message) ([]byte, error)
	// Deserialize deserializes a body of the given type into a Message
	// For types without a known body the message only gets its type set
	// It returns an error if the body is malformed
	Deserialize(msgType common.MessageType, b []byte, msg *common.Message) error
	// SerializeEnvelope serializes the self describing wrapper of protocol version 1
	SerializeEnvelope(env common.Envelope) ([]byte, error)
	// DeserializeEnvelope deserializes the self describing wrapper of protocol version 1
	DeserializeEnvelope(b []byte, env *common.Envelope) error
}
