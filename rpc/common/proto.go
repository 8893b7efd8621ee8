package common

import (
	"fmt"
)

// --------------------------------------------------------------------------
// Message Structure
// --------------------------------------------------------------------------

// Status is the body of a status message (type 1)
type Status struct {
	Code int32
}

// Packet is a single entry of a Container
type Packet struct {
	ID   int32
	Name string
}

// Container is the body of a container message (type 2).
// The order of Packets is preserved on the wire.
type Container struct {
	Tag     string
	Packets []Packet
}

// Message represents a decoded response.
// Which body is set depends on the type of message, for unknown types no body is set.
type Message struct {
	// Type of message
	MsgType MessageType

	Status    *Status    // Used for: MsgTStatus
	Container *Container // Used for: MsgTContainer
}

// Envelope is the self describing wrapper used by protocol version 1.
// The body of the message is embedded in Data.
type Envelope struct {
	MsgType MessageType
	Data    []byte
}

// Payload is a single RPC payload with its two independent sections.
// Both sections are opaque to the transport.
type Payload struct {
	Metadata []byte
	Data     []byte

	// HasMetadata is false if the peer sent no metadata section at all
	HasMetadata bool
}

// --------------------------------------------------------------------------
// Message Factory Functions
// --------------------------------------------------------------------------

// NewStatusMessage creates a new status message
func NewStatusMessage(code int32) *Message {
	return &Message{
		MsgType: MsgTStatus,
		Status:  &Status{Code: code},
	}
}

// NewContainerMessage creates a new container message
func NewContainerMessage(tag string, packets ...Packet) *Message {
	return &Message{
		MsgType:   MsgTContainer,
		Container: &Container{Tag: tag, Packets: packets},
	}
}

// NewMetadataPayload creates a payload that only carries metadata
func NewMetadataPayload(metadata []byte) Payload {
	return Payload{
		Metadata:    metadata,
		Data:        []byte{},
		HasMetadata: true,
	}
}

// NewDataPayload creates a payload that only carries data
func NewDataPayload(data []byte) Payload {
	return Payload{
		Data: data,
	}
}

// --------------------------------------------------------------------------
// Message Type Definition
// --------------------------------------------------------------------------

// MessageType is the type discriminator of a message.
// It is an int32 since version 1 carries it as a protobuf int32 field.
type MessageType int32

const (
	MsgTUnknown   MessageType = 0
	MsgTStatus    MessageType = 1 // Single status code
	MsgTContainer MessageType = 2 // Tagged list of packets
)

// String returns the string representation of a MessageType.
func (t MessageType) String() string {
	switch t {
	case MsgTStatus:
		return "status"
	case MsgTContainer:
		return "container"
	default:
		return "unknown"
	}
}

// IsKnown reports whether the message type carries a body this client can decode
func (t MessageType) IsKnown() bool {
	return t == MsgTStatus || t == MsgTContainer
}

// ParseMessageType converts a type given on the command line
func ParseMessageType(t int) (MessageType, error) {
	msgType := MessageType(t)
	if !msgType.IsKnown() {
		return MsgTUnknown, fmt.Errorf("%w: message type must be 1 (status) or 2 (container), got %d", ErrInvalidConfig, t)
	}
	return msgType, nil
}
