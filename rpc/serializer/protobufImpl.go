package serializer

import (
	"fmt"
	"github.com/unStatiK/RSocket-sandbox/rpc/common"
	"google.golang.org/protobuf/encoding/protowire"
)

// NewProtobufSerializer creates a new serializer using the protobuf wire format
func NewProtobufSerializer() IRPCSerializer {
	return &protobufSerializerImpl{}
}

// protobufSerializerImpl implements IRPCSerializer by writing the protobuf wire
// format directly, so no generated code is needed. The schema is:
//
//	message Wrapper      { int32 type = 1; bytes data = 2; }
//	message MsgStatus    { int32 status = 1; }
//	message Packet       { int32 id = 1; string name = 2; }
//	message MsgContainer { string tag = 1; repeated Packet packets = 2; }
type protobufSerializerImpl struct {
}

// Field numbers of the schema
const (
	wrapperFieldType protowire.Number = 1
	wrapperFieldData protowire.Number = 2

	statusFieldStatus protowire.Number = 1

	packetFieldID   protowire.Number = 1
	packetFieldName protowire.Number = 2

	containerFieldTag     protowire.Number = 1
	containerFieldPackets protowire.Number = 2
)

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.IRPCSerializer)
// --------------------------------------------------------------------------

func (p protobufSerializerImpl) Serialize(msg common.Message) ([]byte, error) {
	switch msg.MsgType {
	case common.MsgTStatus:
		status := common.Status{}
		if msg.Status != nil {
			status = *msg.Status
		}
		return appendStatus(nil, status), nil
	case common.MsgTContainer:
		container := common.Container{}
		if msg.Container != nil {
			container = *msg.Container
		}
		return appendContainer(nil, container), nil
	default:
		return nil, fmt.Errorf("cannot serialize body of message type %d (%s)", msg.MsgType, msg.MsgType)
	}
}

func (p protobufSerializerImpl) Deserialize(msgType common.MessageType, b []byte, msg *common.Message) error {
	*msg = common.Message{MsgType: msgType}

	switch msgType {
	case common.MsgTStatus:
		status, err := consumeStatus(b)
		if err != nil {
			return fmt.Errorf("status: %w", err)
		}
		msg.Status = &status
	case common.MsgTContainer:
		container, err := consumeContainer(b)
		if err != nil {
			return fmt.Errorf("container: %w", err)
		}
		msg.Container = &container
	}
	return nil
}

func (p protobufSerializerImpl) SerializeEnvelope(env common.Envelope) ([]byte, error) {
	var b []byte
	if env.MsgType != 0 {
		b = protowire.AppendTag(b, wrapperFieldType, protowire.VarintType)
		b = appendInt32(b, int32(env.MsgType))
	}
	if len(env.Data) > 0 {
		b = protowire.AppendTag(b, wrapperFieldData, protowire.BytesType)
		b = protowire.AppendBytes(b, env.Data)
	}
	return b, nil
}

func (p protobufSerializerImpl) DeserializeEnvelope(b []byte, env *common.Envelope) error {
	*env = common.Envelope{}

	err := consumeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case wrapperFieldType:
			v, n, err := consumeInt32(num, typ, b)
			env.MsgType = common.MessageType(v)
			return n, err
		case wrapperFieldData:
			v, n, err := consumeBytes(num, typ, b)
			env.Data = append([]byte{}, v...)
			return n, err
		}
		return 0, nil
	})
	if err != nil {
		return fmt.Errorf("wrapper: %w", err)
	}
	return nil
}

// --------------------------------------------------------------------------
// Encoding
// --------------------------------------------------------------------------

func appendStatus(b []byte, status common.Status) []byte {
	if status.Code != 0 {
		b = protowire.AppendTag(b, statusFieldStatus, protowire.VarintType)
		b = appendInt32(b, status.Code)
	}
	return b
}

func appendContainer(b []byte, container common.Container) []byte {
	if container.Tag != "" {
		b = protowire.AppendTag(b, containerFieldTag, protowire.BytesType)
		b = protowire.AppendString(b, container.Tag)
	}
	for _, packet := range container.Packets {
		b = protowire.AppendTag(b, containerFieldPackets, protowire.BytesType)
		b = protowire.AppendBytes(b, appendPacket(nil, packet))
	}
	return b
}

func appendPacket(b []byte, packet common.Packet) []byte {
	if packet.ID != 0 {
		b = protowire.AppendTag(b, packetFieldID, protowire.VarintType)
		b = appendInt32(b, packet.ID)
	}
	if packet.Name != "" {
		b = protowire.AppendTag(b, packetFieldName, protowire.BytesType)
		b = protowire.AppendString(b, packet.Name)
	}
	return b
}

// appendInt32 sign extends negative values to 64 bit, as protobuf does for int32
func appendInt32(b []byte, v int32) []byte {
	return protowire.AppendVarint(b, uint64(int64(v)))
}

// --------------------------------------------------------------------------
// Decoding
// --------------------------------------------------------------------------

func consumeStatus(b []byte) (common.Status, error) {
	var status common.Status
	err := consumeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == statusFieldStatus {
			v, n, err := consumeInt32(num, typ, b)
			status.Code = v
			return n, err
		}
		return 0, nil
	})
	return status, err
}

func consumeContainer(b []byte) (common.Container, error) {
	var container common.Container
	err := consumeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case containerFieldTag:
			v, n, err := consumeBytes(num, typ, b)
			container.Tag = string(v)
			return n, err
		case containerFieldPackets:
			v, n, err := consumeBytes(num, typ, b)
			if err != nil {
				return n, err
			}
			packet, err := consumePacket(v)
			if err != nil {
				return n, fmt.Errorf("packet %d: %w", len(container.Packets), err)
			}
			container.Packets = append(container.Packets, packet)
			return n, nil
		}
		return 0, nil
	})
	return container, err
}

func consumePacket(b []byte) (common.Packet, error) {
	var packet common.Packet
	err := consumeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case packetFieldID:
			v, n, err := consumeInt32(num, typ, b)
			packet.ID = v
			return n, err
		case packetFieldName:
			v, n, err := consumeBytes(num, typ, b)
			packet.Name = string(v)
			return n, err
		}
		return 0, nil
	})
	return packet, err
}

// fieldFunc decodes the value of a single field and returns the number of bytes consumed.
// Returning 0 marks the field as unknown, it is skipped.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

// consumeMessage walks all fields of an encoded message
func consumeMessage(b []byte, fn fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", common.ErrMalformedBody, protowire.ParseError(n))
		}
		b = b[n:]

		n, err := fn(num, typ, b)
		if err != nil {
			return err
		}
		if n == 0 {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("%w: field %d: %v", common.ErrMalformedBody, num, protowire.ParseError(n))
			}
		}
		b = b[n:]
	}
	return nil
}

func consumeInt32(num protowire.Number, typ protowire.Type, b []byte) (int32, int, error) {
	if typ != protowire.VarintType {
		return 0, 0, fmt.Errorf("%w: field %d: expected varint, got wire type %d", common.ErrMalformedBody, num, typ)
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, fmt.Errorf("%w: field %d: %v", common.ErrMalformedBody, num, protowire.ParseError(n))
	}
	return int32(v), n, nil
}

func consumeBytes(num protowire.Number, typ protowire.Type, b []byte) ([]byte, int, error) {
	if typ != protowire.BytesType {
		return nil, 0, fmt.Errorf("%w: field %d: expected length delimited, got wire type %d", common.ErrMalformedBody, num, typ)
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, fmt.Errorf("%w: field %d: %v", common.ErrMalformedBody, num, protowire.ParseError(n))
	}
	return v, n, nil
}
