package protocol

import (
	"fmt"
	"github.com/unStatiK/RSocket-sandbox/rpc/common"
	"github.com/unStatiK/RSocket-sandbox/rpc/serializer"
)

// NewV3Protocol creates the protocol that compresses the type into a single
// opcode byte in the metadata, the data holds the body directly
func NewV3Protocol(_ serializer.IRPCSerializer) IProtocol {
	return &v3Protocol{}
}

type v3Protocol struct{}

// --------------------------------------------------------------------------
// Interface Methods (docu see protocol.IProtocol)
// --------------------------------------------------------------------------

func (p *v3Protocol) Version() Version {
	return V3
}

func (p *v3Protocol) EncodeRequest(msgType common.MessageType) (common.Payload, error) {
	opcode := TypeToOpcode(msgType)
	if opcode == OpcodeUnknown {
		Logger.Warningf("no opcode for message type %d, sending 0x%02x", msgType, byte(opcode))
	}
	return common.NewMetadataPayload([]byte{byte(opcode)}), nil
}

func (p *v3Protocol) DecodeResponse(payload common.Payload) (common.MessageType, []byte, error) {
	if len(payload.Metadata) != 1 {
		return common.MsgTUnknown, nil, fmt.Errorf("%w: expected a single opcode byte, got %d bytes",
			common.ErrMalformedMetadata, len(payload.Metadata))
	}
	opcode := Opcode(payload.Metadata[0])
	msgType := OpcodeToType(opcode)
	Logger.Debugf("v3 response opcode 0x%02x (type %d)", byte(opcode), msgType)
	return msgType, payload.Data, nil
}
