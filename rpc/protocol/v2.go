package protocol

import (
	"encoding/binary"
	"fmt"
	"github.com/unStatiK/RSocket-sandbox/rpc/common"
	"github.com/unStatiK/RSocket-sandbox/rpc/serializer"
)

// typeHeaderSize is the size of the big endian type integer in the metadata
const typeHeaderSize = 4

// NewV2Protocol creates the protocol that moves the type into the metadata
// as a 4 byte big endian integer, the data holds the body directly
func NewV2Protocol(_ serializer.IRPCSerializer) IProtocol {
	return &v2Protocol{}
}

type v2Protocol struct{}

// --------------------------------------------------------------------------
// Interface Methods (docu see protocol.IProtocol)
// --------------------------------------------------------------------------

func (p *v2Protocol) Version() Version {
	return V2
}

func (p *v2Protocol) EncodeRequest(msgType common.MessageType) (common.Payload, error) {
	metadata := make([]byte, typeHeaderSize)
	binary.BigEndian.PutUint32(metadata, uint32(msgType))
	return common.NewMetadataPayload(metadata), nil
}

func (p *v2Protocol) DecodeResponse(payload common.Payload) (common.MessageType, []byte, error) {
	if len(payload.Metadata) != typeHeaderSize {
		return common.MsgTUnknown, nil, fmt.Errorf("%w: expected %d bytes of type metadata, got %d",
			common.ErrMalformedMetadata, typeHeaderSize, len(payload.Metadata))
	}
	msgType := common.MessageType(int32(binary.BigEndian.Uint32(payload.Metadata)))
	Logger.Debugf("v2 response metadata %#x (type %d)", payload.Metadata, msgType)
	return msgType, payload.Data, nil
}
