package protocol

import (
	"fmt"
	"github.com/unStatiK/RSocket-sandbox/rpc/common"
	"github.com/unStatiK/RSocket-sandbox/rpc/serializer"
)

// NewV1Protocol creates the self describing protocol: the type is a field of
// the wrapper sent as payload data, the body is embedded in the wrapper
func NewV1Protocol(s serializer.IRPCSerializer) IProtocol {
	return &v1Protocol{serializer: s}
}

type v1Protocol struct {
	serializer serializer.IRPCSerializer
}

// --------------------------------------------------------------------------
// Interface Methods (docu see protocol.IProtocol)
// --------------------------------------------------------------------------

func (p *v1Protocol) Version() Version {
	return V1
}

func (p *v1Protocol) EncodeRequest(msgType common.MessageType) (common.Payload, error) {
	data, err := p.serializer.SerializeEnvelope(common.Envelope{MsgType: msgType})
	if err != nil {
		return common.Payload{}, fmt.Errorf("failed to serialize request wrapper: %w", err)
	}
	return common.NewDataPayload(data), nil
}

func (p *v1Protocol) DecodeResponse(payload common.Payload) (common.MessageType, []byte, error) {
	var env common.Envelope
	if err := p.serializer.DeserializeEnvelope(payload.Data, &env); err != nil {
		return common.MsgTUnknown, nil, fmt.Errorf("failed to deserialize response wrapper: %w", err)
	}
	Logger.Debugf("v1 response wrapper with type %d and %d bytes of data", env.MsgType, len(env.Data))
	return env.MsgType, env.Data, nil
}
