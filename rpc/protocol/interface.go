package protocol

import (
	"fmt"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/unStatiK/RSocket-sandbox/rpc/common"
	"github.com/unStatiK/RSocket-sandbox/rpc/serializer"
)

var Logger = logger.GetLogger("protocol")

// Version is the version of the request/response protocol
type Version int

const (
	V1 Version = 1 // Type embedded in the payload data
	V2 Version = 2 // Type as 4 byte big endian integer in the metadata
	V3 Version = 3 // Type as single byte opcode in the metadata
)

// IProtocol is the interface all protocol versions implement.
// The versions only differ in where and how the type discriminator is placed.
type IProtocol interface {
	// Version returns the protocol version
	Version() Version
	// EncodeRequest creates the request payload asking for a message of the given type
	EncodeRequest(msgType common.MessageType) (common.Payload, error)
	// DecodeResponse extracts the type discriminator and the encoded body from a response payload
	DecodeResponse(p common.Payload) (msgType common.MessageType, body []byte, err error)
}

// Factory creates a protocol instance using the given body serializer
type Factory func(s serializer.IRPCSerializer) IProtocol

// registry holds the factories of all known protocol versions
var registry = xsync.NewMapOf[Version, Factory]()

func init() {
	Register(V1, NewV1Protocol)
	Register(V2, NewV2Protocol)
	Register(V3, NewV3Protocol)
}

// Register adds or replaces the factory of a protocol version
func Register(v Version, factory Factory) {
	registry.Store(v, factory)
}

// Lookup creates the protocol for the given version.
// It returns common.ErrUnsupportedVersion for unknown versions.
func Lookup(v Version, s serializer.IRPCSerializer) (IProtocol, error) {
	factory, ok := registry.Load(v)
	if !ok {
		return nil, fmt.Errorf("%w: %d", common.ErrUnsupportedVersion, v)
	}
	return factory(s), nil
}
