// Package protocol implements the three versions of the request/response
// protocol. The versions differ only in where and how the type discriminator
// is placed, the structured body is always encoded by the serializer package.
//
//	Version  Request                         Response
//	1        data = Wrapper{type}            data = Wrapper{type, body}
//	2        metadata = type (uint32, BE)    metadata = type (uint32, BE), data = body
//	3        metadata = opcode (1 byte)      metadata = opcode (1 byte), data = body
//
// Version 3 uses a fixed opcode table (status = 0x07, container = 0x09). Types
// without an opcode are sent as 0x00 and unknown opcodes decode to type 0.
//
// Protocols are looked up by version from a registry:
//
//	p, err := protocol.Lookup(protocol.V3, serializer.NewProtobufSerializer())
//	req, _ := p.EncodeRequest(common.MsgTContainer)
//	// ... send req, receive resp ...
//	msgType, body, err := p.DecodeResponse(resp)
package protocol
