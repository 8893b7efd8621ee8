package protocol

import "github.com/unStatiK/RSocket-sandbox/rpc/common"

// Opcode is the single byte representation of a message type used by version 3
type Opcode byte

const (
	OpcodeUnknown   Opcode = 0x00
	OpcodeStatus    Opcode = 0x07
	OpcodeContainer Opcode = 0x09
)

// opcodePairs is the fixed opcode table, both lookup directions are derived from it
var opcodePairs = []struct {
	msgType common.MessageType
	opcode  Opcode
}{
	{common.MsgTStatus, OpcodeStatus},
	{common.MsgTContainer, OpcodeContainer},
}

var (
	typeToOpcode = make(map[common.MessageType]Opcode, len(opcodePairs))
	opcodeToType = make(map[Opcode]common.MessageType, len(opcodePairs))
)

func init() {
	for _, pair := range opcodePairs {
		typeToOpcode[pair.msgType] = pair.opcode
		opcodeToType[pair.opcode] = pair.msgType
	}
}

// TypeToOpcode maps a message type to its opcode.
// Types without an opcode map to OpcodeUnknown.
func TypeToOpcode(t common.MessageType) Opcode {
	if opcode, ok := typeToOpcode[t]; ok {
		return opcode
	}
	return OpcodeUnknown
}

// OpcodeToType maps an opcode back to its message type.
// Opcodes outside the table map to common.MsgTUnknown.
func OpcodeToType(opcode Opcode) common.MessageType {
	if t, ok := opcodeToType[opcode]; ok {
		return t
	}
	return common.MsgTUnknown
}
