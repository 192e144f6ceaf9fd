// Package parsescript turns a raw script byte string into a sequence
// of ParsedOpcode values, the representation the rest of txscript
// works with.
package parsescript

import (
	"encoding/binary"

	"github.com/pktcore/txcore/er"
	"github.com/pktcore/txcore/txscript/opcode"
)

// ParsedOpcode is one decoded script operator together with any data
// it pushes.
type ParsedOpcode struct {
	Opcode opcode.Opcode
	Data   []byte
}

var (
	errTruncatedPush = er.InvalidArgumentType.CodeWithDetail("TruncatedPush",
		"opcode requires more bytes than remain in the script").Default()
)

// ParseScript decodes buf into a list of ParsedOpcode. If the script
// cuts off mid-push, the opcodes successfully parsed so far are
// returned along with the error, matching the convention used
// throughout txscript where callers fall back to partial results on
// parse failure (e.g. RemoveOpcode works on the opcodes parsed up to
// the point of failure).
func ParseScript(buf []byte) ([]ParsedOpcode, er.R) {
	out := make([]ParsedOpcode, 0, len(buf))
	i := 0
	for i < len(buf) {
		op := opcode.Lookup(buf[i])
		i++

		switch {
		case op.Length == 0:
			out = append(out, ParsedOpcode{Opcode: op})

		case op.Length > 0:
			if i+op.Length > len(buf) {
				return out, errTruncatedPush
			}
			out = append(out, ParsedOpcode{Opcode: op, Data: buf[i : i+op.Length]})
			i += op.Length

		default:
			prefixLen := -op.Length
			if i+prefixLen > len(buf) {
				return out, errTruncatedPush
			}
			var dataLen int
			switch prefixLen {
			case 1:
				dataLen = int(buf[i])
			case 2:
				dataLen = int(binary.LittleEndian.Uint16(buf[i : i+2]))
			case 4:
				dataLen = int(binary.LittleEndian.Uint32(buf[i : i+4]))
			}
			i += prefixLen
			if i+dataLen > len(buf) {
				return out, errTruncatedPush
			}
			out = append(out, ParsedOpcode{Opcode: op, Data: buf[i : i+dataLen]})
			i += dataLen
		}
	}
	return out, nil
}

// IsPushOnly reports whether every opcode in pops only pushes data
// (including OP_0 through OP_16 and OP_1NEGATE), the requirement for a
// valid scriptSig ahead of a P2SH redeem script.
func IsPushOnly(pops []ParsedOpcode) bool {
	for _, pop := range pops {
		if pop.Opcode.Value > opcode.OP_16 {
			return false
		}
	}
	return true
}

// Unparse re-serializes pops back into a raw script, the inverse of
// ParseScript for canonically-pushed data.
func Unparse(pops []ParsedOpcode) ([]byte, er.R) {
	out := make([]byte, 0, len(pops)*2)
	for _, pop := range pops {
		b, err := popBytes(pop)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

func popBytes(pop ParsedOpcode) ([]byte, er.R) {
	switch {
	case pop.Opcode.Length == 0:
		return []byte{pop.Opcode.Value}, nil

	case pop.Opcode.Length > 0:
		if len(pop.Data) != pop.Opcode.Length {
			return nil, er.InvalidArgumentType.CodeWithDetail("BadPushLength",
				"pushed data does not match the opcode's fixed length").Default()
		}
		out := make([]byte, 1+len(pop.Data))
		out[0] = pop.Opcode.Value
		copy(out[1:], pop.Data)
		return out, nil

	default:
		prefixLen := -pop.Opcode.Length
		out := make([]byte, 1+prefixLen+len(pop.Data))
		out[0] = pop.Opcode.Value
		switch prefixLen {
		case 1:
			out[1] = byte(len(pop.Data))
		case 2:
			binary.LittleEndian.PutUint16(out[1:3], uint16(len(pop.Data)))
		case 4:
			binary.LittleEndian.PutUint32(out[1:5], uint32(len(pop.Data)))
		}
		copy(out[1+prefixLen:], pop.Data)
		return out, nil
	}
}
