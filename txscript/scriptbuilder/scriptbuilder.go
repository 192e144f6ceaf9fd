// Package scriptbuilder provides a fluent API for assembling scripts
// opcode-by-opcode, always choosing the canonical (shortest) encoding
// for pushed data.
package scriptbuilder

import (
	"encoding/binary"

	"github.com/pktcore/txcore/er"
	"github.com/pktcore/txcore/txscript/opcode"
)

// MaxScriptSize is the largest script scriptbuilder will assemble
// without returning an error — matches the largest standard script
// size enforced on the network.
const MaxScriptSize = 10000

// ScriptBuilder accumulates opcodes into ScriptInt. Errors encountered
// mid-build are latched in err and surfaced by Script(), so call sites
// can chain AddOp/AddData freely without checking after every step.
type ScriptBuilder struct {
	ScriptInt []byte
	err       er.R
}

// NewScriptBuilder returns an empty builder.
func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{ScriptInt: make([]byte, 0, 500)}
}

func (b *ScriptBuilder) tooLong(add int) bool {
	return len(b.ScriptInt)+add > MaxScriptSize
}

// AddOp appends a single opcode byte.
func (b *ScriptBuilder) AddOp(op byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	if b.tooLong(1) {
		b.err = er.InvalidArgumentType.CodeWithDetail("ScriptTooLong",
			"adding opcode would exceed max script size").Default()
		return b
	}
	b.ScriptInt = append(b.ScriptInt, op)
	return b
}

// AddInt64 pushes a numeric value using OP_0/OP_1NEGATE/OP_1-OP_16
// where possible, falling back to a minimal ScriptNum-encoded push.
func (b *ScriptBuilder) AddInt64(val int64) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	switch {
	case val == 0:
		return b.AddOp(opcode.OP_0)
	case val == -1:
		return b.AddOp(opcode.OP_1NEGATE)
	case val >= 1 && val <= 16:
		return b.AddOp(opcode.OP_1 + byte(val-1))
	}
	return b.AddData(scriptNumBytes(val))
}

// scriptNumBytes minimally encodes val as a signed little-endian
// ScriptNum byte string, matching the encoding txscript.ScriptNum uses.
func scriptNumBytes(val int64) []byte {
	if val == 0 {
		return nil
	}
	negative := val < 0
	absVal := val
	if negative {
		absVal = -val
	}
	var result []byte
	for absVal > 0 {
		result = append(result, byte(absVal&0xff))
		absVal >>= 8
	}
	if result[len(result)-1]&0x80 != 0 {
		if negative {
			result = append(result, 0x80)
		} else {
			result = append(result, 0x00)
		}
	} else if negative {
		result[len(result)-1] |= 0x80
	}
	return result
}

// AddData pushes an arbitrary byte string, choosing the smallest
// encoding: OP_0, OP_1-OP_16/OP_1NEGATE for single-byte small values,
// a direct OP_DATA_x opcode for 1-75 bytes, or OP_PUSHDATA1/2/4 for
// longer data.
func (b *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	if b.tooLong(len(data) + 5) {
		b.err = er.InvalidArgumentType.CodeWithDetail("ScriptTooLong",
			"adding data would exceed max script size").Default()
		return b
	}
	return b.addDataUnchecked(data)
}

// AddFullData pushes data using the smallest OP_PUSHDATAn form capable
// of representing its length (never a direct push or small-int
// opcode), bypassing the shortest-encoding rule.
// Used only where non-canonical pushes must be reproduced exactly
// (round-tripping a script that isn't itself canonical).
func (b *ScriptBuilder) AddFullData(data []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	if b.tooLong(len(data) + 5) {
		b.err = er.InvalidArgumentType.CodeWithDetail("ScriptTooLong",
			"adding data would exceed max script size").Default()
		return b
	}
	return b.addPushdataN(data)
}

func (b *ScriptBuilder) addDataUnchecked(data []byte) *ScriptBuilder {
	dataLen := len(data)
	switch {
	case dataLen == 0 || (dataLen == 1 && data[0] == 0):
		b.ScriptInt = append(b.ScriptInt, opcode.OP_0)
		return b
	case dataLen == 1 && data[0] <= 16:
		b.ScriptInt = append(b.ScriptInt, opcode.OP_1+data[0]-1)
		return b
	case dataLen == 1 && data[0] == 0x81:
		b.ScriptInt = append(b.ScriptInt, opcode.OP_1NEGATE)
		return b
	case dataLen <= 75:
		b.ScriptInt = append(b.ScriptInt, byte(dataLen))
		b.ScriptInt = append(b.ScriptInt, data...)
		return b
	case dataLen <= 0xff:
		b.ScriptInt = append(b.ScriptInt, opcode.OP_PUSHDATA1, byte(dataLen))
		b.ScriptInt = append(b.ScriptInt, data...)
		return b
	case dataLen <= 0xffff:
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(dataLen))
		b.ScriptInt = append(b.ScriptInt, opcode.OP_PUSHDATA2)
		b.ScriptInt = append(b.ScriptInt, buf...)
		b.ScriptInt = append(b.ScriptInt, data...)
		return b
	default:
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(dataLen))
		b.ScriptInt = append(b.ScriptInt, opcode.OP_PUSHDATA4)
		b.ScriptInt = append(b.ScriptInt, buf...)
		b.ScriptInt = append(b.ScriptInt, data...)
		return b
	}
}

func (b *ScriptBuilder) addPushdataN(data []byte) *ScriptBuilder {
	dataLen := len(data)
	switch {
	case dataLen <= 0xff:
		b.ScriptInt = append(b.ScriptInt, opcode.OP_PUSHDATA1, byte(dataLen))
	case dataLen <= 0xffff:
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(dataLen))
		b.ScriptInt = append(b.ScriptInt, opcode.OP_PUSHDATA2)
		b.ScriptInt = append(b.ScriptInt, buf...)
	default:
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(dataLen))
		b.ScriptInt = append(b.ScriptInt, opcode.OP_PUSHDATA4)
		b.ScriptInt = append(b.ScriptInt, buf...)
	}
	b.ScriptInt = append(b.ScriptInt, data...)
	return b
}

// Reset clears the builder back to empty, for reuse.
func (b *ScriptBuilder) Reset() *ScriptBuilder {
	b.ScriptInt = b.ScriptInt[:0]
	b.err = nil
	return b
}

// Script returns the assembled script, or the first error latched
// during building.
func (b *ScriptBuilder) Script() ([]byte, er.R) {
	if b.err != nil {
		return nil, b.err
	}
	return b.ScriptInt, nil
}
