package txscript

import (
	"github.com/pktcore/txcore/txscript/opcode"
	"github.com/pktcore/txcore/txscript/parsescript"
)

// ElementKind tags which alternative a ScriptElement holds.
type ElementKind int

const (
	ElementOpCode ElementKind = iota
	ElementBinary
	ElementNumber
)

// ScriptElement is a script element reinterpreted for human/structural
// consumption: a bare operator, a binary push, or (in the numeric
// contexts listed by numericContextOpcodes) a push reinterpreted as a
// ScriptNum. This removes the need to convert a binary push to a
// number after the fact — the parser tags it once, here.
type ScriptElement struct {
	Kind ElementKind
	Op   opcode.Opcode
	Data []byte
	Num  ScriptNum
}

// numericContextOpcodes is the set of opcodes whose immediately
// preceding push should be reinterpreted as a ScriptNum rather than an
// opaque binary blob, per §4.4: arithmetic operators,
// OP_CHECKLOCKTIMEVERIFY, OP_CHECKSEQUENCEVERIFY, OP_PICK, OP_ROLL,
// OP_WITHIN, and OP_CHECKSIGADD.
var numericContextOpcodes = map[byte]bool{
	opcode.OP_1ADD: true, opcode.OP_1SUB: true, opcode.OP_2MUL: true, opcode.OP_2DIV: true,
	opcode.OP_NEGATE: true, opcode.OP_ABS: true, opcode.OP_NOT: true, opcode.OP_0NOTEQUAL: true,
	opcode.OP_ADD: true, opcode.OP_SUB: true, opcode.OP_MUL: true, opcode.OP_DIV: true,
	opcode.OP_MOD: true, opcode.OP_LSHIFT: true, opcode.OP_RSHIFT: true,
	opcode.OP_BOOLAND: true, opcode.OP_BOOLOR: true,
	opcode.OP_NUMEQUAL: true, opcode.OP_NUMEQUALVERIFY: true, opcode.OP_NUMNOTEQUAL: true,
	opcode.OP_LESSTHAN: true, opcode.OP_GREATERTHAN: true,
	opcode.OP_LESSTHANOREQUAL: true, opcode.OP_GREATERTHANOREQUAL: true,
	opcode.OP_MIN: true, opcode.OP_MAX: true, opcode.OP_WITHIN: true,
	opcode.OP_CHECKLOCKTIMEVERIFY: true, opcode.OP_CHECKSEQUENCEVERIFY: true,
	opcode.OP_PICK: true, opcode.OP_ROLL: true, opcode.OP_CHECKSIGADD: true,
}

// elementsFromParsed walks a parsed opcode list and tags each push as
// ElementBinary or ElementNumber, numeric whenever the following
// opcode consumes a ScriptNum and the push is short enough (≤5 bytes,
// per §4.4) to plausibly be one.
func elementsFromParsed(pops []parsescript.ParsedOpcode) []ScriptElement {
	out := make([]ScriptElement, len(pops))
	for i, pop := range pops {
		if pop.Opcode.Length == 0 {
			out[i] = ScriptElement{Kind: ElementOpCode, Op: pop.Opcode}
			continue
		}
		numeric := i+1 < len(pops) && numericContextOpcodes[pops[i+1].Opcode.Value] && len(pop.Data) <= 5
		if numeric {
			n, err := makeScriptNum(pop.Data, false, 5)
			if err == nil {
				out[i] = ScriptElement{Kind: ElementNumber, Op: pop.Opcode, Num: n, Data: pop.Data}
				continue
			}
		}
		out[i] = ScriptElement{Kind: ElementBinary, Op: pop.Opcode, Data: pop.Data}
	}
	return out
}
