// Package txscript implements the Bitcoin/Elements script model: the
// Script value itself, ScriptNum encoding, and recognizers for the
// standard output templates.
package txscript

import (
	"strconv"
	"strings"

	"github.com/pktcore/txcore/er"
	"github.com/pktcore/txcore/txscript/opcode"
	"github.com/pktcore/txcore/txscript/parsescript"
)

// MaxScriptSize is the largest standard script size.
const MaxScriptSize = 10000

// MaxRedeemScriptSize is the non-witness consensus limit on a P2SH
// redeem script's serialized size.
const MaxRedeemScriptSize = 520

// Script is an owned byte sequence plus its parsed element list.
type Script struct {
	raw      []byte
	elements []ScriptElement
}

// NewScript parses raw into a Script, tagging numeric pushes per §4.4.
// A truncated push is returned as an error alongside the
// partially-parsed Script, matching the rest of txscript's
// parse-as-far-as-possible convention.
func NewScript(raw []byte) (*Script, er.R) {
	pops, err := parsescript.ParseScript(raw)
	s := &Script{raw: raw, elements: elementsFromParsed(pops)}
	if err != nil {
		return s, err
	}
	return s, nil
}

// Bytes returns the raw script bytes.
func (s *Script) Bytes() []byte { return append([]byte(nil), s.raw...) }

// Elements returns the parsed element list.
func (s *Script) Elements() []ScriptElement { return s.elements }

// Len reports the number of parsed elements.
func (s *Script) Len() int { return len(s.elements) }

// IsPushOnly reports whether every element only pushes data.
func (s *Script) IsPushOnly() bool {
	for _, e := range s.elements {
		if e.Op.Value > opcode.OP_16 {
			return false
		}
	}
	return true
}

// Disasm renders the script in OP_ name / decimal / hex textual form
// (§6: "Script: textual form uses OP_ names, decimal numbers for
// interpreted ScriptNums, hex for raw pushes").
func (s *Script) Disasm() string {
	parts := make([]string, 0, len(s.elements))
	for _, e := range s.elements {
		switch e.Kind {
		case ElementOpCode:
			parts = append(parts, e.Op.Name)
		case ElementNumber:
			parts = append(parts, strconv.FormatInt(int64(e.Num), 10))
		default:
			parts = append(parts, hexString(e.Data))
		}
	}
	return strings.Join(parts, " ")
}

// RemoveOpcode returns raw with every instance of the given opcode
// byte stripped from its parsed instruction stream (used to drop
// OP_CODESEPARATOR before computing a legacy or BIP143 sighash).
func RemoveOpcode(raw []byte, op byte) ([]byte, er.R) {
	pops, _ := parsescript.ParseScript(raw)
	filtered := make([]parsescript.ParsedOpcode, 0, len(pops))
	for _, pop := range pops {
		if pop.Opcode.Value != op {
			filtered = append(filtered, pop)
		}
	}
	return parsescript.Unparse(filtered)
}

func hexString(b []byte) string {
	const hexdigits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = hexdigits[c>>4]
		out[i*2+1] = hexdigits[c&0x0f]
	}
	return string(out)
}
