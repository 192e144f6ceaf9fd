package elements

import (
	"github.com/pktcore/txcore/er"
	"github.com/pktcore/txcore/pktlog/log"
	"github.com/pktcore/txcore/txscript/opcode"
	"github.com/pktcore/txcore/txscript/parsescript"
)

var errNotWatchman = er.InvalidArgumentType.CodeWithDetail("NotWatchmanFedpeg",
	"script does not match the LiquidV1-watchman fedpeg template").Default()

// WatchmanTemplate records the structural facts RecognizeWatchman
// extracts from a matching fedpeg script: the threshold and member
// count on each side of OP_ELSE, the CSV delay, and the indices (into
// the script's parsed element list) of the pre-OP_ELSE pubkey pushes —
// the only ones ContractTweak rewrites.
type WatchmanTemplate struct {
	Depth                int
	M, N                 int
	M2, N2               int
	Delay                int
	PreElsePubkeyIndices []int
}

// RecognizeWatchman matches script against the LiquidV1-watchman
// fedpeg template:
//
//	OP_DEPTH <n> OP_EQUAL OP_IF <m> <pubkey>* OP_ELSE <delay>
//	OP_CHECKSEQUENCEVERIFY OP_DROP <m2> <pubkey>* OP_ENDIF
//	OP_CHECKMULTISIG
//
// requiring m != m2 per the upstream recognizer's heuristic (not a
// consensus rule — see the "req_num != req_num2" note it carries
// forward). Returns errNotWatchman for anything else.
func RecognizeWatchman(script []byte) (*WatchmanTemplate, er.R) {
	pops, err := parsescript.ParseScript(script)
	if err != nil {
		return nil, errNotWatchman
	}
	i := 0
	next := func() (parsescript.ParsedOpcode, bool) {
		if i >= len(pops) {
			return parsescript.ParsedOpcode{}, false
		}
		p := pops[i]
		i++
		return p, true
	}

	p, ok := next()
	if !ok || p.Opcode.Value != opcode.OP_DEPTH {
		return nil, errNotWatchman
	}
	nOp, ok := next()
	if !ok || !isSmallIntOpcode(nOp.Opcode) {
		return nil, errNotWatchman
	}
	n := smallIntValue(nOp.Opcode)

	p, ok = next()
	if !ok || p.Opcode.Value != opcode.OP_EQUAL {
		return nil, errNotWatchman
	}
	p, ok = next()
	if !ok || p.Opcode.Value != opcode.OP_IF {
		return nil, errNotWatchman
	}

	mOp, ok := next()
	if !ok || !isSmallIntOpcode(mOp.Opcode) {
		return nil, errNotWatchman
	}
	m := smallIntValue(mOp.Opcode)

	var preElseIdx []int
	pubkeyCount1 := 0
	for {
		p, ok = next()
		if !ok {
			return nil, errNotWatchman
		}
		if p.Opcode.Value == opcode.OP_ELSE {
			break
		}
		if !isCompressedPubkeyPush(p) {
			return nil, errNotWatchman
		}
		preElseIdx = append(preElseIdx, i-1)
		pubkeyCount1++
	}

	delayOp, ok := next()
	if !ok {
		return nil, errNotWatchman
	}
	var delay int
	if isSmallIntOpcode(delayOp.Opcode) {
		delay = smallIntValue(delayOp.Opcode)
	} else if delayOp.Opcode.Length > 0 {
		sn, serr := ScriptNumFromMinimal(delayOp.Data)
		if serr != nil {
			return nil, errNotWatchman
		}
		delay = sn
	} else {
		return nil, errNotWatchman
	}

	p, ok = next()
	if !ok || p.Opcode.Value != opcode.OP_CHECKSEQUENCEVERIFY {
		return nil, errNotWatchman
	}
	p, ok = next()
	if !ok || p.Opcode.Value != opcode.OP_DROP {
		return nil, errNotWatchman
	}

	m2Op, ok := next()
	if !ok || !isSmallIntOpcode(m2Op.Opcode) {
		return nil, errNotWatchman
	}
	m2 := smallIntValue(m2Op.Opcode)

	pubkeyCount2 := 0
	for {
		p, ok = next()
		if !ok {
			return nil, errNotWatchman
		}
		if p.Opcode.Value == opcode.OP_ENDIF {
			break
		}
		if !isCompressedPubkeyPush(p) {
			return nil, errNotWatchman
		}
		pubkeyCount2++
	}

	p, ok = next()
	if !ok || p.Opcode.Value != opcode.OP_CHECKMULTISIG {
		return nil, errNotWatchman
	}
	if i != len(pops) {
		return nil, errNotWatchman
	}

	if m == m2 {
		log.Debugf("elements: watchman candidate rejected, req_num == req_num2 (%d)", m)
		return nil, errNotWatchman
	}

	return &WatchmanTemplate{
		Depth: n,
		M:     m, N: pubkeyCount1,
		M2: m2, N2: pubkeyCount2,
		Delay:                delay,
		PreElsePubkeyIndices: preElseIdx,
	}, nil
}

// ScriptNumFromMinimal decodes a minimally-encoded little-endian
// signed ScriptNum push, as used for the CSV delay when it doesn't
// fit a small-int opcode.
func ScriptNumFromMinimal(data []byte) (int, er.R) {
	if len(data) == 0 {
		return 0, nil
	}
	v := int64(0)
	for i, b := range data {
		v |= int64(b) << (8 * uint(i))
	}
	if data[len(data)-1]&0x80 != 0 {
		v &^= int64(0x80) << (8 * uint(len(data)-1))
		v = -v
	}
	return int(v), nil
}
