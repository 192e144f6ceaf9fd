// Package elements implements the Elements/Liquid sidechain extensions
// layered on top of the core transaction/script model: watchman
// fedpeg script recognition and the pay-to-contract pubkey tweak used
// to derive a peg-in's per-claim federation script.
package elements

import (
	"github.com/pktcore/txcore/crypto"
	"github.com/pktcore/txcore/er"
	"github.com/pktcore/txcore/txscript/opcode"
	"github.com/pktcore/txcore/txscript/parsescript"
)

// ContractTweak rewrites fedpegScript, replacing every 33-byte
// compressed-pubkey push that occurs before the script's first
// OP_ELSE with EcTweakPub(pubkey, HmacSha256(pubkey, claimScript)) — the
// federation's per-peg-in pay-to-contract derivation (§4.7). A script
// with no OP_ELSE at all (e.g. a bare multisig redeem script) has
// every pubkey push tweaked, vacuously "before" a first OP_ELSE that
// never occurs. RecognizeWatchman additionally validates the stricter
// LiquidV1-watchman grammar when a caller wants that guarantee; this
// operation only needs the OP_ELSE boundary.
func ContractTweak(oracle crypto.Oracle, fedpegScript, claimScript []byte) ([]byte, er.R) {
	pops, perr := parsescript.ParseScript(fedpegScript)
	if perr != nil {
		return nil, perr
	}

	out := make([]parsescript.ParsedOpcode, len(pops))
	copy(out, pops)

	pastElse := false
	for i, pop := range pops {
		if pop.Opcode.Value == opcode.OP_ELSE {
			pastElse = true
			continue
		}
		if pastElse || !isCompressedPubkeyPush(pop) {
			continue
		}
		tweaked, terr := tweakPubkey(oracle, pop.Data, claimScript)
		if terr != nil {
			return nil, terr
		}
		out[i] = parsescript.ParsedOpcode{Opcode: pop.Opcode, Data: tweaked}
	}
	return parsescript.Unparse(out)
}

func tweakPubkey(oracle crypto.Oracle, pubkey, claimScript []byte) ([]byte, er.R) {
	tweak := oracle.HmacSha256(pubkey, claimScript)
	return oracle.EcTweakPub(pubkey, tweak[:])
}

func isCompressedPubkeyPush(pop parsescript.ParsedOpcode) bool {
	return pop.Opcode.Length > 0 && len(pop.Data) == 33 && (pop.Data[0] == 0x02 || pop.Data[0] == 0x03)
}

func isSmallIntOpcode(op opcode.Opcode) bool {
	return op.Value == opcode.OP_0 || (op.Value >= opcode.OP_1 && op.Value <= opcode.OP_16)
}

func smallIntValue(op opcode.Opcode) int {
	if op.Value == opcode.OP_0 {
		return 0
	}
	return int(op.Value) - int(opcode.OP_1) + 1
}
