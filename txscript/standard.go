package txscript

import (
	"github.com/pktcore/txcore/crypto"
	"github.com/pktcore/txcore/er"
	"github.com/pktcore/txcore/txscript/opcode"
	"github.com/pktcore/txcore/txscript/parsescript"
)

// ScriptClass enumerates the standard output templates recognized by
// GetScriptClass.
type ScriptClass byte

const (
	NonStandardTy ScriptClass = iota
	PubKeyTy
	PubKeyHashTy
	ScriptHashTy
	WitnessV0PubKeyHashTy
	WitnessV0ScriptHashTy
	WitnessV1TaprootTy
	MultiSigTy
	NullDataTy
	PegoutTy
)

var scriptClassNames = [...]string{
	NonStandardTy:         "nonstandard",
	PubKeyTy:              "pubkey",
	PubKeyHashTy:          "pubkeyhash",
	ScriptHashTy:          "scripthash",
	WitnessV0PubKeyHashTy: "witness_v0_keyhash",
	WitnessV0ScriptHashTy: "witness_v0_scripthash",
	WitnessV1TaprootTy:    "witness_v1_taproot",
	MultiSigTy:            "multisig",
	NullDataTy:            "nulldata",
	PegoutTy:              "pegout",
}

func (c ScriptClass) String() string {
	if int(c) < 0 || int(c) >= len(scriptClassNames) {
		return "invalid"
	}
	return scriptClassNames[c]
}

func isSmallInt(op opcode.Opcode) bool {
	return op.Value == opcode.OP_0 || (op.Value >= opcode.OP_1 && op.Value <= opcode.OP_16)
}

// asSmallInt returns the passed opcode, which must be true according
// to isSmallInt, as an integer.
func asSmallInt(op opcode.Opcode) int {
	if op.Value == opcode.OP_0 {
		return 0
	}
	return int(op.Value-opcode.OP_1) + 1
}

// canonicalPush reports whether a push-data opcode uses the shortest
// legal encoding for its payload.
func canonicalPush(pop parsescript.ParsedOpcode) bool {
	op := pop.Opcode.Value
	data := pop.Data
	dataLen := len(data)
	if op > opcode.OP_16 {
		return true
	}
	if op < opcode.OP_PUSHDATA1 && op > opcode.OP_0 && dataLen == 1 && data[0] <= 16 {
		return false
	}
	if op == opcode.OP_PUSHDATA1 && dataLen < int(opcode.OP_PUSHDATA1) {
		return false
	}
	if op == opcode.OP_PUSHDATA2 && dataLen <= 0xff {
		return false
	}
	if op == opcode.OP_PUSHDATA4 && dataLen <= 0xffff {
		return false
	}
	return true
}

func isPubkey(pops []parsescript.ParsedOpcode) bool {
	return len(pops) == 2 &&
		(len(pops[0].Data) == 33 || len(pops[0].Data) == 65) &&
		pops[1].Opcode.Value == opcode.OP_CHECKSIG
}

func isPubkeyHash(pops []parsescript.ParsedOpcode) bool {
	return len(pops) == 5 &&
		pops[0].Opcode.Value == opcode.OP_DUP &&
		pops[1].Opcode.Value == opcode.OP_HASH160 &&
		pops[2].Opcode.Value == opcode.OP_DATA_20 &&
		pops[3].Opcode.Value == opcode.OP_EQUALVERIFY &&
		pops[4].Opcode.Value == opcode.OP_CHECKSIG
}

func isScriptHash(pops []parsescript.ParsedOpcode) bool {
	return len(pops) == 3 &&
		pops[0].Opcode.Value == opcode.OP_HASH160 &&
		pops[1].Opcode.Value == opcode.OP_DATA_20 &&
		pops[2].Opcode.Value == opcode.OP_EQUAL
}

func isWitnessPubKeyHash(pops []parsescript.ParsedOpcode) bool {
	return len(pops) == 2 &&
		pops[0].Opcode.Value == opcode.OP_0 &&
		pops[1].Opcode.Value == opcode.OP_DATA_20
}

func isWitnessScriptHash(pops []parsescript.ParsedOpcode) bool {
	return len(pops) == 2 &&
		pops[0].Opcode.Value == opcode.OP_0 &&
		pops[1].Opcode.Value == opcode.OP_DATA_32
}

func isTaproot(pops []parsescript.ParsedOpcode) bool {
	return len(pops) == 2 &&
		pops[0].Opcode.Value == opcode.OP_1 &&
		pops[1].Opcode.Value == opcode.OP_DATA_32
}

// isMultiSig reports the structural shape only (counts/opcodes); a
// caller wanting the §4.4 pubkey-validity requirement should use
// IsMultiSigScript, which additionally checks each push via the oracle.
func isMultiSig(pops []parsescript.ParsedOpcode) bool {
	l := len(pops)
	if l < 4 {
		return false
	}
	if !isSmallInt(pops[0].Opcode) || !isSmallInt(pops[l-2].Opcode) {
		return false
	}
	if pops[l-1].Opcode.Value != opcode.OP_CHECKMULTISIG {
		return false
	}
	m := asSmallInt(pops[0].Opcode)
	n := asSmallInt(pops[l-2].Opcode)
	if m < 1 || m > n || n != l-3 {
		return false
	}
	for _, pop := range pops[1 : l-2] {
		if len(pop.Data) != 33 && len(pop.Data) != 65 {
			return false
		}
	}
	return true
}

func isNullData(pops []parsescript.ParsedOpcode) bool {
	l := len(pops)
	if l == 1 && pops[0].Opcode.Value == opcode.OP_RETURN {
		return true
	}
	return l == 2 && pops[0].Opcode.Value == opcode.OP_RETURN &&
		(isSmallInt(pops[1].Opcode) || pops[1].Opcode.Value <= opcode.OP_PUSHDATA4)
}

// isPegout reports a `OP_RETURN <32-byte genesis hash> <parent chain
// script> ...` Elements peg-out marker: an OP_RETURN followed by a
// 32-byte push and at least one further data push describing the
// mainchain destination script.
func isPegout(pops []parsescript.ParsedOpcode) bool {
	if len(pops) < 3 || pops[0].Opcode.Value != opcode.OP_RETURN {
		return false
	}
	if pops[1].Opcode.Value != opcode.OP_DATA_32 {
		return false
	}
	for _, pop := range pops[2:] {
		if pop.Opcode.Value > opcode.OP_PUSHDATA4 {
			return false
		}
	}
	return true
}

func typeOfScript(pops []parsescript.ParsedOpcode) ScriptClass {
	switch {
	case isPubkey(pops):
		return PubKeyTy
	case isPubkeyHash(pops):
		return PubKeyHashTy
	case isWitnessPubKeyHash(pops):
		return WitnessV0PubKeyHashTy
	case isScriptHash(pops):
		return ScriptHashTy
	case isWitnessScriptHash(pops):
		return WitnessV0ScriptHashTy
	case isTaproot(pops):
		return WitnessV1TaprootTy
	case isMultiSig(pops):
		return MultiSigTy
	case isPegout(pops):
		return PegoutTy
	case isNullData(pops):
		return NullDataTy
	default:
		return NonStandardTy
	}
}

// GetScriptClass classifies a raw script by its standard template.
// NonStandardTy is returned when the script does not parse.
func GetScriptClass(script []byte) ScriptClass {
	pops, err := parsescript.ParseScript(script)
	if err != nil {
		return NonStandardTy
	}
	return typeOfScript(pops)
}

// IsWitnessProgram reports whether script is a valid witness program:
// a small-int version push followed by a single 2-40 byte data push.
func IsWitnessProgram(script []byte) bool {
	if len(script) < 4 || len(script) > 42 {
		return false
	}
	pops, err := parsescript.ParseScript(script)
	if err != nil {
		return false
	}
	return isWitnessProgram(pops)
}

func isWitnessProgram(pops []parsescript.ParsedOpcode) bool {
	return len(pops) == 2 &&
		isSmallInt(pops[0].Opcode) &&
		canonicalPush(pops[1]) &&
		len(pops[1].Data) >= 2 && len(pops[1].Data) <= 40
}

// ExtractWitnessProgramInfo extracts the witness version and program
// bytes from script, failing if script is not a witness program.
func ExtractWitnessProgramInfo(script []byte) (int, []byte, er.R) {
	pops, err := parsescript.ParseScript(script)
	if err != nil {
		return 0, nil, err
	}
	if !isWitnessProgram(pops) {
		return 0, nil, er.InvalidArgumentType.CodeWithDetail("NotWitnessProgram",
			"script is not a witness program").Default()
	}
	return asSmallInt(pops[0].Opcode), pops[1].Data, nil
}

// IsPayToScriptHash, IsPayToWitnessPubKeyHash, IsPayToWitnessScriptHash,
// IsPayToTaproot report whether script matches that single template.
func IsPayToScriptHash(script []byte) bool { return classIs(script, isScriptHash) }
func IsPayToWitnessPubKeyHash(script []byte) bool {
	return classIs(script, isWitnessPubKeyHash)
}
func IsPayToWitnessScriptHash(script []byte) bool {
	return classIs(script, isWitnessScriptHash)
}
func IsPayToTaproot(script []byte) bool { return classIs(script, isTaproot) }

func classIs(script []byte, pred func([]parsescript.ParsedOpcode) bool) bool {
	pops, err := parsescript.ParseScript(script)
	if err != nil {
		return false
	}
	return pred(pops)
}

// IsMultiSigScript validates the full §4.4 multisig contract: 1≤m≤n,
// n matching the pushed pubkey count, and every push decoding as a
// valid Pubkey under the oracle.
func IsMultiSigScript(oracle crypto.Oracle, script []byte) bool {
	pops, err := parsescript.ParseScript(script)
	if err != nil || !isMultiSig(pops) {
		return false
	}
	for _, pop := range pops[1 : len(pops)-2] {
		if !oracle.IsValidPubkey(pop.Data) {
			return false
		}
	}
	return true
}

// ExtractPubkeysFromMultisigScript walks the element list from the
// end — reading OP_CHECKMULTISIG[VERIFY], then n, then n pushes, then
// m — and returns the pubkeys in script order.
func ExtractPubkeysFromMultisigScript(script []byte) (m int, pubkeys [][]byte, err er.R) {
	pops, perr := parsescript.ParseScript(script)
	if perr != nil {
		return 0, nil, perr
	}
	l := len(pops)
	if l < 4 {
		return 0, nil, er.InvalidArgumentType.CodeWithDetail("NotMultisig",
			"script too short to be a multisig script").Default()
	}

	last := pops[l-1]
	if last.Opcode.Value != opcode.OP_CHECKMULTISIG && last.Opcode.Value != opcode.OP_CHECKMULTISIGVERIFY {
		return 0, nil, er.InvalidArgumentType.CodeWithDetail("NotMultisig",
			"script does not end in OP_CHECKMULTISIG[VERIFY]").Default()
	}

	nOp := pops[l-2].Opcode
	if !isSmallInt(nOp) {
		return 0, nil, er.InvalidArgumentType.CodeWithDetail("BadMultisigCount",
			"expected a small-int pubkey count before OP_CHECKMULTISIG").Default()
	}
	n := asSmallInt(nOp)

	if l-3 != n {
		return 0, nil, er.InvalidArgumentType.CodeWithDetail("BadMultisigCount",
			"pushed pubkey count does not match declared n").Default()
	}

	reversed := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		pop := pops[l-3-i]
		if len(pop.Data) != 33 && len(pop.Data) != 65 {
			return 0, nil, er.InvalidArgumentType.CodeWithDetail("BadMultisigPubkey",
				"multisig push is not a valid pubkey length").Default()
		}
		reversed = append(reversed, pop.Data)
	}
	pubkeys = make([][]byte, n)
	for i, pk := range reversed {
		pubkeys[n-1-i] = pk
	}

	mOp := pops[0].Opcode
	if !isSmallInt(mOp) {
		return 0, nil, er.InvalidArgumentType.CodeWithDetail("BadMultisigCount",
			"expected a small-int required-signature count at script start").Default()
	}
	m = asSmallInt(mOp)
	if m < 1 || m > n {
		return 0, nil, er.InvalidArgumentType.CodeWithDetail("BadMultisigCount",
			"required signature count out of range").Default()
	}
	return m, pubkeys, nil
}
