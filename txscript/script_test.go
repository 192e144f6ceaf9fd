package txscript_test

import (
	"testing"

	"github.com/pktcore/txcore/crypto"
	"github.com/pktcore/txcore/key"
	"github.com/pktcore/txcore/txscript"
	"github.com/pktcore/txcore/txscript/opcode"

	"github.com/stretchr/testify/require"
)

// compressedPubkey derives a real, on-curve compressed pubkey from a
// deterministic scalar, for tests that need oracle.IsValidPubkey to
// pass (unlike a plain 33-byte string of the right shape).
func compressedPubkey(t *testing.T, oracle crypto.Oracle, b byte) []byte {
	raw := make([]byte, 32)
	raw[31] = b
	priv, err := key.NewPrivkey(oracle, raw, true)
	require.Nil(t, err)
	pub, perr := priv.Pubkey(oracle)
	require.Nil(t, perr)
	return pub.Bytes()
}

func TestGetScriptClass_RecognizesStandardTemplates(t *testing.T) {
	p2pkh, err := txscript.PayToPubKeyHashScript(make([]byte, 20))
	require.Nil(t, err)
	require.Equal(t, txscript.PubKeyHashTy, txscript.GetScriptClass(p2pkh))

	p2sh, err := txscript.PayToScriptHashScript(make([]byte, 20))
	require.Nil(t, err)
	require.Equal(t, txscript.ScriptHashTy, txscript.GetScriptClass(p2sh))
	require.True(t, txscript.IsPayToScriptHash(p2sh))

	p2wpkh, err := txscript.PayToWitnessPubKeyHashScript(make([]byte, 20))
	require.Nil(t, err)
	require.Equal(t, txscript.WitnessV0PubKeyHashTy, txscript.GetScriptClass(p2wpkh))
	require.True(t, txscript.IsPayToWitnessPubKeyHash(p2wpkh))

	p2wsh, err := txscript.PayToWitnessScriptHashScript(make([]byte, 32))
	require.Nil(t, err)
	require.Equal(t, txscript.WitnessV0ScriptHashTy, txscript.GetScriptClass(p2wsh))
	require.True(t, txscript.IsPayToWitnessScriptHash(p2wsh))

	taproot, err := txscript.PayToTaprootScript(make([]byte, 32))
	require.Nil(t, err)
	require.Equal(t, txscript.WitnessV1TaprootTy, txscript.GetScriptClass(taproot))
	require.True(t, txscript.IsPayToTaproot(taproot))

	nullData, err := txscript.NullDataScript([]byte("hello"))
	require.Nil(t, err)
	require.Equal(t, txscript.NullDataTy, txscript.GetScriptClass(nullData))
}

func TestMultiSigScript_ClassificationAndExtraction(t *testing.T) {
	oracle := crypto.Production{}
	pubkeys := [][]byte{
		compressedPubkey(t, oracle, 1),
		compressedPubkey(t, oracle, 2),
		compressedPubkey(t, oracle, 3),
	}

	script, err := txscript.MultiSigScript(pubkeys, 2)
	require.Nil(t, err)
	require.Equal(t, txscript.MultiSigTy, txscript.GetScriptClass(script))
	require.True(t, txscript.IsMultiSigScript(oracle, script))

	m, extracted, eerr := txscript.ExtractPubkeysFromMultisigScript(script)
	require.Nil(t, eerr)
	require.Equal(t, 2, m)
	require.Equal(t, pubkeys, extracted)
}

func TestMultiSigScript_RejectsBadThreshold(t *testing.T) {
	oracle := crypto.Production{}
	onePubkey := [][]byte{compressedPubkey(t, oracle, 1)}

	_, err := txscript.MultiSigScript(onePubkey, 0)
	require.NotNil(t, err)

	_, err = txscript.MultiSigScript(onePubkey, 2)
	require.NotNil(t, err)
}

func TestExtractWitnessProgramInfo(t *testing.T) {
	prog := make([]byte, 20)
	script, err := txscript.PayToWitnessPubKeyHashScript(prog)
	require.Nil(t, err)

	version, extracted, eerr := txscript.ExtractWitnessProgramInfo(script)
	require.Nil(t, eerr)
	require.Equal(t, 0, version)
	require.Equal(t, prog, extracted)
}

func TestRemoveOpcode_StripsCodeSeparator(t *testing.T) {
	script := []byte{opcode.OP_DUP, opcode.OP_CODESEPARATOR, opcode.OP_HASH160}
	cleaned, err := txscript.RemoveOpcode(script, opcode.OP_CODESEPARATOR)
	require.Nil(t, err)
	require.Equal(t, []byte{opcode.OP_DUP, opcode.OP_HASH160}, cleaned)
}

func TestScript_DisasmAndPushOnly(t *testing.T) {
	pkh := make([]byte, 20)
	raw, err := txscript.PayToPubKeyHashScript(pkh)
	require.Nil(t, err)

	s, serr := txscript.NewScript(raw)
	require.Nil(t, serr)
	require.False(t, s.IsPushOnly())
	require.Contains(t, s.Disasm(), "OP_DUP")
	require.Contains(t, s.Disasm(), "OP_CHECKSIG")
}

func TestScript_IsPushOnlyForDataOnlyScript(t *testing.T) {
	raw := []byte{0x04, 0x01, 0x02, 0x03, 0x04}
	s, err := txscript.NewScript(raw)
	require.Nil(t, err)
	require.True(t, s.IsPushOnly())
	require.Equal(t, 1, s.Len())
}
