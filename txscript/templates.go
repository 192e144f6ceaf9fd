package txscript

import (
	"github.com/pktcore/txcore/er"
	"github.com/pktcore/txcore/txscript/opcode"
	"github.com/pktcore/txcore/txscript/scriptbuilder"
)

// PayToPubKeyHashScript builds `OP_DUP OP_HASH160 <20> OP_EQUALVERIFY
// OP_CHECKSIG` for a 20-byte pubkey hash.
func PayToPubKeyHashScript(pubKeyHash []byte) ([]byte, er.R) {
	return scriptbuilder.NewScriptBuilder().
		AddOp(opcode.OP_DUP).AddOp(opcode.OP_HASH160).
		AddData(pubKeyHash).
		AddOp(opcode.OP_EQUALVERIFY).AddOp(opcode.OP_CHECKSIG).
		Script()
}

// PayToWitnessPubKeyHashScript builds `OP_0 <20>`.
func PayToWitnessPubKeyHashScript(pubKeyHash []byte) ([]byte, er.R) {
	return scriptbuilder.NewScriptBuilder().AddOp(opcode.OP_0).AddData(pubKeyHash).Script()
}

// PayToScriptHashScript builds `OP_HASH160 <20> OP_EQUAL`.
func PayToScriptHashScript(scriptHash []byte) ([]byte, er.R) {
	return scriptbuilder.NewScriptBuilder().
		AddOp(opcode.OP_HASH160).AddData(scriptHash).AddOp(opcode.OP_EQUAL).Script()
}

// PayToWitnessScriptHashScript builds `OP_0 <32>`.
func PayToWitnessScriptHashScript(scriptHash []byte) ([]byte, er.R) {
	return scriptbuilder.NewScriptBuilder().AddOp(opcode.OP_0).AddData(scriptHash).Script()
}

// PayToTaprootScript builds `OP_1 <32>` for an x-only output key.
func PayToTaprootScript(outputKey []byte) ([]byte, er.R) {
	return scriptbuilder.NewScriptBuilder().AddOp(opcode.OP_1).AddData(outputKey).Script()
}

// PayToPubKeyScript builds `<pub> OP_CHECKSIG`.
func PayToPubKeyScript(serializedPubKey []byte) ([]byte, er.R) {
	return scriptbuilder.NewScriptBuilder().AddData(serializedPubKey).AddOp(opcode.OP_CHECKSIG).Script()
}

// NullDataScript builds a provably-prunable `OP_RETURN <data>` script.
const MaxDataCarrierSize = 80

func NullDataScript(data []byte) ([]byte, er.R) {
	if len(data) > MaxDataCarrierSize {
		return nil, er.InvalidArgumentType.CodeWithDetail("TooMuchNullData",
			"data exceeds the max standard OP_RETURN payload size").Default()
	}
	return scriptbuilder.NewScriptBuilder().AddOp(opcode.OP_RETURN).AddData(data).Script()
}

// MultiSigScript builds `OP_m <pub_1>..<pub_n> OP_n OP_CHECKMULTISIG`.
func MultiSigScript(pubkeys [][]byte, nrequired int) ([]byte, er.R) {
	if nrequired < 1 || nrequired > len(pubkeys) {
		return nil, er.InvalidArgumentType.CodeWithDetail("BadMultisigCount",
			"required signature count out of range for the given key set").Default()
	}
	if len(pubkeys) > 20 {
		return nil, er.InvalidArgumentType.CodeWithDetail("TooManyKeys",
			"multisig script cannot exceed 20 public keys").Default()
	}
	b := scriptbuilder.NewScriptBuilder().AddInt64(int64(nrequired))
	for _, pk := range pubkeys {
		b = b.AddData(pk)
	}
	b = b.AddInt64(int64(len(pubkeys))).AddOp(opcode.OP_CHECKMULTISIG)
	return b.Script()
}

// PegoutScript builds an Elements peg-out marker:
// `OP_RETURN <genesis hash> <parent chain script>`.
func PegoutScript(genesisHash [32]byte, parentChainScript []byte) ([]byte, er.R) {
	return scriptbuilder.NewScriptBuilder().
		AddOp(opcode.OP_RETURN).AddData(genesisHash[:]).AddData(parentChainScript).Script()
}
