package psbt

// Global map field types.
const (
	GlobalUnsignedTx  byte = 0x00
	GlobalXpub        byte = 0x01
	GlobalVersion     byte = 0xfb
	GlobalProprietary byte = 0xfc
)

// Input map field types.
const (
	InputNonWitnessUtxo      byte = 0x00
	InputWitnessUtxo         byte = 0x01
	InputPartialSig          byte = 0x02
	InputSighashType         byte = 0x03
	InputRedeemScript        byte = 0x04
	InputWitnessScript       byte = 0x05
	InputBip32Derivation     byte = 0x06
	InputFinalScriptSig      byte = 0x07
	InputFinalScriptWitness  byte = 0x08
	InputRipemd160Preimage   byte = 0x0a
	InputSha256Preimage      byte = 0x0b
	InputHash160Preimage     byte = 0x0c
	InputHash256Preimage     byte = 0x0d
	InputProprietary         byte = 0xfc
)

// Output map field types.
const (
	OutputRedeemScript    byte = 0x00
	OutputWitnessScript   byte = 0x01
	OutputBip32Derivation byte = 0x02
	OutputProprietary     byte = 0xfc
)

// HighestSupportedVersion is the highest VERSION field value this
// implementation accepts on parse.
const HighestSupportedVersion uint32 = 0
