package psbt

import (
	"encoding/binary"

	"github.com/pktcore/txcore/er"
	"github.com/pktcore/txcore/wire"
)

// Bip32Origin is one BIP32_DERIVATION record: the master-key
// fingerprint and derivation path of the pubkey it's keyed by.
type Bip32Origin struct {
	Pubkey      []byte
	Fingerprint [4]byte
	Path        []uint32
}

func encodeBip32Origin(fingerprint [4]byte, path []uint32) []byte {
	out := make([]byte, 4+4*len(path))
	copy(out, fingerprint[:])
	for i, idx := range path {
		binary.LittleEndian.PutUint32(out[4+4*i:], idx)
	}
	return out
}

func decodeBip32Origin(pubkey, value []byte) (Bip32Origin, er.R) {
	if len(value) < 4 || len(value)%4 != 0 {
		return Bip32Origin{}, er.InvalidArgumentType.CodeWithDetail("BadBip32Derivation",
			"BIP32_DERIVATION value must be a 4-byte fingerprint followed by u32 path steps").Default()
	}
	var o Bip32Origin
	o.Pubkey = append([]byte(nil), pubkey...)
	copy(o.Fingerprint[:], value[:4])
	for i := 4; i < len(value); i += 4 {
		o.Path = append(o.Path, binary.LittleEndian.Uint32(value[i:i+4]))
	}
	return o, nil
}

// NonWitnessUtxo returns the full previous transaction, if set.
func (p *Psbt) NonWitnessUtxo(idx int) (*wire.Transaction, bool, er.R) {
	raw, ok := p.Inputs[idx].get(InputNonWitnessUtxo, nil)
	if !ok {
		return nil, false, nil
	}
	tx, err := wire.DeserializeTransaction(raw)
	if err != nil {
		return nil, false, err
	}
	return tx, true, nil
}

// WitnessUtxo returns the spent output directly, if set.
func (p *Psbt) WitnessUtxo(idx int) (*wire.TxOut, bool, er.R) {
	raw, ok := p.Inputs[idx].get(InputWitnessUtxo, nil)
	if !ok {
		return nil, false, nil
	}
	d := wire.NewDeserializer(raw)
	value, err := d.ReadInt64LE()
	if err != nil {
		return nil, false, err
	}
	script, err := d.ReadVarBytes()
	if err != nil {
		return nil, false, err
	}
	return wire.NewTxOut(value, script), true, nil
}

func serializeTxOut(out *wire.TxOut) []byte {
	s := wire.NewSerializer(0)
	s.WriteInt64LE(out.Value)
	s.WriteVarBytes(out.PkScript)
	return s.Bytes()
}

// RedeemScript returns the input's REDEEM_SCRIPT, if set.
func (p *Psbt) RedeemScript(idx int) ([]byte, bool) {
	return p.Inputs[idx].get(InputRedeemScript, nil)
}

// WitnessScript returns the input's WITNESS_SCRIPT, if set.
func (p *Psbt) WitnessScript(idx int) ([]byte, bool) {
	return p.Inputs[idx].get(InputWitnessScript, nil)
}

// Bip32Derivations returns every BIP32_DERIVATION entry for the input.
func (p *Psbt) Bip32Derivations(idx int) ([]Bip32Origin, er.R) {
	raw := p.Inputs[idx].getAll(InputBip32Derivation)
	out := make([]Bip32Origin, 0, len(raw))
	for pubkey, value := range raw {
		o, err := decodeBip32Origin([]byte(pubkey), value)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// PartialSigs returns every PARTIAL_SIG entry for the input, keyed by
// compressed pubkey bytes.
func (p *Psbt) PartialSigs(idx int) map[string][]byte {
	return p.Inputs[idx].getAll(InputPartialSig)
}

// SighashType returns the input's SIGHASH_TYPE, defaulting to SigHashAll.
func (p *Psbt) SighashType(idx int) wire.SigHashType {
	raw, ok := p.Inputs[idx].get(InputSighashType, nil)
	if !ok || len(raw) != 4 {
		return wire.SigHashAll
	}
	return wire.SigHashType(binary.LittleEndian.Uint32(raw))
}

// IsFinalized reports whether the input already has a FINAL_SCRIPTSIG
// or FINAL_SCRIPTWITNESS record.
func (p *Psbt) IsFinalized(idx int) bool {
	if _, ok := p.Inputs[idx].get(InputFinalScriptSig, nil); ok {
		return true
	}
	_, ok := p.Inputs[idx].get(InputFinalScriptWitness, nil)
	return ok
}
