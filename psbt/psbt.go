package psbt

import (
	"bytes"
	"encoding/binary"

	"github.com/pktcore/txcore/er"
	"github.com/pktcore/txcore/wire"
)

// Psbt is a partially-signed Bitcoin (or Elements) transaction: the
// unsigned transaction skeleton plus one map per global/input/output
// slot. The embedded transaction's scriptSigs and witnesses are
// always empty — signing data lives only in the input maps until
// Finalize promotes it into FINAL_SCRIPTSIG / FINAL_SCRIPTWITNESS.
type Psbt struct {
	Global  *kvMap
	Inputs  []*kvMap
	Outputs []*kvMap
	Tx      *wire.Transaction
}

var (
	errBadMagic = er.InvalidArgumentType.CodeWithDetail("BadPsbtMagic",
		"buffer does not begin with the PSBT magic bytes").Default()
	errMissingUnsignedTx = er.InvalidArgumentType.CodeWithDetail("MissingUnsignedTx",
		"global map has no UNSIGNED_TX field").Default()
	errUnsignedTxNotClean = er.InvalidArgumentType.CodeWithDetail("UnsignedTxNotClean",
		"UNSIGNED_TX inputs must have empty scriptSig and witness").Default()
	errVersionTooHigh = er.InvalidArgumentType.CodeWithDetail("UnsupportedVersion",
		"PSBT VERSION exceeds the highest version this build supports").Default()
	errTrailingBytes = er.InvalidArgumentType.CodeWithDetail("TrailingBytes",
		"PSBT buffer has unconsumed trailing bytes").Default()
)

// New returns an empty Psbt wrapping tx (which must itself already
// satisfy the empty-scriptSig/witness invariant).
func New(tx *wire.Transaction) (*Psbt, er.R) {
	if err := checkUnsignedTxClean(tx); err != nil {
		return nil, err
	}
	p := &Psbt{
		Global:  newKVMap(),
		Inputs:  make([]*kvMap, len(tx.TxIn)),
		Outputs: make([]*kvMap, len(tx.TxOut)),
		Tx:      tx,
	}
	for i := range p.Inputs {
		p.Inputs[i] = newKVMap()
	}
	for i := range p.Outputs {
		p.Outputs[i] = newKVMap()
	}
	p.Global.set(GlobalUnsignedTx, nil, tx.SerializeNoWitness())
	return p, nil
}

// parseUnsignedTx decodes the UNSIGNED_TX record. Some PSBT writers
// are known to serialize it with the BIP144 marker/flag set even
// though every input's witness ends up empty (a library quirk, not a
// spec violation). wire.DeserializeTransaction already parses that
// shape correctly — it reads whatever framing the bytes actually use,
// not what HasWitness() would predict — and its own `AtEOF` check
// after decode is exactly the round-trip validation this record
// needs: every byte of rawTx must be accounted for by the decode.
func parseUnsignedTx(rawTx []byte) (*wire.Transaction, er.R) {
	return wire.DeserializeTransaction(rawTx)
}

func checkUnsignedTxClean(tx *wire.Transaction) er.R {
	for _, ti := range tx.TxIn {
		if len(ti.SignatureScript) != 0 || len(ti.Witness) != 0 {
			return errUnsignedTxNotClean
		}
	}
	return nil
}

// rebuildGlobalTx re-serializes Tx into the global UNSIGNED_TX slot,
// called whenever the input/output vectors change shape.
func (p *Psbt) rebuildGlobalTx() {
	p.Global.set(GlobalUnsignedTx, nil, p.Tx.SerializeNoWitness())
}

// Parse decodes a binary PSBT.
func Parse(buf []byte) (*Psbt, er.R) {
	if len(buf) < len(Magic) || !bytes.Equal(buf[:len(Magic)], Magic[:]) {
		return nil, errBadMagic
	}
	d := wire.NewDeserializer(buf[len(Magic):])

	global, err := parseKVMap(d)
	if err != nil {
		return nil, err
	}

	rawTx, ok := global.get(GlobalUnsignedTx, nil)
	if !ok {
		return nil, errMissingUnsignedTx
	}
	tx, err := parseUnsignedTx(rawTx)
	if err != nil {
		return nil, err
	}
	if err := checkUnsignedTxClean(tx); err != nil {
		return nil, err
	}

	if rawVersion, ok := global.get(GlobalVersion, nil); ok {
		if len(rawVersion) != 4 {
			return nil, er.InvalidArgumentType.CodeWithDetail("BadVersionField",
				"VERSION field must be exactly 4 bytes").Default()
		}
		version := binary.LittleEndian.Uint32(rawVersion)
		if version > HighestSupportedVersion {
			return nil, errVersionTooHigh
		}
	}

	inputs := make([]*kvMap, len(tx.TxIn))
	for i := range inputs {
		m, err := parseKVMap(d)
		if err != nil {
			return nil, err
		}
		inputs[i] = m
	}
	outputs := make([]*kvMap, len(tx.TxOut))
	for i := range outputs {
		m, err := parseKVMap(d)
		if err != nil {
			return nil, err
		}
		outputs[i] = m
	}
	if !d.AtEOF() {
		return nil, errTrailingBytes
	}

	return &Psbt{Global: global, Inputs: inputs, Outputs: outputs, Tx: tx}, nil
}

// GlobalXpubs returns every GLOBAL_XPUB record: each extended pubkey
// that contributed to this PSBT's inputs/outputs, keyed by its raw
// 78-byte serialized form, with the master fingerprint and derivation
// path it was reached by.
func (p *Psbt) GlobalXpubs() ([]Bip32Origin, er.R) {
	raw := p.Global.getAll(GlobalXpub)
	out := make([]Bip32Origin, 0, len(raw))
	for xpub, value := range raw {
		o, err := decodeBip32Origin([]byte(xpub), value)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// SetGlobalXpub records a GLOBAL_XPUB entry for the given raw extended
// pubkey.
func (p *Psbt) SetGlobalXpub(xpub []byte, fingerprint [4]byte, path []uint32) {
	p.Global.set(GlobalXpub, xpub, encodeBip32Origin(fingerprint, path))
}

// Serialize encodes the PSBT to its canonical binary form: maps are
// always walked in ascending key order.
func (p *Psbt) Serialize() []byte {
	s := wire.NewSerializer(0)
	s.WriteBytes(Magic[:])
	p.Global.serialize(s)
	for _, in := range p.Inputs {
		in.serialize(s)
	}
	for _, out := range p.Outputs {
		out.serialize(s)
	}
	return s.Bytes()
}
