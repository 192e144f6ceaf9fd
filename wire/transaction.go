package wire

import (
	"github.com/pktcore/txcore/chainhash"
	"github.com/pktcore/txcore/er"
)

// witnessMarker is the marker byte pair inserted after the version
// field whenever any input carries a non-empty witness: a 0x00 marker
// (indistinguishable, on its own, from a zero input count) followed by
// a non-zero flag byte.
var witnessMarker = [2]byte{0x00, 0x01}

// Transaction is the consensus transaction model: version, inputs,
// outputs, and locktime. Once built it is treated as immutable by the
// rest of the core; callers wanting to change it construct a new value
// (Copy gives a deep copy to start from).
type Transaction struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// NewTransaction returns an empty transaction with the given version.
func NewTransaction(version int32) *Transaction {
	return &Transaction{Version: version}
}

// AddTxIn appends an input.
func (tx *Transaction) AddTxIn(ti *TxIn) { tx.TxIn = append(tx.TxIn, ti) }

// AddTxOut appends an output.
func (tx *Transaction) AddTxOut(to *TxOut) { tx.TxOut = append(tx.TxOut, to) }

// HasWitness reports whether any input carries a non-empty witness
// stack, which determines whether the witness-framed encoding is used.
func (tx *Transaction) HasWitness() bool {
	for _, ti := range tx.TxIn {
		if len(ti.Witness) > 0 {
			return true
		}
	}
	return false
}

// IsCoinbase reports whether tx is a coinbase transaction: exactly one
// input, referencing the coinbase sentinel outpoint.
func (tx *Transaction) IsCoinbase() bool {
	return len(tx.TxIn) == 1 && tx.TxIn[0].IsCoinbase()
}

// Copy returns a deep copy of tx.
func (tx *Transaction) Copy() *Transaction {
	out := &Transaction{
		Version:  tx.Version,
		LockTime: tx.LockTime,
		TxIn:     make([]*TxIn, len(tx.TxIn)),
		TxOut:    make([]*TxOut, len(tx.TxOut)),
	}
	for i, ti := range tx.TxIn {
		cp := *ti
		cp.SignatureScript = append([]byte(nil), ti.SignatureScript...)
		if ti.Witness != nil {
			cp.Witness = make(TxWitness, len(ti.Witness))
			for j, item := range ti.Witness {
				cp.Witness[j] = append([]byte(nil), item...)
			}
		}
		out.TxIn[i] = &cp
	}
	for i, to := range tx.TxOut {
		cp := *to
		cp.PkScript = append([]byte(nil), to.PkScript...)
		out.TxOut[i] = &cp
	}
	return out
}

// baseSize is the non-witness serialized size.
func (tx *Transaction) baseSize() int {
	n := 8 + CompactSizeLen(uint64(len(tx.TxIn))) + CompactSizeLen(uint64(len(tx.TxOut)))
	for _, ti := range tx.TxIn {
		n += ti.serializeSizeNoWitness()
	}
	for _, to := range tx.TxOut {
		n += to.serializeSize()
	}
	return n
}

// SerializeSizeStripped is the transaction size without any witness data.
func (tx *Transaction) SerializeSizeStripped() int { return tx.baseSize() }

// SerializeSize is the full wire size, including witness framing if present.
func (tx *Transaction) SerializeSize() int {
	n := tx.baseSize()
	if tx.HasWitness() {
		n += 2 // marker + flag
		for _, ti := range tx.TxIn {
			n += ti.Witness.serializeSize()
		}
	}
	return n
}

// Weight is 3×stripped-size + full-size (the BIP141 cost metric: each
// non-witness byte counts ×4, each witness byte ×1).
func (tx *Transaction) Weight() int {
	return tx.SerializeSizeStripped()*3 + tx.SerializeSize()
}

// VSize is the weight rounded up to the nearest whole vbyte.
func (tx *Transaction) VSize() int {
	w := tx.Weight()
	return (w + 3) / 4
}

// Serialize writes the full wire encoding, with witness framing when
// HasWitness is true.
func (tx *Transaction) Serialize() []byte {
	s := NewSerializer(tx.SerializeSize())
	witnessFraming := tx.HasWitness()
	s.WriteUint32LE(uint32(tx.Version))
	if witnessFraming {
		s.WriteBytes(witnessMarker[:])
	}
	s.WriteCompactSize(uint64(len(tx.TxIn)))
	for _, ti := range tx.TxIn {
		ti.serializeNoWitness(s)
	}
	s.WriteCompactSize(uint64(len(tx.TxOut)))
	for _, to := range tx.TxOut {
		to.serialize(s)
	}
	if witnessFraming {
		for _, ti := range tx.TxIn {
			ti.Witness.serialize(s)
		}
	}
	s.WriteUint32LE(tx.LockTime)
	return s.Bytes()
}

// SerializeNoWitness writes the legacy (pre-BIP141) encoding regardless
// of whether any input carries a witness; used when computing legacy
// and BIP143 sighash pre-images.
func (tx *Transaction) SerializeNoWitness() []byte {
	s := NewSerializer(tx.baseSize())
	s.WriteUint32LE(uint32(tx.Version))
	s.WriteCompactSize(uint64(len(tx.TxIn)))
	for _, ti := range tx.TxIn {
		ti.serializeNoWitness(s)
	}
	s.WriteCompactSize(uint64(len(tx.TxOut)))
	for _, to := range tx.TxOut {
		to.serialize(s)
	}
	s.WriteUint32LE(tx.LockTime)
	return s.Bytes()
}

// TxHash is the double-SHA256 of the non-witness serialization (the
// txid).
func (tx *Transaction) TxHash() chainhash.Hash {
	return chainhash.DoubleHashH(tx.SerializeNoWitness())
}

// WTxHash is the double-SHA256 of the full (witness-included)
// serialization.
func (tx *Transaction) WTxHash() chainhash.Hash {
	return chainhash.DoubleHashH(tx.Serialize())
}

// DeserializeTransaction parses buf, handling the BIP141 witness
// marker and the two special 0-input wire shapes noted in §3: a
// fully-empty transaction (0 inputs, 0 outputs) and a transaction
// with 0 inputs but ≥ 2 outputs, whose output-count byte would
// otherwise be misread as a witness flag. A 0-input transaction with
// exactly one output has the same bytes as witness framing and is
// read as witness-framed.
func DeserializeTransaction(buf []byte) (*Transaction, er.R) {
	d := NewDeserializer(buf)
	tx, err := decodeTransaction(d)
	if err != nil {
		return nil, err
	}
	if !d.AtEOF() {
		return nil, er.InvalidArgumentType.CodeWithDetail("TrailingBytes",
			"transaction buffer has unconsumed trailing bytes").Default()
	}
	return tx, nil
}

func decodeTransaction(d *Deserializer) (*Transaction, er.R) {
	version, err := d.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	tx := &Transaction{Version: int32(version)}

	txInCount, err := d.ReadCompactSize()
	if err != nil {
		return nil, err
	}

	witnessFraming := false
	var reconstructedTxOutCount uint64
	haveReconstructedCount := false

	if txInCount == 0 {
		flag, ferr := d.ReadByte()
		if ferr != nil {
			return nil, ferr
		}
		switch flag {
		case 0x00:
			// Fully empty transaction: the flag byte IS the
			// CompactSize encoding of a zero output count.
			reconstructedTxOutCount = 0
			haveReconstructedCount = true
		case 0x01:
			witnessFraming = true
			txInCount, err = d.ReadCompactSize()
			if err != nil {
				return nil, err
			}
		default:
			// 0 inputs, ≥2 outputs: flag is actually the first byte
			// of the real output count; step back and read it whole.
			d.pos--
			reconstructedTxOutCount, err = d.ReadCompactSize()
			if err != nil {
				return nil, err
			}
			haveReconstructedCount = true
		}
	}

	tx.TxIn = make([]*TxIn, txInCount)
	for i := range tx.TxIn {
		ti, err := readTxIn(d)
		if err != nil {
			return nil, err
		}
		tx.TxIn[i] = ti
	}

	txOutCount := reconstructedTxOutCount
	if !haveReconstructedCount {
		txOutCount, err = d.ReadCompactSize()
		if err != nil {
			return nil, err
		}
	}
	tx.TxOut = make([]*TxOut, txOutCount)
	for i := range tx.TxOut {
		to, err := readTxOut(d)
		if err != nil {
			return nil, err
		}
		tx.TxOut[i] = to
	}

	if witnessFraming {
		for _, ti := range tx.TxIn {
			wit, werr := readTxWitness(d)
			if werr != nil {
				return nil, werr
			}
			ti.Witness = wit
		}
	}

	lockTime, err := d.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	tx.LockTime = lockTime
	return tx, nil
}
