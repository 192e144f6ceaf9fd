package wire

import "github.com/pktcore/txcore/er"

// TxWitness is a transaction input's witness stack: a list of byte
// blobs, possibly empty.
type TxWitness [][]byte

func (w TxWitness) serializeSize() int {
	n := CompactSizeLen(uint64(len(w)))
	for _, item := range w {
		n += CompactSizeLen(uint64(len(item))) + len(item)
	}
	return n
}

func (w TxWitness) serialize(s *Serializer) {
	s.WriteCompactSize(uint64(len(w)))
	for _, item := range w {
		s.WriteVarBytes(item)
	}
}

// Serialize writes the witness stack in wire format: a CompactSize
// item count followed by each item as a CompactSize-prefixed blob.
// Exported for callers (e.g. psbt) that build FINAL_SCRIPTWITNESS
// records outside the wire package.
func (w TxWitness) Serialize(s *Serializer) { w.serialize(s) }

func readTxWitness(d *Deserializer) (TxWitness, er.R) {
	return ReadTxWitness(d)
}

// ReadTxWitness parses a witness stack in the format Serialize writes.
func ReadTxWitness(d *Deserializer) (TxWitness, er.R) {
	count, err := d.ReadCompactSize()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	wit := make(TxWitness, count)
	for i := range wit {
		item, err := d.ReadVarBytes()
		if err != nil {
			return nil, err
		}
		wit[i] = item
	}
	return wit, nil
}

// TxIn is one transaction input: the outpoint it spends, its
// scriptSig, sequence number, and (for segwit spends) witness stack.
// A TxIn whose PreviousOutPoint is the coinbase sentinel is a coinbase
// input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
	Witness          TxWitness
}

// NewTxIn returns a new TxIn with sequence defaulted to the maximum
// (final, no relative-locktime meaning).
func NewTxIn(prevOut *OutPoint, signatureScript []byte, witness [][]byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Sequence:         MaxTxInSequenceNum,
		Witness:          witness,
	}
}

// MaxTxInSequenceNum is the default, final sequence number.
const MaxTxInSequenceNum uint32 = 0xffffffff

// IsCoinbase reports whether this input is the coinbase input of its
// transaction.
func (t *TxIn) IsCoinbase() bool { return t.PreviousOutPoint.IsCoinbasePrevOut() }

func (t *TxIn) serializeSizeNoWitness() int {
	return 40 + CompactSizeLen(uint64(len(t.SignatureScript))) + len(t.SignatureScript)
}

func (t *TxIn) serializeNoWitness(s *Serializer) {
	t.PreviousOutPoint.serialize(s)
	s.WriteVarBytes(t.SignatureScript)
	s.WriteUint32LE(t.Sequence)
}

func readTxIn(d *Deserializer) (*TxIn, er.R) {
	ti := &TxIn{}
	op, err := readOutPoint(d)
	if err != nil {
		return nil, err
	}
	ti.PreviousOutPoint = op

	sigScript, err := d.ReadVarBytes()
	if err != nil {
		return nil, err
	}
	ti.SignatureScript = sigScript

	seq, err := d.ReadUint32LE()
	if err != nil {
		return nil, err
	}
	ti.Sequence = seq
	return ti, nil
}

// TxOut is one transaction output: its satoshi value and locking script.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// NewTxOut returns a new TxOut.
func NewTxOut(value int64, pkScript []byte) *TxOut {
	return &TxOut{Value: value, PkScript: pkScript}
}

func (t *TxOut) serializeSize() int {
	return 8 + CompactSizeLen(uint64(len(t.PkScript))) + len(t.PkScript)
}

func (t *TxOut) serialize(s *Serializer) {
	s.WriteInt64LE(t.Value)
	s.WriteVarBytes(t.PkScript)
}

func readTxOut(d *Deserializer) (*TxOut, er.R) {
	value, err := d.ReadInt64LE()
	if err != nil {
		return nil, err
	}
	pkScript, err := d.ReadVarBytes()
	if err != nil {
		return nil, err
	}
	return &TxOut{Value: value, PkScript: pkScript}, nil
}
