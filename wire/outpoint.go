package wire

import (
	"github.com/pktcore/txcore/chainhash"
	"github.com/pktcore/txcore/er"
)

// OutPoint identifies a specific output of a specific transaction.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new OutPoint referencing the given tx hash and
// output index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{Hash: *hash, Index: index}
}

// IsCoinbasePrevOut reports whether this outpoint is the sentinel
// previous-outpoint a coinbase input carries: all-zero hash and index
// 0xFFFFFFFF.
func (o OutPoint) IsCoinbasePrevOut() bool {
	return o.Index == 0xffffffff && o.Hash.IsZero()
}

func (o *OutPoint) serialize(s *Serializer) {
	s.WriteBytes(o.Hash[:])
	s.WriteUint32LE(o.Index)
}

func readOutPoint(d *Deserializer) (OutPoint, er.R) {
	var o OutPoint
	hashBytes, err := d.ReadBytes(chainhash.HashSize)
	if err != nil {
		return o, err
	}
	copy(o.Hash[:], hashBytes)
	idx, err := d.ReadUint32LE()
	if err != nil {
		return o, err
	}
	o.Index = idx
	return o, nil
}
