package wire

import (
	"crypto/sha256"

	"github.com/pktcore/txcore/chainhash"
	"github.com/pktcore/txcore/er"
	"github.com/pktcore/txcore/txscript"
	"github.com/pktcore/txcore/txscript/opcode"
)

// SigHashType is the one-byte (stored in a uint32) signature hash type
// appended to a legacy or BIP143 sighash preimage.
type SigHashType uint32

const (
	SigHashOld          SigHashType = 0x0
	SigHashAll          SigHashType = 0x1
	SigHashNone         SigHashType = 0x2
	SigHashSingle       SigHashType = 0x3
	SigHashAnyOneCanPay SigHashType = 0x80

	SigHashMask = 0x1f
)

var errBadInputIndex = er.InvalidArgumentType.CodeWithDetail("BadInputIndex",
	"input index is out of range for this transaction").Default()

// shallowCopy returns a copy of tx cheap enough to mutate per-input
// when building a legacy sighash preimage, without deep-copying script
// and witness backing arrays that won't be touched.
func (tx *Transaction) shallowCopy() *Transaction {
	cp := &Transaction{
		Version:  tx.Version,
		LockTime: tx.LockTime,
		TxIn:     make([]*TxIn, len(tx.TxIn)),
		TxOut:    make([]*TxOut, len(tx.TxOut)),
	}
	ins := make([]TxIn, len(tx.TxIn))
	for i, ti := range tx.TxIn {
		ins[i] = *ti
		cp.TxIn[i] = &ins[i]
	}
	outs := make([]TxOut, len(tx.TxOut))
	for i, to := range tx.TxOut {
		outs[i] = *to
		cp.TxOut[i] = &outs[i]
	}
	return cp
}

// CalcSignatureHash computes the legacy (pre-BIP143) sighash digest for
// input idx of tx, signing over subScript (the scriptCode, with every
// OP_CODESEPARATOR already expected to be present — it is stripped
// here) under hashType.
//
// A SigHashSingle request for an index with no corresponding output is
// the well-known "sighash of one" quirk: it has been part of consensus
// since the reference client's original implementation and must be
// preserved bit-for-bit.
func CalcSignatureHash(subScript []byte, hashType SigHashType, tx *Transaction, idx int) ([]byte, er.R) {
	if idx < 0 || idx >= len(tx.TxIn) {
		return nil, errBadInputIndex
	}

	if hashType&SigHashMask == SigHashSingle && idx >= len(tx.TxOut) {
		var hash chainhash.Hash
		hash[0] = 0x01
		return hash[:], nil
	}

	stripped, err := txscript.RemoveOpcode(subScript, opcode.OP_CODESEPARATOR)
	if err != nil {
		return nil, err
	}

	txCopy := tx.shallowCopy()
	for i := range txCopy.TxIn {
		if i == idx {
			txCopy.TxIn[i].SignatureScript = stripped
		} else {
			txCopy.TxIn[i].SignatureScript = nil
		}
	}

	switch hashType & SigHashMask {
	case SigHashNone:
		txCopy.TxOut = txCopy.TxOut[0:0]
		for i := range txCopy.TxIn {
			if i != idx {
				txCopy.TxIn[i].Sequence = 0
			}
		}
	case SigHashSingle:
		txCopy.TxOut = txCopy.TxOut[:idx+1]
		for i := 0; i < idx; i++ {
			txCopy.TxOut[i].Value = -1
			txCopy.TxOut[i].PkScript = nil
		}
		for i := range txCopy.TxIn {
			if i != idx {
				txCopy.TxIn[i].Sequence = 0
			}
		}
	default:
		// SigHashOld and SigHashAll, and any undefined hash type, are
		// all treated as SigHashAll for hashing purposes.
	}

	if hashType&SigHashAnyOneCanPay != 0 {
		txCopy.TxIn = []*TxIn{txCopy.TxIn[idx]}
	}

	s := NewSerializer(txCopy.SerializeSizeStripped() + 4)
	s.WriteUint32LE(uint32(txCopy.Version))
	s.WriteCompactSize(uint64(len(txCopy.TxIn)))
	for _, ti := range txCopy.TxIn {
		ti.serializeNoWitness(s)
	}
	s.WriteCompactSize(uint64(len(txCopy.TxOut)))
	for _, to := range txCopy.TxOut {
		to.serialize(s)
	}
	s.WriteUint32LE(txCopy.LockTime)
	s.WriteUint32LE(uint32(hashType))

	digest := chainhash.DoubleHashH(s.Bytes())
	return digest[:], nil
}

// TxSigHashes caches the three transaction-wide hashes a BIP143 digest
// reuses across every input, so signing N segwit inputs costs O(N)
// hashing instead of O(N²).
type TxSigHashes struct {
	HashPrevOuts chainhash.Hash
	HashSequence chainhash.Hash
	HashOutputs  chainhash.Hash
}

// NewTxSigHashes precomputes the BIP143 hash cache for tx.
func NewTxSigHashes(tx *Transaction) *TxSigHashes {
	prevOuts := NewSerializer(36 * len(tx.TxIn))
	sequences := NewSerializer(4 * len(tx.TxIn))
	for _, ti := range tx.TxIn {
		prevOuts.WriteBytes(ti.PreviousOutPoint.Hash[:])
		prevOuts.WriteUint32LE(ti.PreviousOutPoint.Index)
		sequences.WriteUint32LE(ti.Sequence)
	}
	outputs := NewSerializer(0)
	for _, to := range tx.TxOut {
		to.serialize(outputs)
	}
	return &TxSigHashes{
		HashPrevOuts: chainhash.DoubleHashH(prevOuts.Bytes()),
		HashSequence: chainhash.DoubleHashH(sequences.Bytes()),
		HashOutputs:  chainhash.DoubleHashH(outputs.Bytes()),
	}
}

// CalcWitnessSignatureHash computes the BIP143 SegWit v0 sighash
// digest for input idx, given its scriptCode (subScript), the input's
// spent value amt, and the precomputed sigHashes cache.
func CalcWitnessSignatureHash(subScript []byte, sigHashes *TxSigHashes, hashType SigHashType,
	tx *Transaction, idx int, amt int64) ([]byte, er.R) {

	if idx < 0 || idx >= len(tx.TxIn) {
		return nil, errBadInputIndex
	}
	txIn := tx.TxIn[idx]

	s := NewSerializer(0)
	s.WriteUint32LE(uint32(tx.Version))

	var zero chainhash.Hash
	if hashType&SigHashAnyOneCanPay == 0 {
		s.WriteBytes(sigHashes.HashPrevOuts[:])
	} else {
		s.WriteBytes(zero[:])
	}

	if hashType&SigHashAnyOneCanPay == 0 &&
		hashType&SigHashMask != SigHashSingle &&
		hashType&SigHashMask != SigHashNone {
		s.WriteBytes(sigHashes.HashSequence[:])
	} else {
		s.WriteBytes(zero[:])
	}

	s.WriteBytes(txIn.PreviousOutPoint.Hash[:])
	s.WriteUint32LE(txIn.PreviousOutPoint.Index)
	s.WriteVarBytes(subScript)
	s.WriteInt64LE(amt)
	s.WriteUint32LE(txIn.Sequence)

	if hashType&SigHashMask != SigHashSingle && hashType&SigHashMask != SigHashNone {
		s.WriteBytes(sigHashes.HashOutputs[:])
	} else if hashType&SigHashMask == SigHashSingle && idx < len(tx.TxOut) {
		out := NewSerializer(0)
		tx.TxOut[idx].serialize(out)
		h := chainhash.DoubleHashH(out.Bytes())
		s.WriteBytes(h[:])
	} else {
		s.WriteBytes(zero[:])
	}

	s.WriteUint32LE(tx.LockTime)
	s.WriteUint32LE(uint32(hashType))

	digest := chainhash.DoubleHashH(s.Bytes())
	return digest[:], nil
}

// PrevOutputFetcher resolves the output being spent by each input of a
// transaction, as required to compute a Taproot sighash (every
// scriptPubKey and amount must be known, not just the one being
// spent).
type PrevOutputFetcher interface {
	FetchPrevOutput(op OutPoint) (*TxOut, er.R)
}

// TaprootSigParams carries the inputs to CalcTaprootSignatureHash that
// aren't derivable from the transaction alone: the hash type, the
// optional annex, and (for a tapscript-path spend) the leaf hash and
// code-separator position.
type TaprootSigParams struct {
	HashType SigHashType
	Annex    []byte

	// TapLeafHash and CodeSepPos are only used when Tapscript is true
	// (an ext_flag == 1, script-path spend).
	Tapscript  bool
	TapLeafHash chainhash.Hash
	CodeSepPos  uint32
}

var validTaprootHashTypes = map[SigHashType]bool{
	0x00: true, 0x01: true, 0x02: true, 0x03: true,
	0x81: true, 0x82: true, 0x83: true,
}

var errBadTaprootHashType = er.InvalidArgumentType.CodeWithDetail("BadTaprootHashType",
	"sighash type is not a member of the valid BIP341 set").Default()

// CalcTaprootSignatureHash computes the BIP341 Taproot sighash digest
// for input idx of tx, given every input's spent output (prevOuts,
// indexed in input order) and the spend parameters in p.
func CalcTaprootSignatureHash(tx *Transaction, prevOuts []*TxOut, idx int, p TaprootSigParams) ([]byte, er.R) {
	if idx < 0 || idx >= len(tx.TxIn) {
		return nil, errBadInputIndex
	}
	if len(prevOuts) != len(tx.TxIn) {
		return nil, er.InvalidArgumentType.CodeWithDetail("BadPrevOutCount",
			"one spent output must be supplied per transaction input").Default()
	}
	if !validTaprootHashTypes[p.HashType] {
		return nil, errBadTaprootHashType
	}

	extFlag := 0
	if p.Tapscript {
		extFlag = 1
	}
	annexPresent := len(p.Annex) > 0
	spendType := byte((extFlag << 1) | boolToInt(annexPresent))

	sigMsgType := p.HashType & 0x03
	anyoneCanPay := p.HashType&SigHashAnyOneCanPay != 0

	h := sha256.New()
	tagHash := chainhash.HashH([]byte("TapSighash"))
	h.Write(tagHash[:])
	h.Write(tagHash[:])
	h.Write([]byte{0x00}) // epoch
	h.Write([]byte{byte(p.HashType)})
	writeU32LE(h, uint32(tx.Version))
	writeU32LE(h, tx.LockTime)

	if !anyoneCanPay {
		shaPrevouts := sha256.New()
		shaAmounts := sha256.New()
		shaScriptPubKeys := sha256.New()
		shaSequences := sha256.New()
		for i, ti := range tx.TxIn {
			shaPrevouts.Write(ti.PreviousOutPoint.Hash[:])
			var idxBuf [4]byte
			putU32LE(idxBuf[:], ti.PreviousOutPoint.Index)
			shaPrevouts.Write(idxBuf[:])

			var amtBuf [8]byte
			putU64LE(amtBuf[:], uint64(prevOuts[i].Value))
			shaAmounts.Write(amtBuf[:])

			s := NewSerializer(0)
			s.WriteVarBytes(prevOuts[i].PkScript)
			shaScriptPubKeys.Write(s.Bytes())

			var seqBuf [4]byte
			putU32LE(seqBuf[:], ti.Sequence)
			shaSequences.Write(seqBuf[:])
		}
		h.Write(shaPrevouts.Sum(nil))
		h.Write(shaAmounts.Sum(nil))
		h.Write(shaScriptPubKeys.Sum(nil))
		h.Write(shaSequences.Sum(nil))
	}

	if sigMsgType == 0x00 || sigMsgType == 0x01 {
		shaOutputs := sha256.New()
		for _, to := range tx.TxOut {
			s := NewSerializer(0)
			to.serialize(s)
			shaOutputs.Write(s.Bytes())
		}
		h.Write(shaOutputs.Sum(nil))
	}

	h.Write([]byte{spendType})

	if anyoneCanPay {
		ti := tx.TxIn[idx]
		h.Write(ti.PreviousOutPoint.Hash[:])
		var idxBuf [4]byte
		putU32LE(idxBuf[:], ti.PreviousOutPoint.Index)
		h.Write(idxBuf[:])
		var amtBuf [8]byte
		putU64LE(amtBuf[:], uint64(prevOuts[idx].Value))
		h.Write(amtBuf[:])
		s := NewSerializer(0)
		s.WriteVarBytes(prevOuts[idx].PkScript)
		h.Write(s.Bytes())
		var seqBuf [4]byte
		putU32LE(seqBuf[:], ti.Sequence)
		h.Write(seqBuf[:])
	} else {
		writeU32LE(h, uint32(idx))
	}

	if annexPresent {
		if len(p.Annex) == 0 || p.Annex[0] != 0x50 {
			return nil, er.InvalidArgumentType.CodeWithDetail("BadAnnexPrefix",
				"annex must begin with the 0x50 prefix byte").Default()
		}
		s := NewSerializer(0)
		s.WriteVarBytes(p.Annex)
		annexHash := sha256.Sum256(s.Bytes())
		h.Write(annexHash[:])
	}

	if sigMsgType == 0x03 {
		if idx >= len(tx.TxOut) {
			return nil, er.InvalidArgumentType.CodeWithDetail("BadSingleIndex",
				"SIGHASH_SINGLE has no corresponding output for this input index").Default()
		}
		s := NewSerializer(0)
		tx.TxOut[idx].serialize(s)
		outHash := sha256.Sum256(s.Bytes())
		h.Write(outHash[:])
	}

	if p.Tapscript {
		h.Write(p.TapLeafHash[:])
		h.Write([]byte{0x00}) // key_version
		writeU32LE(h, p.CodeSepPos)
	}

	return h.Sum(nil), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func putU32LE(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func putU64LE(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

func writeU32LE(h interface{ Write([]byte) (int, error) }, v uint32) {
	var b [4]byte
	putU32LE(b[:], v)
	h.Write(b[:])
}
