package wire_test

import (
	"testing"

	"github.com/pktcore/txcore/chainhash"
	"github.com/pktcore/txcore/wire"

	"github.com/stretchr/testify/require"
)

func sighashTestTx() *wire.Transaction {
	tx := wire.NewTransaction(2)
	var prevHash chainhash.Hash
	prevHash[0] = 0x11
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&prevHash, 0), nil, nil))
	tx.AddTxOut(wire.NewTxOut(50000, []byte{0x76, 0xa9, 0x14}))
	return tx
}

func TestCalcSignatureHash_Deterministic(t *testing.T) {
	tx := sighashTestTx()
	scriptCode := []byte{0x76, 0xa9, 0x14}

	a, err := wire.CalcSignatureHash(scriptCode, wire.SigHashAll, tx, 0)
	require.Nil(t, err)
	b, err := wire.CalcSignatureHash(scriptCode, wire.SigHashAll, tx, 0)
	require.Nil(t, err)
	require.Equal(t, a, b)
	require.Len(t, a, 32)
}

func TestCalcSignatureHash_SingleWithNoMatchingOutputIsOne(t *testing.T) {
	tx := sighashTestTx()
	tx.TxIn = append(tx.TxIn, wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{}, 1), nil, nil))

	digest, err := wire.CalcSignatureHash([]byte{}, wire.SigHashSingle, tx, 1)
	require.Nil(t, err)

	want := make([]byte, 32)
	want[0] = 0x01
	require.Equal(t, want, digest)
}

func TestCalcSignatureHash_RejectsBadIndex(t *testing.T) {
	tx := sighashTestTx()
	_, err := wire.CalcSignatureHash([]byte{}, wire.SigHashAll, tx, 5)
	require.NotNil(t, err)
}

func TestCalcSignatureHash_HashTypeAffectsDigest(t *testing.T) {
	tx := sighashTestTx()
	scriptCode := []byte{0x76, 0xa9, 0x14}

	all, err := wire.CalcSignatureHash(scriptCode, wire.SigHashAll, tx, 0)
	require.Nil(t, err)
	none, err := wire.CalcSignatureHash(scriptCode, wire.SigHashNone, tx, 0)
	require.Nil(t, err)
	require.NotEqual(t, all, none)
}

func TestCalcWitnessSignatureHash_Deterministic(t *testing.T) {
	tx := sighashTestTx()
	sigHashes := wire.NewTxSigHashes(tx)
	scriptCode := []byte{0x76, 0xa9, 0x14}

	a, err := wire.CalcWitnessSignatureHash(scriptCode, sigHashes, wire.SigHashAll, tx, 0, 60000)
	require.Nil(t, err)
	b, err := wire.CalcWitnessSignatureHash(scriptCode, sigHashes, wire.SigHashAll, tx, 0, 60000)
	require.Nil(t, err)
	require.Equal(t, a, b)
	require.Len(t, a, 32)
}

func TestCalcWitnessSignatureHash_AmountAffectsDigest(t *testing.T) {
	tx := sighashTestTx()
	sigHashes := wire.NewTxSigHashes(tx)
	scriptCode := []byte{0x76, 0xa9, 0x14}

	a, err := wire.CalcWitnessSignatureHash(scriptCode, sigHashes, wire.SigHashAll, tx, 0, 60000)
	require.Nil(t, err)
	b, err := wire.CalcWitnessSignatureHash(scriptCode, sigHashes, wire.SigHashAll, tx, 0, 70000)
	require.Nil(t, err)
	require.NotEqual(t, a, b)
}

func TestCalcTaprootSignatureHash_RejectsBadHashType(t *testing.T) {
	tx := sighashTestTx()
	prevOuts := []*wire.TxOut{wire.NewTxOut(60000, []byte{0x51})}

	_, err := wire.CalcTaprootSignatureHash(tx, prevOuts, 0, wire.TaprootSigParams{HashType: 0x04})
	require.NotNil(t, err)
}

func TestCalcTaprootSignatureHash_RejectsMismatchedPrevOutCount(t *testing.T) {
	tx := sighashTestTx()
	_, err := wire.CalcTaprootSignatureHash(tx, nil, 0, wire.TaprootSigParams{HashType: 0x00})
	require.NotNil(t, err)
}

func TestCalcTaprootSignatureHash_DeterministicAndLength(t *testing.T) {
	tx := sighashTestTx()
	prevOuts := []*wire.TxOut{wire.NewTxOut(60000, []byte{0x51})}

	a, err := wire.CalcTaprootSignatureHash(tx, prevOuts, 0, wire.TaprootSigParams{HashType: 0x00})
	require.Nil(t, err)
	b, err := wire.CalcTaprootSignatureHash(tx, prevOuts, 0, wire.TaprootSigParams{HashType: 0x00})
	require.Nil(t, err)
	require.Equal(t, a, b)
	require.Len(t, a, 32)
}

func TestCalcTaprootSignatureHash_AnyoneCanPayDiffersFromDefault(t *testing.T) {
	tx := sighashTestTx()
	prevOuts := []*wire.TxOut{wire.NewTxOut(60000, []byte{0x51})}

	def, err := wire.CalcTaprootSignatureHash(tx, prevOuts, 0, wire.TaprootSigParams{HashType: 0x00})
	require.Nil(t, err)
	acp, err := wire.CalcTaprootSignatureHash(tx, prevOuts, 0, wire.TaprootSigParams{HashType: 0x81})
	require.Nil(t, err)
	require.NotEqual(t, def, acp)
}

func TestCalcTaprootSignatureHash_RejectsBadAnnexPrefix(t *testing.T) {
	tx := sighashTestTx()
	prevOuts := []*wire.TxOut{wire.NewTxOut(60000, []byte{0x51})}

	_, err := wire.CalcTaprootSignatureHash(tx, prevOuts, 0, wire.TaprootSigParams{
		HashType: 0x00,
		Annex:    []byte{0x51, 0x02},
	})
	require.NotNil(t, err)
}
