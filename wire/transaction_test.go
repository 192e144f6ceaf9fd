package wire_test

import (
	"testing"

	"github.com/pktcore/txcore/chainhash"
	"github.com/pktcore/txcore/wire"

	"github.com/stretchr/testify/require"
)

func legacyTx() *wire.Transaction {
	tx := wire.NewTransaction(1)
	var prevHash chainhash.Hash
	prevHash[0] = 0xaa
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&prevHash, 0), []byte{0x51}, nil))
	tx.AddTxOut(wire.NewTxOut(100000, []byte{0x76, 0xa9, 0x14}))
	return tx
}

func witnessTx() *wire.Transaction {
	tx := legacyTx()
	tx.TxIn[0].Witness = wire.TxWitness{{0x01, 0x02}, {0x03}}
	return tx
}

func TestTransaction_SerializeDeserializeRoundTrip(t *testing.T) {
	for _, tx := range []*wire.Transaction{legacyTx(), witnessTx()} {
		raw := tx.Serialize()
		got, err := wire.DeserializeTransaction(raw)
		require.Nil(t, err)
		require.Equal(t, tx.TxHash(), got.TxHash())
		require.Equal(t, tx.WTxHash(), got.WTxHash())
		require.Equal(t, raw, got.Serialize())
	}
}

func TestTransaction_EmptyTransactionRoundTrip(t *testing.T) {
	tx := wire.NewTransaction(2)
	raw := tx.Serialize()
	got, err := wire.DeserializeTransaction(raw)
	require.Nil(t, err)
	require.Len(t, got.TxIn, 0)
	require.Len(t, got.TxOut, 0)
}

func TestTransaction_ZeroInputManyOutputsRoundTrip(t *testing.T) {
	tx := wire.NewTransaction(2)
	tx.AddTxOut(wire.NewTxOut(1, []byte{0x51}))
	tx.AddTxOut(wire.NewTxOut(2, []byte{0x52}))
	raw := tx.Serialize()

	got, err := wire.DeserializeTransaction(raw)
	require.Nil(t, err)
	require.Len(t, got.TxIn, 0)
	require.Len(t, got.TxOut, 2)
	require.Equal(t, int64(1), got.TxOut[0].Value)
	require.Equal(t, int64(2), got.TxOut[1].Value)
}

func TestTransaction_WeightAndVSize(t *testing.T) {
	legacy := legacyTx()
	require.Equal(t, legacy.SerializeSizeStripped()*4, legacy.Weight())

	wit := witnessTx()
	strippedWeight := wit.SerializeSizeStripped() * 3
	require.Equal(t, strippedWeight+wit.SerializeSize(), wit.Weight())
	require.Equal(t, (wit.Weight()+3)/4, wit.VSize())
}

func TestTransaction_CoinbaseDetection(t *testing.T) {
	tx := wire.NewTransaction(1)
	var zero chainhash.Hash
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&zero, 0xffffffff), []byte{0x00}, nil))
	require.True(t, tx.IsCoinbase())

	require.False(t, legacyTx().IsCoinbase())
}
