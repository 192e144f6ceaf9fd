package psbt_test

import (
	"testing"

	"github.com/pktcore/txcore/chainhash"
	"github.com/pktcore/txcore/crypto"
	"github.com/pktcore/txcore/key"
	"github.com/pktcore/txcore/psbt"
	"github.com/pktcore/txcore/txscript"
	"github.com/pktcore/txcore/wire"

	"github.com/stretchr/testify/require"
)

func TestPsbt_SignFinalizeExtract_P2WPKH(t *testing.T) {
	oracle := crypto.Production{}

	rawPriv := make([]byte, 32)
	rawPriv[31] = 0x01
	priv, err := key.NewPrivkey(oracle, rawPriv, true)
	require.Nil(t, err)
	pub, err := priv.Pubkey(oracle)
	require.Nil(t, err)

	pubkeyHash := oracle.Hash160(pub.Bytes())
	witnessScript, serr := txscript.PayToWitnessPubKeyHashScript(pubkeyHash[:])
	require.Nil(t, serr)

	var prevHash chainhash.Hash
	prevHash[0] = 0x42

	tx := wire.NewTransaction(2)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&prevHash, 0), nil, nil))
	destScript, derr := txscript.PayToWitnessPubKeyHashScript(pubkeyHash[:])
	require.Nil(t, derr)
	tx.AddTxOut(wire.NewTxOut(90000, destScript))

	p, err := psbt.New(tx)
	require.Nil(t, err)

	err = p.SetTxInUtxo(oracle, 0, nil, wire.NewTxOut(100000, witnessScript), psbt.UtxoTemplateArgs{
		Keys: []psbt.Bip32Origin{{Pubkey: pub.Bytes(), Path: []uint32{0}}},
	})
	require.Nil(t, err)

	err = p.Sign(oracle, priv, false)
	require.Nil(t, err)

	sigs := p.PartialSigs(0)
	require.Len(t, sigs, 1)

	res, err := p.Finalize(oracle)
	require.Nil(t, err)
	require.True(t, res.Finalized[0])
	require.True(t, p.IsFinalized(0))

	final, err := p.Extract()
	require.Nil(t, err)
	require.Len(t, final.TxIn[0].Witness, 2)

	raw := p.Serialize()
	reparsed, err := psbt.Parse(raw)
	require.Nil(t, err)
	require.True(t, reparsed.IsFinalized(0))
}

func TestPsbt_Join_DisjointInputs(t *testing.T) {
	txA := wire.NewTransaction(2)
	var hashA chainhash.Hash
	hashA[0] = 0x01
	txA.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&hashA, 0), nil, nil))
	txA.AddTxOut(wire.NewTxOut(1000, []byte{0x51}))
	a, err := psbt.New(txA)
	require.Nil(t, err)

	txB := wire.NewTransaction(2)
	var hashB chainhash.Hash
	hashB[0] = 0x02
	txB.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&hashB, 0), nil, nil))
	txB.AddTxOut(wire.NewTxOut(2000, []byte{0x52}))
	b, err := psbt.New(txB)
	require.Nil(t, err)

	err = a.Join(b, false)
	require.Nil(t, err)
	require.Len(t, a.Tx.TxIn, 2)
	require.Len(t, a.Tx.TxOut, 2)
}

func TestPsbt_Combine_MergesDisjointFields(t *testing.T) {
	tx := wire.NewTransaction(2)
	var h chainhash.Hash
	h[0] = 0x09
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&h, 0), nil, nil))
	tx.AddTxOut(wire.NewTxOut(1000, []byte{0x51}))

	a, err := psbt.New(tx)
	require.Nil(t, err)
	b, err := psbt.New(tx)
	require.Nil(t, err)

	witnessScript := []byte{0x51, 0x52, 0xae}
	b.SetWitnessScript(0, witnessScript)

	_, hasBefore := a.WitnessScript(0)
	require.False(t, hasBefore)

	err = a.Combine(b)
	require.Nil(t, err)

	got, has := a.WitnessScript(0)
	require.True(t, has)
	require.Equal(t, witnessScript, got)
}

func TestPsbt_Combine_RejectsMismatchedTransaction(t *testing.T) {
	txA := wire.NewTransaction(2)
	var hA chainhash.Hash
	hA[0] = 0x01
	txA.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&hA, 0), nil, nil))
	txA.AddTxOut(wire.NewTxOut(1000, []byte{0x51}))
	a, err := psbt.New(txA)
	require.Nil(t, err)

	txB := wire.NewTransaction(2)
	var hB chainhash.Hash
	hB[0] = 0x02
	txB.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&hB, 0), nil, nil))
	txB.AddTxOut(wire.NewTxOut(2000, []byte{0x52}))
	b, err := psbt.New(txB)
	require.Nil(t, err)

	err = a.Combine(b)
	require.NotNil(t, err)
}

func TestPsbt_Parse_RejectsBadMagic(t *testing.T) {
	_, err := psbt.Parse([]byte{0x00, 0x01, 0x02})
	require.NotNil(t, err)
}

func TestPsbt_Parse_RejectsDirtyUnsignedTx(t *testing.T) {
	tx := wire.NewTransaction(2)
	var h chainhash.Hash
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&h, 0), []byte{0x51}, nil))
	_, err := psbt.New(tx)
	require.NotNil(t, err)
}
