package key_test

import (
	"testing"

	"github.com/pktcore/txcore/crypto"
	"github.com/pktcore/txcore/key"

	"github.com/stretchr/testify/require"
)

func TestPrivkey_WIFRoundTrip(t *testing.T) {
	oracle := crypto.Production{}
	raw := make([]byte, 32)
	raw[31] = 0x07

	priv, err := key.NewPrivkey(oracle, raw, true)
	require.Nil(t, err)

	wif := priv.ToWIF(oracle, key.Mainnet)
	reparsed, network, perr := key.PrivkeyFromWIF(oracle, wif)
	require.Nil(t, perr)
	require.Equal(t, key.Mainnet, network)
	require.Equal(t, raw, reparsed.Bytes())
	require.True(t, reparsed.IsCompressed())
}

func TestPrivkey_RejectsZeroScalar(t *testing.T) {
	oracle := crypto.Production{}
	raw := make([]byte, 32)
	_, err := key.NewPrivkey(oracle, raw, true)
	require.NotNil(t, err)
}

func TestPrivkey_RejectsBadLength(t *testing.T) {
	oracle := crypto.Production{}
	_, err := key.NewPrivkey(oracle, make([]byte, 31), true)
	require.NotNil(t, err)
}

func TestPubkey_DerivedFromPrivkeyIsValidAndCompressed(t *testing.T) {
	oracle := crypto.Production{}
	raw := make([]byte, 32)
	raw[31] = 0x01

	priv, err := key.NewPrivkey(oracle, raw, true)
	require.Nil(t, err)

	pub, perr := priv.Pubkey(oracle)
	require.Nil(t, perr)
	require.True(t, pub.IsValid())
	require.True(t, pub.IsCompressed())
	require.Len(t, pub.Bytes(), 33)
}

func TestPubkey_RejectsBadEncoding(t *testing.T) {
	oracle := crypto.Production{}
	_, err := key.NewPubkey(oracle, make([]byte, 32))
	require.NotNil(t, err)
}

func TestSchnorrPubkey_DerivedFromPrivkey(t *testing.T) {
	oracle := crypto.Production{}
	raw := make([]byte, 32)
	raw[31] = 0x02

	priv, err := key.NewPrivkey(oracle, raw, true)
	require.Nil(t, err)

	xonly, serr := priv.SchnorrPubkey(oracle)
	require.Nil(t, serr)
	require.Len(t, xonly.Bytes(), 32)
}

func TestPubkey_Combine(t *testing.T) {
	oracle := crypto.Production{}
	raw1 := make([]byte, 32)
	raw1[31] = 0x01
	raw2 := make([]byte, 32)
	raw2[31] = 0x02

	priv1, err := key.NewPrivkey(oracle, raw1, true)
	require.Nil(t, err)
	priv2, err := key.NewPrivkey(oracle, raw2, true)
	require.Nil(t, err)

	pub1, err := priv1.Pubkey(oracle)
	require.Nil(t, err)
	pub2, err := priv2.Pubkey(oracle)
	require.Nil(t, err)

	rawSum := make([]byte, 32)
	rawSum[31] = 0x03
	privSum, err := key.NewPrivkey(oracle, rawSum, true)
	require.Nil(t, err)
	pubSum, err := privSum.Pubkey(oracle)
	require.Nil(t, err)

	combined, cerr := key.Combine(oracle, pub1, pub2)
	require.Nil(t, cerr)
	require.Equal(t, pubSum.Bytes(), combined.Bytes())
}
