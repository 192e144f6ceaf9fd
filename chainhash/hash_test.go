package chainhash_test

import (
	"crypto/sha256"
	"testing"

	"github.com/pktcore/txcore/chainhash"

	"github.com/stretchr/testify/require"
)

func TestHash_StringRoundTrip(t *testing.T) {
	h := chainhash.DoubleHashH([]byte("hello"))
	reparsed, err := chainhash.NewHashFromStr(h.String())
	require.Nil(t, err)
	require.Equal(t, h, *reparsed)
}

func TestHash_IsZero(t *testing.T) {
	var h chainhash.Hash
	require.True(t, h.IsZero())
	h[0] = 1
	require.False(t, h.IsZero())
}

func TestDoubleHashH_MatchesManualSha256d(t *testing.T) {
	data := []byte("txcore")
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	require.Equal(t, chainhash.Hash(second), chainhash.DoubleHashH(data))
}

func TestTaggedHash_DiffersByTag(t *testing.T) {
	msg := []byte("message")
	a := chainhash.TaggedHash("TapSighash", msg)
	b := chainhash.TaggedHash("TapLeaf", msg)
	require.NotEqual(t, a, b)
}

func TestTaggedHash_Deterministic(t *testing.T) {
	a := chainhash.TaggedHash("TapTweak", []byte("x"), []byte("y"))
	b := chainhash.TaggedHash("TapTweak", []byte("x"), []byte("y"))
	require.Equal(t, a, b)
}

func TestHash160B_LengthAndRoundTrip(t *testing.T) {
	h := chainhash.Hash160B([]byte("pubkey bytes"))
	reparsed, err := chainhash.NewHash160FromStr(h.String())
	require.Nil(t, err)
	require.Equal(t, h, *reparsed)
}

func TestByteBlob_HexAndEqual(t *testing.T) {
	b, err := chainhash.NewByteBlobFromHex("deadbeef")
	require.Nil(t, err)
	require.Equal(t, "deadbeef", b.Hex())

	other, err := chainhash.NewByteBlobFromHex("deadbeef")
	require.Nil(t, err)
	require.True(t, b.Equal(other))

	concat := b.Concat(chainhash.ByteBlob{0x01})
	require.Equal(t, "deadbeef01", concat.Hex())
}

func TestByteBlob_RejectsOddLength(t *testing.T) {
	_, err := chainhash.NewByteBlobFromHex("abc")
	require.NotNil(t, err)
}
