package wire_test

import (
	"testing"

	"github.com/pktcore/txcore/wire"

	"github.com/stretchr/testify/require"
)

func TestCompactSize_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0xfc, 0xfd, 0xffff, 0x10000, 0xffffffff, 0x100000000, ^uint64(0) >> 1}
	for _, v := range values {
		s := wire.NewSerializer(0)
		s.WriteCompactSize(v)
		require.Equal(t, wire.CompactSizeLen(v), len(s.Bytes()))

		d := wire.NewDeserializer(s.Bytes())
		got, err := d.ReadCompactSize()
		require.Nil(t, err)
		require.Equal(t, v, got)
		require.True(t, d.AtEOF())
	}
}

func TestCompactSize_RejectsNonMinimalEncoding(t *testing.T) {
	// 0xfd followed by a 2-byte value that fits in one byte.
	raw := []byte{0xfd, 0x01, 0x00}
	d := wire.NewDeserializer(raw)
	_, err := d.ReadCompactSize()
	require.NotNil(t, err)
}

func TestVarBytes_RoundTrip(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef}
	s := wire.NewSerializer(0)
	s.WriteVarBytes(data)

	d := wire.NewDeserializer(s.Bytes())
	got, err := d.ReadVarBytes()
	require.Nil(t, err)
	require.Equal(t, data, got)
	require.True(t, d.AtEOF())
}
