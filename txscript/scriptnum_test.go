package txscript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScriptNum_BytesRoundTrip(t *testing.T) {
	values := []ScriptNum{0, 1, -1, 127, -127, 128, -128, 32767, -32767, 1 << 20, -(1 << 20)}
	for _, v := range values {
		encoded := v.Bytes()
		decoded, err := makeScriptNum(encoded, true, 8)
		require.Nil(t, err)
		require.Equal(t, v, decoded)
	}
}

func TestMakeScriptNum_RejectsNonMinimal(t *testing.T) {
	_, err := makeScriptNum([]byte{0x00}, true, 4)
	require.NotNil(t, err)
}

func TestMakeScriptNum_RejectsTooLong(t *testing.T) {
	_, err := makeScriptNum([]byte{1, 2, 3, 4, 5}, true, 4)
	require.NotNil(t, err)
}

func TestScriptNum_Int32Clamps(t *testing.T) {
	require.Equal(t, int32(2147483647), ScriptNum(1<<40).Int32())
	require.Equal(t, int32(-2147483647), ScriptNum(-(1 << 40)).Int32())
	require.Equal(t, int32(5), ScriptNum(5).Int32())
}
