package elements_test

import (
	"bytes"
	"testing"

	"github.com/pktcore/txcore/elements"
	"github.com/pktcore/txcore/txscript/opcode"
	"github.com/pktcore/txcore/txscript/scriptbuilder"

	"github.com/stretchr/testify/require"
)

func compressedPubkey(b byte) []byte {
	pk := make([]byte, 33)
	pk[0] = 0x02
	pk[32] = b
	return pk
}

func buildWatchmanScript(t *testing.T, m, m2 int, delay int64, n, n2 int) []byte {
	b := scriptbuilder.NewScriptBuilder()
	b.AddOp(opcode.OP_DEPTH)
	b.AddInt64(2)
	b.AddOp(opcode.OP_EQUAL)
	b.AddOp(opcode.OP_IF)
	b.AddInt64(int64(m))
	for i := 0; i < n; i++ {
		b.AddData(compressedPubkey(byte(i + 1)))
	}
	b.AddOp(opcode.OP_ELSE)
	b.AddInt64(delay)
	b.AddOp(opcode.OP_CHECKSEQUENCEVERIFY)
	b.AddOp(opcode.OP_DROP)
	b.AddInt64(int64(m2))
	for i := 0; i < n2; i++ {
		b.AddData(compressedPubkey(byte(0x80 + i)))
	}
	b.AddOp(opcode.OP_ENDIF)
	b.AddOp(opcode.OP_CHECKMULTISIG)
	script, err := b.Script()
	require.Nil(t, err)
	return script
}

func TestRecognizeWatchman_MatchesValidTemplate(t *testing.T) {
	script := buildWatchmanScript(t, 2, 3, 4032, 3, 5)

	tmpl, err := elements.RecognizeWatchman(script)
	require.Nil(t, err)
	require.Equal(t, 2, tmpl.M)
	require.Equal(t, 3, tmpl.N)
	require.Equal(t, 3, tmpl.M2)
	require.Equal(t, 5, tmpl.N2)
	require.Equal(t, 4032, tmpl.Delay)
	require.Len(t, tmpl.PreElsePubkeyIndices, 3)
}

func TestRecognizeWatchman_RejectsEqualThresholds(t *testing.T) {
	script := buildWatchmanScript(t, 2, 2, 4032, 3, 5)

	_, err := elements.RecognizeWatchman(script)
	require.NotNil(t, err)
}

func TestRecognizeWatchman_RejectsPlainMultisig(t *testing.T) {
	b := scriptbuilder.NewScriptBuilder()
	b.AddOp(opcode.OP_1)
	b.AddData(compressedPubkey(1))
	b.AddOp(opcode.OP_1)
	b.AddOp(opcode.OP_CHECKMULTISIG)
	script, serr := b.Script()
	require.Nil(t, serr)

	_, err := elements.RecognizeWatchman(script)
	require.NotNil(t, err)
}

func TestRecognizeWatchman_RejectsTruncatedScript(t *testing.T) {
	script := buildWatchmanScript(t, 2, 3, 4032, 3, 5)
	_, err := elements.RecognizeWatchman(script[:len(script)-1])
	require.NotNil(t, err)
	require.False(t, bytes.Equal(script, nil))
}
