package elements_test

import (
	"encoding/hex"
	"testing"

	"github.com/pktcore/txcore/crypto"
	"github.com/pktcore/txcore/elements"

	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestContractTweak_Vector(t *testing.T) {
	oracle := crypto.Production{}

	claimScript := mustHex(t, "0014fd1cd5452a43ca210ba7153d64227dc32acf6dbb")
	fedpegScript := mustHex(t, "512103198de2cfbd1cc09a15ce0eb8e23150243887e13c205a72ddbcf0ab1be529e79751ae")

	got, err := elements.ContractTweak(oracle, fedpegScript, claimScript)
	require.Nil(t, err)
	require.Equal(t,
		"512102e822fbeefbfdc55f3577a5e78ad297a4bcbc1066c42c48561a4e2bd40b18248751ae",
		hex.EncodeToString(got))
}
