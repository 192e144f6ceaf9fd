package bip39_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/pktcore/txcore/bip39"
	"github.com/pktcore/txcore/crypto"

	"github.com/stretchr/testify/require"
)

func TestEntropyToMnemonic_ZeroEntropyVector(t *testing.T) {
	oracle := crypto.Production{}
	entropy := make([]byte, 16)

	words, err := bip39.EntropyToMnemonic(oracle, entropy, "english")
	require.Nil(t, err)
	require.Len(t, words, 12)
	require.Equal(t, strings.Repeat("abandon ", 11)+"about", strings.Join(words, " "))

	seed := bip39.SeedFromMnemonic(oracle, words, "TREZOR", false)
	require.Equal(t,
		"c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
		hex.EncodeToString(seed))
}

func TestMnemonicToEntropy_RoundTrip(t *testing.T) {
	oracle := crypto.Production{}
	tests := [][]byte{
		make([]byte, 16),
		make([]byte, 20),
		make([]byte, 24),
		make([]byte, 28),
		make([]byte, 32),
	}
	for _, entropy := range tests {
		for i := range entropy {
			entropy[i] = byte(i)
		}
		words, err := bip39.EntropyToMnemonic(oracle, entropy, "english")
		require.Nil(t, err)

		got, err := bip39.MnemonicToEntropy(oracle, words, "english")
		require.Nil(t, err)
		require.Equal(t, entropy, got)
		require.True(t, bip39.CheckValidMnemonic(oracle, words, "english"))
	}
}

func TestEntropyToMnemonic_RejectsBadLength(t *testing.T) {
	oracle := crypto.Production{}
	_, err := bip39.EntropyToMnemonic(oracle, make([]byte, 15), "english")
	require.NotNil(t, err)
}

func TestMnemonicToEntropy_RejectsBadChecksum(t *testing.T) {
	oracle := crypto.Production{}
	words := strings.Split(strings.Repeat("abandon ", 11)+"zoo", " ")
	_, err := bip39.MnemonicToEntropy(oracle, words, "english")
	require.NotNil(t, err)
	require.False(t, bip39.CheckValidMnemonic(oracle, words, "english"))
}
