package bip32_test

import (
	"encoding/hex"
	"testing"

	"github.com/pktcore/txcore/bip32"
	"github.com/pktcore/txcore/crypto"

	"github.com/stretchr/testify/require"
)

func TestNewMasterExtPrivkey_Vector(t *testing.T) {
	oracle := crypto.Production{}
	seed, err := hex.DecodeString("012345678913579246801472583690FF")
	require.NoError(t, err)

	master, derr := bip32.NewMasterExtPrivkey(oracle, seed, bip32.Mainnet)
	require.Nil(t, derr)

	require.Equal(t,
		"xprv9s21ZrQH143K4SS9fUBooJcNan78y4SxCHjma2238tm8pGourqqBZh6pDJHEkksojBRQU4m4kgB1n1dK98tKHKPjxnLyLCUNRK7RgyqDZj7",
		master.ToBase58(oracle))
}

func TestExtPrivkey_DerivePath_Vector(t *testing.T) {
	oracle := crypto.Production{}
	parent, perr := bip32.ExtPrivkeyFromBase58(oracle,
		"xprv9zt1onyw8BdEf7SQ6wUVH3bQQdGD9iy9QzXveQQRhX7i5iUN7jZgLbqFEe491LfjozztYa6bJAGZ65GmDCNcbjMdjZcgmdisPJwVjcfcDhV")
	require.Nil(t, perr)

	path, err := bip32.ParsePath("0/44")
	require.Nil(t, err)

	child, derr := parent.DerivePath(oracle, path)
	require.Nil(t, derr)

	require.Equal(t,
		"xprvA5P4YtgFjzqM4QpXJZ8Zr7Wkhng7ugTybA3KWMAqDfAamqu5nqJ3zKRhB29cxuqCc8hPagZcN5BsuoXx4Xn7iYHnQvEdyMwZRFgoJXs8CDN",
		child.ToBase58(oracle))
}

func TestExtPrivkey_SerializeRoundTrip(t *testing.T) {
	oracle := crypto.Production{}
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	master, merr := bip32.NewMasterExtPrivkey(oracle, seed, bip32.Mainnet)
	require.Nil(t, merr)

	reparsed, rerr := bip32.ExtPrivkeyFromBytes(oracle, master.Bytes())
	require.Nil(t, rerr)
	require.Equal(t, master.Bytes(), reparsed.Bytes())
}

func TestExtPubkey_DerivePath_MatchesPrivateDerivation(t *testing.T) {
	oracle := crypto.Production{}
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	master, merr := bip32.NewMasterExtPrivkey(oracle, seed, bip32.Mainnet)
	require.Nil(t, merr)

	path := []uint32{0, 1, 2}
	childPriv, derr := master.DerivePath(oracle, path)
	require.Nil(t, derr)
	childPubFromPriv, perr := childPriv.ToExtPubkey(oracle)
	require.Nil(t, perr)

	masterPub, mperr := master.ToExtPubkey(oracle)
	require.Nil(t, mperr)
	childPubFromPub, cperr := masterPub.DerivePath(oracle, path)
	require.Nil(t, cperr)

	require.Equal(t, childPubFromPriv.Bytes(), childPubFromPub.Bytes())
}

func TestExtPubkey_Derive_RejectsHardened(t *testing.T) {
	oracle := crypto.Production{}
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	master, merr := bip32.NewMasterExtPrivkey(oracle, seed, bip32.Mainnet)
	require.Nil(t, merr)
	masterPub, mperr := master.ToExtPubkey(oracle)
	require.Nil(t, mperr)

	_, derr := masterPub.Derive(oracle, bip32.HardenedBit)
	require.NotNil(t, derr)
}

func TestParsePath_HardenedAndWildcard(t *testing.T) {
	path, err := bip32.ParsePath("m/44'/0h/0")
	require.Nil(t, err)
	require.Equal(t, []uint32{44 | bip32.HardenedBit, 0 | bip32.HardenedBit, 0}, path)

	withWildcard, werr := bip32.ParsePath("m/0/*")
	require.Nil(t, werr)
	require.Equal(t, bip32.Wildcard, withWildcard[1])

	substituted := bip32.SubstituteWildcard(withWildcard, 7)
	require.Equal(t, []uint32{0, 7}, substituted)

	require.Equal(t, "m/44'/0'/0", bip32.FormatPath(path))
}

func TestParsePath_RejectsEmptyComponent(t *testing.T) {
	_, err := bip32.ParsePath("m//0")
	require.NotNil(t, err)
}

func TestParsePath_RejectsNonTerminalWildcard(t *testing.T) {
	_, err := bip32.ParsePath("m/*/0")
	require.NotNil(t, err)
}
