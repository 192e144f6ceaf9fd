package bip32

import (
	"github.com/pktcore/txcore/bip39"
	"github.com/pktcore/txcore/crypto"
	"github.com/pktcore/txcore/er"
)

// HDWallet ties a BIP39 mnemonic to the BIP32 master key it derives,
// so callers don't have to hand-thread entropy/seed bytes between the
// two packages.
type HDWallet struct {
	words   []string
	master  *ExtPrivkey
}

// NewHDWalletFromEntropy builds a wallet from raw entropy (16/20/24/28/32
// bytes), deriving its mnemonic and then its master extended key.
func NewHDWalletFromEntropy(oracle crypto.Oracle, entropy []byte, passphrase string, network Network) (*HDWallet, er.R) {
	words, err := bip39.EntropyToMnemonic(oracle, entropy, "")
	if err != nil {
		return nil, err
	}
	return newHDWallet(oracle, words, passphrase, network)
}

// NewHDWalletFromMnemonic builds a wallet from an existing word list,
// validating its checksum before deriving.
func NewHDWalletFromMnemonic(oracle crypto.Oracle, words []string, passphrase string, network Network) (*HDWallet, er.R) {
	if !bip39.CheckValidMnemonic(oracle, words, "") {
		return nil, er.InvalidArgumentType.CodeWithDetail("BadMnemonic",
			"mnemonic failed checksum validation").Default()
	}
	return newHDWallet(oracle, words, passphrase, network)
}

func newHDWallet(oracle crypto.Oracle, words []string, passphrase string, network Network) (*HDWallet, er.R) {
	seed := bip39.SeedFromMnemonic(oracle, words, passphrase, false)
	master, err := NewMasterExtPrivkey(oracle, seed, network)
	if err != nil {
		return nil, err
	}
	return &HDWallet{words: words, master: master}, nil
}

// Mnemonic returns the space-joined word list.
func (w *HDWallet) Mnemonic() string { return bip39.Join(w.words, false) }

// Words returns the underlying word list.
func (w *HDWallet) Words() []string { return append([]string(nil), w.words...) }

// Master returns the root extended private key.
func (w *HDWallet) Master() *ExtPrivkey { return w.master }

// Derive walks a textual path ("m/44'/0'/0'") from the root.
func (w *HDWallet) Derive(oracle crypto.Oracle, path string) (*ExtPrivkey, er.R) {
	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return w.master.DerivePath(oracle, indices)
}
