// Package bip39 implements the mnemonic/entropy/seed pipeline of BIP39:
// entropy bytes map to word indices in 11-bit groups with an appended
// SHA-256-derived checksum, and PBKDF2-HMAC-SHA512 stretches the
// mnemonic into a seed for bip32.HDWallet.
package bip39

import (
	"crypto/sha256"
	"strings"

	"github.com/pktcore/txcore/crypto"
	"github.com/pktcore/txcore/er"
)

// IdeographicSpace is the U+3000 separator used when the caller
// requests Japanese-style word joining (§4.3).
const IdeographicSpace = "　"

var entropySizes = map[int]bool{16: true, 20: true, 24: true, 28: true, 32: true}

// EntropyToMnemonic converts entropy bytes (16/20/24/28/32 bytes) to a
// mnemonic word list in the given language, appending the checksum bits.
func EntropyToMnemonic(oracle crypto.Oracle, entropy []byte, language string) ([]string, er.R) {
	if !entropySizes[len(entropy)] {
		return nil, er.InvalidArgumentType.CodeWithDetail("BadEntropyLength",
			"entropy must be 16, 20, 24, 28, or 32 bytes").Default()
	}
	wordlist, err := oracle.Bip39Wordlist(language)
	if err != nil {
		return nil, err
	}

	checksumBits := len(entropy) / 4
	hash := sha256.Sum256(entropy)

	bits := make([]bool, len(entropy)*8+checksumBits)
	for i, b := range entropy {
		for bit := 0; bit < 8; bit++ {
			bits[i*8+bit] = b&(1<<(7-bit)) != 0
		}
	}
	for i := 0; i < checksumBits; i++ {
		bits[len(entropy)*8+i] = hash[0]&(1<<(7-i)) != 0
	}

	numWords := len(bits) / 11
	words := make([]string, numWords)
	for w := 0; w < numWords; w++ {
		idx := 0
		for b := 0; b < 11; b++ {
			idx <<= 1
			if bits[w*11+b] {
				idx |= 1
			}
		}
		words[w] = wordlist[idx]
	}
	return words, nil
}

// MnemonicToEntropy reverses EntropyToMnemonic, validating the checksum.
func MnemonicToEntropy(oracle crypto.Oracle, words []string, language string) ([]byte, er.R) {
	wordlist, err := oracle.Bip39Wordlist(language)
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(wordlist))
	for i, w := range wordlist {
		index[w] = i
	}

	if len(words)%3 != 0 || len(words) < 12 || len(words) > 24 {
		return nil, er.InvalidArgumentType.CodeWithDetail("BadWordCount",
			"mnemonic must have 12, 15, 18, 21, or 24 words").Default()
	}

	totalBits := len(words) * 11
	entropyBits := totalBits * 32 / 33
	checksumBits := totalBits - entropyBits

	bits := make([]bool, totalBits)
	for w, word := range words {
		idx, ok := index[word]
		if !ok {
			return nil, er.InvalidArgumentType.CodeWithDetail("UnknownWord",
				"word not in wordlist: "+word).Default()
		}
		for b := 0; b < 11; b++ {
			bits[w*11+b] = idx&(1<<(10-b)) != 0
		}
	}

	entropy := make([]byte, entropyBits/8)
	for i := range entropy {
		var b byte
		for bit := 0; bit < 8; bit++ {
			b <<= 1
			if bits[i*8+bit] {
				b |= 1
			}
		}
		entropy[i] = b
	}

	hash := sha256.Sum256(entropy)
	for i := 0; i < checksumBits; i++ {
		want := hash[0]&(1<<(7-i)) != 0
		got := bits[entropyBits+i]
		if want != got {
			return nil, er.InvalidArgumentType.CodeWithDetail("BadChecksum",
				"mnemonic checksum mismatch").Default()
		}
	}
	return entropy, nil
}

// CheckValidMnemonic reports whether words form a mnemonic with a valid
// checksum, without returning the entropy or an error.
func CheckValidMnemonic(oracle crypto.Oracle, words []string, language string) bool {
	_, err := MnemonicToEntropy(oracle, words, language)
	return err == nil
}

// separator returns the word-join separator for the given request.
func separator(useIdeographicSpace bool) string {
	if useIdeographicSpace {
		return IdeographicSpace
	}
	return " "
}

// Join renders words as mnemonic text using the requested separator.
func Join(words []string, useIdeographicSpace bool) string {
	return strings.Join(words, separator(useIdeographicSpace))
}

// Split parses mnemonic text back into words, accepting either the
// ASCII or ideographic separator.
func Split(mnemonic string) []string {
	mnemonic = strings.ReplaceAll(mnemonic, IdeographicSpace, " ")
	return strings.Fields(mnemonic)
}

// SeedFromMnemonic derives the 64-byte BIP39 seed:
// PBKDF2(HMAC-SHA512, mnemonic, "mnemonic"‖passphrase, 2048, 64).
//
// The use_ideographic_space flag only affects how the mnemonic text is
// joined before hashing, never the checksum computed in
// EntropyToMnemonic/MnemonicToEntropy (§9 Open Questions).
func SeedFromMnemonic(oracle crypto.Oracle, words []string, passphrase string, useIdeographicSpace bool) []byte {
	mnemonic := Join(words, useIdeographicSpace)
	salt := "mnemonic" + passphrase
	return oracle.Pbkdf2HmacSha512([]byte(mnemonic), []byte(salt), 2048, 64)
}
