// Package chainhash implements the fixed-width byte containers used
// throughout txcore: Hash (32 bytes), Hash160 (20 bytes), and the
// variable-length ByteBlob. All three are immutable value types,
// compared and hashed by content.
package chainhash

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/pktcore/txcore/er"
	"golang.org/x/crypto/ripemd160"
)

// HashSize is the number of bytes in a Hash (sha256d digest).
const HashSize = 32

// Hash160Size is the number of bytes in a Hash160 (hash160 digest).
const Hash160Size = 20

// Hash is a 32-byte hash, stored and displayed the way Bitcoin displays
// txids and block hashes: reversed from internal byte order.
type Hash [HashSize]byte

// Hash160 is a 20-byte RIPEMD160(SHA256(x)) digest.
type Hash160 [Hash160Size]byte

// ByteBlob is an owned, variable-length, content-comparable byte slice.
type ByteBlob []byte

var zeroHash Hash

// IsZero reports whether h is the all-zero hash (coinbase previous-txid).
func (h Hash) IsZero() bool { return h == zeroHash }

// String returns the hash as reversed (RPC-order) hex, matching how
// the reference client displays txids.
func (h Hash) String() string {
	var reversed Hash
	for i := 0; i < HashSize/2; i++ {
		reversed[i], reversed[HashSize-1-i] = h[HashSize-1-i], h[i]
	}
	return hex.EncodeToString(reversed[:])
}

// SetBytes sets h from a 32-byte internal-order slice.
func (h *Hash) SetBytes(b []byte) er.R {
	if len(b) != HashSize {
		return er.InvalidArgumentType.CodeWithDetail("BadHashLength", "hash must be 32 bytes").Default()
	}
	copy(h[:], b)
	return nil
}

// NewHashFromStr parses reversed (RPC-order) hex into a Hash.
func NewHashFromStr(s string) (*Hash, er.R) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, er.InvalidArgumentType.CodeWithDetail("BadHex", "invalid hex string").Wrap(err)
	}
	if len(b) != HashSize {
		return nil, er.InvalidArgumentType.CodeWithDetail("BadHashLength", "hash must be 32 bytes").Default()
	}
	var h Hash
	for i := 0; i < HashSize; i++ {
		h[i] = b[HashSize-1-i]
	}
	return &h, nil
}

// DoubleHashH computes SHA-256d(data) and returns it as a Hash.
func DoubleHashH(data []byte) Hash {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return Hash(second)
}

// HashH computes single SHA-256(data) and returns it as a Hash, used
// by BIP341 tagged hashes which operate on single SHA-256.
func HashH(data []byte) Hash {
	return Hash(sha256.Sum256(data))
}

// TaggedHash computes the BIP340/BIP341 tagged hash:
// SHA256(SHA256(tag) || SHA256(tag) || msg).
func TaggedHash(tag string, msg ...[]byte) Hash {
	tagHash := sha256.Sum256([]byte(tag))
	h := sha256.New()
	h.Write(tagHash[:])
	h.Write(tagHash[:])
	for _, m := range msg {
		h.Write(m)
	}
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// Hash160B computes RIPEMD160(SHA256(data)).
func Hash160B(data []byte) Hash160 {
	sum := sha256.Sum256(data)
	r := ripemd160.New()
	r.Write(sum[:])
	var out Hash160
	copy(out[:], r.Sum(nil))
	return out
}

// String returns the hex encoding of h (not reversed — Hash160 values
// are address-like and have no display-endianness convention).
func (h Hash160) String() string {
	return hex.EncodeToString(h[:])
}

// NewHash160FromStr parses hex into a Hash160.
func NewHash160FromStr(s string) (*Hash160, er.R) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, er.InvalidArgumentType.CodeWithDetail("BadHex", "invalid hex string").Wrap(err)
	}
	if len(b) != Hash160Size {
		return nil, er.InvalidArgumentType.CodeWithDetail("BadHash160Length", "hash160 must be 20 bytes").Default()
	}
	var h Hash160
	copy(h[:], b)
	return &h, nil
}

// NewByteBlobFromHex parses an even-length hex string into a ByteBlob.
// Odd-length or non-hex-character input is rejected (P1).
func NewByteBlobFromHex(s string) (ByteBlob, er.R) {
	if len(s)%2 != 0 {
		return nil, er.InvalidArgumentType.CodeWithDetail("OddHexLength", "hex string must have even length").Default()
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, er.InvalidArgumentType.CodeWithDetail("BadHex", "invalid hex string").Wrap(err)
	}
	return ByteBlob(b), nil
}

// Hex returns the lowercase hex encoding of the blob.
func (b ByteBlob) Hex() string {
	return hex.EncodeToString(b)
}

// Equal reports content equality.
func (b ByteBlob) Equal(o ByteBlob) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if b[i] != o[i] {
			return false
		}
	}
	return true
}

// Concat returns a new ByteBlob that is b followed by o.
func (b ByteBlob) Concat(o ByteBlob) ByteBlob {
	out := make(ByteBlob, 0, len(b)+len(o))
	out = append(out, b...)
	out = append(out, o...)
	return out
}
