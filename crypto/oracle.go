// Package crypto defines the CryptoOracle capability the rest of
// txcore consults for every operation that needs real cryptography or
// a CSPRNG (§6 of the spec). Modeling it as an interface keeps raw
// pointers and library handles out of the core's data types: values
// crossing the boundary are always owned byte slices.
package crypto

import "github.com/pktcore/txcore/er"

// Oracle is the capability set the core calls into. All methods are
// pure functions of their inputs except RandBytes. One production
// implementation (Production, in this package) backs it with
// secp256k1/ripemd160/pbkdf2 from the ecosystem; tests may supply a
// deterministic mock.
type Oracle interface {
	Sha256(data []byte) [32]byte
	Sha256d(data []byte) [32]byte
	Ripemd160(data []byte) [20]byte
	Hash160(data []byte) [20]byte
	HmacSha256(key, data []byte) [32]byte
	HmacSha512(key, data []byte) [64]byte

	IsValidPrivkey(priv []byte) bool
	IsValidPubkey(pub []byte) bool
	CompressPubkey(pub []byte) ([]byte, er.R)
	PubkeyFromPrivkey(priv []byte, compressed bool) ([]byte, er.R)
	SchnorrPubkeyFromPrivkey(priv []byte) ([]byte, er.R)

	EcdsaSign(priv, msg32 []byte, grindR bool) ([]byte, er.R)
	EcdsaVerify(pub, msg32, sig []byte) bool
	SchnorrSign(priv, aux32, msg32 []byte) ([]byte, er.R)
	SchnorrVerify(pub, msg32, sig []byte) bool

	EcAddPub(a, b []byte) ([]byte, er.R)
	EcTweakPriv(priv, tweak32 []byte) ([]byte, er.R)
	EcTweakPub(pub, tweak32 []byte) ([]byte, er.R)

	Base58Encode(data []byte) string
	Base58Decode(s string) ([]byte, er.R)
	Base58CheckEncode(version []byte, data []byte) string
	Base58CheckDecode(s string) (version []byte, data []byte, err er.R)

	Bech32Encode(hrp string, data []byte) (string, er.R)
	Bech32Decode(s string) (hrp string, data []byte, err er.R)
	Bech32mEncode(hrp string, data []byte) (string, er.R)
	Bech32mDecode(s string) (hrp string, data []byte, err er.R)

	Bip39Wordlist(language string) ([]string, er.R)
	Pbkdf2HmacSha512(password, salt []byte, iterations, keyLen int) []byte

	RandBytes(n int) ([]byte, er.R)
}
