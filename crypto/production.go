package crypto

import (
	"bytes"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/pktcore/txcore/er"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/ripemd160"
)

// Production is the vetted-crate-backed Oracle implementation: secp256k1
// via btcec/v2 (grounded: used directly by btcq-org-qbtc's zk package and
// the natural continuation of the teacher's own btcec fork),
// ripemd160/pbkdf2 via golang.org/x/crypto (grounded: same package
// imported directly by btcq-org-qbtc), Base58/Bech32 via
// github.com/btcsuite/btcd/btcutil (sibling module of btcec/v2).
type Production struct{}

var _ Oracle = Production{}

func (Production) Sha256(data []byte) [32]byte  { return sha256.Sum256(data) }
func (Production) Sha256d(data []byte) [32]byte { a := sha256.Sum256(data); return sha256.Sum256(a[:]) }

func (Production) Ripemd160(data []byte) [20]byte {
	r := ripemd160.New()
	r.Write(data)
	var out [20]byte
	copy(out[:], r.Sum(nil))
	return out
}

func (p Production) Hash160(data []byte) [20]byte {
	s := p.Sha256(data)
	return p.Ripemd160(s[:])
}

func (Production) HmacSha256(key, data []byte) [32]byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func (Production) HmacSha512(key, data []byte) [64]byte {
	h := hmac.New(sha512.New, key)
	h.Write(data)
	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out
}

var errInvalidKey = er.InvalidArgumentType.CodeWithDetail("InvalidKey", "key material rejected by secp256k1")

func (Production) IsValidPrivkey(priv []byte) bool {
	if len(priv) != 32 {
		return false
	}
	var s btcec.ModNScalar
	overflow := s.SetByteSlice(priv)
	return !overflow && !s.IsZero()
}

func (Production) IsValidPubkey(pub []byte) bool {
	_, err := btcec.ParsePubKey(pub)
	return err == nil
}

func (Production) CompressPubkey(pub []byte) ([]byte, er.R) {
	p, err := btcec.ParsePubKey(pub)
	if err != nil {
		return nil, errInvalidKey.Wrap(err)
	}
	return p.SerializeCompressed(), nil
}

func (Production) PubkeyFromPrivkey(priv []byte, compressed bool) ([]byte, er.R) {
	if len(priv) != 32 {
		return nil, errInvalidKey.Default()
	}
	_, pub := btcec.PrivKeyFromBytes(priv)
	if compressed {
		return pub.SerializeCompressed(), nil
	}
	return pub.SerializeUncompressed(), nil
}

func (Production) SchnorrPubkeyFromPrivkey(priv []byte) ([]byte, er.R) {
	if len(priv) != 32 {
		return nil, errInvalidKey.Default()
	}
	privKey, _ := btcec.PrivKeyFromBytes(priv)
	xonly := schnorr.SerializePubKey(privKey.PubKey())
	return xonly, nil
}

// maxLowRIterations bounds the low-R nonce grind; each candidate nonce has
// roughly even odds of producing a low R, so this budget is exhausted only
// in the astronomically unlikely case of a broken nonce function.
const maxLowRIterations = 64

var errLowRGrindExhausted = er.InternalType.CodeWithDetail("LowRGrindExhausted", "no low-R nonce found within the grind budget")

func (Production) EcdsaSign(priv, msg32 []byte, grindR bool) ([]byte, er.R) {
	if len(priv) != 32 {
		return nil, errInvalidKey.Default()
	}
	privKey, _ := btcec.PrivKeyFromBytes(priv)
	if !grindR {
		sig := ecdsa.Sign(privKey, msg32)
		return sig.Serialize(), nil
	}

	privScalar := &privKey.Key
	var h btcec.ModNScalar
	h.SetByteSlice(msg32)

	extra := make([]byte, 32)
	for counter := uint32(0); counter < maxLowRIterations; counter++ {
		binary.BigEndian.PutUint32(extra[28:], counter)
		k := rfc6979Nonce(priv, msg32, extra)
		if k.IsZero() {
			continue
		}

		var kG btcec.JacobianPoint
		btcec.ScalarBaseMultNonConst(&k, &kG)
		kG.ToAffine()
		if kG.X.IsZero() && kG.Y.IsZero() {
			continue
		}
		rBytes := kG.X.Bytes()
		if rBytes[0]&0x80 != 0 {
			// R would need a 33rd padding byte to stay non-negative; grind again.
			continue
		}

		var r btcec.ModNScalar
		if overflow := r.SetByteSlice(rBytes[:]); overflow || r.IsZero() {
			continue
		}

		kInv := new(btcec.ModNScalar).Set(&k).InverseNonConst()
		s := new(btcec.ModNScalar).Set(&r)
		s.Mul(privScalar)
		s.Add(&h)
		s.Mul(kInv)
		if s.IsZero() {
			continue
		}
		if s.IsOverHalfOrder() {
			s.Negate()
		}

		sig := ecdsa.NewSignature(&r, s)
		return sig.Serialize(), nil
	}
	return nil, errLowRGrindExhausted.Default()
}

// rfc6979Nonce derives the deterministic ECDSA nonce per RFC 6979 with an
// extraEntropy block mixed into the HMAC input, matching the nonce-grinding
// construction used by secp256k1 signers to search for a low-R signature:
// each extraEntropy value yields an independent, still-deterministic nonce
// candidate for the same (priv, msg32) pair.
func rfc6979Nonce(priv, msg32, extraEntropy []byte) btcec.ModNScalar {
	var privScalar btcec.ModNScalar
	privScalar.SetByteSlice(priv)
	privBytes := privScalar.Bytes()

	var hScalar btcec.ModNScalar
	hScalar.SetByteSlice(msg32)
	hBytes := hScalar.Bytes()

	v := bytes.Repeat([]byte{0x01}, 32)
	k := bytes.Repeat([]byte{0x00}, 32)

	mac := hmac.New(sha256.New, k)
	mac.Write(v)
	mac.Write([]byte{0x00})
	mac.Write(privBytes[:])
	mac.Write(hBytes[:])
	mac.Write(extraEntropy)
	k = mac.Sum(nil)

	mac = hmac.New(sha256.New, k)
	mac.Write(v)
	v = mac.Sum(nil)

	mac = hmac.New(sha256.New, k)
	mac.Write(v)
	mac.Write([]byte{0x01})
	mac.Write(privBytes[:])
	mac.Write(hBytes[:])
	mac.Write(extraEntropy)
	k = mac.Sum(nil)

	mac = hmac.New(sha256.New, k)
	mac.Write(v)
	v = mac.Sum(nil)

	for {
		mac = hmac.New(sha256.New, k)
		mac.Write(v)
		v = mac.Sum(nil)

		var candidate btcec.ModNScalar
		overflow := candidate.SetByteSlice(v)
		if !overflow && !candidate.IsZero() {
			return candidate
		}

		mac = hmac.New(sha256.New, k)
		mac.Write(v)
		mac.Write([]byte{0x00})
		k = mac.Sum(nil)

		mac = hmac.New(sha256.New, k)
		mac.Write(v)
		v = mac.Sum(nil)
	}
}

func (Production) EcdsaVerify(pub, msg32, sig []byte) bool {
	p, err := btcec.ParsePubKey(pub)
	if err != nil {
		return false
	}
	s, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	return s.Verify(msg32, p)
}

func (Production) SchnorrSign(priv, aux32, msg32 []byte) ([]byte, er.R) {
	if len(priv) != 32 {
		return nil, errInvalidKey.Default()
	}
	privKey, _ := btcec.PrivKeyFromBytes(priv)
	sig, err := schnorr.Sign(privKey, msg32, schnorr.CustomNonce(toArray32(aux32)))
	if err != nil {
		return nil, er.InternalType.CodeWithDetail("SchnorrSignFailed", "schnorr signing failed").Wrap(err)
	}
	return sig.Serialize(), nil
}

func toArray32(b []byte) [32]byte {
	var out [32]byte
	copy(out[:], b)
	return out
}

func (Production) SchnorrVerify(pub, msg32, sig []byte) bool {
	p, err := schnorr.ParsePubKey(pub)
	if err != nil {
		return false
	}
	s, err := schnorr.ParseSignature(sig)
	if err != nil {
		return false
	}
	return s.Verify(msg32, p) == nil
}

func (Production) EcAddPub(a, b []byte) ([]byte, er.R) {
	pa, err := btcec.ParsePubKey(a)
	if err != nil {
		return nil, errInvalidKey.Wrap(err)
	}
	pb, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, errInvalidKey.Wrap(err)
	}
	var sum btcec.JacobianPoint
	var ja, jb btcec.JacobianPoint
	pa.AsJacobian(&ja)
	pb.AsJacobian(&jb)
	btcec.AddNonConst(&ja, &jb, &sum)
	sum.ToAffine()
	result := btcec.NewPublicKey(&sum.X, &sum.Y)
	return result.SerializeCompressed(), nil
}

func (Production) EcTweakPriv(priv, tweak32 []byte) ([]byte, er.R) {
	if len(priv) != 32 {
		return nil, errInvalidKey.Default()
	}
	var k, t btcec.ModNScalar
	if overflow := k.SetByteSlice(priv); overflow {
		return nil, errInvalidKey.Default()
	}
	if overflow := t.SetByteSlice(tweak32); overflow {
		return nil, er.InvalidArgumentType.CodeWithDetail("TweakOutOfRange", "tweak scalar out of range").Default()
	}
	k.Add(&t)
	if k.IsZero() {
		return nil, er.InternalType.CodeWithDetail("ResultingKeyZero", "tweaked private key is zero").Default()
	}
	out := k.Bytes()
	return out[:], nil
}

func (Production) EcTweakPub(pub, tweak32 []byte) ([]byte, er.R) {
	p, err := btcec.ParsePubKey(pub)
	if err != nil {
		return nil, errInvalidKey.Wrap(err)
	}
	var t btcec.ModNScalar
	if overflow := t.SetByteSlice(tweak32); overflow {
		return nil, er.InvalidArgumentType.CodeWithDetail("TweakOutOfRange", "tweak scalar out of range").Default()
	}
	var tG btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&t, &tG)
	var pj, sum btcec.JacobianPoint
	p.AsJacobian(&pj)
	btcec.AddNonConst(&pj, &tG, &sum)
	sum.ToAffine()
	if sum.X.IsZero() && sum.Y.IsZero() {
		return nil, er.InternalType.CodeWithDetail("ResultingKeyZero", "tweaked public key is point at infinity").Default()
	}
	result := btcec.NewPublicKey(&sum.X, &sum.Y)
	return result.SerializeCompressed(), nil
}

func (Production) Base58Encode(data []byte) string { return base58.Encode(data) }

func (Production) Base58Decode(s string) ([]byte, er.R) {
	b := base58.Decode(s)
	if b == nil && s != "" {
		return nil, er.InvalidArgumentType.CodeWithDetail("BadBase58", "invalid base58 string").Default()
	}
	return b, nil
}

func (Production) Base58CheckEncode(version []byte, data []byte) string {
	return base58.CheckEncode(data, version[0])
}

func (Production) Base58CheckDecode(s string) ([]byte, []byte, er.R) {
	data, version, err := base58.CheckDecode(s)
	if err != nil {
		return nil, nil, er.InvalidArgumentType.CodeWithDetail("BadBase58Check", "invalid base58check string").Wrap(err)
	}
	return []byte{version}, data, nil
}

func (Production) Bech32Encode(hrp string, data []byte) (string, er.R) {
	conv, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", er.InternalType.CodeWithDetail("Bech32ConvertFailed", "bit conversion failed").Wrap(err)
	}
	s, err := bech32.Encode(hrp, conv)
	if err != nil {
		return "", er.InvalidArgumentType.CodeWithDetail("Bech32EncodeFailed", "bech32 encode failed").Wrap(err)
	}
	return s, nil
}

func (Production) Bech32Decode(s string) (string, []byte, er.R) {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return "", nil, er.InvalidArgumentType.CodeWithDetail("Bech32DecodeFailed", "bech32 decode failed").Wrap(err)
	}
	conv, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, er.InternalType.CodeWithDetail("Bech32ConvertFailed", "bit conversion failed").Wrap(err)
	}
	return hrp, conv, nil
}

func (Production) Bech32mEncode(hrp string, data []byte) (string, er.R) {
	conv, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", er.InternalType.CodeWithDetail("Bech32ConvertFailed", "bit conversion failed").Wrap(err)
	}
	s, err := bech32.EncodeM(hrp, conv)
	if err != nil {
		return "", er.InvalidArgumentType.CodeWithDetail("Bech32mEncodeFailed", "bech32m encode failed").Wrap(err)
	}
	return s, nil
}

func (Production) Bech32mDecode(s string) (string, []byte, er.R) {
	hrp, data, err := bech32.DecodeNoLimit(s)
	if err != nil {
		return "", nil, er.InvalidArgumentType.CodeWithDetail("Bech32mDecodeFailed", "bech32m decode failed").Wrap(err)
	}
	conv, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, er.InternalType.CodeWithDetail("Bech32ConvertFailed", "bit conversion failed").Wrap(err)
	}
	return hrp, conv, nil
}

func (Production) Bip39Wordlist(language string) ([]string, er.R) {
	return wordlistFor(language)
}

func (Production) Pbkdf2HmacSha512(password, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, keyLen, sha512.New)
}

func (Production) RandBytes(n int) ([]byte, er.R) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, er.InternalType.CodeWithDetail("RandFailed", "system CSPRNG failed").Wrap(err)
	}
	return b, nil
}
