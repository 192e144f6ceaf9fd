package key

import "github.com/pktcore/txcore/er"
import "github.com/pktcore/txcore/crypto"

// Pubkey is an EC point: 33 bytes compressed (prefix 0x02/0x03) or 65
// bytes uncompressed (prefix 0x04/0x06/0x07).
type Pubkey struct {
	raw []byte
}

func isValidPrefixAndLength(raw []byte) bool {
	switch len(raw) {
	case 33:
		return raw[0] == 0x02 || raw[0] == 0x03
	case 65:
		return raw[0] == 0x04 || raw[0] == 0x06 || raw[0] == 0x07
	default:
		return false
	}
}

// NewPubkey validates prefix+length and, via the oracle, the EC point itself.
func NewPubkey(oracle crypto.Oracle, raw []byte) (*Pubkey, er.R) {
	if !isValidPrefixAndLength(raw) {
		return nil, er.InvalidArgumentType.CodeWithDetail("BadPubkeyEncoding",
			"pubkey must be 33-byte compressed or 65-byte uncompressed").Default()
	}
	if !oracle.IsValidPubkey(raw) {
		return nil, er.InvalidArgumentType.CodeWithDetail("InvalidPubkeyPoint",
			"pubkey does not decode to a valid secp256k1 point").Default()
	}
	return &Pubkey{raw: append([]byte(nil), raw...)}, nil
}

// IsValid reports prefix+length validity without re-parsing the point.
func (p *Pubkey) IsValid() bool { return isValidPrefixAndLength(p.raw) }

// IsCompressed reports whether the pubkey is the 33-byte form.
func (p *Pubkey) IsCompressed() bool { return len(p.raw) == 33 }

// Bytes returns the raw encoding.
func (p *Pubkey) Bytes() []byte { return append([]byte(nil), p.raw...) }

// Compressed returns the 33-byte compressed form, converting if needed.
func (p *Pubkey) Compressed(oracle crypto.Oracle) (*Pubkey, er.R) {
	if p.IsCompressed() {
		return p, nil
	}
	raw, err := oracle.CompressPubkey(p.raw)
	if err != nil {
		return nil, err
	}
	return NewPubkey(oracle, raw)
}

// Combine is the EC group addition of two compressed pubkeys.
func Combine(oracle crypto.Oracle, a, b *Pubkey) (*Pubkey, er.R) {
	sum, err := oracle.EcAddPub(a.raw, b.raw)
	if err != nil {
		return nil, err
	}
	return NewPubkey(oracle, sum)
}

// Tweak adds tweak*G to p (mod N), used by BIP32 and Pay-to-Contract.
func (p *Pubkey) Tweak(oracle crypto.Oracle, tweak32 []byte) (*Pubkey, er.R) {
	raw, err := oracle.EcTweakPub(p.raw, tweak32)
	if err != nil {
		return nil, err
	}
	return NewPubkey(oracle, raw)
}

// SchnorrPubkey is a 32-byte x-only BIP340 public key.
type SchnorrPubkey struct {
	raw [32]byte
}

// NewSchnorrPubkey validates length only; BIP340 x-only keys don't
// carry a parity bit so any 32-byte value is a candidate x-coordinate.
func NewSchnorrPubkey(raw []byte) (*SchnorrPubkey, er.R) {
	if len(raw) != 32 {
		return nil, er.InvalidArgumentType.CodeWithDetail("BadSchnorrPubkeyLength",
			"x-only pubkey must be 32 bytes").Default()
	}
	s := &SchnorrPubkey{}
	copy(s.raw[:], raw)
	return s, nil
}

// Bytes returns the 32-byte x-only encoding.
func (s *SchnorrPubkey) Bytes() []byte { return append([]byte(nil), s.raw[:]...) }
