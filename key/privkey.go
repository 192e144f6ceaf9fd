// Package key implements the self-validating wrapper types Privkey,
// Pubkey, and SchnorrPubkey (§3/§4.2). Validation and derivation are
// delegated to the injected crypto.Oracle; these types never touch
// secp256k1 math directly.
package key

import (
	"github.com/pktcore/txcore/crypto"
	"github.com/pktcore/txcore/er"
)

// Network selects the WIF/BIP32 version-byte family.
type Network int

const (
	Mainnet Network = iota
	Testnet
)

const (
	wifPrefixMainnet = 0x80
	wifPrefixTestnet = 0xef
)

// Privkey is a 32-byte secp256k1 scalar, valid iff in [1, N-1]. It
// carries an implicit "compressed" flag used when deriving a Pubkey
// and when rendering WIF.
type Privkey struct {
	bytes      [32]byte
	compressed bool
}

// NewPrivkey validates and wraps 32 raw bytes.
func NewPrivkey(oracle crypto.Oracle, raw []byte, compressed bool) (*Privkey, er.R) {
	if len(raw) != 32 {
		return nil, er.InvalidArgumentType.CodeWithDetail("BadPrivkeyLength", "private key must be 32 bytes").Default()
	}
	if !oracle.IsValidPrivkey(raw) {
		return nil, er.InvalidArgumentType.CodeWithDetail("PrivkeyOutOfRange",
			"private key scalar is not in [1, N-1]").Default()
	}
	p := &Privkey{compressed: compressed}
	copy(p.bytes[:], raw)
	return p, nil
}

// Bytes returns the 32-byte scalar.
func (p *Privkey) Bytes() []byte { return p.bytes[:] }

// IsCompressed reports the carried compressed flag.
func (p *Privkey) IsCompressed() bool { return p.compressed }

// Pubkey derives the corresponding Pubkey via the oracle.
func (p *Privkey) Pubkey(oracle crypto.Oracle) (*Pubkey, er.R) {
	raw, err := oracle.PubkeyFromPrivkey(p.bytes[:], p.compressed)
	if err != nil {
		return nil, err
	}
	return NewPubkey(oracle, raw)
}

// SchnorrPubkey derives the x-only Schnorr pubkey via the oracle.
func (p *Privkey) SchnorrPubkey(oracle crypto.Oracle) (*SchnorrPubkey, er.R) {
	raw, err := oracle.SchnorrPubkeyFromPrivkey(p.bytes[:])
	if err != nil {
		return nil, err
	}
	return NewSchnorrPubkey(raw)
}

func wifPrefix(network Network) byte {
	if network == Testnet {
		return wifPrefixTestnet
	}
	return wifPrefixMainnet
}

// ToWIF renders prefix‖scalar‖(0x01 if compressed) as Base58Check.
func (p *Privkey) ToWIF(oracle crypto.Oracle, network Network) string {
	payload := make([]byte, 0, 34)
	payload = append(payload, p.bytes[:]...)
	if p.compressed {
		payload = append(payload, 0x01)
	}
	return oracle.Base58CheckEncode([]byte{wifPrefix(network)}, payload)
}

// PrivkeyFromWIF parses a WIF string.
func PrivkeyFromWIF(oracle crypto.Oracle, wif string) (*Privkey, Network, er.R) {
	version, payload, err := oracle.Base58CheckDecode(wif)
	if err != nil {
		return nil, 0, err
	}
	if len(version) != 1 {
		return nil, 0, er.InvalidArgumentType.CodeWithDetail("BadWIFVersion", "malformed WIF version byte").Default()
	}
	var network Network
	switch version[0] {
	case wifPrefixMainnet:
		network = Mainnet
	case wifPrefixTestnet:
		network = Testnet
	default:
		return nil, 0, er.InvalidArgumentType.CodeWithDetail("BadWIFVersion", "unrecognized WIF version byte").Default()
	}
	compressed := false
	switch len(payload) {
	case 32:
	case 33:
		if payload[32] != 0x01 {
			return nil, 0, er.InvalidArgumentType.CodeWithDetail("BadWIFSuffix", "unexpected WIF compression byte").Default()
		}
		compressed = true
	default:
		return nil, 0, er.InvalidArgumentType.CodeWithDetail("BadWIFLength", "malformed WIF payload length").Default()
	}
	priv, err := NewPrivkey(oracle, payload[:32], compressed)
	if err != nil {
		return nil, 0, err
	}
	return priv, network, nil
}
