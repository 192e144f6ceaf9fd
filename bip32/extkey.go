// Package bip32 implements BIP32 hierarchical deterministic keys:
// ExtPrivkey and ExtPubkey derivation, 78-byte serialization, and
// Base58Check encoding (§3/§4.2), plus KeyData (keyed origin with
// fingerprint + path) and the HDWallet seed/mnemonic pipeline.
package bip32

import (
	"encoding/binary"

	"github.com/pktcore/txcore/crypto"
	"github.com/pktcore/txcore/er"
	"github.com/pktcore/txcore/key"
)

// Network selects the version-byte family used on serialization.
type Network int

const (
	Mainnet Network = iota
	Testnet
)

const (
	versionMainnetPriv = 0x0488ADE4
	versionMainnetPub  = 0x0488B21E
	versionTestnetPriv = 0x04358394
	versionTestnetPub  = 0x043587CF

	// HardenedBit marks a child number as a hardened derivation index.
	HardenedBit uint32 = 0x80000000

	serializedSize = 78
)

func versionBytes(network Network, priv bool) uint32 {
	switch {
	case network == Mainnet && priv:
		return versionMainnetPriv
	case network == Mainnet && !priv:
		return versionMainnetPub
	case network == Testnet && priv:
		return versionTestnetPriv
	default:
		return versionTestnetPub
	}
}

func networkFromVersion(v uint32) (Network, bool, er.R) {
	switch v {
	case versionMainnetPriv:
		return Mainnet, true, nil
	case versionMainnetPub:
		return Mainnet, false, nil
	case versionTestnetPriv:
		return Testnet, true, nil
	case versionTestnetPub:
		return Testnet, false, nil
	default:
		return 0, false, er.InvalidArgumentType.CodeWithDetail("UnknownVersion",
			"unrecognized BIP32 version bytes").Default()
	}
}

type extKeyBase struct {
	network           Network
	depth             byte
	parentFingerprint [4]byte
	childNumber       uint32
	chainCode         [32]byte
}

// IsHardened reports whether a child index has the hardened bit set.
func IsHardened(index uint32) bool { return index&HardenedBit != 0 }

// ExtPrivkey is a BIP32 private extended key node.
type ExtPrivkey struct {
	extKeyBase
	priv *key.Privkey
}

// ExtPubkey is a BIP32 public extended key node. It additionally
// tracks a tweak-sum accumulator: the running sum (mod N) of every
// unhardened derivation step's tweak scalar, exposed so Elements
// blinding code can reconstruct per-output blinding without
// re-deriving private material.
type ExtPubkey struct {
	extKeyBase
	pub      *key.Pubkey
	tweakSum [32]byte
}

// NewMasterExtPrivkey implements BIP32 master key derivation from a
// seed: HMAC-SHA512 with key "Bitcoin seed".
func NewMasterExtPrivkey(oracle crypto.Oracle, seed []byte, network Network) (*ExtPrivkey, er.R) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, er.InvalidArgumentType.CodeWithDetail("BadSeedLength",
			"seed must be between 16 and 64 bytes").Default()
	}
	i := oracle.HmacSha512([]byte("Bitcoin seed"), seed)
	il, ir := i[:32], i[32:]

	priv, err := key.NewPrivkey(oracle, il, true)
	if err != nil {
		return nil, er.InternalType.CodeWithDetail("InvalidMasterKey",
			"derived master key is out of range (retry with different seed)").Wrap(err)
	}

	e := &ExtPrivkey{priv: priv}
	e.network = network
	copy(e.chainCode[:], ir)
	return e, nil
}

func fingerprintOf(oracle crypto.Oracle, pub *key.Pubkey) [4]byte {
	h := oracle.Hash160(pub.Bytes())
	var fp [4]byte
	copy(fp[:], h[:4])
	return fp
}

// Pubkey derives this node's compressed Pubkey.
func (e *ExtPrivkey) Pubkey(oracle crypto.Oracle) (*key.Pubkey, er.R) {
	return e.priv.Pubkey(oracle)
}

// Privkey returns the underlying Privkey.
func (e *ExtPrivkey) Privkey() *key.Privkey { return e.priv }

// Depth, ChildNumber, Network, Fingerprint accessors mirror the wire fields.
func (e *ExtPrivkey) Depth() byte         { return e.depth }
func (e *ExtPrivkey) ChildNumber() uint32 { return e.childNumber }
func (e *ExtPrivkey) Network() Network    { return e.network }

// Derive computes one BIP32 child step. Hardened derivation hashes
// 0x00‖parentPriv‖index_be; unhardened hashes parentPub‖index_be.
func (e *ExtPrivkey) Derive(oracle crypto.Oracle, index uint32) (*ExtPrivkey, er.R) {
	parentPub, err := e.Pubkey(oracle)
	if err != nil {
		return nil, err
	}

	data := make([]byte, 37)
	if IsHardened(index) {
		data[0] = 0x00
		copy(data[1:33], e.priv.Bytes())
	} else {
		copy(data[0:33], parentPub.Bytes())
	}
	binary.BigEndian.PutUint32(data[33:], index)

	i := oracle.HmacSha512(e.chainCode[:], data)
	il, ir := i[:32], i[32:]

	childRaw, terr := oracle.EcTweakPriv(e.priv.Bytes(), il)
	if terr != nil {
		return nil, er.InternalType.CodeWithDetail("TweakOutOfRange",
			"derived child key tweak invalid, caller should try the next index").Wrap(terr)
	}
	childPriv, perr := key.NewPrivkey(oracle, childRaw, true)
	if perr != nil {
		return nil, er.InternalType.CodeWithDetail("TweakOutOfRange",
			"derived child key invalid, caller should try the next index").Wrap(perr)
	}

	child := &ExtPrivkey{priv: childPriv}
	child.network = e.network
	child.depth = e.depth + 1
	child.parentFingerprint = fingerprintOf(oracle, parentPub)
	child.childNumber = index
	copy(child.chainCode[:], ir)
	return child, nil
}

// DerivePath walks a sequence of child indices in order.
func (e *ExtPrivkey) DerivePath(oracle crypto.Oracle, path []uint32) (*ExtPrivkey, er.R) {
	cur := e
	for _, idx := range path {
		next, err := cur.Derive(oracle, idx)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// ToExtPubkey projects this node to its neutered ExtPubkey, with a
// zero-valued tweak-sum accumulator (P4: derive_priv(pi).to_pub() ==
// to_pub().derive_pub(pi) for non-hardened pi).
func (e *ExtPrivkey) ToExtPubkey(oracle crypto.Oracle) (*ExtPubkey, er.R) {
	pub, err := e.Pubkey(oracle)
	if err != nil {
		return nil, err
	}
	out := &ExtPubkey{pub: pub}
	out.network = e.network
	out.depth = e.depth
	out.parentFingerprint = e.parentFingerprint
	out.childNumber = e.childNumber
	out.chainCode = e.chainCode
	return out, nil
}

// Pubkey returns the wrapped compressed Pubkey.
func (e *ExtPubkey) Pubkey() *key.Pubkey    { return e.pub }
func (e *ExtPubkey) Depth() byte            { return e.depth }
func (e *ExtPubkey) ChildNumber() uint32    { return e.childNumber }
func (e *ExtPubkey) Network() Network       { return e.network }
func (e *ExtPubkey) TweakSum() []byte       { return append([]byte(nil), e.tweakSum[:]...) }

// Derive computes one unhardened BIP32 public child step (P3: hardened
// indices are refused with InvalidArgument since there is no private
// key to mix in).
func (e *ExtPubkey) Derive(oracle crypto.Oracle, index uint32) (*ExtPubkey, er.R) {
	if IsHardened(index) {
		return nil, er.InvalidArgumentType.CodeWithDetail("HardenedFromPublic",
			"cannot derive a hardened child from a public extended key").Default()
	}

	data := make([]byte, 37)
	copy(data[0:33], e.pub.Bytes())
	binary.BigEndian.PutUint32(data[33:], index)

	i := oracle.HmacSha512(e.chainCode[:], data)
	il, ir := i[:32], i[32:]

	childPub, err := e.pub.Tweak(oracle, il)
	if err != nil {
		return nil, er.InternalType.CodeWithDetail("TweakOutOfRange",
			"derived child key tweak invalid, caller should try the next index").Wrap(err)
	}

	newTweakSum, terr := oracle.EcTweakPriv(e.tweakSum[:], il)
	if terr != nil {
		// Astronomically unlikely; surfaces the same way an invalid
		// child key tweak does.
		return nil, er.InternalType.CodeWithDetail("TweakOutOfRange",
			"derived child tweak sum invalid, caller should try the next index").Wrap(terr)
	}

	child := &ExtPubkey{pub: childPub}
	child.network = e.network
	child.depth = e.depth + 1
	child.parentFingerprint = fingerprintOf(oracle, e.pub)
	child.childNumber = index
	copy(child.chainCode[:], ir)
	copy(child.tweakSum[:], newTweakSum)
	return child, nil
}

// DerivePath walks a sequence of non-hardened child indices in order.
func (e *ExtPubkey) DerivePath(oracle crypto.Oracle, path []uint32) (*ExtPubkey, er.R) {
	cur := e
	for _, idx := range path {
		next, err := cur.Derive(oracle, idx)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
