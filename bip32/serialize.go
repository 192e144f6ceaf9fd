package bip32

import (
	"encoding/binary"

	"github.com/pktcore/txcore/crypto"
	"github.com/pktcore/txcore/er"
)

// Bytes serializes the 78-byte BIP32 payload: version(4) ‖ depth(1) ‖
// parentFingerprint(4) ‖ childNumber(4, BE) ‖ chainCode(32) ‖ 0x00‖priv(33).
func (e *ExtPrivkey) Bytes() []byte {
	buf := make([]byte, serializedSize)
	binary.BigEndian.PutUint32(buf[0:4], versionBytes(e.network, true))
	buf[4] = e.depth
	copy(buf[5:9], e.parentFingerprint[:])
	binary.BigEndian.PutUint32(buf[9:13], e.childNumber)
	copy(buf[13:45], e.chainCode[:])
	buf[45] = 0x00
	copy(buf[46:78], e.priv.Bytes())
	return buf
}

// ToBase58 wraps Bytes() in Base58Check (version‖payload‖checksum),
// matching how the teacher's base58 helpers are layered over raw bytes.
func (e *ExtPrivkey) ToBase58(oracle crypto.Oracle) string {
	return base58CheckRaw(oracle, e.Bytes())
}

// ExtPrivkeyFromBytes parses the 78-byte payload produced by Bytes().
func ExtPrivkeyFromBytes(oracle crypto.Oracle, buf []byte) (*ExtPrivkey, er.R) {
	if len(buf) != serializedSize {
		return nil, er.InvalidArgumentType.CodeWithDetail("BadExtKeyLength",
			"extended key payload must be 78 bytes").Default()
	}
	network, isPriv, err := networkFromVersion(binary.BigEndian.Uint32(buf[0:4]))
	if err != nil {
		return nil, err
	}
	if !isPriv {
		return nil, er.InvalidArgumentType.CodeWithDetail("NotAPrivateKey",
			"version bytes denote a public extended key").Default()
	}
	if buf[45] != 0x00 {
		return nil, er.InvalidArgumentType.CodeWithDetail("BadPrivkeyMarker",
			"private extended key must have a 0x00 marker byte").Default()
	}

	e := &ExtPrivkey{}
	e.network = network
	e.depth = buf[4]
	copy(e.parentFingerprint[:], buf[5:9])
	e.childNumber = binary.BigEndian.Uint32(buf[9:13])
	copy(e.chainCode[:], buf[13:45])

	priv, perr := newPrivkeyFromRaw(oracle, buf[46:78])
	if perr != nil {
		return nil, perr
	}
	e.priv = priv
	return e, nil
}

// ExtPrivkeyFromBase58 parses a Base58Check-encoded xprv/tprv string.
func ExtPrivkeyFromBase58(oracle crypto.Oracle, s string) (*ExtPrivkey, er.R) {
	payload, err := base58CheckDecodeRaw(oracle, s)
	if err != nil {
		return nil, err
	}
	return ExtPrivkeyFromBytes(oracle, payload)
}

// Bytes serializes the 78-byte BIP32 payload for a public extended key.
func (e *ExtPubkey) Bytes() []byte {
	buf := make([]byte, serializedSize)
	binary.BigEndian.PutUint32(buf[0:4], versionBytes(e.network, false))
	buf[4] = e.depth
	copy(buf[5:9], e.parentFingerprint[:])
	binary.BigEndian.PutUint32(buf[9:13], e.childNumber)
	copy(buf[13:45], e.chainCode[:])
	copy(buf[45:78], e.pub.Bytes())
	return buf
}

// ToBase58 wraps Bytes() in Base58Check.
func (e *ExtPubkey) ToBase58(oracle crypto.Oracle) string {
	return base58CheckRaw(oracle, e.Bytes())
}

// ExtPubkeyFromBytes parses the 78-byte payload produced by Bytes().
func ExtPubkeyFromBytes(oracle crypto.Oracle, buf []byte) (*ExtPubkey, er.R) {
	if len(buf) != serializedSize {
		return nil, er.InvalidArgumentType.CodeWithDetail("BadExtKeyLength",
			"extended key payload must be 78 bytes").Default()
	}
	network, isPriv, err := networkFromVersion(binary.BigEndian.Uint32(buf[0:4]))
	if err != nil {
		return nil, err
	}
	if isPriv {
		return nil, er.InvalidArgumentType.CodeWithDetail("NotAPublicKey",
			"version bytes denote a private extended key").Default()
	}

	e := &ExtPubkey{}
	e.network = network
	e.depth = buf[4]
	copy(e.parentFingerprint[:], buf[5:9])
	e.childNumber = binary.BigEndian.Uint32(buf[9:13])
	copy(e.chainCode[:], buf[13:45])

	pub, perr := newPubkeyFromRaw(oracle, buf[45:78])
	if perr != nil {
		return nil, perr
	}
	e.pub = pub
	return e, nil
}

// ExtPubkeyFromBase58 parses a Base58Check-encoded xpub/tpub string.
func ExtPubkeyFromBase58(oracle crypto.Oracle, s string) (*ExtPubkey, er.R) {
	payload, err := base58CheckDecodeRaw(oracle, s)
	if err != nil {
		return nil, err
	}
	return ExtPubkeyFromBytes(oracle, payload)
}

// base58CheckRaw and base58CheckDecodeRaw implement full Base58Check
// over an arbitrary-length payload (version‖data), unlike the oracle's
// Base58CheckEncode/Decode which is specialized for the 1-byte-version
// address/WIF convention — BIP32's version is 4 bytes and is already
// embedded in buf.
func base58CheckRaw(oracle crypto.Oracle, payload []byte) string {
	checksum := oracle.Sha256d(payload)
	full := make([]byte, 0, len(payload)+4)
	full = append(full, payload...)
	full = append(full, checksum[:4]...)
	return oracle.Base58Encode(full)
}

func base58CheckDecodeRaw(oracle crypto.Oracle, s string) ([]byte, er.R) {
	full, err := oracle.Base58Decode(s)
	if err != nil {
		return nil, err
	}
	if len(full) < 4 {
		return nil, er.InvalidArgumentType.CodeWithDetail("BadBase58CheckLength",
			"base58check string too short").Default()
	}
	payload, checksum := full[:len(full)-4], full[len(full)-4:]
	want := oracle.Sha256d(payload)
	for i := 0; i < 4; i++ {
		if want[i] != checksum[i] {
			return nil, er.InvalidArgumentType.CodeWithDetail("BadChecksum",
				"base58check checksum mismatch").Default()
		}
	}
	return payload, nil
}
