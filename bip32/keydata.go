package bip32

import (
	"encoding/hex"
	"strings"

	"github.com/pktcore/txcore/crypto"
	"github.com/pktcore/txcore/er"
)

// KeyOrigin is the fingerprint of the root key a derivation path is
// rooted at, as recorded in PSBT BIP32_DERIVATION fields and in
// descriptor-style "[fp/path]" key fragments.
type KeyOrigin struct {
	Fingerprint [4]byte
	Path        []uint32
}

// KeyData pairs an extended public key with the origin information
// needed to describe where it sits in a larger wallet's tree: the
// fingerprint of the ancestor it was loaded from, the path taken to
// reach it, and (for descriptor-style fragments) a trailing wildcard
// still awaiting substitution with a concrete child number.
type KeyData struct {
	Origin   KeyOrigin
	Key      *ExtPubkey
	Wildcard bool
}

// String renders "[fingerprint/path]xpub..." form, with a trailing
// "/*" if the key still carries an unsubstituted wildcard.
func (k *KeyData) String(oracle crypto.Oracle) string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(hex.EncodeToString(k.Origin.Fingerprint[:]))
	for _, idx := range k.Origin.Path {
		b.WriteByte('/')
		b.WriteString(formatPathComponent(idx))
	}
	b.WriteByte(']')
	b.WriteString(k.Key.ToBase58(oracle))
	if k.Wildcard {
		b.WriteString("/*")
	}
	return b.String()
}

func formatPathComponent(idx uint32) string {
	path := []uint32{idx}
	// Reuse FormatPath's single-component rendering, stripped of the
	// leading "m/".
	s := FormatPath(path)
	return strings.TrimPrefix(s, "m/")
}

// ParseKeyData parses a "[fingerprint/path]xpub.../*" fragment. The
// "[fingerprint/path]" origin prefix is optional; a trailing "/*" marks
// the key as wildcard (ranged).
func ParseKeyData(oracle crypto.Oracle, s string) (*KeyData, er.R) {
	kd := &KeyData{}

	if strings.HasPrefix(s, "[") {
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return nil, er.InvalidArgumentType.CodeWithDetail("UnterminatedOrigin",
				"key origin info is missing closing ']'").Default()
		}
		inner := s[1:end]
		s = s[end+1:]

		slash := strings.IndexByte(inner, '/')
		var fpHex string
		var pathStr string
		if slash < 0 {
			fpHex = inner
		} else {
			fpHex = inner[:slash]
			pathStr = inner[slash+1:]
		}
		fpBytes, herr := hex.DecodeString(fpHex)
		if herr != nil || len(fpBytes) != 4 {
			return nil, er.InvalidArgumentType.CodeWithDetail("BadFingerprint",
				"key origin fingerprint must be 8 hex characters").Default()
		}
		copy(kd.Origin.Fingerprint[:], fpBytes)

		if pathStr != "" {
			path, perr := ParsePath("m/" + pathStr)
			if perr != nil {
				return nil, perr
			}
			kd.Origin.Path = path
		}
	}

	if strings.HasSuffix(s, "/*") {
		kd.Wildcard = true
		s = strings.TrimSuffix(s, "/*")
	}

	key, kerr := ExtPubkeyFromBase58(oracle, s)
	if kerr != nil {
		return nil, kerr
	}
	kd.Key = key
	return kd, nil
}

// Derive substitutes child for a wildcard key's trailing path
// component and derives from Key, refusing hardened indices as
// ExtPubkey.DerivePath already does. A key that is not wildcarded is
// returned unchanged and child is ignored.
func (k *KeyData) Derive(oracle crypto.Oracle, child uint32) (*ExtPubkey, er.R) {
	if !k.Wildcard {
		return k.Key, nil
	}
	return k.Key.Derive(oracle, child)
}
