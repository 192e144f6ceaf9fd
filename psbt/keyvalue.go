// Package psbt implements BIP174 Partially Signed Bitcoin
// Transactions: binary parse/serialize, the per-input UTXO/signature
// workflow, and finalization into a broadcastable transaction.
package psbt

import (
	"bytes"

	"github.com/pktcore/txcore/btcutil/util/tmap"
	"github.com/pktcore/txcore/er"
	"github.com/pktcore/txcore/wire"
)

// Magic is the 5-byte PSBT file signature.
var Magic = [5]byte{0x70, 0x73, 0x62, 0x74, 0xff}

// keyValue is one raw `<keylen><key><vallen><value>` record: key[0] is
// the field type, key[1:] is the field's key-data (e.g. a pubkey for
// PARTIAL_SIG), value is the field payload.
type keyValue struct {
	Type    byte
	KeyData []byte
	Value   []byte
}

func (kv keyValue) rawKey() []byte {
	return append([]byte{kv.Type}, kv.KeyData...)
}

func compareKV(a, b *[]byte) int { return bytes.Compare(*a, *b) }

// kvMap is a PSBT map: raw key bytes (type byte ‖ key-data) to value
// bytes, always walked/serialized in ascending key order per BIP174's
// canonicalization rule.
type kvMap struct {
	m *tmap.Map[[]byte, []byte]
}

func newKVMap() *kvMap {
	return &kvMap{m: tmap.New[[]byte, []byte](compareKV)}
}

var errDuplicateKey = er.DuplicatedType.CodeWithDetail("DuplicateMapKey",
	"a PSBT map contains the same key twice").Default()

func (m *kvMap) insert(kv keyValue) er.R {
	k := kv.rawKey()
	v := append([]byte(nil), kv.Value...)
	if prevK, _ := tmap.Insert(m.m, &k, &v); prevK != nil {
		return errDuplicateKey
	}
	return nil
}

// set overwrites (or inserts) the value for a key, used by operations
// that mutate an already-parsed map (SetTxInUtxo, Finalize, ...).
func (m *kvMap) set(typ byte, keyData, value []byte) {
	k := append([]byte{typ}, keyData...)
	v := append([]byte(nil), value...)
	tmap.Insert(m.m, &k, &v)
}

func (m *kvMap) get(typ byte, keyData []byte) ([]byte, bool) {
	k := append([]byte{typ}, keyData...)
	v, ok := tmap.Get(m.m, &k)
	if !ok {
		return nil, false
	}
	return *v, true
}

func (m *kvMap) delete(typ byte, keyData []byte) {
	k := append([]byte{typ}, keyData...)
	tmap.Delete(m.m, &k)
}

// getAll returns every entry whose key's type byte matches typ,
// keyed by the key-data suffix — used for PARTIAL_SIG and
// BIP32_DERIVATION, which are keyed collections.
func (m *kvMap) getAll(typ byte) map[string][]byte {
	out := map[string][]byte{}
	for _, k := range tmap.Keys(m.m) {
		key := *k
		if len(key) == 0 || key[0] != typ {
			continue
		}
		v, _ := tmap.Get(m.m, k)
		out[string(key[1:])] = *v
	}
	return out
}

func (m *kvMap) serialize(s *wire.Serializer) {
	for _, k := range tmap.Keys(m.m) {
		v, _ := tmap.Get(m.m, k)
		s.WriteVarBytes(*k)
		s.WriteVarBytes(*v)
	}
	s.WriteByte(0x00)
}

var errUnexpectedEOFMap = er.InvalidArgumentType.CodeWithDetail("TruncatedPsbtMap",
	"PSBT map ended before its terminating zero key").Default()

func parseKVMap(d *wire.Deserializer) (*kvMap, er.R) {
	m := newKVMap()
	for {
		if d.AtEOF() {
			return nil, errUnexpectedEOFMap
		}
		keyLen, err := d.ReadCompactSize()
		if err != nil {
			return nil, err
		}
		if keyLen == 0 {
			return m, nil
		}
		keyBytes, err := d.ReadBytes(int(keyLen))
		if err != nil {
			return nil, err
		}
		value, err := d.ReadVarBytes()
		if err != nil {
			return nil, err
		}
		if err := m.insert(keyValue{Type: keyBytes[0], KeyData: keyBytes[1:], Value: value}); err != nil {
			return nil, err
		}
	}
}
