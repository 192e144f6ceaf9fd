// Package wire implements the Bitcoin/Elements transaction wire
// format: CompactSize-backed primitive codecs, OutPoint/TxIn/TxOut,
// the Transaction type itself, and signature-hash computation for
// legacy, BIP143, and BIP341 spends.
package wire

import (
	"encoding/binary"

	"github.com/pktcore/txcore/er"
)

// MaxCompactSizePayload bounds a single CompactSize-prefixed read to
// guard against a maliciously large length field causing an
// unbounded allocation.
const MaxCompactSizePayload = 32 * 1024 * 1024

// Serializer accumulates bytes written in the consensus wire format.
type Serializer struct {
	buf []byte
}

// NewSerializer returns an empty Serializer with cap preallocated.
func NewSerializer(capHint int) *Serializer {
	return &Serializer{buf: make([]byte, 0, capHint)}
}

func (s *Serializer) Bytes() []byte { return s.buf }

func (s *Serializer) WriteByte(b byte) { s.buf = append(s.buf, b) }

func (s *Serializer) WriteBytes(b []byte) { s.buf = append(s.buf, b...) }

func (s *Serializer) WriteUint32LE(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	s.buf = append(s.buf, b[:]...)
}

func (s *Serializer) WriteUint32BE(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	s.buf = append(s.buf, b[:]...)
}

func (s *Serializer) WriteUint64LE(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	s.buf = append(s.buf, b[:]...)
}

func (s *Serializer) WriteInt64LE(v int64) { s.WriteUint64LE(uint64(v)) }

// WriteCompactSize writes Bitcoin's variable-length integer encoding:
// <0xfd -> 1 byte; 0xfd u16; 0xfe u32; 0xff u64.
func (s *Serializer) WriteCompactSize(v uint64) {
	switch {
	case v < 0xfd:
		s.WriteByte(byte(v))
	case v <= 0xffff:
		s.WriteByte(0xfd)
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(v))
		s.buf = append(s.buf, b[:]...)
	case v <= 0xffffffff:
		s.WriteByte(0xfe)
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(v))
		s.buf = append(s.buf, b[:]...)
	default:
		s.WriteByte(0xff)
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], v)
		s.buf = append(s.buf, b[:]...)
	}
}

// WriteVarBytes writes a CompactSize length followed by the raw bytes.
func (s *Serializer) WriteVarBytes(b []byte) {
	s.WriteCompactSize(uint64(len(b)))
	s.WriteBytes(b)
}

// CompactSizeLen returns the number of bytes WriteCompactSize would emit for v.
func CompactSizeLen(v uint64) int {
	switch {
	case v < 0xfd:
		return 1
	case v <= 0xffff:
		return 3
	case v <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

var (
	errUnexpectedEOF = er.InvalidArgumentType.CodeWithDetail("UnexpectedEOF",
		"buffer ended before the expected field could be read").Default()
	errNonMinimalCompactSize = er.InvalidArgumentType.CodeWithDetail("NonMinimalCompactSize",
		"CompactSize value was not encoded in its minimal form").Default()
	errCompactSizeTooLarge = er.InvalidArgumentType.CodeWithDetail("CompactSizeTooLarge",
		"CompactSize length exceeds the maximum allowed payload").Default()
)

// Deserializer is a forward-only byte cursor over a consensus-encoded
// buffer. It tracks how many bytes have been consumed so callers (the
// PSBT parser in particular) can assert no trailing bytes remain.
type Deserializer struct {
	buf []byte
	pos int
}

// NewDeserializer wraps buf for sequential reads starting at offset 0.
func NewDeserializer(buf []byte) *Deserializer { return &Deserializer{buf: buf} }

// Pos returns the number of bytes consumed so far.
func (d *Deserializer) Pos() int { return d.pos }

// Remaining returns the number of unconsumed bytes.
func (d *Deserializer) Remaining() int { return len(d.buf) - d.pos }

// AtEOF reports whether every byte has been consumed.
func (d *Deserializer) AtEOF() bool { return d.pos >= len(d.buf) }

func (d *Deserializer) take(n int) ([]byte, er.R) {
	if d.pos+n > len(d.buf) {
		return nil, errUnexpectedEOF
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

func (d *Deserializer) ReadByte() (byte, er.R) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *Deserializer) ReadBytes(n int) ([]byte, er.R) {
	b, err := d.take(n)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), b...), nil
}

func (d *Deserializer) ReadUint32LE() (uint32, er.R) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (d *Deserializer) ReadUint32BE() (uint32, er.R) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (d *Deserializer) ReadUint64LE() (uint64, er.R) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (d *Deserializer) ReadInt64LE() (int64, er.R) {
	v, err := d.ReadUint64LE()
	return int64(v), err
}

// ReadCompactSize reads Bitcoin's varint encoding, rejecting
// non-minimal forms (e.g. `fd 00 00` for value 0) per strict-read
// rules that matter most in PSBT parsing.
func (d *Deserializer) ReadCompactSize() (uint64, er.R) {
	first, err := d.ReadByte()
	if err != nil {
		return 0, err
	}
	switch first {
	case 0xfd:
		b, err := d.take(2)
		if err != nil {
			return 0, err
		}
		v := uint64(binary.LittleEndian.Uint16(b))
		if v < 0xfd {
			return 0, errNonMinimalCompactSize
		}
		return v, nil
	case 0xfe:
		b, err := d.take(4)
		if err != nil {
			return 0, err
		}
		v := uint64(binary.LittleEndian.Uint32(b))
		if v <= 0xffff {
			return 0, errNonMinimalCompactSize
		}
		return v, nil
	case 0xff:
		b, err := d.take(8)
		if err != nil {
			return 0, err
		}
		v := binary.LittleEndian.Uint64(b)
		if v <= 0xffffffff {
			return 0, errNonMinimalCompactSize
		}
		return v, nil
	default:
		return uint64(first), nil
	}
}

// ReadVarBytes reads a CompactSize length then that many raw bytes.
func (d *Deserializer) ReadVarBytes() ([]byte, er.R) {
	n, err := d.ReadCompactSize()
	if err != nil {
		return nil, err
	}
	if n > MaxCompactSizePayload {
		return nil, errCompactSizeTooLarge
	}
	return d.ReadBytes(int(n))
}
