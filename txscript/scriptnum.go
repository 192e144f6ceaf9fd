package txscript

import "github.com/pktcore/txcore/er"

// DefaultScriptNumLen is the maximum number of bytes data being
// interpreted as an integer may be for the majority of op codes.
const DefaultScriptNumLen = 4

// ScriptNum represents a numeric value used in the scripting engine
// with special handling to deal with the subtle semantics required by
// consensus. All numbers are stored on the data and alt stacks encoded
// as little-endian with a sign bit. All numeric opcodes such as
// OP_ADD, OP_SUB, and OP_MUL, are only allowed to operate on 4-byte
// integers in the range [-2^31+1, 2^31-1], but results of numeric
// operations may overflow and remain valid so long as they are not
// used as input to other numeric operations or pushed onto the stack.
type ScriptNum int64

// checkMinimalDataEncoding returns whether or not the passed byte
// array adheres to the minimal encoding rules.
func checkMinimalDataEncoding(v []byte) er.R {
	if len(v) == 0 {
		return nil
	}

	// Check that the number is encoded with the minimum possible
	// number of bytes.
	//
	// If the most-significant-byte - excluding the sign bit - is zero
	// then we're not minimal. Note how this test also rejects the
	// negative-zero encoding, [0x80].
	if v[len(v)-1]&0x7f == 0 {
		// One exception: if there's more than one byte and the most
		// significant bit of the second-to-last byte is set it would
		// conflict with the sign bit, so a single 0 byte is required
		// in that case.
		if len(v) == 1 || v[len(v)-2]&0x80 == 0 {
			return er.InvalidArgumentType.CodeWithDetail("MinimalData",
				"numeric value encoded is not minimally encoded").Default()
		}
	}

	return nil
}

// makeScriptNum interprets v as a little-endian signed-magnitude
// integer and returns the resulting ScriptNum. It validates v is not
// longer than scriptNumLen bytes and, if requireMinimal is true, that
// v is minimally encoded.
func makeScriptNum(v []byte, requireMinimal bool, scriptNumLen int) (ScriptNum, er.R) {
	if len(v) > scriptNumLen {
		return 0, er.InvalidArgumentType.CodeWithDetail("NumberTooBig",
			"numeric value encoded exceeds max allowed length").Default()
	}
	if requireMinimal {
		if err := checkMinimalDataEncoding(v); err != nil {
			return 0, err
		}
	}
	if len(v) == 0 {
		return 0, nil
	}

	var result int64
	for i, b := range v {
		result |= int64(b) << uint8(8*i)
	}

	// The most significant byte having the sign bit set indicates a
	// negative number.
	if v[len(v)-1]&0x80 != 0 {
		result &= ^(int64(0x80) << uint8(8*(len(v)-1)))
		return ScriptNum(-result), nil
	}
	return ScriptNum(result), nil
}

// Bytes returns the number serialized as a little endian
// signed-magnitude integer, matching the format used by the script
// stack.
func (n ScriptNum) Bytes() []byte {
	if n == 0 {
		return nil
	}

	isNegative := n < 0
	m := int64(n)
	if isNegative {
		m = -m
	}

	var result []byte
	for m > 0 {
		result = append(result, byte(m&0xff))
		m >>= 8
	}

	if result[len(result)-1]&0x80 != 0 {
		extraByte := byte(0x00)
		if isNegative {
			extraByte = 0x80
		}
		result = append(result, extraByte)
	} else if isNegative {
		result[len(result)-1] |= 0x80
	}

	return result
}

// Int32 returns the script number clamped to [-2147483647, 2147483647].
// That is to say, if the script number is greater than the max int32,
// 2147483647 is returned, and if it is below -2147483647 (including
// the int32 minimum, -2147483648), -2147483647 is returned.
func (n ScriptNum) Int32() int32 {
	if int64(n) > 2147483647 {
		return 2147483647
	}
	if int64(n) < -2147483647 {
		return -2147483647
	}
	return int32(n)
}
