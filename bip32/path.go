package bip32

import (
	"strconv"
	"strings"

	"github.com/pktcore/txcore/er"
)

// Wildcard is the sentinel path component rendered by a trailing "/*"
// in descriptor-style key fragments (§4.2). It is legal only as the
// final component and must be substituted by a caller-supplied child
// number before the path can be walked.
const Wildcard = ^uint32(0)

// ParsePath parses a "/"-separated derivation path. The first
// component may be "m" or "M" (stripped, only meaningful at depth 0).
// Hardened components end in ', h, or H, or are given as a raw number
// >= 2^31; components may be hex-prefixed with "0x". A trailing "*"
// component is retained as Wildcard for the caller to substitute.
func ParsePath(s string) ([]uint32, er.R) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, "/")
	if parts[0] == "m" || parts[0] == "M" {
		parts = parts[1:]
	}
	out := make([]uint32, 0, len(parts))
	for i, p := range parts {
		if p == "" {
			return nil, er.InvalidArgumentType.CodeWithDetail("EmptyPathComponent",
				"derivation path contains an empty component").Default()
		}
		if p == "*" {
			if i != len(parts)-1 {
				return nil, er.InvalidArgumentType.CodeWithDetail("WildcardNotTerminal",
					"wildcard '*' is only legal as the final path component").Default()
			}
			out = append(out, Wildcard)
			continue
		}
		idx, err := parsePathComponent(p)
		if err != nil {
			return nil, err
		}
		out = append(out, idx)
	}
	return out, nil
}

func parsePathComponent(p string) (uint32, er.R) {
	hardened := false
	if strings.HasSuffix(p, "'") || strings.HasSuffix(p, "h") || strings.HasSuffix(p, "H") {
		hardened = true
		p = p[:len(p)-1]
	}

	var value uint64
	var err error
	if strings.HasPrefix(p, "0x") || strings.HasPrefix(p, "0X") {
		value, err = strconv.ParseUint(p[2:], 16, 32)
	} else {
		value, err = strconv.ParseUint(p, 10, 32)
	}
	if err != nil {
		return 0, er.InvalidArgumentType.CodeWithDetail("BadPathComponent",
			"derivation path component is not a valid index: "+p).Default()
	}

	if value >= uint64(HardenedBit) {
		// A raw number >= 2^31 is already a hardened index; a trailing
		// hardened marker on top of that is redundant, not an error.
		return uint32(value), nil
	}
	if hardened {
		value |= uint64(HardenedBit)
	}
	return uint32(value), nil
}

// FormatPath renders a path back to "m/44'/0'/0'" form, using "'" for
// the hardened marker.
func FormatPath(path []uint32) string {
	var b strings.Builder
	b.WriteString("m")
	for _, idx := range path {
		b.WriteString("/")
		if idx == Wildcard {
			b.WriteString("*")
			continue
		}
		if IsHardened(idx) {
			b.WriteString(strconv.FormatUint(uint64(idx&^HardenedBit), 10))
			b.WriteString("'")
		} else {
			b.WriteString(strconv.FormatUint(uint64(idx), 10))
		}
	}
	return b.String()
}

// SubstituteWildcard replaces a trailing Wildcard component with child,
// leaving other paths unchanged.
func SubstituteWildcard(path []uint32, child uint32) []uint32 {
	if len(path) == 0 || path[len(path)-1] != Wildcard {
		return path
	}
	out := append([]uint32(nil), path[:len(path)-1]...)
	return append(out, child)
}
