package wat

import (
	"math"
	"strconv"
	"strings"
)

// stripUnderscores removes the digit-group separators the grammar allows in
// numeric literals (100_000 == 100000, §4.D).
func stripUnderscores(s string) string {
	if !strings.ContainsRune(s, '_') {
		return s
	}
	return strings.ReplaceAll(s, "_", "")
}

// parseU64 parses an un/signed integer literal (decimal or 0x-prefixed hex,
// underscores allowed) as an unsigned 64-bit value. A leading '-' yields the
// two's-complement wrap of the magnitude; a magnitude that does not fit in
// 64 bits is rejected with the strconv error.
func parseU64(raw string) (uint64, error) {
	s := stripUnderscores(raw)
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	var v uint64
	var err error
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err = strconv.ParseUint(s[2:], 16, 64)
	} else {
		v, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil {
		return 0, err
	}
	if neg {
		v = -v
	}
	return v, nil
}

// parseI64 is parseU64 reinterpreted as signed, for instructions whose
// immediate is logically an iN.const.
func parseI64(raw string) (int64, error) {
	v, err := parseU64(raw)
	return int64(v), err
}

// parseF32/parseF64 parse a float literal: decimal, 0x-hex-float, inf, nan,
// or nan:0xHHHH with an explicit payload (§4.D "Float literals").
func parseF64(raw string) (float64, error) {
	s := stripUnderscores(raw)
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	switch {
	case s == "inf":
		if neg {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	case s == "nan":
		return canonicalNaN(neg), nil
	case strings.HasPrefix(s, "nan:0x"):
		payload, err := strconv.ParseUint(s[len("nan:0x"):], 16, 64)
		if err != nil {
			return 0, err
		}
		bits := uint64(0x7FF8000000000000) | (payload &^ 0xFFF0000000000000)
		if neg {
			bits |= 1 << 63
		}
		return math.Float64frombits(bits), nil
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseFloat(signed(neg, "0x"+s[2:]), 64)
		return v, err
	default:
		v, err := strconv.ParseFloat(signed(neg, s), 64)
		return v, err
	}
}

func parseF32(raw string) (float32, error) {
	v, err := parseF64(raw)
	return float32(v), err
}

func signed(neg bool, s string) string {
	if neg {
		return "-" + s
	}
	return s
}

func canonicalNaN(neg bool) float64 {
	bits := uint64(0x7FF8000000000000)
	if neg {
		bits |= 1 << 63
	}
	return math.Float64frombits(bits)
}
