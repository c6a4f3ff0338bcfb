package models

import (
	"math"
	"strconv"
	"strings"
)

// Numeric is a number promoted from a string-typed upstream field. Malformed
// upstream strings become NaN instead of failing the whole fetch; since
// encoding/json refuses NaN, it marshals as null in that case.
type Numeric float64

// ParseNumeric promotes an upstream numeric string. Both decimal and
// 0x-prefixed hexadecimal spellings appear across endpoints.
func ParseNumeric(s string) Numeric {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return Numeric(math.NaN())
		}
		return Numeric(v)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Numeric(math.NaN())
	}
	return Numeric(v)
}

// IsNaN reports whether the value failed to parse.
func (n Numeric) IsNaN() bool {
	return math.IsNaN(float64(n))
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	if n.IsNaN() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(float64(n), 'f', -1, 64)), nil
}

func (n *Numeric) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Numeric(math.NaN())
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*n = Numeric(math.NaN())
		return nil
	}
	*n = Numeric(v)
	return nil
}
