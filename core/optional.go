package core

import (
	"math"
	"strconv"
	"strings"
)

// Optional is an explicitly optional numeric attribute value.
// The zero value is absent. Absent values never abort scoring; they only
// reduce the numerical signal for the pair.
type Optional struct {
	Val     float64
	Defined bool
}

// Some returns a defined Optional holding v.
// NaN and infinities are not representable attribute values and collapse to absent.
func Some(v float64) Optional {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Optional{}
	}
	return Optional{Val: v, Defined: true}
}

// None returns an absent Optional.
func None() Optional {
	return Optional{}
}

// ParseOptional converts a raw cell value into an Optional.
// Blank strings and values that do not parse as a finite number are absent.
func ParseOptional(raw string) Optional {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Optional{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Optional{}
	}
	return Some(v)
}

// String renders the value for text templates. Absent values render as
// "unspecified" so the sentence stays grammatical.
func (o Optional) String() string {
	if !o.Defined {
		return "unspecified"
	}
	return strconv.FormatFloat(o.Val, 'f', -1, 64)
}
