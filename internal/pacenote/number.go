package pacenote

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// NumberState tells whether a numeric field was present and usable.
type NumberState int

const (
	Absent NumberState = iota
	Invalid
	Valid
)

func (s NumberState) String() string {
	switch s {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "absent"
	}
}

// Number is an optional numeric field.
type Number struct {
	Value float64
	State NumberState
}

// Some returns a valid number.
func Some(v float64) Number { return Number{Value: v, State: Valid} }

// None returns an absent number.
func None() Number { return Number{} }

// Bad returns an invalid number, the result of a failed parse.
func Bad() Number { return Number{Value: math.NaN(), State: Invalid} }

// OK reports whether the number holds a parsed value.
func (n Number) OK() bool { return n.State == Valid }

// Float returns the value, or NaN when the number is absent or invalid.
func (n Number) Float() float64 {
	if n.State != Valid {
		return math.NaN()
	}
	return n.Value
}

func (n Number) String() string {
	if n.State != Valid {
		return n.State.String()
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// ParseNumber reads the longest leading decimal literal of field, tolerating
// trailing garbage ("12km" is 12). A field without such a prefix is Invalid.
func ParseNumber(field string) Number {
	prefix := numericPrefix(strings.TrimLeft(field, " \t"))
	if prefix == "" {
		return Bad()
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		// Overflow and underflow saturate to ±Inf or 0.
		if errors.Is(err, strconv.ErrRange) {
			return Some(v)
		}
		return Bad()
	}
	return Some(v)
}

func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return s[:i] + "Inf"
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return ""
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > start {
			i = j
		}
	}
	return s[:i]
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
