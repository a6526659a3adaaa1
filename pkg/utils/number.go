package utils

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// floatPrefix matches the longest decimal literal at the start of a string.
var floatPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// ParseFloatPrefix reads a number the way a browser's parseFloat does: leading
// whitespace is skipped and the longest numeric prefix wins ("12abc" is 12).
// ok is false when the text has no numeric prefix. Overflow yields ±Inf.
func ParseFloatPrefix(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\ufeff'
	})
	m := floatPrefix.FindString(s)
	if IsEmpty(m) {
		return math.NaN(), false
	}

	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, true
		}
		return math.NaN(), false
	}
	return v, true
}

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
