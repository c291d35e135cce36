package sanitizer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseNumber is a lenient numeric parse: surrounding whitespace is ignored and
// any finite decimal or exponent form is accepted.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ToFloat converts loosely typed numeric input (numbers or numeric strings,
// with or without thousands separators) to float64.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case float32:
		return ToFloat(float64(n))
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		return ParseNumber(StripCommas(n))
	case fmt.Stringer:
		return ParseNumber(StripCommas(n.String()))
	default:
		return 0, false
	}
}

// StripCommas removes thousands separators and surrounding whitespace.
func StripCommas(v any) string {
	return strings.ReplaceAll(strings.TrimSpace(toString(v)), ",", "")
}

// AddCommas groups the integer digits of v in threes. Non-numeric input is
// returned unchanged.
func AddCommas(v any) string {
	s := toString(v)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" || KeepDigits(intPart) != intPart {
		return sign + s
	}

	var b strings.Builder
	b.Grow(len(intPart) + len(intPart)/3)
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	if hasFrac {
		return sign + b.String() + "." + fracPart
	}
	return sign + b.String()
}

var currencySymbols = []string{"£", "$", "€"}

// StripCurrencySymbol removes a single leading currency symbol.
func StripCurrencySymbol(s string) string {
	s = strings.TrimSpace(s)
	for _, symbol := range currencySymbols {
		if rest, ok := strings.CutPrefix(s, symbol); ok {
			return strings.TrimSpace(rest)
		}
	}
	return s
}

// ZeroPad left-pads a single numeric digit with 0, leaving everything else alone.
func ZeroPad(s string) string {
	if len(s) != 1 {
		return s
	}
	if s[0] < '0' || s[0] > '9' {
		return s
	}
	return "0" + s
}

func toString(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}
