package sanitizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// RemoveSpaces drops every space character, leaving other whitespace alone.
func RemoveSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// RemoveWhitespace drops all Unicode whitespace.
func RemoveWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// RemoveHyphens drops hyphen-minus characters, as typed in sort codes or phone numbers.
func RemoveHyphens(s string) string {
	return strings.ReplaceAll(s, "-", "")
}

// KeepDigits returns only the ASCII digits in s.
func KeepDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Capitalise upper-cases the first rune and leaves the rest untouched.
func Capitalise(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

var namedTransforms = map[string]func(string) string{
	"trim":             Trim,
	"lowercase":        ToLower,
	"uppercase":        ToUpper,
	"removeSpaces":     RemoveSpaces,
	"removeWhitespace": RemoveWhitespace,
	"removeHyphens":    RemoveHyphens,
	"removeCommas":     func(s string) string { return StripCommas(s) },
	"keepDigits":       KeepDigits,
}

// Lookup returns the transform registered under name.
func Lookup(name string) (func(string) string, bool) {
	fn, ok := namedTransforms[name]
	return fn, ok
}

// Pipeline composes named transforms, failing on the first unknown name.
func Pipeline(names ...string) (func(string) string, error) {
	fns := make([]func(string) string, 0, len(names))
	for _, name := range names {
		fn, ok := Lookup(name)
		if !ok {
			return nil, &UnknownTransformError{Name: name}
		}
		fns = append(fns, fn)
	}
	return Compose(fns...), nil
}

// UnknownTransformError reports a transform name with no registered function.
type UnknownTransformError struct {
	Name string
}

func (e *UnknownTransformError) Error() string {
	return "sanitizer: unknown transform " + e.Name
}
