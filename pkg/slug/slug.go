package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures the slug generation behavior.
type Option func(*config)

type config struct {
	maxLength int
	separator string
	lowercase bool
	fold      bool
}

func defaultConfig() *config {
	return &config{
		separator: "-",
		lowercase: true,
		fold:      true,
	}
}

// MaxLength truncates the slug to n runes. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator sets the string that replaces runs of non-word characters.
// Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// Lowercase controls whether the slug is lower-cased. Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// FoldDiacritics controls whether accented letters are reduced to their base
// letter ("é" to "e") instead of being treated as separators. Default is true.
func FoldDiacritics(enabled bool) Option {
	return func(c *config) {
		c.fold = enabled
	}
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// Make turns s into an element-id and URL safe token. Word characters (ASCII
// letters, digits and underscore) are kept, every run of anything else becomes
// a single separator, and separators never lead or trail the result.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.fold {
		s = foldDiacritics(s)
	}
	if cfg.lowercase {
		s = strings.ToLower(s)
	}

	var b strings.Builder
	b.Grow(len(s))

	pendingSep := false
	runeCount := 0
	sepLen := len([]rune(cfg.separator))

	for _, r := range s {
		if !isWordRune(r) {
			pendingSep = runeCount > 0
			continue
		}

		need := 1
		if pendingSep {
			need += sepLen
		}
		if cfg.maxLength > 0 && runeCount+need > cfg.maxLength {
			break
		}

		if pendingSep {
			b.WriteString(cfg.separator)
			pendingSep = false
		}
		b.WriteRune(r)
		runeCount += need
	}

	return b.String()
}

var diacriticFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldDiacritics(s string) string {
	folded, _, err := transform.String(diacriticFolder, s)
	if err != nil {
		return s
	}
	return folded
}
