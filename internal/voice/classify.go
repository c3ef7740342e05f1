package voice

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/vovakirdan/voice-tetris/internal/games/tetris"
)

// prefixRunes is the prefix length used by loose matching.
const prefixRunes = 3

// Normalize lower-cases, trims and NFC-composes a transcript so that the
// same words spelled with different code point sequences compare equal.
func Normalize(text string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(text)))
}

// Classifier maps transcripts to commands using a Catalog.
type Classifier struct {
	catalog *Catalog
}

// NewClassifier creates a classifier. A nil catalog means the default one.
func NewClassifier(c *Catalog) *Classifier {
	if c == nil {
		c = DefaultCatalog()
	}
	return &Classifier{catalog: c}
}

// Catalog returns the phrase catalog in use.
func (c *Classifier) Catalog() *Catalog {
	return c.catalog
}

// Classify returns the first command, in priority order, whose phrases
// match text. A command matches when
//
//   - a whitespace-separated word of text is one of its phrases,
//   - one of its phrases occurs anywhere in text, or
//   - text contains anything but ASCII letters and spaces, and a phrase
//     longer than two runes shares a three-rune prefix with text in either
//     direction.
//
// The last rule lets partial transcripts in non-Latin scripts match.
func (c *Classifier) Classify(text string) (tetris.Command, bool) {
	text = Normalize(text)
	if text == "" {
		return 0, false
	}

	words := strings.Fields(text)
	loose := !isPlainLatin(text)
	textPrefix := runePrefix(text, prefixRunes)

	for _, entry := range c.catalog.entries {
		if matchesAny(text, words, textPrefix, loose, entry.All()) {
			return entry.Command, true
		}
	}
	return 0, false
}

// Classify matches text against the default catalog.
func Classify(text string) (tetris.Command, bool) {
	return NewClassifier(nil).Classify(text)
}

func matchesAny(text string, words []string, textPrefix string, loose bool, phrases []string) bool {
	for _, w := range words {
		for _, p := range phrases {
			if w == p {
				return true
			}
		}
	}
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
		if !loose || len([]rune(p)) <= 2 {
			continue
		}
		if strings.Contains(text, runePrefix(p, prefixRunes)) || strings.Contains(p, textPrefix) {
			return true
		}
	}
	return false
}

// isPlainLatin reports whether s consists only of a-z and spaces.
func isPlainLatin(s string) bool {
	for _, r := range s {
		if r != ' ' && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

func runePrefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
