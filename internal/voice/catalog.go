// Package voice turns spoken transcripts into game commands. It holds the
// multilingual phrase catalog, the classifier that matches transcripts
// against it, and the plumbing that carries matches from a recognizer
// goroutine to the game loop.
package voice

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/voice-tetris/internal/games/tetris"
)

//go:embed phrases.yaml
var defaultPhrasesYAML []byte

// DefaultPhrasesYAML returns the embedded phrase catalog source.
func DefaultPhrasesYAML() []byte {
	return defaultPhrasesYAML
}

// Entry holds the phrases that trigger one command.
type Entry struct {
	Command tetris.Command
	// Phrases maps a language to its normalized phrases.
	Phrases map[language.Tag][]string
}

// All returns every phrase of the entry across languages, in language order.
func (e Entry) All() []string {
	var out []string
	for _, tag := range sortedTags(e.Phrases) {
		out = append(out, e.Phrases[tag]...)
	}
	return out
}

// Catalog is an immutable phrase table. Entries are kept in command
// priority order.
type Catalog struct {
	entries   []Entry
	languages []language.Tag
}

type catalogFile struct {
	Commands []struct {
		Command string              `yaml:"command"`
		Phrases map[string][]string `yaml:"phrases"`
	} `yaml:"commands"`
}

var defaultCatalog = mustParseCatalog(defaultPhrasesYAML)

func mustParseCatalog(data []byte) *Catalog {
	c, err := ParseCatalog(data)
	if err != nil {
		panic(fmt.Sprintf("voice: embedded phrases: %v", err))
	}
	return c
}

// DefaultCatalog returns the embedded English, Telugu and Hindi catalog.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// LoadCatalog reads a catalog from path. An empty path yields the default.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("voice: read catalog: %w", err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("voice: %s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog decodes a YAML catalog. Every command must appear exactly
// once with at least one phrase. Phrases are normalized the same way
// transcripts are, and duplicates within a language are dropped.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	byCommand := make(map[tetris.Command]Entry, len(file.Commands))
	seenLang := make(map[language.Tag]bool)

	for _, raw := range file.Commands {
		cmd, err := tetris.ParseCommand(raw.Command)
		if err != nil {
			return nil, err
		}
		if _, dup := byCommand[cmd]; dup {
			return nil, fmt.Errorf("command %s listed twice", cmd.Key())
		}

		entry := Entry{Command: cmd, Phrases: make(map[language.Tag][]string)}
		count := 0
		for lang, phrases := range raw.Phrases {
			tag, err := language.Parse(lang)
			if err != nil {
				return nil, fmt.Errorf("command %s: language %q: %w", cmd.Key(), lang, err)
			}
			list := normalizeAll(phrases)
			if len(list) == 0 {
				continue
			}
			entry.Phrases[tag] = append(entry.Phrases[tag], list...)
			count += len(list)
			seenLang[tag] = true
		}
		if count == 0 {
			return nil, fmt.Errorf("command %s has no phrases", cmd.Key())
		}
		byCommand[cmd] = entry
	}

	c := &Catalog{languages: sortedTags(seenLang)}
	for _, cmd := range tetris.Commands() {
		entry, ok := byCommand[cmd]
		if !ok {
			return nil, fmt.Errorf("command %s missing", cmd.Key())
		}
		c.entries = append(c.entries, entry)
	}
	return c, nil
}

// Entries returns the catalog entries in priority order.
func (c *Catalog) Entries() []Entry {
	return slices.Clone(c.entries)
}

// Languages returns every language that has at least one phrase.
func (c *Catalog) Languages() []language.Tag {
	return slices.Clone(c.languages)
}

// Phrases returns all phrases for cmd, or nil if cmd is not a command.
func (c *Catalog) Phrases(cmd tetris.Command) []string {
	for _, e := range c.entries {
		if e.Command == cmd {
			return e.All()
		}
	}
	return nil
}

func normalizeAll(phrases []string) []string {
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = Normalize(p)
		if p == "" || slices.Contains(out, p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func sortedTags[V any](m map[language.Tag]V) []language.Tag {
	tags := make([]language.Tag, 0, len(m))
	for tag := range m {
		tags = append(tags, tag)
	}
	slices.SortFunc(tags, func(a, b language.Tag) int {
		return strings.Compare(a.String(), b.String())
	})
	return tags
}
