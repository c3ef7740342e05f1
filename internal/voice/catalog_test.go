package voice

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/vovakirdan/voice-tetris/internal/games/tetris"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	entries := c.Entries()
	require.Len(t, entries, 5)
	for i, cmd := range tetris.Commands() {
		assert.Equal(t, cmd, entries[i].Command)
		assert.NotEmpty(t, entries[i].All())
	}

	langs := c.Languages()
	assert.Contains(t, langs, language.MustParse("en-US"))
	assert.Contains(t, langs, language.MustParse("te-IN"))
	assert.Contains(t, langs, language.MustParse("hi-IN"))

	assert.Contains(t, c.Phrases(tetris.MoveLeft), "move left")
	assert.Contains(t, c.Phrases(tetris.HardDrop), "వదలండి")
	assert.Nil(t, c.Phrases(tetris.Command(0)))
}

func TestParseCatalogDeduplicates(t *testing.T) {
	data := []byte(`
commands:
  - command: move_left
    phrases:
      en-US: ["Left", "left", " LEFT "]
  - command: move_right
    phrases: {en-US: [right]}
  - command: rotate
    phrases: {en-US: [rotate]}
  - command: soft_drop
    phrases: {en-US: [down]}
  - command: hard_drop
    phrases: {en-US: [drop]}
`)
	c, err := ParseCatalog(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"left"}, c.Phrases(tetris.MoveLeft))
}

func TestParseCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "commands: [\n"},
		{"unknown command", "commands:\n  - command: jump\n    phrases: {en-US: [jump]}\n"},
		{"missing commands", "commands:\n  - command: move_left\n    phrases: {en-US: [left]}\n"},
		{"bad language", "commands:\n  - command: move_left\n    phrases: {'not a tag!': [left]}\n"},
		{"no phrases", "commands:\n  - command: move_left\n    phrases: {en-US: ['  ']}\n"},
		{"duplicate", "commands:\n  - command: rotate\n    phrases: {en-US: [a]}\n  - command: rotate\n    phrases: {en-US: [b]}\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Same(t, DefaultCatalog(), c)

	path := filepath.Join(t.TempDir(), "phrases.yaml")
	require.NoError(t, os.WriteFile(path, DefaultPhrasesYAML(), 0o600))
	c, err = LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog().Entries(), c.Entries())

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCustomCatalogClassifier(t *testing.T) {
	data := []byte(`
commands:
  - command: move_left
    phrases: {de-DE: [links]}
  - command: move_right
    phrases: {de-DE: [rechts]}
  - command: rotate
    phrases: {de-DE: [drehen]}
  - command: soft_drop
    phrases: {de-DE: [runter]}
  - command: hard_drop
    phrases: {de-DE: [fallen]}
`)
	c, err := ParseCatalog(data)
	require.NoError(t, err)

	cls := NewClassifier(c)
	got, ok := cls.Classify("Drehen bitte")
	require.True(t, ok)
	assert.Equal(t, tetris.Rotate, got)

	_, ok = cls.Classify("left")
	assert.False(t, ok)
}
