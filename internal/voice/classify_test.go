package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/voice-tetris/internal/games/tetris"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want tetris.Command
		ok   bool
	}{
		// English
		{"left", tetris.MoveLeft, true},
		{"  Move LEFT  ", tetris.MoveLeft, true},
		{"please go right now", tetris.MoveRight, true},
		{"rotate", tetris.Rotate, true},
		{"spin it", tetris.Rotate, true},
		{"down", tetris.SoftDrop, true},
		{"drop", tetris.HardDrop, true},
		{"place it", tetris.HardDrop, true},

		// Romanized Telugu and Hindi
		{"edama", tetris.MoveLeft, true},
		{"kudivaipu", tetris.MoveRight, true},
		{"ghumao", tetris.Rotate, true},
		{"neeche jao", tetris.SoftDrop, true},
		{"chhodo", tetris.HardDrop, true},

		// Native scripts
		{"ఎడమ", tetris.MoveLeft, true},
		{"కుడి", tetris.MoveRight, true},
		{"घुमाओ", tetris.Rotate, true},
		{"नीचे", tetris.SoftDrop, true},
		{"వదలండి", tetris.HardDrop, true},

		// Nothing
		{"", 0, false},
		{"   ", 0, false},
		{"banana", 0, false},
		{"hello there", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			got, ok := Classify(tc.text)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassifyPriority(t *testing.T) {
	// Both left and right appear; left is checked first.
	got, ok := Classify("right then left")
	require.True(t, ok)
	assert.Equal(t, tetris.MoveLeft, got)

	got, ok = Classify("turn down")
	require.True(t, ok)
	assert.Equal(t, tetris.Rotate, got)
}

func TestClassifyLoosePrefix(t *testing.T) {
	// Truncated Telugu transcript of "లెఫ్ట్"
	got, ok := Classify("లెఫ్")
	require.True(t, ok)
	assert.Equal(t, tetris.MoveLeft, got)

	// A non-letter enables loose matching for Latin text too
	got, ok = Classify("rig!")
	require.True(t, ok)
	assert.Equal(t, tetris.MoveRight, got)

	// Plain lowercase Latin text gets no loose matching
	_, ok = Classify("rig")
	assert.False(t, ok)
}

func TestClassifyNormalizesComposition(t *testing.T) {
	// U+095C (precomposed dda with nukta) versus its decomposed form
	precomposed := "\u091b\u094b\u095c\u094b"
	decomposed := "\u091b\u094b\u0921\u093c\u094b"

	a, okA := Classify(precomposed)
	b, okB := Classify(decomposed)
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, tetris.HardDrop, a)
	assert.Equal(t, a, b)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "move left", Normalize("  Move Left\n"))
	assert.Equal(t, "", Normalize(" \t "))
}

func TestRunePrefix(t *testing.T) {
	assert.Equal(t, "lef", runePrefix("left", 3))
	assert.Equal(t, "ab", runePrefix("ab", 3))
	assert.Equal(t, "లెఫ", runePrefix("లెఫ్ట్", 3))
}

func TestUnrecognizedLeavesEngineUnchanged(t *testing.T) {
	engine := tetris.NewEngine(tetris.DefaultRows, tetris.DefaultCols, &seqRand{})
	before := engine.Snapshot()

	var mb Mailbox
	cls := NewClassifier(nil)
	for _, text := range []string{"banana", "", "what", "hmm okay"} {
		if cmd, ok := cls.Classify(text); ok {
			mb.Post(cmd)
		}
	}

	cmd, ok := mb.Take()
	if ok {
		engine.Apply(cmd)
	}
	assert.False(t, ok)
	assert.Equal(t, before, engine.Snapshot())
}

type seqRand struct{ n int }

func (r *seqRand) Intn(n int) int {
	r.n++
	return r.n % n
}
