package main

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("tetris %s: %v", strings.Join(args, " "), err)
	}
	return buf.String()
}

func TestClassifyCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"classify", "move", "left"}, `"move left" -> MoveLeft (move_left)`},
		{[]string{"classify", "ఎడమ"}, "-> MoveLeft"},
		{[]string{"classify", "Drop"}, "-> HardDrop (hard_drop)"},
		{[]string{"classify", "banana"}, `"banana" -> none`},
	}

	for _, tt := range tests {
		out := execute(t, tt.args...)
		if !strings.Contains(out, tt.want) {
			t.Errorf("%v: output %q does not contain %q", tt.args, out, tt.want)
		}
	}
}

func TestListCommand(t *testing.T) {
	out := execute(t, "list")
	if !strings.Contains(out, "tetris") || !strings.Contains(out, "Tetris") {
		t.Errorf("list output missing tetris: %q", out)
	}
}

func TestPhrasesCommand(t *testing.T) {
	out := execute(t, "phrases", "--lang", "en-US")
	for _, want := range []string{"move_left", "hard_drop", "go right"} {
		if !strings.Contains(out, want) {
			t.Errorf("phrases output missing %q", want)
		}
	}
	if strings.Contains(out, "ఎడమ") {
		t.Error("--lang en-US printed Telugu phrases")
	}
}

func TestConfigCommand(t *testing.T) {
	t.Setenv("TETRIS_GRAVITY_BASE_MS", "800")
	out := execute(t, "config", "--config", "")
	if !strings.Contains(out, "base_ms: 800") {
		t.Errorf("config output missing env override: %q", out)
	}
}
