package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/voice-tetris/internal/core"
)

// Command is one of the five discrete engine inputs. The zero value is not a
// valid command.
type Command int

const (
	MoveLeft Command = iota + 1
	MoveRight
	Rotate
	SoftDrop
	HardDrop
)

// Commands returns every command in matching priority order.
func Commands() []Command {
	return []Command{MoveLeft, MoveRight, Rotate, SoftDrop, HardDrop}
}

// Valid reports whether c is one of the five commands.
func (c Command) Valid() bool {
	return c >= MoveLeft && c <= HardDrop
}

// String returns the display name of the command.
func (c Command) String() string {
	switch c {
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case Rotate:
		return "Rotate"
	case SoftDrop:
		return "SoftDrop"
	case HardDrop:
		return "HardDrop"
	default:
		return "Unknown"
	}
}

// Key returns the snake_case identifier used in phrase catalogs.
func (c Command) Key() string {
	switch c {
	case MoveLeft:
		return "move_left"
	case MoveRight:
		return "move_right"
	case Rotate:
		return "rotate"
	case SoftDrop:
		return "soft_drop"
	case HardDrop:
		return "hard_drop"
	default:
		return ""
	}
}

// ParseCommand accepts either the Key or the String form, case-insensitively.
func ParseCommand(s string) (Command, error) {
	s = strings.TrimSpace(s)
	for _, c := range Commands() {
		if strings.EqualFold(s, c.Key()) || strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("tetris: unknown command %q", s)
}

// Action returns the platform action bound to the command.
func (c Command) Action() core.Action {
	switch c {
	case MoveLeft:
		return core.ActionMoveLeft
	case MoveRight:
		return core.ActionMoveRight
	case Rotate:
		return core.ActionRotate
	case SoftDrop:
		return core.ActionSoftDrop
	case HardDrop:
		return core.ActionHardDrop
	default:
		return core.ActionNone
	}
}

// CommandForAction maps a platform action back to its command, if any.
func CommandForAction(a core.Action) (Command, bool) {
	for _, c := range Commands() {
		if c.Action() == a {
			return c, true
		}
	}
	return 0, false
}
