package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/they4kman/termsweep/game"
)

type ActionType int

const (
	ActionNone ActionType = iota
	ActionMove
	ActionClick
	ActionPointer
	ActionPointerClick
	ActionQuit
	ActionResize
)

func (actionType ActionType) String() string {
	switch actionType {
	case ActionNone:
		return "none"
	case ActionMove:
		return "move"
	case ActionClick:
		return "click"
	case ActionPointer:
		return "pointer"
	case ActionPointerClick:
		return "pointer-click"
	case ActionQuit:
		return "quit"
	case ActionResize:
		return "resize"
	}
	return "unknown"
}

// Action is one decoded input event
type Action struct {
	Type      ActionType
	Direction game.Direction
	// Screen position, for pointer actions
	X, Y int
}

var keyDirections = map[tcell.Key]game.Direction{
	tcell.KeyLeft:  game.Left,
	tcell.KeyDown:  game.Down,
	tcell.KeyUp:    game.Up,
	tcell.KeyRight: game.Right,
}

var runeDirections = map[rune]game.Direction{
	'h': game.Left,
	'j': game.Down,
	'k': game.Up,
	'l': game.Right,
}

// Translator turns terminal events into actions. It remembers the mouse
// buttons so that holding the left button down yields a single click.
type Translator struct {
	buttons tcell.ButtonMask
}

func (translator *Translator) Translate(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)

	case *tcell.EventMouse:
		x, y := ev.Position()
		buttons := ev.Buttons()
		pressed := buttons &^ translator.buttons
		translator.buttons = buttons

		if pressed&tcell.Button1 != 0 {
			return Action{Type: ActionPointerClick, X: x, Y: y}
		}
		return Action{Type: ActionPointer, X: x, Y: y}

	case *tcell.EventResize:
		return Action{Type: ActionResize}
	}

	return Action{Type: ActionNone}
}

func translateKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Type: ActionQuit}
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q':
			return Action{Type: ActionQuit}
		case ' ':
			return Action{Type: ActionClick}
		default:
			if direction, ok := runeDirections[r]; ok {
				return Action{Type: ActionMove, Direction: direction}
			}
		}
	default:
		if direction, ok := keyDirections[ev.Key()]; ok {
			return Action{Type: ActionMove, Direction: direction}
		}
	}

	return Action{Type: ActionNone}
}

// Apply performs the action on the field and reports whether it changed
func Apply(field *game.MineField, action Action) bool {
	switch action.Type {
	case ActionMove:
		return field.Move(action.Direction)
	case ActionClick:
		return field.Click()
	case ActionPointer:
		return field.UpdateByPointer(action.X, action.Y)
	case ActionPointerClick:
		return field.ClickAt(action.X, action.Y)
	}
	return false
}
