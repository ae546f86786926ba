package game

import "time"

// Content is the lower half of a cell: either Empty, an adjacent-mine count
// from 1 to 8, or the Mine sentinel. Values 9 through 14 are never produced.
type Content uint8

const (
	Empty Content = iota
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
)

const Mine Content = 15

// Direction of a keyboard cursor move
type Direction int

const (
	Left Direction = iota
	Down
	Up
	Right
)

var Directions = []Direction{
	Left,
	Down,
	Up,
	Right,
}

func (direction Direction) String() string {
	switch direction {
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	case Right:
		return "right"
	}
	return "unknown"
}

// Slot selects one of the three color pairs a cell can be painted with
type Slot int

const (
	SlotClosed Slot = iota
	SlotOpened
	SlotEnding
)

func (slot Slot) String() string {
	switch slot {
	case SlotClosed:
		return "closed"
	case SlotOpened:
		return "opened"
	case SlotEnding:
		return "ending"
	}
	return "unknown"
}

const (
	GlyphClosed   = 'L'
	GlyphExploded = '*'
	GlyphBlink    = '@'
)

// Glyphs for opened cells, indexed by Content
var contentGlyphs = []rune("_12345678......@")

const (
	DefaultWidth       = 16
	DefaultHeight      = 8
	DefaultNumMines    = 12
	DefaultIdleTimeout = 10 * time.Millisecond
	DefaultBlinkPeriod = 80
)
