package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/they4kman/termsweep/game"
)

// Screen paints a field onto a terminal, one character per cell with the
// grid anchored at the top-left corner
type Screen struct {
	screen  tcell.Screen
	palette game.Palette[tcell.Color]
}

// OpenScreen initializes the real terminal
func OpenScreen() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing screen")
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()

	return NewScreen(screen), nil
}

func NewScreen(screen tcell.Screen) *Screen {
	return &Screen{
		screen:  screen,
		palette: DefaultPalette(),
	}
}

func (s *Screen) SetPalette(palette game.Palette[tcell.Color]) {
	s.palette = palette
}

func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

func (s *Screen) Fini() {
	s.screen.Fini()
}

// Draw writes text starting at (x, y), clipped to the screen width
func (s *Screen) Draw(x, y int, attrs tcell.AttrMask, bg, fg tcell.Color, text string) {
	width, height := s.screen.Size()
	if y < 0 || y >= height {
		return
	}

	style := tcell.StyleDefault.Background(bg).Foreground(fg).Attributes(attrs)
	for _, r := range text {
		if x >= width {
			break
		}
		if x >= 0 {
			s.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

// Refresh redraws every cell of the field
func (s *Screen) Refresh(field *game.MineField) {
	for row := 0; row < field.Height(); row++ {
		for col := 0; col < field.Width(); col++ {
			view := game.View[tcell.Color](field, s.palette, row, col)
			s.Draw(col, row, tcell.AttrBold, view.Background, view.Foreground, string(view.Glyph))
		}
	}
	s.screen.Show()
}

// ShowStatus writes the status line just below the grid
func (s *Screen) ShowStatus(field *game.MineField, text string) {
	s.Draw(0, field.Height()+1, tcell.AttrNone, statusBackground, statusForeground, text)
	s.screen.Show()
}

// ShowResult writes the end-of-game message under the status line
func (s *Screen) ShowResult(field *game.MineField, text string) {
	fg := failureForeground
	if field.IsSucceeded() {
		fg = successForeground
	}
	s.Draw(0, field.Height()+2, tcell.AttrBold, tcell.ColorDefault, fg, text)
	s.screen.Show()
}

// Resync repaints the whole terminal after a resize
func (s *Screen) Resync(field *game.MineField) {
	s.screen.Clear()
	s.screen.Sync()
	s.Refresh(field)
}
