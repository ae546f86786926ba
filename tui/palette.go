package tui

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/they4kman/termsweep/game"
	"golang.org/x/image/colornames"
)

// TcellPalette maps each cell slot to terminal colors
type TcellPalette map[game.Slot][2]tcell.Color

func DefaultPalette() TcellPalette {
	return TcellPalette{
		game.SlotEnding: {rgb(colornames.Crimson), rgb(colornames.Gold)},
		game.SlotOpened: {rgb(colornames.Royalblue), rgb(colornames.Gold)},
		game.SlotClosed: {rgb(colornames.Lawngreen), rgb(colornames.Royalblue)},
	}
}

func (palette TcellPalette) Colors(slot game.Slot) (tcell.Color, tcell.Color) {
	colors, ok := palette[slot]
	if !ok {
		return tcell.ColorDefault, tcell.ColorDefault
	}
	return colors[0], colors[1]
}

var (
	statusBackground  = rgb(colornames.Silver)
	statusForeground  = rgb(colornames.Black)
	successForeground = rgb(colornames.Green)
	failureForeground = rgb(colornames.Red)
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
