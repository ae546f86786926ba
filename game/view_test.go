package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blinkOff(field *MineField) {
	field.ResetTick()
	for i := 0; i < field.BlinkPeriod()/2; i++ {
		field.Tick()
	}
}

func TestViewClosedField(t *testing.T) {
	field := newTestField(3, 3, 2, 1)
	blinkOff(field)

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			view := View[Slot](field, SlotPalette{}, row, col)
			assert.Equal(t, rune(GlyphClosed), view.Glyph)
			assert.Equal(t, SlotClosed, view.Background)
			assert.Equal(t, SlotClosed, view.Foreground)
		}
	}
}

func TestViewCursorBlink(t *testing.T) {
	field := newTestField(3, 3, 2, 1)
	field.UpdateByPointer(1, 1)

	require.True(t, field.IsBlink())
	assert.Equal(t, rune(GlyphBlink), field.Glyph(1, 1))
	assert.Equal(t, rune(GlyphClosed), field.Glyph(0, 0))

	blinkOff(field)
	assert.Equal(t, rune(GlyphClosed), field.Glyph(1, 1))
}

func TestViewOpenedGlyphs(t *testing.T) {
	field := newTestField(8, 8, 12, 21)
	require.True(t, field.Click())
	blinkOff(field)

	for row := 0; row < field.Height(); row++ {
		for col := 0; col < field.Width(); col++ {
			cell := field.CellAt(row, col)
			if !cell.IsOpened() {
				continue
			}

			view := View[Slot](field, SlotPalette{}, row, col)
			assert.Equal(t, SlotOpened, view.Background)
			switch content := cell.Content(); content {
			case Empty:
				assert.Equal(t, '_', view.Glyph)
			default:
				assert.Equal(t, rune('0'+content), view.Glyph)
			}
		}
	}
}

func TestViewExplodedCursorShowsFatalMine(t *testing.T) {
	field := newTestField(6, 6, 10, 11)
	require.True(t, field.Click())
	require.False(t, field.IsEnd())

	mine := findCell(t, field, Cell.IsMine)
	field.UpdateByPointer(mine.Col, mine.Row)
	require.True(t, field.Click())
	require.True(t, field.IsExploded())

	// Shown regardless of the blink phase
	assert.Equal(t, rune(GlyphExploded), field.Glyph(mine.Row, mine.Col))
	blinkOff(field)
	assert.Equal(t, rune(GlyphExploded), field.Glyph(mine.Row, mine.Col))

	require.True(t, field.RevealAll())
	assert.Equal(t, rune(GlyphExploded), field.Glyph(mine.Row, mine.Col))
	assert.Equal(t, SlotEnding, field.Slot(mine.Row, mine.Col))

	for row := 0; row < field.Height(); row++ {
		for col := 0; col < field.Width(); col++ {
			if (Pos{row, col}) != mine && field.CellAt(row, col).IsMine() {
				assert.Equal(t, '@', field.Glyph(row, col))
			}
		}
	}
}

func TestViewSucceededSuppressesOverlay(t *testing.T) {
	field := newTestField(2, 2, 0, 1)
	require.True(t, field.Click())
	require.True(t, field.IsSucceeded())
	field.ResetTick()

	assert.Equal(t, '_', field.Glyph(0, 0))
	assert.Equal(t, SlotOpened, field.Slot(0, 0))

	require.True(t, field.RevealAll())
	assert.Equal(t, SlotOpened, field.Slot(0, 0), "player opened cells keep their palette")
}

func TestViewEndingSlot(t *testing.T) {
	field := newTestField(4, 4, 16, 1)
	require.True(t, field.Click())
	require.True(t, field.IsExploded())
	require.True(t, field.RevealAll())

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			assert.Equal(t, SlotEnding, field.Slot(row, col))
		}
	}
	assert.Equal(t, '@', field.Glyph(3, 3))
}

type rgbPalette map[Slot][2]string

func (palette rgbPalette) Colors(slot Slot) (string, string) {
	colors := palette[slot]
	return colors[0], colors[1]
}

func TestViewUsesPalette(t *testing.T) {
	palette := rgbPalette{
		SlotClosed: {"green", "blue"},
		SlotOpened: {"blue", "yellow"},
		SlotEnding: {"red", "yellow"},
	}
	field := newTestField(2, 2, 0, 1)

	view := View[string](field, palette, 0, 0)
	assert.Equal(t, "green", view.Background)
	assert.Equal(t, "blue", view.Foreground)

	require.True(t, field.Click())
	view = View[string](field, palette, 0, 0)
	assert.Equal(t, "blue", view.Background)
	assert.Equal(t, "yellow", view.Foreground)
}
