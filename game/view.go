package game

// Palette supplies the background and foreground color for each Slot. C is
// whatever color type the renderer understands.
type Palette[C any] interface {
	Colors(slot Slot) (bg, fg C)
}

// SlotPalette hands back the slot itself as both colors, for callers that
// have no terminal to paint on
type SlotPalette struct{}

func (SlotPalette) Colors(slot Slot) (Slot, Slot) {
	return slot, slot
}

type CellView[C any] struct {
	Glyph      rune
	Background C
	Foreground C
}

// View is what the renderer draws at (row, col)
func View[C any](field *MineField, palette Palette[C], row, col int) CellView[C] {
	bg, fg := palette.Colors(field.Slot(row, col))
	return CellView[C]{
		Glyph:      field.Glyph(row, col),
		Background: bg,
		Foreground: fg,
	}
}

// Glyph is the character shown at (row, col), including the cursor overlay
func (field *MineField) Glyph(row, col int) rune {
	cell := field.CellAt(row, col)

	glyph := rune(GlyphClosed)
	if cell.IsOpened() {
		glyph = cell.Content().Glyph()
	}

	isCursor := field.cursor == Pos{row, col}
	if !isCursor || field.isSucceeded {
		return glyph
	}

	switch {
	case field.isExploded && cell.IsMine():
		return GlyphExploded
	case field.IsBlink():
		return GlyphBlink
	}
	return glyph
}

func (field *MineField) Slot(row, col int) Slot {
	cell := field.CellAt(row, col)
	switch {
	case cell.IsForceOpened():
		return SlotEnding
	case cell.IsOpened():
		return SlotOpened
	}
	return SlotClosed
}
