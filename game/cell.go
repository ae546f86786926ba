package game

import "fmt"

// Cell is the state of one grid position. The content is a single tagged
// value, so a cell can never hold a mine and an adjacency count at once.
type Cell struct {
	content Content

	isOpened bool
	// Set when the cell was opened by the ending reveal rather than by play
	isForceOpened bool

	// Reserved: no operation sets these yet
	isFlagged, isQuestioned bool
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(%v, opened=%v)", cell.content, cell.isOpened)
}

func (cell Cell) Content() Content {
	return cell.content
}

func (cell Cell) IsMine() bool {
	return cell.content == Mine
}

func (cell Cell) IsOpened() bool {
	return cell.isOpened
}

func (cell Cell) IsForceOpened() bool {
	return cell.isForceOpened
}

func (cell Cell) IsFlagged() bool {
	return cell.isFlagged
}

func (cell Cell) IsQuestioned() bool {
	return cell.isQuestioned
}

// markOpened opens the cell. With force, a cell that was still closed is also
// tagged as revealed at the end of the game.
func (cell *Cell) markOpened(force bool) {
	if force && !cell.isOpened {
		cell.isForceOpened = true
	}
	cell.isOpened = true
}

func (cell *Cell) markMine() {
	cell.content = Mine
}

func (cell *Cell) setNumMines(numMines int) {
	if cell.IsMine() {
		return
	}
	if numMines < 0 || numMines > int(Number8) {
		panic(fmt.Sprintf("invalid adjacent mine count %d", numMines))
	}
	cell.content = Content(numMines)
}

func (content Content) String() string {
	switch {
	case content == Empty:
		return "empty"
	case content == Mine:
		return "mine"
	case content <= Number8:
		return fmt.Sprintf("%d", uint8(content))
	}
	return fmt.Sprintf("reserved(%d)", uint8(content))
}

// Glyph is the character shown for the content once the cell is opened
func (content Content) Glyph() rune {
	return contentGlyphs[content&0x0f]
}
