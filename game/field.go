package game

import (
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
)

type Pos struct {
	Row, Col int
}

func (pos Pos) String() string {
	return fmt.Sprintf("(%d, %d)", pos.Row, pos.Col)
}

type FieldConfig struct {
	Width, Height int // in number of cells
	NumMines      int

	Seed int64

	// Time between two animation ticks when no input arrives
	IdleTimeout time.Duration
	// Number of ticks in one full on/off cycle of the cursor blink
	BlinkPeriod int
}

type MineField struct {
	width, height int
	numMines      int
	cells         []Cell

	numOpened   int
	isExploded  bool
	isSucceeded bool
	isStarted   bool

	cursor Pos

	idleTimeout time.Duration
	blinkPeriod int
	ticks       int

	seed int64
	rand *rand.Rand
}

// NewMineField creates a closed field with the default animation timing.
// Mines are placed on the first activation.
func NewMineField(width, height, numMines int) *MineField {
	return CreateField(FieldConfig{
		Width:    width,
		Height:   height,
		NumMines: numMines,
		Seed:     time.Now().UnixNano(),
	})
}

func CreateField(config FieldConfig) *MineField {
	if config.Width < 1 {
		config.Width = 1
	}
	if config.Height < 1 {
		config.Height = 1
	}
	if config.NumMines < 0 {
		config.NumMines = 0
	}
	if config.IdleTimeout <= 0 {
		config.IdleTimeout = DefaultIdleTimeout
	}
	if config.BlinkPeriod < 2 {
		config.BlinkPeriod = DefaultBlinkPeriod
	}

	return &MineField{
		width:       config.Width,
		height:      config.Height,
		numMines:    config.NumMines,
		cells:       make([]Cell, config.Width*config.Height),
		idleTimeout: config.IdleTimeout,
		blinkPeriod: config.BlinkPeriod,
		seed:        config.Seed,
		rand:        rand.New(rand.NewSource(config.Seed)),
	}
}

func (field *MineField) Width() int {
	return field.width
}

func (field *MineField) Height() int {
	return field.height
}

func (field *MineField) NumCells() int {
	return field.width * field.height
}

func (field *MineField) NumMines() int {
	return field.numMines
}

func (field *MineField) NumOpened() int {
	return field.numOpened
}

func (field *MineField) Cursor() Pos {
	return field.cursor
}

func (field *MineField) Seed() int64 {
	return field.seed
}

func (field *MineField) Rand() *rand.Rand {
	return field.rand
}

func (field *MineField) IdleTimeout() time.Duration {
	return field.idleTimeout
}

func (field *MineField) BlinkPeriod() int {
	return field.blinkPeriod
}

func (field *MineField) Ticks() int {
	return field.ticks
}

func (field *MineField) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < field.height && col < field.width
}

// CellAt returns a copy of the cell at the given position. Out-of-range
// positions yield a closed empty cell.
func (field *MineField) CellAt(row, col int) Cell {
	if !field.InBounds(row, col) {
		return Cell{}
	}
	return field.cells[row*field.width+col]
}

func (field *MineField) cellAt(pos Pos) *Cell {
	return &field.cells[pos.Row*field.width+pos.Col]
}

// Neighbors returns the up to 8 in-bounds positions around pos
func (field *MineField) Neighbors(pos Pos) []Pos {
	neighbors := make([]Pos, 0, 8)
	for row := pos.Row - 1; row <= pos.Row+1; row++ {
		for col := pos.Col - 1; col <= pos.Col+1; col++ {
			if row == pos.Row && col == pos.Col {
				continue
			}
			if field.InBounds(row, col) {
				neighbors = append(neighbors, Pos{row, col})
			}
		}
	}
	return neighbors
}

func (field *MineField) IsStarted() bool {
	return field.isStarted
}

func (field *MineField) IsExploded() bool {
	return field.isExploded
}

func (field *MineField) IsSucceeded() bool {
	return field.isSucceeded
}

// IsEnd reports whether the game reached a terminal outcome
func (field *MineField) IsEnd() bool {
	return field.isExploded || field.isSucceeded
}

// Start lays out the mines, keeping the cursor cell clear unless the field
// has no room for that, then stores the adjacency count of every other cell.
func (field *MineField) Start() {
	if field.isStarted {
		log.WithField("cursor", field.cursor).Warn("mines already placed; ignoring start")
		return
	}
	field.isStarted = true

	fillAll := field.numMines >= field.NumCells()

	numPlaced := 0
	for _, cellIdx := range field.rand.Perm(field.NumCells()) {
		if numPlaced >= field.numMines {
			break
		}

		pos := Pos{cellIdx / field.width, cellIdx % field.width}
		if !fillAll && pos == field.cursor {
			continue
		}

		field.cellAt(pos).markMine()
		numPlaced++
	}

	for row := 0; row < field.height; row++ {
		for col := 0; col < field.width; col++ {
			pos := Pos{row, col}
			cell := field.cellAt(pos)
			if cell.IsMine() {
				continue
			}

			numMines := 0
			for _, neighbor := range field.Neighbors(pos) {
				if field.cellAt(neighbor).IsMine() {
					numMines++
				}
			}
			cell.setNumMines(numMines)
		}
	}

	log.WithFields(log.Fields{
		"width":  field.width,
		"height": field.height,
		"mines":  numPlaced,
		"cursor": field.cursor,
		"seed":   field.seed,
	}).Debug("placed mines")
}

// Open opens the cell at (row, col), cascading through empty cells. It
// returns false, changing nothing, when the cell holds a mine.
func (field *MineField) Open(row, col int) bool {
	if !field.InBounds(row, col) {
		return true
	}
	start := Pos{row, col}
	if field.cellAt(start).IsMine() {
		return false
	}

	flood(
		start,
		func(pos Pos) bool {
			cell := field.cellAt(pos)
			if cell.IsOpened() || cell.IsMine() {
				return false
			}

			cell.markOpened(false)
			field.numOpened++

			return cell.Content() == Empty
		},
		field.Neighbors,
	)

	return true
}

// Click activates the cell under the cursor and reports whether the field
// changed. The first activation of a game places the mines.
func (field *MineField) Click() bool {
	if field.IsEnd() {
		return false
	}

	if !field.isStarted {
		field.Start()
	}

	cursor := field.cursor
	if field.cellAt(cursor).IsOpened() {
		return false
	}

	if !field.Open(cursor.Row, cursor.Col) {
		field.isExploded = true
		log.WithField("cursor", cursor).Info("exploded")
		return true
	}

	if field.numOpened+field.numMines == field.NumCells() {
		field.isSucceeded = true
		log.WithField("opened", field.numOpened).Info("succeeded")
	}

	return true
}

// ClickAt moves the cursor to the pointer position and activates it
func (field *MineField) ClickAt(x, y int) bool {
	moved := field.UpdateByPointer(x, y)
	if !field.InBounds(y, x) {
		return false
	}
	return field.Click() || moved
}

// Move steps the cursor one cell, stopping at the edges. It reports whether
// the cursor changed cell.
func (field *MineField) Move(direction Direction) bool {
	cursor := field.cursor

	switch direction {
	case Left:
		if cursor.Col > 0 {
			cursor.Col--
		}
	case Down:
		if cursor.Row < field.height-1 {
			cursor.Row++
		}
	case Up:
		if cursor.Row > 0 {
			cursor.Row--
		}
	case Right:
		if cursor.Col < field.width-1 {
			cursor.Col++
		}
	}

	if cursor == field.cursor {
		return false
	}
	field.cursor = cursor
	return true
}

// UpdateByPointer moves the cursor to the cell drawn at screen position
// (x, y). Positions outside the grid are ignored.
func (field *MineField) UpdateByPointer(x, y int) bool {
	row, col := y, x
	if !field.InBounds(row, col) {
		return false
	}

	pos := Pos{row, col}
	if pos == field.cursor {
		return false
	}
	field.cursor = pos
	return true
}

// Tick advances the blink clock and reports whether a redraw is due
func (field *MineField) Tick() bool {
	field.ticks++
	if field.ticks == field.blinkPeriod/2 {
		return true
	}
	if field.ticks >= field.blinkPeriod {
		field.ResetTick()
		return true
	}
	return false
}

// ResetTick restarts the blink cycle, so the overlay shows right away
func (field *MineField) ResetTick() {
	field.ticks = 0
}

// IsBlink reports whether the cursor overlay is in its visible half
func (field *MineField) IsBlink() bool {
	return field.ticks < field.blinkPeriod/2
}

// RevealAll opens every remaining cell as an ending reveal. It does nothing
// before the game has ended.
func (field *MineField) RevealAll() bool {
	if !field.IsEnd() {
		return false
	}

	for i := range field.cells {
		field.cells[i].markOpened(true)
	}
	return true
}

// Status is the text shown beside the grid: total mines, opened cells and
// the time elapsed since the game began.
func (field *MineField) Status(began time.Time) string {
	return fmt.Sprintf("(%d, %d) %v", field.numMines, field.numOpened, time.Since(began).Round(time.Millisecond))
}
