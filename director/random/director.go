package random

import (
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/util/collections"
)

// Director plays by walking the cursor to a random closed cell, one step per
// Act, and activating it on arrival
type Director struct {
	field *game.MineField

	unopenedCells collections.Set[game.Pos]
	target        *game.Pos
}

func (director *Director) Init(field *game.MineField) {
	director.field = field
	director.unopenedCells = make(collections.Set[game.Pos])
	director.target = nil

	for row := 0; row < field.Height(); row++ {
		for col := 0; col < field.Width(); col++ {
			director.unopenedCells.Add(game.Pos{Row: row, Col: col})
		}
	}
}

func (director *Director) Act() bool {
	field := director.field
	if field == nil || field.IsEnd() {
		return false
	}

	director.unopenedCells.RemoveFunc(func(pos game.Pos) bool {
		return field.CellAt(pos.Row, pos.Col).IsOpened()
	})

	if director.target == nil || !director.unopenedCells.Contains(*director.target) {
		if !director.chooseTarget() {
			return false
		}
	}

	cursor := field.Cursor()
	target := *director.target
	switch {
	case cursor.Row < target.Row:
		return field.Move(game.Down)
	case cursor.Row > target.Row:
		return field.Move(game.Up)
	case cursor.Col < target.Col:
		return field.Move(game.Right)
	case cursor.Col > target.Col:
		return field.Move(game.Left)
	}

	log.WithField("cell", target).Debug("director activating cell")
	director.target = nil
	return field.Click()
}

func (director *Director) chooseTarget() bool {
	if director.unopenedCells.Len() == 0 {
		return false
	}

	// Sorted, so a given seed picks the same cells
	candidates := director.unopenedCells.Values()
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Row != candidates[j].Row {
			return candidates[i].Row < candidates[j].Row
		}
		return candidates[i].Col < candidates[j].Col
	})

	target := candidates[director.field.Rand().Intn(len(candidates))]
	director.target = &target
	return true
}
