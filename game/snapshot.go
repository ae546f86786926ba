package game

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// BoardSnapshot is a textual record of a field, written to the log when a
// game ends
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	Outcome         string `yaml:"outcome"`
	NumMines        int    `yaml:"mines"`
	NumOpened       int    `yaml:"opened"`
	SerializedBoard string `yaml:"board"`
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", errors.Wrap(err, "serializing board snapshot")
	}
	return string(out), nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "loading board snapshot")
	}
	return &snapshot, nil
}

// Rows splits the serialized board back into one string per grid row
func (snapshot *BoardSnapshot) Rows() []string {
	if snapshot.SerializedBoard == "" {
		return nil
	}
	return strings.Split(snapshot.SerializedBoard, "\n")
}

func (field *MineField) Outcome() string {
	switch {
	case field.isExploded:
		return "loss"
	case field.isSucceeded:
		return "win"
	}
	return "other"
}

func (field *MineField) Snapshot() *BoardSnapshot {
	rows := make([]string, field.height)
	for row := 0; row < field.height; row++ {
		var builder strings.Builder
		for col := 0; col < field.width; col++ {
			builder.WriteString(field.serializeCell(Pos{row, col}))
		}
		rows[row] = builder.String()
	}

	return &BoardSnapshot{
		Seed:            field.seed,
		Outcome:         field.Outcome(),
		NumMines:        field.numMines,
		NumOpened:       field.numOpened,
		SerializedBoard: strings.Join(rows, "\n"),
	}
}

func (field *MineField) serializeCell(pos Pos) string {
	cell := field.cellAt(pos)
	switch {
	case cell.IsMine():
		if field.isExploded && pos == field.cursor {
			return "*"
		}
		return "O"
	case cell.IsOpened() && !cell.IsForceOpened():
		return string(cell.Content().Glyph())
	default:
		return "#"
	}
}
