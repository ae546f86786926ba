package tui

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/termsweep/director/random"
	"github.com/they4kman/termsweep/game"
)

func newSimScreen(t *testing.T) (tcell.SimulationScreen, *Screen) {
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(40, 20)
	t.Cleanup(sim.Fini)
	return sim, NewScreen(sim)
}

func newField(width, height, numMines int) *game.MineField {
	return game.CreateField(game.FieldConfig{
		Width:       width,
		Height:      height,
		NumMines:    numMines,
		Seed:        1,
		IdleTimeout: time.Millisecond,
		BlinkPeriod: 10,
	})
}

func runWithTimeout(t *testing.T, screen *Screen, field *game.MineField, options Options) (Outcome, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return Run(ctx, screen, field, options)
}

func glyphAt(sim tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

type recordingCues struct {
	explosions, successes int
}

func (cues *recordingCues) PlayExplosion() { cues.explosions++ }
func (cues *recordingCues) PlaySuccess()   { cues.successes++ }

func TestRunQuit(t *testing.T) {
	sim, screen := newSimScreen(t)
	field := newField(4, 3, 2)
	require.NoError(t, sim.PostEvent(char('q')))

	outcome, err := runWithTimeout(t, screen, field, Options{})

	require.NoError(t, err)
	assert.Equal(t, OutcomeQuit, outcome)
	assert.False(t, field.IsStarted())
}

func TestRunSucceeds(t *testing.T) {
	sim, screen := newSimScreen(t)
	field := newField(2, 2, 0)
	cues := &recordingCues{}
	require.NoError(t, sim.PostEvent(char('l')))
	require.NoError(t, sim.PostEvent(char(' ')))
	require.NoError(t, sim.PostEvent(char('x')))

	outcome, err := runWithTimeout(t, screen, field, Options{Cues: cues, HoldAtEnd: true})

	require.NoError(t, err)
	assert.Equal(t, OutcomeSucceeded, outcome)
	assert.Equal(t, game.Pos{Row: 0, Col: 1}, field.Cursor())
	assert.Equal(t, 1, cues.successes)
	assert.Equal(t, 0, cues.explosions)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, '_', glyphAt(sim, x, y))
		}
	}
	assert.Equal(t, '(', glyphAt(sim, 0, 3), "status line below the grid")
}

func TestRunExplodes(t *testing.T) {
	sim, screen := newSimScreen(t)
	field := newField(2, 2, 4)
	cues := &recordingCues{}
	require.NoError(t, sim.PostEvent(char(' ')))

	outcome, err := runWithTimeout(t, screen, field, Options{Cues: cues})

	require.NoError(t, err)
	assert.Equal(t, OutcomeExploded, outcome)
	assert.Equal(t, 1, cues.explosions)
	assert.Equal(t, rune(game.GlyphExploded), glyphAt(sim, 0, 0))
	assert.Equal(t, '@', glyphAt(sim, 1, 0))
	assert.Equal(t, '@', glyphAt(sim, 0, 1))

	_, _, style, _ := sim.GetContent(1, 1)
	_, bg, _ := style.Decompose()
	wantBg, _ := DefaultPalette().Colors(game.SlotEnding)
	assert.Equal(t, wantBg, bg)
}

func TestRunMouseClick(t *testing.T) {
	sim, screen := newSimScreen(t)
	field := newField(3, 3, 0)
	require.NoError(t, sim.PostEvent(tcell.NewEventMouse(2, 1, tcell.Button1, tcell.ModNone)))

	outcome, err := runWithTimeout(t, screen, field, Options{})

	require.NoError(t, err)
	assert.Equal(t, OutcomeSucceeded, outcome)
	assert.Equal(t, game.Pos{Row: 1, Col: 2}, field.Cursor())
	assert.Equal(t, 9, field.NumOpened())
}

func TestRunDirector(t *testing.T) {
	_, screen := newSimScreen(t)
	director := &random.Director{}
	field := newField(3, 3, 0)
	director.Init(field)

	outcome, err := runWithTimeout(t, screen, field, Options{
		Director:         director,
		DirectorInterval: time.Millisecond,
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeSucceeded, outcome)
}

func TestRunCancelled(t *testing.T) {
	_, screen := newSimScreen(t)
	field := newField(3, 3, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := Run(ctx, screen, field, Options{})

	assert.Equal(t, OutcomeQuit, outcome)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunBlinksCursorWhileIdle(t *testing.T) {
	sim, screen := newSimScreen(t)
	field := newField(3, 3, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := Run(ctx, screen, field, Options{})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, []rune{game.GlyphClosed, game.GlyphBlink}, glyphAt(sim, 0, 0))
}
