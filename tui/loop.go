package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"github.com/they4kman/termsweep/game"
)

type Outcome int

const (
	OutcomeQuit Outcome = iota
	OutcomeExploded
	OutcomeSucceeded
)

func (outcome Outcome) String() string {
	switch outcome {
	case OutcomeQuit:
		return "quit"
	case OutcomeExploded:
		return "exploded"
	case OutcomeSucceeded:
		return "succeeded"
	}
	return "unknown"
}

// Cues are played when a game ends
type Cues interface {
	PlayExplosion()
	PlaySuccess()
}

type Options struct {
	// Plays the game instead of the keyboard when set
	Director game.Director
	// Minimum time between two director actions
	DirectorInterval time.Duration

	Cues Cues

	// Keep the final board on screen until a key is pressed
	HoldAtEnd bool

	// Start of the game, for the elapsed time in the status line
	Began time.Time
}

const DefaultDirectorInterval = 100 * time.Millisecond

// Run drives field from terminal input until the game ends or the player
// quits. Input is read on its own goroutine; the field is only touched here.
func Run(ctx context.Context, screen *Screen, field *game.MineField, options Options) (Outcome, error) {
	if options.Began.IsZero() {
		options.Began = time.Now()
	}
	if options.DirectorInterval <= 0 {
		options.DirectorInterval = DefaultDirectorInterval
	}

	done := make(chan struct{})
	defer close(done)
	events := pumpEvents(screen, done)

	var translator Translator
	var lastDirected time.Time

	field.ResetTick()
	screen.Refresh(field)

	for !field.IsEnd() {
		select {
		case <-ctx.Done():
			return OutcomeQuit, ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return OutcomeQuit, nil
			}

			action := translator.Translate(ev)
			switch action.Type {
			case ActionQuit:
				log.Info("quit requested")
				return OutcomeQuit, nil
			case ActionResize:
				screen.Resync(field)
				continue
			}

			if options.Director != nil {
				continue
			}

			if Apply(field, action) {
				log.WithFields(log.Fields{
					"action": action.Type,
					"cursor": field.Cursor(),
				}).Debug("applied action")

				field.ResetTick()
				screen.Refresh(field)
			}

		case <-time.After(field.IdleTimeout()):
			screen.ShowStatus(field, field.Status(options.Began))

			if options.Director != nil && time.Since(lastDirected) >= options.DirectorInterval {
				lastDirected = time.Now()
				if options.Director.Act() {
					field.ResetTick()
					screen.Refresh(field)
					continue
				}
			}

			if field.Tick() {
				screen.Refresh(field)
			}
		}
	}

	return finish(ctx, screen, field, events, options)
}

func finish(ctx context.Context, screen *Screen, field *game.MineField, events <-chan tcell.Event, options Options) (Outcome, error) {
	field.RevealAll()
	screen.Refresh(field)
	screen.ShowStatus(field, field.Status(options.Began))

	outcome := OutcomeSucceeded
	message := "CLEAR! press any key"
	if field.IsExploded() {
		outcome = OutcomeExploded
		message = "BOOM! press any key"
	}

	entry := log.WithFields(log.Fields{
		"outcome": outcome,
		"opened":  field.NumOpened(),
		"elapsed": time.Since(options.Began),
	})
	if snapshot, err := field.Snapshot().Serialize(); err != nil {
		entry.WithError(err).Warn("could not record final board")
	} else {
		entry = entry.WithField("board", snapshot)
	}
	entry.Info("game ended")

	if options.Cues != nil {
		if outcome == OutcomeExploded {
			options.Cues.PlayExplosion()
		} else {
			options.Cues.PlaySuccess()
		}
	}

	if !options.HoldAtEnd {
		return outcome, nil
	}

	screen.ShowResult(field, message)
	for {
		select {
		case <-ctx.Done():
			return outcome, nil
		case ev, ok := <-events:
			if !ok {
				return outcome, nil
			}
			if _, isKey := ev.(*tcell.EventKey); isKey {
				return outcome, nil
			}
		}
	}
}

// pumpEvents forwards screen events in order until the screen is finalized
// or done is closed
func pumpEvents(screen *Screen, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}
