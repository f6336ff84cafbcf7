package tui

import (
	"errors"

	"github.com/vovakirdan/brick-breaker/internal/games/brickbreaker"
	"github.com/vovakirdan/brick-breaker/internal/registry"
	"github.com/vovakirdan/brick-breaker/internal/storage"
)

// statsReporter is implemented by games that can summarize a run.
type statsReporter interface {
	Stats() brickbreaker.Stats
}

// RunRecord converts a run summary into a storage record.
func RunRecord(mode string, s brickbreaker.Stats) storage.Run {
	return storage.Run{
		Mode:            mode,
		Seed:            s.Seed,
		LevelReached:    s.Level,
		BricksDestroyed: s.BricksDestroyed,
		BallsLost:       s.BallsLost,
		Ticks:           s.Ticks,
		Cleared:         s.Cleared,
	}
}

// SaveResult records the outcome of a finished game: the score when it is
// positive and the run summary when the game provides one.
func SaveResult(store *storage.Store, game registry.Game) error {
	if store == nil {
		return nil
	}

	var errs []error
	if score := game.State().Score; score > 0 {
		if _, err := store.SaveScore(game.ID(), score); err != nil {
			errs = append(errs, err)
		}
	}
	if r, ok := game.(statsReporter); ok {
		if _, err := store.SaveRun(RunRecord(game.ID(), r.Stats())); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
