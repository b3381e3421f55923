package simulation

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// OpeningHandSize is the number of cards drawn before any mulligan.
	OpeningHandSize = 7
	// MinDeckSize is the smallest deck that can deal an opening hand.
	MinDeckSize = OpeningHandSize
	// MaxRuns bounds the number of runs in one call.
	MaxRuns = 1_000_000
)

var (
	// ErrInvalidConfiguration is returned before any run executes when the
	// parameters or the deck are out of range.
	ErrInvalidConfiguration = errors.New("invalid simulation configuration")
	// ErrInsufficientLibrary is returned when the library cannot supply every
	// draw the configured turns require.
	ErrInsufficientLibrary = errors.New("insufficient library")
)

// Config holds the parameters of one Simulate call.
type Config struct {
	// Turns is the number of turns simulated per run.
	Turns int
	// DeckSize is the total number of cards, lands included.
	DeckSize int
	// Runs is the number of independent games.
	Runs int
	// Seed is the base seed for per-run sources. Zero draws a random seed.
	Seed uint64
	// Workers is the number of goroutines executing runs. Zero means one per CPU.
	Workers int
}

// Validate checks every parameter.
//
// Postcondition: Returns nil, or an error wrapping ErrInvalidConfiguration that
// lists every violation.
func (c Config) Validate() error {
	var errs []string
	if c.Turns < 1 {
		errs = append(errs, fmt.Sprintf("turns must be >= 1, got %d", c.Turns))
	}
	if c.DeckSize < MinDeckSize {
		errs = append(errs, fmt.Sprintf("deck size must be >= %d, got %d", MinDeckSize, c.DeckSize))
	}
	if c.Runs < 1 || c.Runs > MaxRuns {
		errs = append(errs, fmt.Sprintf("runs must be 1-%d, got %d", MaxRuns, c.Runs))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Sprintf("workers must be >= 0, got %d", c.Workers))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfiguration, strings.Join(errs, "; "))
	}
	return nil
}

// checkLibrary reports whether a deck of c.DeckSize cards can deal an opening
// hand and one draw per turn.
func (c Config) checkLibrary() error {
	if need := OpeningHandSize + c.Turns; c.DeckSize < need {
		return fmt.Errorf("%w: %d turns need at least %d cards, deck has %d",
			ErrInsufficientLibrary, c.Turns, need, c.DeckSize)
	}
	return nil
}
