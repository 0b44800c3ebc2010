// internal/game/engine.go
//
// Core game engine for a single guessing round.
// Responsibilities:
//   - Create new rounds with a secret drawn from an injectable Picker.
//   - Classify guesses as too small, too big, correct, or out of range.
//   - Track state transitions: playing → won, or playing → quit.
//
// Notes:
//   - Out-of-range guesses are reported but never counted or compared.
//   - randomID() is a compact hex identifier for correlating log lines
//     and the in-memory round history.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
)

var (
	// ErrInvalidMax is returned when a round is requested with upper < 1.
	ErrInvalidMax = errors.New("max must be at least 1")
	// ErrRoundFinished is returned when guessing on a round that is over.
	ErrRoundFinished = errors.New("round finished")
)

// New constructs a new round over [1, upper].
// If p is nil, the secret is drawn with DefaultPicker.
func New(upper uint32, p Picker) (*Round, error) {
	if upper < 1 {
		return nil, ErrInvalidMax
	}
	if p == nil {
		p = DefaultPicker
	}
	secret := p.Pick(upper)
	if secret < 1 || secret > upper {
		return nil, errors.New("picker returned a secret outside [1, max]")
	}
	return &Round{
		ID:     randomID(),
		Max:    upper,
		secret: secret,
	}, nil
}

// ApplyGuess classifies a guess, mutating the round state.
//
// State transitions:
//   - Out of range → no change, FeedbackOutOfRange.
//   - Equal to the secret → Finished = true, Won = true.
func (r *Round) ApplyGuess(guess uint32) (Feedback, error) {
	if r.Finished {
		return "", ErrRoundFinished
	}
	if !r.InRange(guess) {
		return FeedbackOutOfRange, nil
	}

	r.Guesses++
	switch {
	case guess < r.secret:
		return FeedbackTooSmall, nil
	case guess > r.secret:
		return FeedbackTooBig, nil
	default:
		r.Finished, r.Won = true, true
		return FeedbackCorrect, nil
	}
}

// Quit ends the round without a win. Quitting a finished round is a no-op.
func (r *Round) Quit() {
	r.Finished = true
}

// InRange reports whether guess lies within [1, Max].
func (r *Round) InRange(guess uint32) bool {
	return guess >= 1 && guess <= r.Max
}

// State reports a coarse string representation of the current round state.
func (r *Round) State() string {
	if r.Finished {
		if r.Won {
			return "won"
		}
		return "quit"
	}
	return "playing"
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
