// internal/game/types.go
//
// Core type definitions for the guessing game engine.
// Defines:
//   - Feedback: classification of a single guess against the secret.
//   - Round: state for a single in-progress or finished round.

package game

// Feedback describes how a guess compares to the secret number.
// Possible values:
//   - "too_small":    guess is in range but below the secret.
//   - "too_big":      guess is in range but above the secret.
//   - "correct":      guess equals the secret; the round is won.
//   - "out_of_range": guess lies outside [1, Max] and is not counted.
type Feedback string

const (
	FeedbackTooSmall   Feedback = "too_small"
	FeedbackTooBig     Feedback = "too_big"
	FeedbackCorrect    Feedback = "correct"
	FeedbackOutOfRange Feedback = "out_of_range"
)

// Round holds the state of a single guessing round.
type Round struct {
	ID       string // Unique round identifier (random hex string).
	Max      uint32 // Inclusive upper bound for guesses (always >= 1).
	Guesses  int    // In-range guesses made so far.
	Finished bool   // True once the round is over (won or quit).
	Won      bool   // True if the round ended with a correct guess.

	secret uint32
}

// Secret returns the number the player is trying to find.
func (r *Round) Secret() uint32 { return r.secret }
