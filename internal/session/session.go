// internal/session/session.go
//
// Interactive session loop for the guessing game.
// Responsibilities:
//   - Prompt for the max value and validate it.
//   - Run rounds against the game engine, printing feedback.
//   - Offer a replay after every win.
//   - Record finished rounds in the in-memory history.
//
// Control flow is driven by a step signal returned from each phase rather
// than by returns buried in nested loops. The farewell for a quit is
// printed in exactly one place (Run), whichever prompt received it.

package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/robalobadob/guess/internal/game"
	"github.com/robalobadob/guess/internal/input"
	"github.com/robalobadob/guess/internal/store"
)

// ErrInputClosed is returned when input ends before the session does.
var ErrInputClosed = errors.New("input closed")

// Messages printed to the player.
const (
	msgWelcome     = "Welcome to the guessing game."
	msgQuitHint    = `Type "quit" at any time to quit.`
	msgMaxPrompt   = "What is the max value to guess?"
	msgMaxTooLow   = "Value must be greater than zero."
	msgGuessPrompt = "Input your guess!"
	msgTooSmall    = "Too small."
	msgTooBig      = "Too big."
	msgWin         = "You win!"
	msgReplay      = `Enter "y" to play again.`
	msgGoodbye     = "Goodbye!"
	msgWinnerLeft  = "At least you're leaving a winner."

	replayAnswer = "y"
)

// step tells the caller what to do after a phase completes.
type step int

const (
	stepContinue   step = iota // repeat the current prompt
	stepEndRound               // the round was won
	stepQuit                   // the player typed quit
	stepEndSession             // stop without a farewell
)

// Session owns the I/O streams and collaborators for one program run.
type Session struct {
	in     *bufio.Reader
	out    io.Writer
	picker game.Picker
	store  store.Store
	log    zerolog.Logger
}

// Option customises a Session.
type Option func(*Session)

// WithPicker sets the source of secret numbers.
func WithPicker(p game.Picker) Option {
	return func(s *Session) { s.picker = p }
}

// WithStore sets the round history.
func WithStore(st store.Store) Option {
	return func(s *Session) { s.store = st }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// New constructs a Session reading lines from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		in:     bufio.NewReader(in),
		out:    out,
		picker: game.DefaultPicker,
		store:  store.NewMemoryStore(),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run plays until the player quits or declines a replay.
// It returns an error only when input cannot be read.
func (s *Session) Run(ctx context.Context) error {
	s.println()
	s.println(msgWelcome)
	s.println(msgQuitHint)

	for {
		st, err := s.iterate(ctx)
		if err != nil {
			return err
		}
		switch st {
		case stepQuit:
			s.println(msgGoodbye)
			s.logSummary(ctx)
			return nil
		case stepEndSession:
			s.logSummary(ctx)
			return nil
		}
	}
}

// PlayRound plays a single round over [1, upper] and reports whether the
// player won. A false result with a nil error means the player quit.
func (s *Session) PlayRound(ctx context.Context, upper uint32) (bool, error) {
	st, err := s.playRound(ctx, upper)
	if err != nil {
		return false, err
	}
	return st == stepEndRound, nil
}

// iterate runs one pass of the session loop: the max prompt, then a round
// and the replay prompt if the max was valid.
func (s *Session) iterate(ctx context.Context) (step, error) {
	s.println()
	s.println(msgMaxPrompt)

	line, err := s.readLine(ctx)
	if err != nil {
		return stepEndSession, err
	}

	parsed := input.Parse(line, s.out)
	switch parsed.Kind {
	case input.KindQuit:
		return stepQuit, nil
	case input.KindInvalid:
		s.println()
		return stepContinue, nil
	}
	if parsed.Value < 1 {
		s.println(msgMaxTooLow)
		return stepContinue, nil
	}

	st, err := s.playRound(ctx, parsed.Value)
	if err != nil || st != stepEndRound {
		return st, err
	}
	return s.askReplay(ctx)
}

func (s *Session) playRound(ctx context.Context, upper uint32) (step, error) {
	r, err := game.New(upper, s.picker)
	if err != nil {
		return stepEndSession, fmt.Errorf("start round: %w", err)
	}
	s.log.Debug().Str("round", r.ID).Uint32("max", upper).Msg("round started")

	s.println()
	s.printf("Guess a number from 1 to %d.\n", upper)

	st := stepContinue
	for st == stepContinue {
		s.println()
		s.println(msgGuessPrompt)

		line, err := s.readLine(ctx)
		if err != nil {
			return stepEndSession, err
		}
		st = s.guess(r, line)
	}

	if st == stepQuit {
		r.Quit()
	}
	if err := s.store.Save(ctx, r); err != nil {
		s.log.Warn().Err(err).Str("round", r.ID).Msg("record round")
	}
	s.log.Debug().
		Str("round", r.ID).
		Str("state", r.State()).
		Int("guesses", r.Guesses).
		Msg("round finished")
	return st, nil
}

// guess handles one line typed at the guess prompt.
func (s *Session) guess(r *game.Round, line string) step {
	parsed := input.Parse(line, s.out)
	switch parsed.Kind {
	case input.KindQuit:
		return stepQuit
	case input.KindInvalid:
		return stepContinue
	}

	fb, err := r.ApplyGuess(parsed.Value)
	if err != nil {
		s.log.Error().Err(err).Str("round", r.ID).Msg("apply guess")
		return stepEndRound
	}

	switch fb {
	case game.FeedbackOutOfRange:
		s.printf("Invalid number: %d\n", parsed.Value)
	case game.FeedbackTooSmall:
		s.println(msgTooSmall)
	case game.FeedbackTooBig:
		s.println(msgTooBig)
	case game.FeedbackCorrect:
		s.println(msgWin)
		return stepEndRound
	}
	return stepContinue
}

func (s *Session) askReplay(ctx context.Context) (step, error) {
	s.println()
	s.println(msgReplay)

	line, err := s.readLine(ctx)
	if err != nil {
		return stepEndSession, err
	}
	if strings.TrimSpace(line) != replayAnswer {
		s.println(msgWinnerLeft)
		return stepEndSession, nil
	}
	return stepContinue, nil
}

// readLine blocks for the next line. A final line without a trailing
// newline is still returned; EOF with nothing read is ErrInputClosed.
func (s *Session) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return line, nil
			}
			return "", fmt.Errorf("read line: %w", ErrInputClosed)
		}
		return "", fmt.Errorf("read line: %w", err)
	}
	return line, nil
}

func (s *Session) logSummary(ctx context.Context) {
	sum, err := s.store.Summary(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("round summary")
		return
	}
	s.log.Debug().Int("played", sum.Played).Int("won", sum.Won).Msg("session finished")
}

func (s *Session) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Session) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}
