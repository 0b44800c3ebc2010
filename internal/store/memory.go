// internal/store/memory.go
//
// In-memory round history for the current process.
// Nothing is written to disk: the history exists so the session can
// report what happened when it ends.
//
// Characteristics:
//   - Stores *game.Round objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/guess/internal/game"
)

// Summary aggregates finished rounds.
type Summary struct {
	Played int // Rounds recorded, won or quit.
	Won    int // Rounds that ended with a correct guess.
}

// Store defines the history interface for finished rounds.
type Store interface {
	// Save records or updates a round.
	Save(ctx context.Context, r *game.Round) error

	// Summary reports totals over every saved round.
	Summary(ctx context.Context) (Summary, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex           // guards rounds
	rounds map[string]*game.Round // keyed by Round.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]*game.Round)}
}

func (m *memory) Save(ctx context.Context, r *game.Round) error {
	if r == nil {
		return errors.New("nil round")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[r.ID] = r
	return nil
}

func (m *memory) Summary(ctx context.Context) (Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var s Summary
	for _, r := range m.rounds {
		s.Played++
		if r.Won {
			s.Won++
		}
	}
	return s, nil
}
