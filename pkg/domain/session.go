package domain

import (
	"math/rand"
	"time"
)

// Session is the mutable state of one generation session: a random source
// plus the per-node rotation cursors used by single_sequential. It lives
// exactly as long as the caller wants rotation to advance across Generate
// calls and is discarded when a fresh session starts. Rotation state is
// never persisted with the preset.
//
// A Session is not safe for concurrent use; callers wanting parallel
// generations give each goroutine its own Session. Two sessions may run
// concurrently against the same tree because generation never mutates nodes.
type Session struct {
	rng     *rand.Rand
	cursors map[string]int
}

// SessionOption configures a new Session.
type SessionOption func(*Session)

// WithSeed makes the session's random source deterministic. Two sessions
// created with the same seed replay the same selections bit-for-bit.
func WithSeed(seed int64) SessionOption {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects a custom random source.
func WithRand(rng *rand.Rand) SessionOption {
	return func(s *Session) {
		s.rng = rng
	}
}

// NewSession creates a generation session. Without options the random
// source is seeded from the clock.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		cursors: make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Rand returns the session's random source. Every random decision during
// generation draws from it, which is what makes seeded replays exact.
func (s *Session) Rand() *rand.Rand {
	return s.rng
}

// Cursor returns the rotation cursor for a node, starting at 0 the first
// time a node is seen.
func (s *Session) Cursor(nodeID string) int {
	return s.cursors[nodeID]
}

// Advance increments the rotation cursor for a node.
func (s *Session) Advance(nodeID string) {
	s.cursors[nodeID]++
}

// Reset clears all rotation cursors without touching the random source.
func (s *Session) Reset() {
	s.cursors = make(map[string]int)
}
