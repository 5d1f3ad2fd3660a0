package core

import "time"

// Stopwatch records the duration of the most recent timed pass.
type Stopwatch struct {
	start time.Time
	last  time.Duration
}

// Start begins timing a pass.
func (s *Stopwatch) Start() { s.start = time.Now() }

// Stop ends the current pass and records its duration.
func (s *Stopwatch) Stop() time.Duration {
	s.last = time.Since(s.start)
	return s.last
}

// Last returns the duration of the most recent completed pass.
func (s *Stopwatch) Last() time.Duration { return s.last }
