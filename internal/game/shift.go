package game

import "time"

// ShiftState bounds one timed play session. It is a plain value owned by the
// engine; revenue and bonus accumulate here and are read out, never reset,
// when the shift ends.
type ShiftState struct {
	Revenue   int
	Bonus     int
	StartedAt time.Time
	Duration  time.Duration
	Paused    bool
	PausedAt  time.Time
}

// ShiftSummary is the tuple reported when a shift ends.
type ShiftSummary struct {
	Revenue         int
	Bonus           int
	ShiftsCompleted int
}

// StartShift arms a fresh shift with zeroed accumulators.
func StartShift(now time.Time, duration time.Duration) ShiftState {
	return ShiftState{StartedAt: now, Duration: duration}
}

// Elapsed is play time so far. While paused it is frozen at the pause
// snapshot rather than tracking the wall clock.
func (s ShiftState) Elapsed(now time.Time) time.Duration {
	if s.Paused {
		return s.PausedAt.Sub(s.StartedAt)
	}
	return now.Sub(s.StartedAt)
}

// Remaining is the time left before expiry, never negative.
func (s ShiftState) Remaining(now time.Time) time.Duration {
	left := s.Duration - s.Elapsed(now)
	if left < 0 {
		return 0
	}
	return left
}

// Expired reports whether the countdown has run out. A non-positive duration
// means an untimed shift that never expires on its own.
func (s ShiftState) Expired(now time.Time) bool {
	if s.Duration <= 0 {
		return false
	}
	return s.Elapsed(now) >= s.Duration
}

// Pause snapshots elapsed time. Pausing twice keeps the first snapshot.
func (s *ShiftState) Pause(now time.Time) {
	if s.Paused {
		return
	}
	s.Paused = true
	s.PausedAt = now
}

// Resume shifts the start forward by the paused span so Elapsed continues
// from the snapshot.
func (s *ShiftState) Resume(now time.Time) {
	if !s.Paused {
		return
	}
	s.StartedAt = s.StartedAt.Add(now.Sub(s.PausedAt))
	s.Paused = false
	s.PausedAt = time.Time{}
}
