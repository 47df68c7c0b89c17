package game

import (
	"testing"
	"time"
)

func TestShiftElapsedAndExpiry(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := StartShift(start, 5*time.Minute)

	if got := s.Elapsed(start.Add(90 * time.Second)); got != 90*time.Second {
		t.Errorf("Elapsed = %v, want 90s", got)
	}
	if s.Expired(start.Add(4 * time.Minute)) {
		t.Error("shift expired early")
	}
	if !s.Expired(start.Add(5 * time.Minute)) {
		t.Error("shift not expired at its duration")
	}
	if got := s.Remaining(start.Add(6 * time.Minute)); got != 0 {
		t.Errorf("Remaining past expiry = %v, want 0", got)
	}
}

func TestShiftPauseSnapshotsElapsed(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := StartShift(start, 5*time.Minute)

	s.Pause(start.Add(1 * time.Minute))
	if got := s.Elapsed(start.Add(10 * time.Minute)); got != 1*time.Minute {
		t.Errorf("paused Elapsed = %v, want frozen 1m", got)
	}
	if s.Expired(start.Add(10 * time.Minute)) {
		t.Error("paused shift expired while frozen")
	}

	// A second pause keeps the first snapshot.
	s.Pause(start.Add(3 * time.Minute))
	if got := s.Elapsed(start.Add(10 * time.Minute)); got != 1*time.Minute {
		t.Errorf("double pause moved the snapshot: %v", got)
	}

	s.Resume(start.Add(10 * time.Minute))
	if got := s.Elapsed(start.Add(11 * time.Minute)); got != 2*time.Minute {
		t.Errorf("Elapsed after resume = %v, want 2m", got)
	}
	if !s.Expired(start.Add(14 * time.Minute)) {
		t.Error("resumed shift never expired")
	}
}

func TestShiftResumeWithoutPause(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := StartShift(start, time.Minute)
	s.Resume(start.Add(30 * time.Second))
	if got := s.Elapsed(start.Add(30 * time.Second)); got != 30*time.Second {
		t.Errorf("stray Resume changed Elapsed: %v", got)
	}
}

func TestUntimedShiftNeverExpires(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := StartShift(start, 0)
	if s.Expired(start.Add(1000 * time.Hour)) {
		t.Error("untimed shift expired")
	}
}
