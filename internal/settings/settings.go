// Package settings holds the player-tunable dial geometry and shift length,
// stored as a small JSON file next to the other game data.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const fileName = "clicker-shipper-settings.json"

// Settings is the in-memory form; the on-disk file stores the shift length
// in milliseconds.
type Settings struct {
	DialOffsetX   int
	DialOffsetY   int
	DialRadius    int
	ShiftDuration time.Duration
	SlotCapacity  int
}

func Default() Settings {
	return Settings{
		DialRadius:    150,
		ShiftDuration: 5 * time.Minute,
		SlotCapacity:  6,
	}
}

// Load reads settings from dir, returning defaults when no file exists yet.
func Load(dir string) (Settings, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, err
	}
	var raw struct {
		DialOffsetX     int   `json:"dial_offset_x"`
		DialOffsetY     int   `json:"dial_offset_y"`
		DialRadius      int   `json:"dial_radius"`
		ShiftDurationMs int64 `json:"shift_duration_ms"`
		SlotCapacity    int   `json:"slot_capacity"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	s := Settings{
		DialOffsetX:   raw.DialOffsetX,
		DialOffsetY:   raw.DialOffsetY,
		DialRadius:    raw.DialRadius,
		ShiftDuration: time.Duration(raw.ShiftDurationMs) * time.Millisecond,
		SlotCapacity:  raw.SlotCapacity,
	}
	if s.DialRadius <= 0 {
		s.DialRadius = Default().DialRadius
	}
	if s.ShiftDuration <= 0 {
		s.ShiftDuration = Default().ShiftDuration
	}
	if s.SlotCapacity <= 0 {
		s.SlotCapacity = Default().SlotCapacity
	}
	return s, nil
}

// Save writes settings atomically via a temp file in the same directory.
func Save(dir string, s Settings) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	raw := struct {
		DialOffsetX     int   `json:"dial_offset_x"`
		DialOffsetY     int   `json:"dial_offset_y"`
		DialRadius      int   `json:"dial_radius"`
		ShiftDurationMs int64 `json:"shift_duration_ms"`
		SlotCapacity    int   `json:"slot_capacity"`
	}{
		DialOffsetX:     s.DialOffsetX,
		DialOffsetY:     s.DialOffsetY,
		DialRadius:      s.DialRadius,
		ShiftDurationMs: s.ShiftDuration.Milliseconds(),
		SlotCapacity:    s.SlotCapacity,
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(filepath.Join(dir, fileName), data)
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "settings-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}
	cleanup = false
	return nil
}
