// Package progression persists the cross-shift state the engine reports
// into: banked quanta, completed shifts, and unlocked dial categories.
package progression

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

const fileName = "clicker-shipper-progress.json"

// AllCategoryIDs is the unlock order for the six dial roots.
var AllCategoryIDs = []string{
	"nav_resources_root",
	"nav_armaments_root",
	"nav_melee_root",
	"nav_radioactive_root",
	"nav_mining_root",
	"nav_streetwear_root",
}

type record struct {
	FormatVersion int      `json:"format_version"`
	Quanta        int      `json:"quanta"`
	Shifts        int      `json:"shifts"`
	Unlocked      []string `json:"unlocked,omitempty"`
}

// Store implements the engine's Progression interface and persists itself
// under dir. The zero unlock state always includes the first category.
type Store struct {
	dir    string
	quanta int
	shifts int
	// Kept sorted in AllCategoryIDs order.
	unlocked []string
}

func Open(dir string) (*Store, error) {
	s := &Store{dir: dir, unlocked: []string{AllCategoryIDs[0]}}
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse progress: %w", err)
	}
	s.quanta = max(0, rec.Quanta)
	s.shifts = max(0, rec.Shifts)
	for _, id := range rec.Unlocked {
		if slices.Contains(AllCategoryIDs, id) && !slices.Contains(s.unlocked, id) {
			s.unlocked = append(s.unlocked, id)
		}
	}
	s.sortUnlocked()
	return s, nil
}

func (s *Store) AddQuanta(amount int) {
	if amount <= 0 {
		return
	}
	s.quanta += amount
}

func (s *Store) RecordShiftComplete() {
	s.shifts++
	// One new category per completed shift until all six are open.
	for _, id := range AllCategoryIDs {
		if !slices.Contains(s.unlocked, id) {
			s.unlocked = append(s.unlocked, id)
			s.sortUnlocked()
			break
		}
	}
}

func (s *Store) ShiftsCompleted() int {
	return s.shifts
}

func (s *Store) Quanta() int {
	return s.quanta
}

func (s *Store) UnlockedCategories() []string {
	out := make([]string, len(s.unlocked))
	copy(out, s.unlocked)
	return out
}

// Save writes the progress file atomically.
func (s *Store) Save() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(record{
		FormatVersion: 1,
		Quanta:        s.quanta,
		Shifts:        s.shifts,
		Unlocked:      s.unlocked,
	}, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(s.dir, fileName)
	tmp, err := os.CreateTemp(s.dir, "progress-*.tmp")
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

func (s *Store) sortUnlocked() {
	slices.SortFunc(s.unlocked, func(a, b string) int {
		return slices.Index(AllCategoryIDs, a) - slices.Index(AllCategoryIDs, b)
	})
}
