package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/claude/liftplan/internal/models"
	"github.com/claude/liftplan/internal/storage"
)

// historyCap bounds the ledger; older sessions are evicted on insert.
const historyCap = 100

// SaveSession prepends the session to the ledger, evicts beyond the cap, and
// flips the matching schedule day to completed. Fails only if the store write
// fails. The read-modify-write is serialized against other same-process
// callers.
func (s *Service) SaveSession(ctx context.Context, session models.WorkoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if session.ID == 0 {
		session.ID = now.UnixMilli()
	}
	session.SavedAt = now

	history := s.history(ctx)
	history = append([]models.WorkoutSession{session}, history...)
	if len(history) > historyCap {
		history = history[:historyCap]
	}

	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyWorkoutHistory, data); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}

	s.markDayCompleted(ctx, session.Date)
	return nil
}

// MergeHistory folds externally sourced sessions into the ledger. Sessions
// whose ID already exists are skipped, the merged ledger is re-sorted newest
// first, and the cap is re-applied. Returns how many sessions were added and
// how many were skipped as duplicates.
func (s *Service) MergeHistory(ctx context.Context, sessions []models.WorkoutSession) (added, skipped int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.history(ctx)
	seen := make(map[int64]bool, len(history))
	for _, existing := range history {
		seen[existing.ID] = true
	}

	now := s.now()
	for _, session := range sessions {
		if session.ID == 0 {
			session.ID = session.Date.UnixMilli()
		}
		if seen[session.ID] {
			skipped++
			continue
		}
		seen[session.ID] = true
		if session.SavedAt.IsZero() {
			session.SavedAt = now
		}
		history = append(history, session)
		added++
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.After(history[j].Date)
	})
	if len(history) > historyCap {
		history = history[:historyCap]
	}

	data, err := json.Marshal(history)
	if err != nil {
		return 0, 0, fmt.Errorf("encoding history: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyWorkoutHistory, data); err != nil {
		return 0, 0, fmt.Errorf("saving history: %w", err)
	}
	return added, skipped, nil
}

// History returns the session ledger, newest first. Read failures degrade to
// empty with a log line.
func (s *Service) History(ctx context.Context) []models.WorkoutSession {
	return s.history(ctx)
}

func (s *Service) history(ctx context.Context) []models.WorkoutSession {
	data, err := s.store.Get(ctx, storage.KeyWorkoutHistory)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		s.log.Warn("loading history failed", "error", err)
		return nil
	}

	var history []models.WorkoutSession
	if err := json.Unmarshal(data, &history); err != nil {
		s.log.Warn("decoding stored history failed", "error", err)
		return nil
	}
	return history
}

// markDayCompleted flips the schedule day sharing the session's calendar date
// to completed. A session with no matching day (logged on an off day, or a
// past week) is recorded without flipping anything; failures here are logged,
// not surfaced, since the session itself is already saved.
func (s *Service) markDayCompleted(ctx context.Context, date time.Time) {
	schedule := s.Schedule(ctx)

	updated := false
	for i := range schedule {
		if schedule[i].IsWorkoutDay && sameDate(schedule[i].Date, date) {
			schedule[i].Completed = true
			updated = true
			break
		}
	}
	if !updated {
		return
	}

	data, err := json.Marshal(schedule)
	if err != nil {
		s.log.Warn("encoding schedule failed", "error", err)
		return
	}
	if err := s.store.Set(ctx, storage.KeyWeeklySchedule, data); err != nil {
		s.log.Warn("updating schedule completion failed", "error", err)
	}
}

// sameDate reports whether two instants fall on the same calendar date,
// ignoring time of day.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
