package tracker

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/claude/liftplan/internal/models"
)

// WeeklyStats computes adherence for the current week from the stored
// schedule and the ledger.
func (s *Service) WeeklyStats(ctx context.Context) models.WeeklyStats {
	schedule := s.Schedule(ctx)
	history := s.history(ctx)

	start := weekStart(s.now())
	end := start.AddDate(0, 0, 7)

	planned, completed := 0, 0
	for _, day := range schedule {
		if !day.IsWorkoutDay {
			continue
		}
		planned++
		if day.Completed {
			completed++
		}
	}

	stats := models.WeeklyStats{
		Planned:       planned,
		Completed:     completed,
		WeeklyHistory: []models.WorkoutSession{},
	}
	if planned > 0 {
		stats.Progress = float64(completed) / float64(planned) * 100
	}

	for _, sess := range history {
		if sess.Date.Before(start) || !sess.Date.Before(end) {
			continue
		}
		stats.WeeklyHistory = append(stats.WeeklyHistory, sess)
		stats.TotalDuration += sess.Duration
		stats.TotalSets += sess.SetCount()
	}
	return stats
}

// Stats computes lifetime statistics over the whole ledger.
func (s *Service) Stats(ctx context.Context) models.WorkoutStats {
	history := s.history(ctx)

	stats := models.WorkoutStats{
		FavoriteExercises: []models.FavoriteExercise{},
	}

	counts := make(map[int]int)
	var tallyOrder []int

	for _, sess := range history {
		if sess.Completed {
			stats.TotalSessions++
		}
		stats.TotalDuration += sess.Duration

		for _, ex := range sess.Exercises {
			stats.TotalSets += len(ex.Sets) + len(ex.CardioSessions)
			for _, set := range ex.Sets {
				stats.TotalReps += set.Reps
			}
			if _, seen := counts[ex.ExerciseID]; !seen {
				tallyOrder = append(tallyOrder, ex.ExerciseID)
			}
			counts[ex.ExerciseID]++
		}
	}

	if stats.TotalSessions > 0 {
		stats.AverageDuration = float64(stats.TotalDuration) / float64(stats.TotalSessions)
	}

	// Ties keep first-encountered order from the tally pass.
	sort.SliceStable(tallyOrder, func(i, j int) bool {
		return counts[tallyOrder[i]] > counts[tallyOrder[j]]
	})
	for i, id := range tallyOrder {
		if i == 5 {
			break
		}
		stats.FavoriteExercises = append(stats.FavoriteExercises, models.FavoriteExercise{
			ExerciseID: id,
			Count:      counts[id],
		})
	}

	stats.CurrentStreak, stats.LongestStreak = s.streaks(history)
	return stats
}

// streaks computes the current and longest streaks over completed sessions.
//
// The current streak walks newest-first from today with a moving reference
// date: a session continues the streak while its gap from the previously
// counted date is at most one day, so a lone old session yields zero. The
// longest streak is an independent pass over the same ordering using a looser
// two-day gap.
func (s *Service) streaks(history []models.WorkoutSession) (current, longest int) {
	var completed []models.WorkoutSession
	for _, sess := range history {
		if sess.Completed {
			completed = append(completed, sess)
		}
	}
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].Date.After(completed[j].Date)
	})

	ref := dateOf(s.now())
	for _, sess := range completed {
		d := dateOf(sess.Date)
		if daysBetween(ref, d) > 1 {
			break
		}
		current++
		ref = d
	}

	run := 0
	var last time.Time
	for i, sess := range completed {
		d := dateOf(sess.Date)
		if i == 0 || daysBetween(last, d) <= 2 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
		last = d
	}
	return current, longest
}

// daysBetween counts calendar days from b up to a, both midnight-truncated.
// Rounding absorbs DST-shortened or -lengthened days.
func daysBetween(a, b time.Time) int {
	return int(math.Round(a.Sub(b).Hours() / 24))
}
