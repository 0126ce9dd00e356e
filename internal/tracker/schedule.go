package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/claude/liftplan/internal/models"
	"github.com/claude/liftplan/internal/storage"
)

// workoutDayPatterns maps weekly frequency to 1-based weekday indices
// (Monday=1 .. Sunday=7).
var workoutDayPatterns = map[int][]int{
	2: {1, 4},       // Mon, Thu
	3: {1, 3, 5},    // Mon, Wed, Fri
	4: {1, 2, 4, 5}, // Mon, Tue, Thu, Fri
}

// WorkoutDays returns the weekday pattern for a frequency. An unrecognized
// frequency falls back to the 3-day pattern; this is a defined default, not
// an error.
func WorkoutDays(frequency int) []int {
	if days, ok := workoutDayPatterns[frequency]; ok {
		return days
	}
	return workoutDayPatterns[3]
}

// isoWeekday normalizes time.Weekday so Monday=1 .. Sunday=7.
func isoWeekday(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}

// weekStart returns the Monday of t's calendar week, at midnight.
func weekStart(t time.Time) time.Time {
	d := dateOf(t)
	return d.AddDate(0, 0, -(isoWeekday(d) - 1))
}

// dateOf truncates t to midnight in its own location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// GenerateSchedule projects the program onto the current calendar week and
// persists the result, replacing any prior schedule. Regeneration resets
// completed flags; callers regenerate on week rollover or program change.
func (s *Service) GenerateSchedule(ctx context.Context, program *models.Program) (models.WeeklySchedule, error) {
	start := weekStart(s.now())
	days := WorkoutDays(program.Frequency)

	schedule := make(models.WeeklySchedule, 0, 7)
	for i := 0; i < 7; i++ {
		day := models.ScheduleDay{Date: start.AddDate(0, 0, i)}
		for ordinal, weekday := range days {
			if weekday != i+1 {
				continue
			}
			day.IsWorkoutDay = true
			day.ProgramDay = "A"
			if program.Type == models.ProgramAlternating && ordinal%2 == 1 {
				day.ProgramDay = "B"
			}
			break
		}
		schedule = append(schedule, day)
	}

	data, err := json.Marshal(schedule)
	if err != nil {
		return nil, fmt.Errorf("encoding schedule: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyWeeklySchedule, data); err != nil {
		return nil, fmt.Errorf("saving schedule: %w", err)
	}
	return schedule, nil
}

// Schedule returns the stored weekly schedule, or an empty one. Read failures
// degrade to empty with a log line.
func (s *Service) Schedule(ctx context.Context) models.WeeklySchedule {
	data, err := s.store.Get(ctx, storage.KeyWeeklySchedule)
	if errors.Is(err, storage.ErrNotFound) {
		return models.WeeklySchedule{}
	}
	if err != nil {
		s.log.Warn("loading schedule failed", "error", err)
		return models.WeeklySchedule{}
	}

	var schedule models.WeeklySchedule
	if err := json.Unmarshal(data, &schedule); err != nil {
		s.log.Warn("decoding stored schedule failed", "error", err)
		return models.WeeklySchedule{}
	}
	return schedule
}
