package tracker

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/claude/liftplan/internal/catalog"
	"github.com/claude/liftplan/internal/models"
)

// TodayWorkout resolves what the user should do today. Returns nil only when
// no program is configured. Rest days return an empty exercise list with
// IsRestDay set. Pure read; no persistence side effects.
func (s *Service) TodayWorkout(ctx context.Context) *models.DailyWorkout {
	program := s.Program(ctx)
	if program == nil {
		return nil
	}

	today := s.now()
	weekday := isoWeekday(today)

	isWorkoutDay := false
	for _, d := range WorkoutDays(program.Frequency) {
		if d == weekday {
			isWorkoutDay = true
			break
		}
	}
	if !isWorkoutDay {
		return &models.DailyWorkout{
			Date:      today,
			Exercises: []models.WorkoutExercise{},
			IsRestDay: true,
		}
	}

	var programDay string
	var exerciseIDs []int

	switch program.Type {
	case models.ProgramAlternating:
		// The variant advances with sessions actually completed this week,
		// not with the calendar slot: even count so far means "A" is next.
		count := s.completedSessionsSince(ctx, weekStart(today))
		programDay = "A"
		exerciseIDs = program.ExercisesA
		if count%2 == 1 {
			programDay = "B"
			exerciseIDs = program.ExercisesB
		}
	default:
		programDay = "A"
		exerciseIDs = program.Exercises
	}

	return &models.DailyWorkout{
		Date:       today,
		ProgramDay: programDay,
		Exercises:  s.resolveExercises(exerciseIDs),
		IsRestDay:  false,
	}
}

// completedSessionsSince counts completed ledger sessions dated at or after
// since.
func (s *Service) completedSessionsSince(ctx context.Context, since time.Time) int {
	count := 0
	for _, sess := range s.History(ctx) {
		if sess.Completed && !sess.Date.Before(since) {
			count++
		}
	}
	return count
}

// resolveExercises maps catalog ids to workout exercises, tagging each as
// cardio or strength. Unknown ids are skipped and logged, never fatal.
func (s *Service) resolveExercises(ids []int) []models.WorkoutExercise {
	out := make([]models.WorkoutExercise, 0, len(ids))
	for _, id := range ids {
		ex, ok := catalog.ByID(id)
		if !ok {
			s.log.Warn("skipping unknown exercise id", "id", id)
			continue
		}
		kind := models.ExerciseStrength
		if ex.IsCardio() {
			kind = models.ExerciseCardio
		}
		out = append(out, models.WorkoutExercise{
			ID:             ex.ID,
			Name:           ex.Name,
			Category:       ex.Category,
			Type:           kind,
			TargetSets:     ex.TargetSets,
			TargetReps:     ex.TargetReps,
			TargetDuration: ex.TargetDuration,
			Description:    ex.Description,
			MusclesWorked:  ex.MusclesWorked,
		})
	}
	return out
}

const (
	defaultTargetSets    = 3
	minutesPerSet        = 2.5
	defaultCardioMinutes = 20
	warmupMinutes        = 10
)

// EstimateDuration estimates workout length in whole minutes: 2.5 minutes per
// strength set, the parsed target duration per cardio exercise, plus a fixed
// warm-up/transition overhead. Rounds half away from zero.
func EstimateDuration(exercises []models.WorkoutExercise) int {
	total := 0.0
	for _, ex := range exercises {
		if ex.Type == models.ExerciseCardio {
			total += float64(parseMinutes(ex.TargetDuration))
			continue
		}
		sets := ex.TargetSets
		if sets == 0 {
			sets = defaultTargetSets
		}
		total += float64(sets) * minutesPerSet
	}
	total += warmupMinutes
	return int(math.Round(total))
}

// parseMinutes extracts the first embedded integer from a duration string
// like "30 min"; absent or unparsable strings default to 20.
func parseMinutes(s string) int {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, _ := strconv.Atoi(s[start:i])
			return n
		}
	}
	if start >= 0 {
		n, _ := strconv.Atoi(s[start:])
		return n
	}
	return defaultCardioMinutes
}
