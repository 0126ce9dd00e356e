package tracker

import (
	"context"
	"testing"
	"time"

	"github.com/claude/liftplan/internal/models"
	"github.com/claude/liftplan/internal/storage"
)

func mustSaveProgram(t *testing.T, s *Service, program *models.Program) {
	t.Helper()
	if err := s.SaveProgram(context.Background(), program); err != nil {
		t.Fatalf("SaveProgram: %v", err)
	}
}

// TestTodayWorkoutNoProgram verifies nil is returned when no program is
// configured; absence is not an error.
func TestTodayWorkoutNoProgram(t *testing.T) {
	s := newTestService(storage.NewMemStore())
	if got := s.TodayWorkout(context.Background()); got != nil {
		t.Errorf("TodayWorkout without program = %+v, want nil", got)
	}
}

// TestTodayWorkoutRestDay verifies a non-workout day resolves to a rest day
// with an empty exercise list. The pinned clock is a Tuesday; frequency 3
// trains Mon/Wed/Fri.
func TestTodayWorkoutRestDay(t *testing.T) {
	tuesday := time.Date(2026, time.January, 6, 9, 0, 0, 0, time.UTC)
	s := newTestServiceAt(storage.NewMemStore(), tuesday)
	mustSaveProgram(t, s, &models.Program{Frequency: 3, Type: models.ProgramSingle, Exercises: []int{1}})

	got := s.TodayWorkout(context.Background())
	if got == nil {
		t.Fatal("TodayWorkout = nil, want rest day")
	}
	if !got.IsRestDay {
		t.Error("IsRestDay = false, want true")
	}
	if len(got.Exercises) != 0 {
		t.Errorf("rest day has %d exercises", len(got.Exercises))
	}
	if got.ProgramDay != "" {
		t.Errorf("rest day programDay = %q, want empty", got.ProgramDay)
	}
}

// TestTodayWorkoutSingle verifies a single program resolves its flat exercise
// list through the catalog and silently drops unknown ids.
func TestTodayWorkoutSingle(t *testing.T) {
	s := newTestService(storage.NewMemStore()) // Wednesday, a workout day at frequency 3
	mustSaveProgram(t, s, &models.Program{
		Frequency: 3,
		Type:      models.ProgramSingle,
		Exercises: []int{1, 9999, 6},
	})

	got := s.TodayWorkout(context.Background())
	if got == nil || got.IsRestDay {
		t.Fatalf("TodayWorkout = %+v, want workout day", got)
	}
	if got.ProgramDay != "A" {
		t.Errorf("programDay = %q, want A", got.ProgramDay)
	}
	if len(got.Exercises) != 2 {
		t.Fatalf("resolved %d exercises, want 2 (unknown id dropped)", len(got.Exercises))
	}
	if got.Exercises[0].ID != 1 || got.Exercises[1].ID != 6 {
		t.Errorf("resolved ids = %d,%d, want 1,6", got.Exercises[0].ID, got.Exercises[1].ID)
	}
}

// TestTodayWorkoutCardioTagging verifies exercises are tagged cardio iff
// their catalog category is Cardio.
func TestTodayWorkoutCardioTagging(t *testing.T) {
	s := newTestService(storage.NewMemStore())
	mustSaveProgram(t, s, &models.Program{
		Frequency: 3,
		Type:      models.ProgramSingle,
		Exercises: []int{1, 26},
	})

	got := s.TodayWorkout(context.Background())
	if got == nil || len(got.Exercises) != 2 {
		t.Fatalf("TodayWorkout = %+v, want 2 exercises", got)
	}
	if got.Exercises[0].Type != models.ExerciseStrength {
		t.Errorf("bench press type = %q, want strength", got.Exercises[0].Type)
	}
	if got.Exercises[1].Type != models.ExerciseCardio {
		t.Errorf("treadmill type = %q, want cardio", got.Exercises[1].Type)
	}
}

// TestTodayWorkoutAlternating verifies the variant is derived from the count
// of completed sessions this week: even → A, odd → B. Sessions before this
// week or not completed do not advance the variant.
func TestTodayWorkoutAlternating(t *testing.T) {
	ctx := context.Background()
	program := &models.Program{
		Frequency:  3,
		Type:       models.ProgramAlternating,
		ExercisesA: []int{1, 2},
		ExercisesB: []int{5, 6},
	}

	cases := []struct {
		name     string
		sessions []models.WorkoutSession
		wantDay  string
		wantIDs  []int
	}{
		{
			name:    "no sessions yet",
			wantDay: "A",
			wantIDs: []int{1, 2},
		},
		{
			name: "one completed this week",
			sessions: []models.WorkoutSession{
				{ID: 1, Date: testMonday.Add(10 * time.Hour), Completed: true},
			},
			wantDay: "B",
			wantIDs: []int{5, 6},
		},
		{
			name: "two completed this week",
			sessions: []models.WorkoutSession{
				{ID: 1, Date: testMonday.Add(10 * time.Hour), Completed: true},
				{ID: 2, Date: testMonday.AddDate(0, 0, 1), Completed: true},
			},
			wantDay: "A",
			wantIDs: []int{1, 2},
		},
		{
			name: "incomplete session does not advance",
			sessions: []models.WorkoutSession{
				{ID: 1, Date: testMonday.Add(10 * time.Hour), Completed: false},
			},
			wantDay: "A",
			wantIDs: []int{1, 2},
		},
		{
			name: "last week's session does not count",
			sessions: []models.WorkoutSession{
				{ID: 1, Date: testMonday.AddDate(0, 0, -3), Completed: true},
			},
			wantDay: "A",
			wantIDs: []int{1, 2},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestService(storage.NewMemStore())
			mustSaveProgram(t, s, program)
			for _, sess := range tc.sessions {
				if err := s.SaveSession(ctx, sess); err != nil {
					t.Fatalf("SaveSession: %v", err)
				}
			}

			got := s.TodayWorkout(ctx)
			if got == nil || got.IsRestDay {
				t.Fatalf("TodayWorkout = %+v, want workout day", got)
			}
			if got.ProgramDay != tc.wantDay {
				t.Errorf("programDay = %q, want %q", got.ProgramDay, tc.wantDay)
			}
			if len(got.Exercises) != len(tc.wantIDs) {
				t.Fatalf("resolved %d exercises, want %d", len(got.Exercises), len(tc.wantIDs))
			}
			for i, id := range tc.wantIDs {
				if got.Exercises[i].ID != id {
					t.Errorf("exercise %d: id = %d, want %d", i, got.Exercises[i].ID, id)
				}
			}
		})
	}
}

// TestEstimateDurationEmpty verifies an empty workout is just the warm-up
// overhead.
func TestEstimateDurationEmpty(t *testing.T) {
	if got := EstimateDuration(nil); got != 10 {
		t.Errorf("EstimateDuration(nil) = %d, want 10", got)
	}
}

// TestEstimateDuration verifies per-exercise contributions and the rounding
// rule: totals round half away from zero, so 3 sets × 2.5 + 10 = 17.5 → 18.
func TestEstimateDuration(t *testing.T) {
	cases := []struct {
		name      string
		exercises []models.WorkoutExercise
		want      int
	}{
		{
			name:      "strength with default sets rounds up",
			exercises: []models.WorkoutExercise{{Type: models.ExerciseStrength}},
			want:      18, // 3×2.5 + 10 = 17.5
		},
		{
			name:      "strength with explicit sets",
			exercises: []models.WorkoutExercise{{Type: models.ExerciseStrength, TargetSets: 4}},
			want:      20,
		},
		{
			name:      "cardio parses leading minutes",
			exercises: []models.WorkoutExercise{{Type: models.ExerciseCardio, TargetDuration: "30 min"}},
			want:      40,
		},
		{
			name:      "cardio missing duration defaults to 20",
			exercises: []models.WorkoutExercise{{Type: models.ExerciseCardio}},
			want:      30,
		},
		{
			name:      "cardio unparsable duration defaults to 20",
			exercises: []models.WorkoutExercise{{Type: models.ExerciseCardio, TargetDuration: "a while"}},
			want:      30,
		},
		{
			name: "mixed workout",
			exercises: []models.WorkoutExercise{
				{Type: models.ExerciseStrength, TargetSets: 4}, // 10
				{Type: models.ExerciseStrength},                // 7.5
				{Type: models.ExerciseCardio, TargetDuration: "15 min"}, // 15
			},
			want: 43, // 32.5 + 10 = 42.5 → 43
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EstimateDuration(tc.exercises); got != tc.want {
				t.Errorf("EstimateDuration = %d, want %d", got, tc.want)
			}
		})
	}
}

// TestParseMinutes verifies extraction of the first embedded integer from
// duration strings.
func TestParseMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"30 min", 30},
		{"about 45 minutes", 45},
		{"20", 20},
		{"", 20},
		{"no digits here", 20},
		{"1h30", 1},
	}
	for _, tc := range cases {
		if got := parseMinutes(tc.input); got != tc.want {
			t.Errorf("parseMinutes(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}
