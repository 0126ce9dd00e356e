// Package catalog holds the static exercise definitions the engine resolves
// program exercise ids against. Read-only.
package catalog

// Exercise is a catalog entry. Strength exercises carry TargetSets/TargetReps,
// cardio exercises carry TargetDuration.
type Exercise struct {
	ID             int
	Name           string
	Category       string
	TargetSets     int
	TargetReps     string
	TargetDuration string
	Description    string
	MusclesWorked  []string
}

// CategoryCardio is the category that marks an exercise as cardio; everything
// else is treated as strength.
const CategoryCardio = "Cardio"

var exercises = []Exercise{
	{ID: 1, Name: "Barbell Bench Press", Category: "Chest", TargetSets: 4, TargetReps: "6-10", MusclesWorked: []string{"chest", "triceps", "front delts"}},
	{ID: 2, Name: "Incline Dumbbell Press", Category: "Chest", TargetSets: 3, TargetReps: "8-12", MusclesWorked: []string{"upper chest", "front delts"}},
	{ID: 3, Name: "Cable Fly", Category: "Chest", TargetSets: 3, TargetReps: "12-15", MusclesWorked: []string{"chest"}},
	{ID: 4, Name: "Push-Up", Category: "Chest", TargetSets: 3, TargetReps: "max", MusclesWorked: []string{"chest", "triceps", "core"}},
	{ID: 5, Name: "Deadlift", Category: "Back", TargetSets: 4, TargetReps: "4-6", MusclesWorked: []string{"posterior chain", "lats", "traps"}},
	{ID: 6, Name: "Pull-Up", Category: "Back", TargetSets: 4, TargetReps: "6-10", MusclesWorked: []string{"lats", "biceps"}},
	{ID: 7, Name: "Barbell Row", Category: "Back", TargetSets: 4, TargetReps: "8-10", MusclesWorked: []string{"lats", "rhomboids", "rear delts"}},
	{ID: 8, Name: "Lat Pulldown", Category: "Back", TargetSets: 3, TargetReps: "10-12", MusclesWorked: []string{"lats", "biceps"}},
	{ID: 9, Name: "Seated Cable Row", Category: "Back", TargetSets: 3, TargetReps: "10-12", MusclesWorked: []string{"mid back", "lats"}},
	{ID: 10, Name: "Back Squat", Category: "Legs", TargetSets: 4, TargetReps: "5-8", MusclesWorked: []string{"quads", "glutes", "core"}},
	{ID: 11, Name: "Romanian Deadlift", Category: "Legs", TargetSets: 3, TargetReps: "8-10", MusclesWorked: []string{"hamstrings", "glutes"}},
	{ID: 12, Name: "Leg Press", Category: "Legs", TargetSets: 3, TargetReps: "10-12", MusclesWorked: []string{"quads", "glutes"}},
	{ID: 13, Name: "Walking Lunge", Category: "Legs", TargetSets: 3, TargetReps: "10-12 per leg", MusclesWorked: []string{"quads", "glutes"}},
	{ID: 14, Name: "Leg Curl", Category: "Legs", TargetSets: 3, TargetReps: "12-15", MusclesWorked: []string{"hamstrings"}},
	{ID: 15, Name: "Standing Calf Raise", Category: "Legs", TargetSets: 4, TargetReps: "12-20", MusclesWorked: []string{"calves"}},
	{ID: 16, Name: "Overhead Press", Category: "Shoulders", TargetSets: 4, TargetReps: "6-10", MusclesWorked: []string{"delts", "triceps"}},
	{ID: 17, Name: "Lateral Raise", Category: "Shoulders", TargetSets: 3, TargetReps: "12-15", MusclesWorked: []string{"side delts"}},
	{ID: 18, Name: "Face Pull", Category: "Shoulders", TargetSets: 3, TargetReps: "15-20", MusclesWorked: []string{"rear delts", "rotator cuff"}},
	{ID: 19, Name: "Barbell Curl", Category: "Arms", TargetSets: 3, TargetReps: "8-12", MusclesWorked: []string{"biceps"}},
	{ID: 20, Name: "Hammer Curl", Category: "Arms", TargetSets: 3, TargetReps: "10-12", MusclesWorked: []string{"biceps", "forearms"}},
	{ID: 21, Name: "Triceps Pushdown", Category: "Arms", TargetSets: 3, TargetReps: "10-15", MusclesWorked: []string{"triceps"}},
	{ID: 22, Name: "Skull Crusher", Category: "Arms", TargetSets: 3, TargetReps: "8-12", MusclesWorked: []string{"triceps"}},
	{ID: 23, Name: "Plank", Category: "Core", TargetSets: 3, TargetReps: "45-60s", MusclesWorked: []string{"core"}},
	{ID: 24, Name: "Hanging Leg Raise", Category: "Core", TargetSets: 3, TargetReps: "10-15", MusclesWorked: []string{"abs", "hip flexors"}},
	{ID: 25, Name: "Cable Crunch", Category: "Core", TargetSets: 3, TargetReps: "12-15", MusclesWorked: []string{"abs"}},
	{ID: 26, Name: "Treadmill Run", Category: "Cardio", TargetDuration: "30 min", MusclesWorked: []string{"legs", "cardiovascular"}},
	{ID: 27, Name: "Stationary Bike", Category: "Cardio", TargetDuration: "25 min", MusclesWorked: []string{"legs", "cardiovascular"}},
	{ID: 28, Name: "Rowing Machine", Category: "Cardio", TargetDuration: "20 min", MusclesWorked: []string{"full body", "cardiovascular"}},
	{ID: 29, Name: "Stair Climber", Category: "Cardio", TargetDuration: "15 min", MusclesWorked: []string{"legs", "cardiovascular"}},
	{ID: 30, Name: "Jump Rope", Category: "Cardio", TargetDuration: "10 min", MusclesWorked: []string{"calves", "cardiovascular"}},
}

var byID = func() map[int]Exercise {
	m := make(map[int]Exercise, len(exercises))
	for _, e := range exercises {
		m[e.ID] = e
	}
	return m
}()

// ByID looks up a single exercise. The second return is false on a miss.
func ByID(id int) (Exercise, bool) {
	e, ok := byID[id]
	return e, ok
}

// ByIDs resolves a list of ids, silently skipping misses.
func ByIDs(ids []int) []Exercise {
	out := make([]Exercise, 0, len(ids))
	for _, id := range ids {
		if e, ok := byID[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

// ByCategory returns all exercises in a category, in catalog order.
func ByCategory(category string) []Exercise {
	var out []Exercise
	for _, e := range exercises {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// All returns every exercise in catalog order.
func All() []Exercise {
	out := make([]Exercise, len(exercises))
	copy(out, exercises)
	return out
}

// IsCardio reports whether the exercise is a cardio exercise.
func (e Exercise) IsCardio() bool {
	return e.Category == CategoryCardio
}
