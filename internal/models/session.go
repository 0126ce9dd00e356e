package models

import "time"

// Exercise types as they appear in sessions and resolved workouts.
const (
	ExerciseStrength = "strength"
	ExerciseCardio   = "cardio"
)

// StrengthSet is one logged set of a strength exercise.
type StrengthSet struct {
	Weight    float64   `json:"weight"`
	Reps      int       `json:"reps"`
	Completed bool      `json:"completed"`
	Timestamp time.Time `json:"timestamp"`
}

// CardioSession is one logged bout of a cardio exercise.
type CardioSession struct {
	Duration  int       `json:"duration"`
	Intensity int       `json:"intensity"`
	Incline   float64   `json:"incline,omitempty"`
	Completed bool      `json:"completed"`
	Timestamp time.Time `json:"timestamp"`
}

// ExerciseData is the per-exercise record inside a session.
type ExerciseData struct {
	ExerciseID     int             `json:"exerciseId"`
	Type           string          `json:"type"`
	Sets           []StrengthSet   `json:"sets"`
	CardioSessions []CardioSession `json:"cardioSessions"`
	Completed      bool            `json:"completed"`
	Notes          string          `json:"notes,omitempty"`
}

// WorkoutSession is one ledger entry. Entries are immutable once written
// except for the Completed flag lifecycle; the ledger keeps the 100 most
// recent, newest first.
type WorkoutSession struct {
	ID        int64          `json:"id"`
	Date      time.Time      `json:"date"`
	Duration  int            `json:"duration"`
	Exercises []ExerciseData `json:"exercises"`
	Completed bool           `json:"completed"`
	SavedAt   time.Time      `json:"savedAt,omitempty"`
}

// SetCount counts sets in the session; cardio bouts count as sets for
// aggregate purposes.
func (s WorkoutSession) SetCount() int {
	n := 0
	for _, ex := range s.Exercises {
		n += len(ex.Sets) + len(ex.CardioSessions)
	}
	return n
}
