package models

import "time"

// WorkoutExercise is a catalog exercise resolved for a concrete workout,
// tagged with its strength/cardio type.
type WorkoutExercise struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Type           string   `json:"type"`
	TargetSets     int      `json:"targetSets,omitempty"`
	TargetReps     string   `json:"targetReps,omitempty"`
	TargetDuration string   `json:"targetDuration,omitempty"`
	Description    string   `json:"description,omitempty"`
	MusclesWorked  []string `json:"musclesWorked,omitempty"`
}

// DailyWorkout is the resolved answer to "what should I do today".
type DailyWorkout struct {
	Date       time.Time         `json:"date"`
	ProgramDay string            `json:"programDay,omitempty"`
	Exercises  []WorkoutExercise `json:"exercises"`
	IsRestDay  bool              `json:"isRestDay"`
}

// WeeklyStats summarizes adherence for the current week.
type WeeklyStats struct {
	Planned       int              `json:"planned"`
	Completed     int              `json:"completed"`
	Progress      float64          `json:"progress"`
	TotalDuration int              `json:"totalDuration"`
	TotalSets     int              `json:"totalSets"`
	WeeklyHistory []WorkoutSession `json:"weeklyHistory"`
}

// FavoriteExercise is a tallied exercise occurrence count.
type FavoriteExercise struct {
	ExerciseID int `json:"exerciseId"`
	Count      int `json:"count"`
}

// WorkoutStats summarizes the whole ledger.
type WorkoutStats struct {
	TotalSessions     int                `json:"totalSessions"`
	TotalDuration     int                `json:"totalDuration"`
	AverageDuration   float64            `json:"averageDuration"`
	CurrentStreak     int                `json:"currentStreak"`
	LongestStreak     int                `json:"longestStreak"`
	TotalSets         int                `json:"totalSets"`
	TotalReps         int                `json:"totalReps"`
	FavoriteExercises []FavoriteExercise `json:"favoriteExercises"`
}
