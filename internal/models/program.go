package models

import (
	"fmt"
	"time"
)

// Program types.
const (
	ProgramSingle      = "single"
	ProgramAlternating = "alternating"
)

// Program is the user's configured training plan. There is at most one active
// program; saving a new one replaces it wholesale.
type Program struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Frequency int    `json:"frequency"`
	Type      string `json:"type"`

	// Exercises is used when Type is "single".
	Exercises []int `json:"exercises,omitempty"`

	// ExercisesA/B are used when Type is "alternating".
	ExercisesA []int `json:"exercisesA,omitempty"`
	ExercisesB []int `json:"exercisesB,omitempty"`

	CreatedAt    time.Time `json:"createdAt"`
	LastModified time.Time `json:"lastModified"`
}

// Validate checks the split-type invariants. Frequency is deliberately not
// validated here: an unrecognized frequency falls back to the 3-day pattern
// downstream.
func (p *Program) Validate() error {
	switch p.Type {
	case ProgramSingle:
		if len(p.Exercises) == 0 {
			return fmt.Errorf("single program requires a non-empty exercise list")
		}
	case ProgramAlternating:
		if p.ExercisesA == nil || p.ExercisesB == nil {
			return fmt.Errorf("alternating program requires both exercise lists")
		}
	default:
		return fmt.Errorf("unknown program type %q", p.Type)
	}
	return nil
}

// ScheduleDay is one entry of the derived weekly schedule.
type ScheduleDay struct {
	Date         time.Time `json:"date"`
	IsWorkoutDay bool      `json:"isWorkoutDay"`

	// ProgramDay is "A" or "B" on workout days, empty otherwise.
	ProgramDay string `json:"programDay,omitempty"`
	Completed  bool   `json:"completed"`
}

// WeeklySchedule is the projection of a Program onto the current calendar
// week: exactly 7 days, Monday first. It is derived state, regenerable at any
// time from the program.
type WeeklySchedule []ScheduleDay
