package tracker

import (
	"context"
	"errors"
	"testing"

	"github.com/claude/liftplan/internal/models"
	"github.com/claude/liftplan/internal/storage"
)

// TestSaveProgramStampsAndGenerates verifies saving a program mints an id,
// stamps timestamps, and regenerates the weekly schedule as a side effect.
func TestSaveProgramStampsAndGenerates(t *testing.T) {
	s := newTestService(storage.NewMemStore())
	ctx := context.Background()

	program := &models.Program{Frequency: 3, Type: models.ProgramSingle, Exercises: []int{1, 5}}
	if err := s.SaveProgram(ctx, program); err != nil {
		t.Fatalf("SaveProgram: %v", err)
	}

	got := s.Program(ctx)
	if got == nil {
		t.Fatal("Program returned nil after save")
	}
	if got.ID == "" {
		t.Error("program id not assigned")
	}
	if got.CreatedAt.IsZero() || got.LastModified.IsZero() {
		t.Error("timestamps not stamped")
	}
	if len(s.Schedule(ctx)) != 7 {
		t.Error("weekly schedule not generated on save")
	}
}

// TestSaveProgramKeepsExistingID verifies replacing a program preserves an
// explicit id and createdAt while refreshing lastModified.
func TestSaveProgramKeepsExistingID(t *testing.T) {
	s := newTestService(storage.NewMemStore())
	ctx := context.Background()

	first := &models.Program{Frequency: 2, Type: models.ProgramSingle, Exercises: []int{1}}
	if err := s.SaveProgram(ctx, first); err != nil {
		t.Fatalf("SaveProgram: %v", err)
	}

	update := &models.Program{
		ID: first.ID, CreatedAt: first.CreatedAt,
		Frequency: 4, Type: models.ProgramSingle, Exercises: []int{1, 2},
	}
	if err := s.SaveProgram(ctx, update); err != nil {
		t.Fatalf("SaveProgram update: %v", err)
	}

	got := s.Program(ctx)
	if got.ID != first.ID {
		t.Errorf("id changed on update: %q -> %q", first.ID, got.ID)
	}
	if !got.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("createdAt changed on update")
	}
	if got.Frequency != 4 {
		t.Errorf("frequency = %d, want 4", got.Frequency)
	}
}

// TestSaveProgramValidation verifies the split-type invariants are enforced.
func TestSaveProgramValidation(t *testing.T) {
	s := newTestService(storage.NewMemStore())
	ctx := context.Background()

	cases := []struct {
		name    string
		program models.Program
	}{
		{"single without exercises", models.Program{Frequency: 3, Type: models.ProgramSingle}},
		{"alternating missing B list", models.Program{Frequency: 3, Type: models.ProgramAlternating, ExercisesA: []int{1}}},
		{"unknown type", models.Program{Frequency: 3, Type: "circuit", Exercises: []int{1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := s.SaveProgram(ctx, &tc.program); err == nil {
				t.Error("SaveProgram accepted invalid program")
			}
		})
	}
}

// TestSaveProgramAlternatingEmptyListsLegal verifies empty (non-nil) A/B
// lists are degenerate but legal.
func TestSaveProgramAlternatingEmptyListsLegal(t *testing.T) {
	s := newTestService(storage.NewMemStore())
	program := &models.Program{
		Frequency: 2, Type: models.ProgramAlternating,
		ExercisesA: []int{}, ExercisesB: []int{},
	}
	if err := s.SaveProgram(context.Background(), program); err != nil {
		t.Errorf("SaveProgram rejected empty alternating lists: %v", err)
	}
}

// TestProgramAbsent verifies no configured program reads back as nil.
func TestProgramAbsent(t *testing.T) {
	s := newTestService(storage.NewMemStore())
	if got := s.Program(context.Background()); got != nil {
		t.Errorf("Program = %+v, want nil", got)
	}
}

// TestProgramDegradedRead verifies a failing store read degrades to nil.
func TestProgramDegradedRead(t *testing.T) {
	store := storage.NewMemStore()
	store.FailReads = errors.New("io error")
	s := newTestService(store)
	if got := s.Program(context.Background()); got != nil {
		t.Errorf("Program on failing store = %+v, want nil", got)
	}
}

// TestDeleteProgramCascades verifies deletion removes both the program and
// the derived weekly schedule.
func TestDeleteProgramCascades(t *testing.T) {
	s := newTestService(storage.NewMemStore())
	ctx := context.Background()
	mustSaveProgram(t, s, &models.Program{Frequency: 3, Type: models.ProgramSingle, Exercises: []int{1}})

	if err := s.DeleteProgram(ctx); err != nil {
		t.Fatalf("DeleteProgram: %v", err)
	}
	if s.Program(ctx) != nil {
		t.Error("program still present after delete")
	}
	if len(s.Schedule(ctx)) != 0 {
		t.Error("schedule not cascade-removed")
	}
}
