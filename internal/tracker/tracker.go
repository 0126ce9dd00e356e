// Package tracker is the workout scheduling and progress tracking engine:
// weekly schedule generation, daily workout resolution, the session ledger,
// and adherence statistics. All state lives in an injected storage.Store as
// JSON blobs; the engine itself is stateless apart from a mutex serializing
// read-modify-write sequences.
package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/claude/liftplan/internal/models"
	"github.com/claude/liftplan/internal/storage"
)

// Service answers program, schedule, session and stats operations over a
// Store. Safe for concurrent use within one process; cross-process writers
// are out of scope.
type Service struct {
	store storage.Store
	log   *slog.Logger
	now   func() time.Time

	// mu serializes ledger and schedule read-modify-write sequences. The
	// two-call store pattern is still not atomic across processes.
	mu sync.Mutex
}

// Option configures a Service.
type Option func(*Service)

// WithNow overrides the clock, for deterministic tests.
func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a Service over the given store.
func New(store storage.Store, log *slog.Logger, opts ...Option) *Service {
	s := &Service{store: store, log: log, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveProgram validates and persists the program as the single active one,
// stamping id and timestamps, then regenerates the weekly schedule.
func (s *Service) SaveProgram(ctx context.Context, program *models.Program) error {
	if err := program.Validate(); err != nil {
		return fmt.Errorf("validating program: %w", err)
	}

	now := s.now()
	if program.ID == "" {
		program.ID = uuid.NewString()
	}
	if program.CreatedAt.IsZero() {
		program.CreatedAt = now
	}
	program.LastModified = now

	data, err := json.Marshal(program)
	if err != nil {
		return fmt.Errorf("encoding program: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyCurrentProgram, data); err != nil {
		return fmt.Errorf("saving program: %w", err)
	}

	if _, err := s.GenerateSchedule(ctx, program); err != nil {
		return fmt.Errorf("generating schedule: %w", err)
	}
	return nil
}

// Program returns the active program, or nil when none is configured. Store
// read failures degrade to nil with a log line.
func (s *Service) Program(ctx context.Context) *models.Program {
	data, err := s.store.Get(ctx, storage.KeyCurrentProgram)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		s.log.Warn("loading program failed", "error", err)
		return nil
	}

	var program models.Program
	if err := json.Unmarshal(data, &program); err != nil {
		s.log.Warn("decoding stored program failed", "error", err)
		return nil
	}
	return &program
}

// DeleteProgram removes the active program and cascade-removes the derived
// weekly schedule.
func (s *Service) DeleteProgram(ctx context.Context) error {
	if err := s.store.Remove(ctx, storage.KeyCurrentProgram); err != nil {
		return fmt.Errorf("removing program: %w", err)
	}
	if err := s.store.Remove(ctx, storage.KeyWeeklySchedule); err != nil {
		return fmt.Errorf("removing schedule: %w", err)
	}
	return nil
}
