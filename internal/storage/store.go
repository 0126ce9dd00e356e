// Package storage provides the key→JSON-blob store the tracking engine
// persists into. Two backends implement the same contract: a local SQLite
// file (the default) and PostgreSQL.
package storage

import (
	"context"
	"errors"
)

// Logical storage keys. Each holds one JSON document.
const (
	KeyCurrentProgram = "currentProgram"
	KeyWorkoutHistory = "workoutHistory"
	KeyWeeklySchedule = "weeklySchedule"
	KeyUserSettings   = "userSettings"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("storage: key not found")

// Store is the get/set/remove contract over JSON blobs. Implementations need
// no transactional guarantees beyond single-statement atomicity; the engine
// serializes its own read-modify-write sequences.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}
