package tracker

import (
	"io"
	"log/slog"
	"time"

	"github.com/claude/liftplan/internal/storage"
)

// Wednesday, 2026-01-07. The Monday of that week is 2026-01-05.
var testNow = time.Date(2026, time.January, 7, 15, 30, 0, 0, time.UTC)

var testMonday = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

func newTestService(store storage.Store) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(store, log, WithNow(func() time.Time { return testNow }))
}

// newTestServiceAt pins the clock to an arbitrary instant.
func newTestServiceAt(store storage.Store, now time.Time) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(store, log, WithNow(func() time.Time { return now }))
}
