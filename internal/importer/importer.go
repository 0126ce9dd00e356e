// Package importer merges workout history exports into the session ledger.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/liftplan/internal/models"
	"github.com/claude/liftplan/internal/tracker"
)

// Stats tracks import progress.
type Stats struct {
	SessionsRead      int
	SessionsAdded     int
	DuplicatesSkipped int
	Invalid           int
}

// Importer reads a JSON history export and folds it into the ledger.
type Importer struct {
	svc    *tracker.Service
	log    *slog.Logger
	dryRun bool
}

// New creates a new Importer.
func New(svc *tracker.Service, log *slog.Logger, dryRun bool) *Importer {
	return &Importer{svc: svc, log: log, dryRun: dryRun}
}

// Import reads the export file, drops malformed entries, and merges the rest
// into the ledger. Duplicate session IDs are skipped; the ledger cap is
// re-applied after the merge.
func (imp *Importer) Import(ctx context.Context, file string) (*Stats, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}

	var sessions []models.WorkoutSession
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", file, err)
	}

	stats := &Stats{SessionsRead: len(sessions)}

	valid := sessions[:0]
	for _, session := range sessions {
		if session.Date.IsZero() {
			imp.log.Warn("skipping session without date", "id", session.ID)
			stats.Invalid++
			continue
		}
		valid = append(valid, session)
	}

	if imp.dryRun {
		stats.SessionsAdded = len(valid)
		return stats, nil
	}

	added, skipped, err := imp.svc.MergeHistory(ctx, valid)
	if err != nil {
		return stats, fmt.Errorf("merging history: %w", err)
	}
	stats.SessionsAdded = added
	stats.DuplicatesSkipped = skipped
	return stats, nil
}
