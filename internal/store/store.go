// Package store persists run history so past cleaning runs can be listed
// and compared.
package store

import (
	"context"
	"time"

	"github.com/sells-group/listclean-cli/internal/clean"
)

// Run is one recorded cleaning run.
type Run struct {
	ID        string        `json:"id"`
	Source    string        `json:"source"`
	Summary   clean.Summary `json:"summary"`
	CreatedAt time.Time     `json:"created_at"`
}

// Store defines the run-history persistence interface.
type Store interface {
	SaveRun(ctx context.Context, source string, summary clean.Summary) (*Run, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	Migrate(ctx context.Context) error
	Close() error
}
