package store

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Store persists clustering runs and their per-document assignments.
// The sampler itself never touches it; persistence is a concern of the
// command-line tools.
type Store interface {
	Close() error

	SaveRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, error)
	// ListRuns returns the most recent runs, newest first, without
	// their assignments.
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}

// Run is one completed clustering run.
type Run struct {
	ID        string
	CreatedAt time.Time
	K         int
	Alpha     float64
	Beta      float64
	Iters     int
	Seed      int64
	VocabSize int
	// Assignments holds one entry per input document, in corpus order.
	Assignments []Assignment
}

// Assignment records the cluster label of one document.
type Assignment struct {
	DocIndex int
	URL      string
	Title    string
	Label    int
}

var entropy = ulid.Monotonic(rand.Reader, 0)

// NewRunID returns a fresh ULID for a run.
func NewRunID() string {
	return ulid.MustNew(ulid.Now(), entropy).String()
}
