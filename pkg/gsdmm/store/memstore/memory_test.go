package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cognicore/gsdmm/pkg/gsdmm/internalerr"
	"github.com/cognicore/gsdmm/pkg/gsdmm/store"
)

func sampleRun(id string, at time.Time) store.Run {
	return store.Run{
		ID:        id,
		CreatedAt: at,
		K:         8,
		Alpha:     0.1,
		Beta:      0.1,
		Iters:     30,
		Seed:      42,
		VocabSize: 100,
		Assignments: []store.Assignment{
			{DocIndex: 0, URL: "https://example.com/1", Title: "one", Label: 3},
			{DocIndex: 1, URL: "https://example.com/2", Title: "two", Label: 3},
		},
	}
}

func TestSaveGetRun(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	run := sampleRun(store.NewRunID(), time.Now())
	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	got, err := s.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.K != run.K || got.Seed != run.Seed {
		t.Errorf("got %+v, want %+v", got, run)
	}
	if len(got.Assignments) != 2 || got.Assignments[1].Label != 3 {
		t.Errorf("assignments = %+v", got.Assignments)
	}
}

func TestGetRunNotFound(t *testing.T) {
	s := New()
	_, err := s.GetRun(context.Background(), "missing")
	if !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("GetRun error = %v, want ErrNotFound", err)
	}
}

func TestSaveRunEmptyID(t *testing.T) {
	s := New()
	err := s.SaveRun(context.Background(), store.Run{})
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("SaveRun error = %v, want ErrInvalidInput", err)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := New()

	base := time.Now()
	for i := 0; i < 3; i++ {
		run := sampleRun(store.NewRunID(), base.Add(time.Duration(i)*time.Minute))
		if err := s.SaveRun(ctx, run); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	runs, err := s.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if !runs[0].CreatedAt.After(runs[1].CreatedAt) {
		t.Errorf("runs not ordered newest first: %v, %v",
			runs[0].CreatedAt, runs[1].CreatedAt)
	}
	if runs[0].Assignments != nil {
		t.Error("ListRuns should omit assignments")
	}
}
