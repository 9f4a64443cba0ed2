package seeder

import (
	"context"
	"testing"

	"smart-hire/internal/domain/job"
	"smart-hire/internal/repository"
)

func TestRunner_SeedsEmptyStoreOnce(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	r := Runner{Seeders: []Seeder{SampleData{}}}

	for i := 0; i < 2; i++ {
		if err := r.Run(ctx, store); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	jobs, _ := store.Jobs().List(ctx)
	if len(jobs) != 2 || jobs[0].ID != "job-1" {
		t.Fatalf("unexpected jobs: %+v", jobs)
	}
	cands, _ := store.Candidates().List(ctx)
	if len(cands) != 4 {
		t.Fatalf("expected 4 candidates, got %d", len(cands))
	}
	matches, _ := store.Matches().List(ctx)
	if len(matches) != 4 {
		t.Fatalf("expected 4 matches, got %d", len(matches))
	}
	ivs, _ := store.Interviews().List(ctx)
	if len(ivs) != 3 {
		t.Fatalf("expected 3 interviews, got %d", len(ivs))
	}
}

func TestSampleData_SkipsWhenJobsExist(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	_ = store.Jobs().Create(ctx, job.Posting{ID: "existing"})

	if err := (Runner{Seeders: []Seeder{SampleData{}}}).Run(ctx, store); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	cands, _ := store.Candidates().List(ctx)
	if len(cands) != 0 {
		t.Fatalf("expected no candidates seeded, got %d", len(cands))
	}
}
