package repository

import (
	"context"
	"errors"
	"testing"

	"smart-hire/internal/domain/candidate"
	"smart-hire/internal/domain/interview"
	"smart-hire/internal/domain/job"
	"smart-hire/internal/domain/match"
)

func TestMemoryStore_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, id := range []string{"job-3", "job-1", "job-2"} {
		if err := s.Jobs().Create(ctx, job.Posting{ID: id}); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	got, err := s.Jobs().List(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []string{"job-3", "job-1", "job-2"}
	if len(got) != len(want) {
		t.Fatalf("expected %d jobs, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("expected %s at %d, got %s", want[i], i, got[i].ID)
		}
	}
}

func TestMemoryStore_DuplicateID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.Candidates().Create(ctx, candidate.Candidate{ID: "c1"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	err := s.Candidates().Create(ctx, candidate.Candidate{ID: "c1"})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestMemoryStore_CreateBatchIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	err := s.Matches().CreateBatch(ctx, []match.Match{{ID: "m1"}, {ID: "m2"}, {ID: "m1"}})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	got, _ := s.Matches().List(ctx)
	if len(got) != 0 {
		t.Fatalf("expected no matches after failed batch, got %d", len(got))
	}
}

func TestMemoryStore_UpdatesAndNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_ = s.Matches().Create(ctx, match.Match{ID: "m1", JobID: "job-1", Score: 0.7})

	if err := s.Matches().UpdateShortlist(ctx, "m1", true); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := s.Matches().UpdateNotes(ctx, "m1", "strong"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m, err := s.Matches().FindByID(ctx, "m1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !m.Shortlisted || m.Notes != "strong" {
		t.Fatalf("expected shortlisted with notes, got %+v", m)
	}

	if err := s.Matches().UpdateShortlist(ctx, "missing", true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Jobs().Update(ctx, job.Posting{ID: "missing"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Candidates().FindByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_ = s.Jobs().Create(ctx, job.Posting{ID: "job-1", Skills: []string{"Go"}})

	p, _ := s.Jobs().FindByID(ctx, "job-1")
	p.Skills[0] = "Rust"

	again, _ := s.Jobs().FindByID(ctx, "job-1")
	if again.Skills[0] != "Go" {
		t.Fatalf("stored job mutated through returned value: %v", again.Skills)
	}
}

func TestMemoryStore_TransactRollsBack(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	boom := errors.New("boom")

	err := s.Transact(ctx, func(tx Store) error {
		if err := tx.Jobs().Create(ctx, job.Posting{ID: "job-1"}); err != nil {
			return err
		}
		if err := tx.Interviews().Create(ctx, interview.Interview{ID: "i1", Status: interview.StatusScheduled}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if n, _ := s.Jobs().Count(ctx); n != 0 {
		t.Fatalf("expected 0 jobs after rollback, got %d", n)
	}
	if ivs, _ := s.Interviews().List(ctx); len(ivs) != 0 {
		t.Fatalf("expected 0 interviews after rollback, got %d", len(ivs))
	}
}

func TestMemoryStore_TransactCommits(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	err := s.Transact(ctx, func(tx Store) error {
		if err := tx.Jobs().Create(ctx, job.Posting{ID: "job-1"}); err != nil {
			return err
		}
		return tx.Interviews().CreateBatch(ctx, []interview.Interview{
			{ID: "i1", CandidateID: "c1"},
			{ID: "i2", CandidateID: "c2"},
		})
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n, _ := s.Jobs().Count(ctx); n != 1 {
		t.Fatalf("expected 1 job, got %d", n)
	}
	ivs, _ := s.Interviews().ListByCandidateID(ctx, "c2")
	if len(ivs) != 1 || ivs[0].ID != "i2" {
		t.Fatalf("unexpected interviews for c2: %+v", ivs)
	}
}
