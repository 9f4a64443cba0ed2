package repository

import (
	"context"
	"errors"

	"smart-hire/internal/domain/candidate"
	"smart-hire/internal/domain/interview"
	"smart-hire/internal/domain/job"
	"smart-hire/internal/domain/match"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("duplicate id")
)

// Every List* method returns records in insertion order.

type JobRepository interface {
	List(ctx context.Context) ([]job.Posting, error)
	FindByID(ctx context.Context, id string) (job.Posting, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, p job.Posting) error
	CreateBatch(ctx context.Context, ps []job.Posting) error
	Update(ctx context.Context, p job.Posting) error
}

type CandidateRepository interface {
	List(ctx context.Context) ([]candidate.Candidate, error)
	FindByID(ctx context.Context, id string) (candidate.Candidate, error)
	Create(ctx context.Context, c candidate.Candidate) error
	CreateBatch(ctx context.Context, cs []candidate.Candidate) error
}

type MatchRepository interface {
	List(ctx context.Context) ([]match.Match, error)
	ListByJobID(ctx context.Context, jobID string) ([]match.Match, error)
	FindByID(ctx context.Context, id string) (match.Match, error)
	Create(ctx context.Context, m match.Match) error
	CreateBatch(ctx context.Context, ms []match.Match) error
	UpdateShortlist(ctx context.Context, id string, shortlisted bool) error
	UpdateNotes(ctx context.Context, id string, notes string) error
}

type InterviewRepository interface {
	List(ctx context.Context) ([]interview.Interview, error)
	ListByCandidateID(ctx context.Context, candidateID string) ([]interview.Interview, error)
	Create(ctx context.Context, iv interview.Interview) error
	CreateBatch(ctx context.Context, ivs []interview.Interview) error
}

// Store groups the four tables. Transact runs fn against a Store whose
// writes become visible together or not at all.
type Store interface {
	Jobs() JobRepository
	Candidates() CandidateRepository
	Matches() MatchRepository
	Interviews() InterviewRepository

	Transact(ctx context.Context, fn func(tx Store) error) error
	Ping(ctx context.Context) error
	Close() error
}
