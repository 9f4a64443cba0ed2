package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"smart-hire/internal/database"
	"smart-hire/internal/domain/job"
	"smart-hire/internal/domain/match"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type execCall struct {
	query string
	args  []any
}

type fakeQuerier struct {
	calls    []execCall
	affected int64
	execErr  error
	row      database.Row
}

func (f *fakeQuerier) Exec(_ context.Context, query string, args ...any) (int64, error) {
	f.calls = append(f.calls, execCall{query: query, args: args})
	return f.affected, f.execErr
}

func (f *fakeQuerier) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeQuerier) QueryRow(context.Context, string, ...any) database.Row {
	return f.row
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func TestPostgresJobRepository_CreateEncodesJSON(t *testing.T) {
	q := &fakeQuerier{affected: 1}
	repo := NewPostgresJobRepository(q)

	err := repo.Create(context.Background(), job.Posting{ID: "job-1", Title: "Backend", Skills: []string{"Go", "SQL"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(q.calls) != 1 {
		t.Fatalf("expected 1 exec, got %d", len(q.calls))
	}
	call := q.calls[0]
	if !strings.Contains(call.query, "INSERT INTO jobs") {
		t.Fatalf("unexpected query: %s", call.query)
	}
	if call.args[4] != `["Go","SQL"]` {
		t.Fatalf("expected skills JSON, got %v", call.args[4])
	}
	if call.args[8] != `{}` {
		t.Fatalf("expected empty metadata object, got %v", call.args[8])
	}
}

func TestPostgresJobRepository_CreateDuplicate(t *testing.T) {
	q := &fakeQuerier{execErr: &pgconn.PgError{Code: pgUniqueViolation}}
	repo := NewPostgresJobRepository(q)

	err := repo.Create(context.Background(), job.Posting{ID: "job-1"})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestPostgresJobRepository_UpdateNotFound(t *testing.T) {
	repo := NewPostgresJobRepository(&fakeQuerier{affected: 0})

	err := repo.Update(context.Background(), job.Posting{ID: "missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresMatchRepository_FindByIDNoRows(t *testing.T) {
	repo := NewPostgresMatchRepository(&fakeQuerier{row: errRow{err: pgx.ErrNoRows}})

	_, err := repo.FindByID(context.Background(), "m1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresMatchRepository_UpdateShortlist(t *testing.T) {
	q := &fakeQuerier{affected: 1}
	repo := NewPostgresMatchRepository(q)

	if err := repo.UpdateShortlist(context.Background(), "m1", true); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := q.calls[0].args; got[0] != "m1" || got[1] != true {
		t.Fatalf("unexpected args: %v", got)
	}

	q.affected = 0
	if err := repo.UpdateNotes(context.Background(), "m1", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresMatchRepository_CreateDefaultsDetails(t *testing.T) {
	q := &fakeQuerier{affected: 1}
	repo := NewPostgresMatchRepository(q)

	if err := repo.Create(context.Background(), match.Match{ID: "m1"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if q.calls[0].args[4] != `[]` {
		t.Fatalf("expected empty details array, got %v", q.calls[0].args[4])
	}
}
