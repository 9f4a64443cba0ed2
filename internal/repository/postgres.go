package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"smart-hire/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type PostgresStore struct {
	db database.DB
	q  database.Querier
}

func NewPostgresStore(db database.DB) *PostgresStore {
	return &PostgresStore{db: db, q: db}
}

func (s *PostgresStore) Jobs() JobRepository             { return &PostgresJobRepository{db: s.q} }
func (s *PostgresStore) Candidates() CandidateRepository { return &PostgresCandidateRepository{db: s.q} }
func (s *PostgresStore) Matches() MatchRepository        { return &PostgresMatchRepository{db: s.q} }
func (s *PostgresStore) Interviews() InterviewRepository { return &PostgresInterviewRepository{db: s.q} }

func (s *PostgresStore) Transact(ctx context.Context, fn func(tx Store) error) error {
	if s.db == nil {
		// Already inside a transaction.
		return fn(s)
	}
	return database.WithTx(ctx, s.db, func(tx database.Tx) error {
		return fn(&PostgresStore{q: tx})
	})
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// mapWriteErr turns a primary-key violation into ErrDuplicateID.
func mapWriteErr(err error, id string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	return err
}

func marshalJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalJSON(b []byte, v any) error {
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, v)
}
