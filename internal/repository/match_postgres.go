package repository

import (
	"context"

	"smart-hire/internal/database"
	"smart-hire/internal/domain/match"
)

const matchColumns = `id, job_id, candidate_id, score, match_details, shortlisted, notes`

type PostgresMatchRepository struct {
	db database.Querier
}

func NewPostgresMatchRepository(db database.Querier) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) List(ctx context.Context) ([]match.Match, error) {
	return r.list(ctx, `SELECT `+matchColumns+` FROM matches ORDER BY seq ASC`)
}

func (r *PostgresMatchRepository) ListByJobID(ctx context.Context, jobID string) ([]match.Match, error) {
	return r.list(ctx, `SELECT `+matchColumns+` FROM matches WHERE job_id = $1 ORDER BY seq ASC`, jobID)
}

func (r *PostgresMatchRepository) list(ctx context.Context, query string, args ...any) ([]match.Match, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]match.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMatchRepository) FindByID(ctx context.Context, id string) (match.Match, error) {
	row := r.db.QueryRow(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1`, id)
	m, err := scanMatch(row)
	if err != nil {
		if isNoRows(err) {
			return match.Match{}, ErrNotFound
		}
		return match.Match{}, err
	}
	return m, nil
}

func (r *PostgresMatchRepository) Create(ctx context.Context, m match.Match) error {
	if m.MatchDetails == nil {
		m.MatchDetails = []match.Detail{}
	}
	details, err := marshalJSON(m.MatchDetails)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO matches (`+matchColumns+`)
		 VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7)`,
		m.ID, m.JobID, m.CandidateID, m.Score, details, m.Shortlisted, m.Notes,
	)
	return mapWriteErr(err, m.ID)
}

func (r *PostgresMatchRepository) CreateBatch(ctx context.Context, ms []match.Match) error {
	for _, m := range ms {
		if err := r.Create(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresMatchRepository) UpdateShortlist(ctx context.Context, id string, shortlisted bool) error {
	affected, err := r.db.Exec(ctx, `UPDATE matches SET shortlisted = $2 WHERE id = $1`, id, shortlisted)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresMatchRepository) UpdateNotes(ctx context.Context, id string, notes string) error {
	affected, err := r.db.Exec(ctx, `UPDATE matches SET notes = $2 WHERE id = $1`, id, notes)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanMatch(row database.Row) (match.Match, error) {
	var (
		m       match.Match
		details []byte
	)
	if err := row.Scan(&m.ID, &m.JobID, &m.CandidateID, &m.Score, &details, &m.Shortlisted, &m.Notes); err != nil {
		return match.Match{}, err
	}
	if err := unmarshalJSON(details, &m.MatchDetails); err != nil {
		return match.Match{}, err
	}
	return m, nil
}
