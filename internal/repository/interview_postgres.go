package repository

import (
	"context"

	"smart-hire/internal/database"
	"smart-hire/internal/domain/interview"
)

const interviewColumns = `id, candidate_id, job_id, datetime, status, notes`

type PostgresInterviewRepository struct {
	db database.Querier
}

func NewPostgresInterviewRepository(db database.Querier) *PostgresInterviewRepository {
	return &PostgresInterviewRepository{db: db}
}

func (r *PostgresInterviewRepository) List(ctx context.Context) ([]interview.Interview, error) {
	return r.list(ctx, `SELECT `+interviewColumns+` FROM interviews ORDER BY seq ASC`)
}

func (r *PostgresInterviewRepository) ListByCandidateID(ctx context.Context, candidateID string) ([]interview.Interview, error) {
	return r.list(ctx, `SELECT `+interviewColumns+` FROM interviews WHERE candidate_id = $1 ORDER BY seq ASC`, candidateID)
}

func (r *PostgresInterviewRepository) list(ctx context.Context, query string, args ...any) ([]interview.Interview, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]interview.Interview, 0)
	for rows.Next() {
		var (
			iv     interview.Interview
			status string
		)
		if err := rows.Scan(&iv.ID, &iv.CandidateID, &iv.JobID, &iv.Datetime, &status, &iv.Notes); err != nil {
			return nil, err
		}
		iv.Status = interview.Status(status)
		out = append(out, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresInterviewRepository) Create(ctx context.Context, iv interview.Interview) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO interviews (`+interviewColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		iv.ID, iv.CandidateID, iv.JobID, iv.Datetime, string(iv.Status), iv.Notes,
	)
	return mapWriteErr(err, iv.ID)
}

func (r *PostgresInterviewRepository) CreateBatch(ctx context.Context, ivs []interview.Interview) error {
	for _, iv := range ivs {
		if err := r.Create(ctx, iv); err != nil {
			return err
		}
	}
	return nil
}
