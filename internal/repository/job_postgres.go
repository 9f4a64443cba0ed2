package repository

import (
	"context"

	"smart-hire/internal/database"
	"smart-hire/internal/domain/job"
)

const jobColumns = `id, title, description, summary, skills, experience, location, posted_date, metadata`

type PostgresJobRepository struct {
	db database.Querier
}

func NewPostgresJobRepository(db database.Querier) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) List(ctx context.Context) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) FindByID(ctx context.Context, id string) (job.Posting, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	p, err := scanJob(row)
	if err != nil {
		if isNoRows(err) {
			return job.Posting{}, ErrNotFound
		}
		return job.Posting{}, err
	}
	return p, nil
}

func (r *PostgresJobRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresJobRepository) Create(ctx context.Context, p job.Posting) error {
	skills, metadata, err := jobJSON(p)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO jobs (`+jobColumns+`)
		 VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7, $8, $9::jsonb)`,
		p.ID, p.Title, p.Description, p.Summary, skills, p.Experience, p.Location, p.PostedDate, metadata,
	)
	return mapWriteErr(err, p.ID)
}

func (r *PostgresJobRepository) CreateBatch(ctx context.Context, ps []job.Posting) error {
	for _, p := range ps {
		if err := r.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresJobRepository) Update(ctx context.Context, p job.Posting) error {
	skills, metadata, err := jobJSON(p)
	if err != nil {
		return err
	}
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs
		 SET title = $2, description = $3, summary = $4, skills = $5::jsonb,
		     experience = $6, location = $7, posted_date = $8, metadata = $9::jsonb
		 WHERE id = $1`,
		p.ID, p.Title, p.Description, p.Summary, skills, p.Experience, p.Location, p.PostedDate, metadata,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func jobJSON(p job.Posting) (skills, metadata string, err error) {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Metadata == nil {
		p.Metadata = job.Metadata{}
	}
	if skills, err = marshalJSON(p.Skills); err != nil {
		return "", "", err
	}
	if metadata, err = marshalJSON(p.Metadata); err != nil {
		return "", "", err
	}
	return skills, metadata, nil
}

func scanJob(row database.Row) (job.Posting, error) {
	var (
		p                job.Posting
		skills, metadata []byte
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Summary, &skills, &p.Experience, &p.Location, &p.PostedDate, &metadata); err != nil {
		return job.Posting{}, err
	}
	if err := unmarshalJSON(skills, &p.Skills); err != nil {
		return job.Posting{}, err
	}
	if err := unmarshalJSON(metadata, &p.Metadata); err != nil {
		return job.Posting{}, err
	}
	return p, nil
}
