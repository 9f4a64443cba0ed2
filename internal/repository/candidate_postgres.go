package repository

import (
	"context"

	"smart-hire/internal/database"
	"smart-hire/internal/domain/candidate"
)

const candidateColumns = `id, name, email, phone, resume_url, skills, experience, education, parsed_content`

type PostgresCandidateRepository struct {
	db database.Querier
}

func NewPostgresCandidateRepository(db database.Querier) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) List(ctx context.Context) ([]candidate.Candidate, error) {
	rows, err := r.db.Query(ctx, `SELECT `+candidateColumns+` FROM candidates ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateRepository) FindByID(ctx context.Context, id string) (candidate.Candidate, error) {
	row := r.db.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
	c, err := scanCandidate(row)
	if err != nil {
		if isNoRows(err) {
			return candidate.Candidate{}, ErrNotFound
		}
		return candidate.Candidate{}, err
	}
	return c, nil
}

func (r *PostgresCandidateRepository) Create(ctx context.Context, c candidate.Candidate) error {
	if c.Skills == nil {
		c.Skills = []string{}
	}
	if c.Experience == nil {
		c.Experience = []string{}
	}
	if c.Education == nil {
		c.Education = []candidate.Education{}
	}
	skills, err := marshalJSON(c.Skills)
	if err != nil {
		return err
	}
	experience, err := marshalJSON(c.Experience)
	if err != nil {
		return err
	}
	education, err := marshalJSON(c.Education)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO candidates (`+candidateColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7::jsonb, $8::jsonb, $9)`,
		c.ID, c.Name, c.Email, c.Phone, c.ResumeURL, skills, experience, education, c.ParsedContent,
	)
	return mapWriteErr(err, c.ID)
}

func (r *PostgresCandidateRepository) CreateBatch(ctx context.Context, cs []candidate.Candidate) error {
	for _, c := range cs {
		if err := r.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func scanCandidate(row database.Row) (candidate.Candidate, error) {
	var (
		c                             candidate.Candidate
		skills, experience, education []byte
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.ResumeURL, &skills, &experience, &education, &c.ParsedContent); err != nil {
		return candidate.Candidate{}, err
	}
	if err := unmarshalJSON(skills, &c.Skills); err != nil {
		return candidate.Candidate{}, err
	}
	if err := unmarshalJSON(experience, &c.Experience); err != nil {
		return candidate.Candidate{}, err
	}
	if err := unmarshalJSON(education, &c.Education); err != nil {
		return candidate.Candidate{}, err
	}
	return c, nil
}
