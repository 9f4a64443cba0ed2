package repository

import (
	"context"
	"fmt"
	"sync"

	"smart-hire/internal/domain/candidate"
	"smart-hire/internal/domain/interview"
	"smart-hire/internal/domain/job"
	"smart-hire/internal/domain/match"
)

// table is an insertion-ordered object store keyed by id.
type table[T any] struct {
	order []string
	rows  map[string]T
}

func newTable[T any]() table[T] {
	return table[T]{rows: map[string]T{}}
}

func (t table[T]) clone(cp func(T) T) table[T] {
	out := table[T]{order: append([]string(nil), t.order...), rows: make(map[string]T, len(t.rows))}
	for k, v := range t.rows {
		out.rows[k] = cp(v)
	}
	return out
}

func (t *table[T]) add(id string, v T) error {
	if id == "" {
		return fmt.Errorf("empty id")
	}
	if _, ok := t.rows[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	t.order = append(t.order, id)
	t.rows[id] = v
	return nil
}

func (t *table[T]) put(id string, v T) error {
	if _, ok := t.rows[id]; !ok {
		return ErrNotFound
	}
	t.rows[id] = v
	return nil
}

func (t table[T]) get(id string) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t table[T]) all(keep func(T) bool, cp func(T) T) []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		v := t.rows[id]
		if keep != nil && !keep(v) {
			continue
		}
		out = append(out, cp(v))
	}
	return out
}

type memData struct {
	jobs       table[job.Posting]
	candidates table[candidate.Candidate]
	matches    table[match.Match]
	interviews table[interview.Interview]
}

func (d *memData) clone() *memData {
	return &memData{
		jobs:       d.jobs.clone(copyJob),
		candidates: d.candidates.clone(copyCandidate),
		matches:    d.matches.clone(copyMatch),
		interviews: d.interviews.clone(copyInterview),
	}
}

// MemoryStore keeps everything in process. It backs tests and the
// STORE_DRIVER=memory mode, where data lives as long as the process.
type MemoryStore struct {
	mu   *sync.RWMutex
	data *memData
	// inTx is set on the Store handed to Transact callbacks; the caller
	// already holds mu.
	inTx bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		mu: &sync.RWMutex{},
		data: &memData{
			jobs:       newTable[job.Posting](),
			candidates: newTable[candidate.Candidate](),
			matches:    newTable[match.Match](),
			interviews: newTable[interview.Interview](),
		},
	}
}

func (s *MemoryStore) Jobs() JobRepository             { return memJobs{s} }
func (s *MemoryStore) Candidates() CandidateRepository { return memCandidates{s} }
func (s *MemoryStore) Matches() MatchRepository        { return memMatches{s} }
func (s *MemoryStore) Interviews() InterviewRepository { return memInterviews{s} }

func (s *MemoryStore) Ping(context.Context) error { return nil }
func (s *MemoryStore) Close() error               { return nil }

// Transact runs fn on a copy of the data and swaps it in only when fn
// succeeds.
func (s *MemoryStore) Transact(ctx context.Context, fn func(tx Store) error) error {
	if s.inTx {
		return fn(s)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := &MemoryStore{mu: s.mu, data: s.data.clone(), inTx: true}
	if err := fn(work); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.data = work.data
	return nil
}

func (s *MemoryStore) read(fn func(d *memData)) {
	if !s.inTx {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn(s.data)
}

func (s *MemoryStore) write(fn func(d *memData) error) error {
	if !s.inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn(s.data)
}

// batch applies fn to a copy so a failing row leaves earlier rows unwritten.
func (s *MemoryStore) batch(fn func(d *memData) error) error {
	return s.write(func(d *memData) error {
		work := d.clone()
		if err := fn(work); err != nil {
			return err
		}
		*d = *work
		return nil
	})
}

type memJobs struct{ s *MemoryStore }

func (r memJobs) List(ctx context.Context) (out []job.Posting, err error) {
	r.s.read(func(d *memData) { out = d.jobs.all(nil, copyJob) })
	return out, nil
}

func (r memJobs) FindByID(ctx context.Context, id string) (job.Posting, error) {
	var (
		p  job.Posting
		ok bool
	)
	r.s.read(func(d *memData) { p, ok = d.jobs.get(id) })
	if !ok {
		return job.Posting{}, ErrNotFound
	}
	return copyJob(p), nil
}

func (r memJobs) Count(ctx context.Context) (n int, err error) {
	r.s.read(func(d *memData) { n = len(d.jobs.order) })
	return n, nil
}

func (r memJobs) Create(ctx context.Context, p job.Posting) error {
	return r.s.write(func(d *memData) error { return d.jobs.add(p.ID, copyJob(p)) })
}

func (r memJobs) CreateBatch(ctx context.Context, ps []job.Posting) error {
	return r.s.batch(func(d *memData) error {
		for _, p := range ps {
			if err := d.jobs.add(p.ID, copyJob(p)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r memJobs) Update(ctx context.Context, p job.Posting) error {
	return r.s.write(func(d *memData) error { return d.jobs.put(p.ID, copyJob(p)) })
}

type memCandidates struct{ s *MemoryStore }

func (r memCandidates) List(ctx context.Context) (out []candidate.Candidate, err error) {
	r.s.read(func(d *memData) { out = d.candidates.all(nil, copyCandidate) })
	return out, nil
}

func (r memCandidates) FindByID(ctx context.Context, id string) (candidate.Candidate, error) {
	var (
		c  candidate.Candidate
		ok bool
	)
	r.s.read(func(d *memData) { c, ok = d.candidates.get(id) })
	if !ok {
		return candidate.Candidate{}, ErrNotFound
	}
	return copyCandidate(c), nil
}

func (r memCandidates) Create(ctx context.Context, c candidate.Candidate) error {
	return r.s.write(func(d *memData) error { return d.candidates.add(c.ID, copyCandidate(c)) })
}

func (r memCandidates) CreateBatch(ctx context.Context, cs []candidate.Candidate) error {
	return r.s.batch(func(d *memData) error {
		for _, c := range cs {
			if err := d.candidates.add(c.ID, copyCandidate(c)); err != nil {
				return err
			}
		}
		return nil
	})
}

type memMatches struct{ s *MemoryStore }

func (r memMatches) List(ctx context.Context) (out []match.Match, err error) {
	r.s.read(func(d *memData) { out = d.matches.all(nil, copyMatch) })
	return out, nil
}

func (r memMatches) ListByJobID(ctx context.Context, jobID string) (out []match.Match, err error) {
	r.s.read(func(d *memData) {
		out = d.matches.all(func(m match.Match) bool { return m.JobID == jobID }, copyMatch)
	})
	return out, nil
}

func (r memMatches) FindByID(ctx context.Context, id string) (match.Match, error) {
	var (
		m  match.Match
		ok bool
	)
	r.s.read(func(d *memData) { m, ok = d.matches.get(id) })
	if !ok {
		return match.Match{}, ErrNotFound
	}
	return copyMatch(m), nil
}

func (r memMatches) Create(ctx context.Context, m match.Match) error {
	return r.s.write(func(d *memData) error { return d.matches.add(m.ID, copyMatch(m)) })
}

func (r memMatches) CreateBatch(ctx context.Context, ms []match.Match) error {
	return r.s.batch(func(d *memData) error {
		for _, m := range ms {
			if err := d.matches.add(m.ID, copyMatch(m)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r memMatches) UpdateShortlist(ctx context.Context, id string, shortlisted bool) error {
	return r.s.write(func(d *memData) error {
		m, ok := d.matches.get(id)
		if !ok {
			return ErrNotFound
		}
		m.Shortlisted = shortlisted
		return d.matches.put(id, m)
	})
}

func (r memMatches) UpdateNotes(ctx context.Context, id string, notes string) error {
	return r.s.write(func(d *memData) error {
		m, ok := d.matches.get(id)
		if !ok {
			return ErrNotFound
		}
		m.Notes = notes
		return d.matches.put(id, m)
	})
}

type memInterviews struct{ s *MemoryStore }

func (r memInterviews) List(ctx context.Context) (out []interview.Interview, err error) {
	r.s.read(func(d *memData) { out = d.interviews.all(nil, copyInterview) })
	return out, nil
}

func (r memInterviews) ListByCandidateID(ctx context.Context, candidateID string) (out []interview.Interview, err error) {
	r.s.read(func(d *memData) {
		out = d.interviews.all(func(iv interview.Interview) bool { return iv.CandidateID == candidateID }, copyInterview)
	})
	return out, nil
}

func (r memInterviews) Create(ctx context.Context, iv interview.Interview) error {
	return r.s.write(func(d *memData) error { return d.interviews.add(iv.ID, iv) })
}

func (r memInterviews) CreateBatch(ctx context.Context, ivs []interview.Interview) error {
	return r.s.batch(func(d *memData) error {
		for _, iv := range ivs {
			if err := d.interviews.add(iv.ID, iv); err != nil {
				return err
			}
		}
		return nil
	})
}

func copyJob(p job.Posting) job.Posting {
	p.Skills = append([]string(nil), p.Skills...)
	if p.Metadata != nil {
		m := make(job.Metadata, len(p.Metadata))
		for k, v := range p.Metadata {
			m[k] = v
		}
		p.Metadata = m
	}
	return p
}

func copyCandidate(c candidate.Candidate) candidate.Candidate {
	c.Skills = append([]string(nil), c.Skills...)
	c.Experience = append([]string(nil), c.Experience...)
	c.Education = append([]candidate.Education(nil), c.Education...)
	return c
}

func copyMatch(m match.Match) match.Match {
	m.MatchDetails = append([]match.Detail(nil), m.MatchDetails...)
	return m
}

func copyInterview(iv interview.Interview) interview.Interview {
	return iv
}
