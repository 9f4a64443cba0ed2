package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"smart-hire/internal/domain/candidate"
	"smart-hire/internal/domain/interview"
	"smart-hire/internal/domain/match"
	"smart-hire/internal/domain/matching"
	"smart-hire/internal/repository"
)

const (
	SortByScore = "score"
	SortByName  = "name"
)

// CreateMatches scores every listed candidate against the job and stores one
// new match per candidate. Calling it twice for the same pair stores two
// matches.
func (w *Workspace) CreateMatches(ctx context.Context, jobID string, candidateIDs []string) ([]match.Match, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireLoaded(); err != nil {
		return nil, err
	}

	created, err := w.createMatchesLocked(ctx, jobID, candidateIDs)
	if err != nil {
		return nil, err
	}
	if len(created) > 0 {
		w.publish(EventMatchesCreated, map[string]any{"jobId": jobID, "count": len(created)})
	}
	return cloneMatches(created), nil
}

func (w *Workspace) createMatchesLocked(ctx context.Context, jobID string, candidateIDs []string) ([]match.Match, error) {
	ji := w.jobIndex(jobID)
	if ji < 0 {
		return nil, ErrJobNotFound
	}
	p := w.jobs[ji]

	cands := make([]candidate.Candidate, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		ci := w.candidateIndex(id)
		if ci < 0 {
			return nil, fmt.Errorf("%w: %s", ErrCandidateNotFound, id)
		}
		cands = append(cands, w.candidates[ci])
	}
	if len(cands) == 0 {
		return []match.Match{}, nil
	}

	batch := make([]match.Match, 0, len(cands))
	for _, c := range cands {
		score, details := w.gen.Generate(p, c)
		batch = append(batch, match.Match{
			ID:           w.newID(),
			JobID:        p.ID,
			CandidateID:  c.ID,
			Score:        score,
			MatchDetails: details,
			Shortlisted:  score > match.ShortlistThreshold,
			Notes:        "",
		})
	}

	err := w.store.Transact(ctx, func(tx repository.Store) error {
		return tx.Matches().CreateBatch(ctx, batch)
	})
	if err != nil {
		return nil, w.storeErr("create_matches", err)
	}
	w.matches = append(w.matches, batch...)
	w.invalidateJob(ctx, p.ID)
	w.log.Printf("workspace op=create_matches status=ok job_id=%s count=%d strategy=%s", p.ID, len(batch), w.gen.Name())
	return batch, nil
}

// ShortlistCandidate sets the shortlisted flag of one match.
func (w *Workspace) ShortlistCandidate(ctx context.Context, matchID string, shortlisted bool) (match.Match, error) {
	return w.updateMatch(ctx, "shortlist", matchID, func(tx repository.Store) error {
		return tx.Matches().UpdateShortlist(ctx, matchID, shortlisted)
	}, func(m *match.Match) {
		m.Shortlisted = shortlisted
	})
}

func (w *Workspace) UpdateMatchNotes(ctx context.Context, matchID string, notes string) (match.Match, error) {
	return w.updateMatch(ctx, "update_notes", matchID, func(tx repository.Store) error {
		return tx.Matches().UpdateNotes(ctx, matchID, notes)
	}, func(m *match.Match) {
		m.Notes = notes
	})
}

func (w *Workspace) updateMatch(ctx context.Context, op, matchID string, write func(tx repository.Store) error, apply func(m *match.Match)) (match.Match, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireLoaded(); err != nil {
		return match.Match{}, err
	}
	i := w.matchIndex(matchID)
	if i < 0 {
		return match.Match{}, ErrMatchNotFound
	}

	if err := w.store.Transact(ctx, write); err != nil {
		return match.Match{}, w.storeErr(op, err)
	}
	apply(&w.matches[i])
	m := cloneMatch(w.matches[i])

	w.invalidateJob(ctx, m.JobID)
	w.log.Printf("workspace op=%s status=ok match_id=%s", op, m.ID)
	w.publish(EventMatchUpdated, m)
	return m, nil
}

type MatchFilter struct {
	// Band keeps only matches in one score band; empty keeps all.
	Band string
	// Sort is "score" (descending, the default) or "name" (candidate name).
	Sort            string
	ShortlistedOnly bool
}

type MatchListItem struct {
	match.Match
	CandidateName  string     `json:"candidateName"`
	CandidateEmail string     `json:"candidateEmail"`
	Band           match.Band `json:"band"`
	Percentage     int        `json:"percentage"`
}

// ListMatches returns a job's matches with their candidate's name, filtered
// and sorted for display. Results are cached per filter until the job's
// matches change.
func (w *Workspace) ListMatches(ctx context.Context, jobID string, f MatchFilter) ([]MatchListItem, error) {
	band, sortBy, err := normalizeMatchFilter(f)
	if err != nil {
		return nil, err
	}

	w.mu.RLock()
	defer w.mu.RUnlock()
	if err := w.requireLoaded(); err != nil {
		return nil, err
	}
	if w.jobIndex(jobID) < 0 {
		return nil, ErrJobNotFound
	}

	key := matchListCacheKey(jobID, string(band), sortBy, f.ShortlistedOnly)
	var cached []MatchListItem
	if w.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	out := make([]MatchListItem, 0)
	for _, m := range w.matches {
		if m.JobID != jobID {
			continue
		}
		if band != "" && match.BandFor(m.Score) != band {
			continue
		}
		if f.ShortlistedOnly && !m.Shortlisted {
			continue
		}
		item := MatchListItem{
			Match:      cloneMatch(m),
			Band:       match.BandFor(m.Score),
			Percentage: match.Percentage(m.Score),
		}
		if ci := w.candidateIndex(m.CandidateID); ci >= 0 {
			item.CandidateName = w.candidates[ci].Name
			item.CandidateEmail = w.candidates[ci].Email
		}
		out = append(out, item)
	}

	switch sortBy {
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].CandidateName) < strings.ToLower(out[j].CandidateName)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	}

	w.cacheSet(ctx, key, out)
	return out, nil
}

func normalizeMatchFilter(f MatchFilter) (match.Band, string, error) {
	var band match.Band
	if b := strings.ToLower(strings.TrimSpace(f.Band)); b != "" {
		parsed, ok := match.ParseBand(b)
		if !ok {
			return "", "", fmt.Errorf("%w: unknown band %q", ErrInvalidInput, f.Band)
		}
		band = parsed
	}
	sortBy := strings.ToLower(strings.TrimSpace(f.Sort))
	switch sortBy {
	case "":
		sortBy = SortByScore
	case SortByScore, SortByName:
	default:
		return "", "", fmt.Errorf("%w: unknown sort %q", ErrInvalidInput, f.Sort)
	}
	return band, sortBy, nil
}

type JobStats struct {
	JobID              string         `json:"jobId"`
	TotalCandidates    int            `json:"totalCandidates"`
	TotalMatches       int            `json:"totalMatches"`
	AverageScore       int            `json:"averageScore"`
	Shortlisted        int            `json:"shortlisted"`
	ShortlistedPercent int            `json:"shortlistedPercent"`
	Interviews         int            `json:"interviews"`
	InterviewsByStatus map[string]int `json:"interviewsByStatus"`
}

// JobStats summarises one job for the dashboard. Percentages are rounded
// to whole numbers and are 0 when the job has no matches.
func (w *Workspace) JobStats(ctx context.Context, jobID string) (JobStats, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if err := w.requireLoaded(); err != nil {
		return JobStats{}, err
	}
	if w.jobIndex(jobID) < 0 {
		return JobStats{}, ErrJobNotFound
	}

	key := jobStatsCacheKey(jobID)
	var cached JobStats
	if w.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	st := JobStats{
		JobID:           jobID,
		TotalCandidates: len(w.candidates),
		InterviewsByStatus: map[string]int{
			string(interview.StatusScheduled): 0,
			string(interview.StatusCompleted): 0,
			string(interview.StatusCancelled): 0,
		},
	}
	var sum float64
	for _, m := range w.matches {
		if m.JobID != jobID {
			continue
		}
		st.TotalMatches++
		sum += m.Score
		if m.Shortlisted {
			st.Shortlisted++
		}
	}
	if st.TotalMatches > 0 {
		st.AverageScore = int(math.Round(sum / float64(st.TotalMatches) * 100))
		st.ShortlistedPercent = int(math.Round(float64(st.Shortlisted) / float64(st.TotalMatches) * 100))
	}
	for _, iv := range w.interviews {
		if iv.JobID != jobID {
			continue
		}
		st.Interviews++
		st.InterviewsByStatus[string(iv.Status)]++
	}

	w.cacheSet(ctx, key, st)
	return st, nil
}

type ScoreResult struct {
	JobID           string   `json:"jobId"`
	CandidateID     string   `json:"candidateId"`
	Score           float64  `json:"score"`
	SkillScore      float64  `json:"skillScore"`
	ExperienceScore float64  `json:"experienceScore"`
	MatchedSkills   []string `json:"matchedSkills"`
	MissingSkills   []string `json:"missingSkills"`
	EstimatedYears  int      `json:"estimatedYears"`
	// JobMatchScore is the bare skill-overlap ratio, without the experience
	// term.
	JobMatchScore float64 `json:"jobMatchScore"`
}

// ScoreCandidate runs the deterministic scorer for one pair without storing
// a match.
func (w *Workspace) ScoreCandidate(jobID, candidateID string) (ScoreResult, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if err := w.requireLoaded(); err != nil {
		return ScoreResult{}, err
	}
	ji := w.jobIndex(jobID)
	if ji < 0 {
		return ScoreResult{}, ErrJobNotFound
	}
	ci := w.candidateIndex(candidateID)
	if ci < 0 {
		return ScoreResult{}, ErrCandidateNotFound
	}
	p, c := w.jobs[ji], w.candidates[ci]

	b := matching.Calculate(c.Skills, p.Skills, c.Experience, p.Experience, w.now().Year())
	return ScoreResult{
		JobID:           p.ID,
		CandidateID:     c.ID,
		Score:           b.Score,
		SkillScore:      b.SkillScore,
		ExperienceScore: b.ExperienceScore,
		MatchedSkills:   b.MatchedSkills,
		MissingSkills:   b.MissingSkills,
		EstimatedYears:  b.EstimatedYears,
		JobMatchScore:   matching.ScoreJobMatch(p, c.Skills),
	}, nil
}
