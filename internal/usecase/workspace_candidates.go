package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"smart-hire/internal/domain/candidate"
	"smart-hire/internal/domain/match"
	"smart-hire/internal/parser"
	"smart-hire/internal/pipeline"
	"smart-hire/internal/repository"
)

type CandidateFilter struct {
	// Query matches name or email, case-insensitively.
	Query string
	// Skill matches any skill containing it, case-insensitively.
	Skill      string
	ActiveOnly bool
}

func (f CandidateFilter) keep(c candidate.Candidate) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(c.Name), q) && !strings.Contains(strings.ToLower(c.Email), q) {
			return false
		}
	}
	if s := strings.ToLower(strings.TrimSpace(f.Skill)); s != "" {
		if !slices.ContainsFunc(c.Skills, func(skill string) bool {
			return strings.Contains(strings.ToLower(skill), s)
		}) {
			return false
		}
	}
	if f.ActiveOnly && !c.Active() {
		return false
	}
	return true
}

func (w *Workspace) ListCandidates(f CandidateFilter) ([]candidate.Candidate, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if err := w.requireLoaded(); err != nil {
		return nil, err
	}
	out := make([]candidate.Candidate, 0, len(w.candidates))
	for _, c := range w.candidates {
		if f.keep(c) {
			out = append(out, cloneCandidate(c))
		}
	}
	return out, nil
}

// CandidateSkills lists every distinct skill across candidates, sorted.
func (w *Workspace) CandidateSkills() ([]string, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if err := w.requireLoaded(); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, c := range w.candidates {
		for _, s := range c.Skills {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	slices.Sort(out)
	return out, nil
}

func (w *Workspace) GetCandidate(id string) (candidate.Candidate, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if err := w.requireLoaded(); err != nil {
		return candidate.Candidate{}, err
	}
	i := w.candidateIndex(id)
	if i < 0 {
		return candidate.Candidate{}, ErrCandidateNotFound
	}
	return cloneCandidate(w.candidates[i]), nil
}

// AddCandidates stores cs in one batch; either all are added or none.
func (w *Workspace) AddCandidates(ctx context.Context, cs []candidate.Candidate) ([]candidate.Candidate, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireLoaded(); err != nil {
		return nil, err
	}

	added, err := w.addCandidatesLocked(ctx, cs)
	if err != nil {
		return nil, err
	}
	if len(added) > 0 {
		w.publish(EventCandidatesAdded, candidateIDs(added))
	}
	return cloneCandidates(added), nil
}

func (w *Workspace) addCandidatesLocked(ctx context.Context, cs []candidate.Candidate) ([]candidate.Candidate, error) {
	if len(cs) == 0 {
		return []candidate.Candidate{}, nil
	}
	batch := make([]candidate.Candidate, 0, len(cs))
	for _, c := range cs {
		c = cloneCandidate(c)
		if strings.TrimSpace(c.ID) == "" {
			c.ID = w.newID()
		}
		batch = append(batch, c)
	}

	err := w.store.Transact(ctx, func(tx repository.Store) error {
		return tx.Candidates().CreateBatch(ctx, batch)
	})
	if err != nil {
		return nil, w.storeErr("add_candidates", err)
	}
	w.candidates = append(w.candidates, batch...)
	w.invalidateStats(ctx)
	w.log.Printf("workspace op=add_candidates status=ok count=%d", len(batch))
	return batch, nil
}

type UploadResult struct {
	Candidates []candidate.Candidate `json:"candidates"`
	Matches    []match.Match         `json:"matches"`
	Failed     []pipeline.FileError  `json:"failed,omitempty"`
}

// UploadResumes turns résumé files into candidates and matches them
// against the current job. It fails with ErrNoCurrentJob when no job is
// selected.
func (w *Workspace) UploadResumes(ctx context.Context, files []pipeline.ResumeFile) (UploadResult, error) {
	if len(files) == 0 {
		return UploadResult{}, fmt.Errorf("%w: at least one resume is required", ErrInvalidInput)
	}
	if w.ingest == nil {
		return UploadResult{}, fmt.Errorf("%w: resume ingest not configured", ErrInternal)
	}

	w.mu.RLock()
	err := w.requireLoaded()
	current := w.currentJobLocked()
	w.mu.RUnlock()
	if err != nil {
		return UploadResult{}, err
	}
	if current == nil {
		return UploadResult{}, ErrNoCurrentJob
	}

	cands, failed, err := w.ingest.Run(ctx, files, current.Skills)
	if err != nil {
		w.log.Printf("workspace op=upload_resumes status=error job_id=%s err=%v", current.ID, err)
		return UploadResult{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	res := UploadResult{Candidates: []candidate.Candidate{}, Matches: []match.Match{}, Failed: failed}
	if len(cands) == 0 {
		return res, nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	added, err := w.addCandidatesLocked(ctx, cands)
	if err != nil {
		return UploadResult{}, err
	}
	w.publish(EventCandidatesAdded, candidateIDs(added))

	created, err := w.createMatchesLocked(ctx, current.ID, candidateIDs(added))
	if err != nil {
		return UploadResult{}, err
	}
	w.publish(EventMatchesCreated, map[string]any{"jobId": current.ID, "count": len(created)})

	res.Candidates = cloneCandidates(added)
	res.Matches = cloneMatches(created)
	return res, nil
}

// PreviewResume parses résumé text without storing anything.
func (w *Workspace) PreviewResume(text string) candidate.Candidate {
	return parser.ParseResume(text)
}

func candidateIDs(cs []candidate.Candidate) []string {
	ids := make([]string, len(cs))
	for i, c := range cs {
		ids[i] = c.ID
	}
	return ids
}
