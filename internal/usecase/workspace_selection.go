package usecase

import (
	"slices"

	"smart-hire/internal/domain/candidate"
	"smart-hire/internal/domain/job"
)

// The current job and the candidate selection are session state: they are
// never written to the store.

// SetCurrentJob selects the job that uploads are matched against. An empty
// id clears the selection.
func (w *Workspace) SetCurrentJob(jobID string) (*job.Posting, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireLoaded(); err != nil {
		return nil, err
	}
	if jobID != "" && w.jobIndex(jobID) < 0 {
		return nil, ErrJobNotFound
	}
	w.currentJobID = jobID
	w.publish(EventWorkspaceChanged, map[string]any{"currentJobId": jobID})
	return w.currentJobLocked(), nil
}

func (w *Workspace) CurrentJob() (*job.Posting, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if err := w.requireLoaded(); err != nil {
		return nil, err
	}
	return w.currentJobLocked(), nil
}

func (w *Workspace) currentJobLocked() *job.Posting {
	i := w.jobIndex(w.currentJobID)
	if i < 0 {
		return nil
	}
	p := cloneJob(w.jobs[i])
	return &p
}

// SelectCandidate adds a candidate to the selection. Selecting an already
// selected candidate changes nothing.
func (w *Workspace) SelectCandidate(candidateID string) ([]candidate.Candidate, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireLoaded(); err != nil {
		return nil, err
	}
	if w.candidateIndex(candidateID) < 0 {
		return nil, ErrCandidateNotFound
	}
	if !slices.Contains(w.selected, candidateID) {
		w.selected = append(w.selected, candidateID)
		w.publish(EventWorkspaceChanged, map[string]any{"selectedCandidateIds": slices.Clone(w.selected)})
	}
	return w.selectedLocked(), nil
}

func (w *Workspace) UnselectCandidate(candidateID string) ([]candidate.Candidate, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireLoaded(); err != nil {
		return nil, err
	}
	before := len(w.selected)
	w.selected = slices.DeleteFunc(w.selected, func(id string) bool { return id == candidateID })
	if len(w.selected) != before {
		w.publish(EventWorkspaceChanged, map[string]any{"selectedCandidateIds": slices.Clone(w.selected)})
	}
	return w.selectedLocked(), nil
}

func (w *Workspace) ClearSelectedCandidates() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireLoaded(); err != nil {
		return err
	}
	w.selected = nil
	w.publish(EventWorkspaceChanged, map[string]any{"selectedCandidateIds": []string{}})
	return nil
}

func (w *Workspace) SelectedCandidates() ([]candidate.Candidate, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if err := w.requireLoaded(); err != nil {
		return nil, err
	}
	return w.selectedLocked(), nil
}

func (w *Workspace) selectedLocked() []candidate.Candidate {
	out := make([]candidate.Candidate, 0, len(w.selected))
	for _, id := range w.selected {
		if i := w.candidateIndex(id); i >= 0 {
			out = append(out, cloneCandidate(w.candidates[i]))
		}
	}
	return out
}
