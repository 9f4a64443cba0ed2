package usecase

import (
	"context"
	"fmt"
	"strings"

	"smart-hire/internal/domain/job"
	"smart-hire/internal/parser"
)

// uploadFallbackTitle is used when neither the form nor the text's first
// line supplies a title.
const uploadFallbackTitle = "New Job"

type JobTextInput struct {
	Text     string
	Title    string
	Location string
}

func (w *Workspace) ListJobs() ([]job.Posting, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if err := w.requireLoaded(); err != nil {
		return nil, err
	}
	return cloneJobs(w.jobs), nil
}

func (w *Workspace) GetJob(id string) (job.Posting, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if err := w.requireLoaded(); err != nil {
		return job.Posting{}, err
	}
	i := w.jobIndex(id)
	if i < 0 {
		return job.Posting{}, ErrJobNotFound
	}
	return cloneJob(w.jobs[i]), nil
}

// AddJob stores p as given, filling in an ID, posted date and empty
// collections when they are missing.
func (w *Workspace) AddJob(ctx context.Context, p job.Posting) (job.Posting, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireLoaded(); err != nil {
		return job.Posting{}, err
	}

	p, err := w.addJobLocked(ctx, p)
	if err != nil {
		return job.Posting{}, err
	}
	w.publish(EventJobAdded, p)
	return cloneJob(p), nil
}

func (w *Workspace) addJobLocked(ctx context.Context, p job.Posting) (job.Posting, error) {
	p = cloneJob(p)
	if strings.TrimSpace(p.ID) == "" {
		p.ID = w.newID()
	}
	if p.PostedDate == "" {
		p.PostedDate = job.Today(w.now())
	}
	if p.Metadata == nil {
		p.Metadata = job.Metadata{}
	}

	if err := w.store.Jobs().Create(ctx, p); err != nil {
		return job.Posting{}, w.storeErr("add_job", err)
	}
	w.jobs = append(w.jobs, p)
	w.log.Printf("workspace op=add_job status=ok job_id=%s skills=%d", p.ID, len(p.Skills))
	return p, nil
}

// UpdateJob replaces the job with the same ID.
func (w *Workspace) UpdateJob(ctx context.Context, p job.Posting) (job.Posting, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireLoaded(); err != nil {
		return job.Posting{}, err
	}
	i := w.jobIndex(p.ID)
	if i < 0 {
		return job.Posting{}, ErrJobNotFound
	}

	p = cloneJob(p)
	if p.Metadata == nil {
		p.Metadata = job.Metadata{}
	}
	if err := w.store.Jobs().Update(ctx, p); err != nil {
		return job.Posting{}, w.storeErr("update_job", err)
	}
	w.jobs[i] = p
	w.log.Printf("workspace op=update_job status=ok job_id=%s", p.ID)
	w.publish(EventJobUpdated, p)
	return cloneJob(p), nil
}

// CreateJobFromText parses a pasted description into a new posting and
// makes it the current job. Non-blank title and location in the input win
// over what the parser found.
func (w *Workspace) CreateJobFromText(ctx context.Context, in JobTextInput) (job.Posting, error) {
	if strings.TrimSpace(in.Text) == "" {
		return job.Posting{}, fmt.Errorf("%w: job description text is required", ErrInvalidInput)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireLoaded(); err != nil {
		return job.Posting{}, err
	}

	p := w.PreviewJob(in)
	p, err := w.addJobLocked(ctx, p)
	if err != nil {
		return job.Posting{}, err
	}
	w.currentJobID = p.ID

	w.publish(EventJobAdded, p)
	w.publish(EventWorkspaceChanged, map[string]any{"currentJobId": p.ID})
	return cloneJob(p), nil
}

// PreviewJob shows what CreateJobFromText would store, without an ID.
func (w *Workspace) PreviewJob(in JobTextInput) job.Posting {
	p := parser.ParseJobDescription(in.Text, w.now())
	if t := strings.TrimSpace(in.Title); t != "" {
		p.Title = t
	}
	if p.Title == "" {
		p.Title = uploadFallbackTitle
	}
	if l := strings.TrimSpace(in.Location); l != "" {
		p.Location = l
	}
	p.Summary = parser.GenerateJobSummary(in.Text)
	p.Metadata = job.Metadata{}
	return p
}
