package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"smart-hire/internal/domain/interview"
)

type InterviewInput struct {
	CandidateID string
	JobID       string
	// Datetime is an RFC 3339 timestamp.
	Datetime string
	Notes    string
}

// ScheduleInterview records a new interview in the scheduled state.
func (w *Workspace) ScheduleInterview(ctx context.Context, in InterviewInput) (interview.Interview, error) {
	dt := strings.TrimSpace(in.Datetime)
	if _, err := time.Parse(time.RFC3339, dt); err != nil {
		return interview.Interview{}, fmt.Errorf("%w: datetime must be RFC 3339", ErrInvalidInput)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireLoaded(); err != nil {
		return interview.Interview{}, err
	}
	if w.candidateIndex(in.CandidateID) < 0 {
		return interview.Interview{}, ErrCandidateNotFound
	}
	if w.jobIndex(in.JobID) < 0 {
		return interview.Interview{}, ErrJobNotFound
	}

	iv := interview.Interview{
		ID:          w.newID(),
		CandidateID: in.CandidateID,
		JobID:       in.JobID,
		Datetime:    dt,
		Status:      interview.StatusScheduled,
		Notes:       strings.TrimSpace(in.Notes),
	}
	if err := w.store.Interviews().Create(ctx, iv); err != nil {
		return interview.Interview{}, w.storeErr("schedule_interview", err)
	}
	w.interviews = append(w.interviews, iv)
	w.invalidateJob(ctx, iv.JobID)

	w.log.Printf("workspace op=schedule_interview status=ok interview_id=%s candidate_id=%s job_id=%s", iv.ID, iv.CandidateID, iv.JobID)
	w.publish(EventInterviewScheduled, iv)
	return iv, nil
}

type InterviewFilter struct {
	CandidateID string
	JobID       string
}

func (w *Workspace) ListInterviews(f InterviewFilter) ([]interview.Interview, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if err := w.requireLoaded(); err != nil {
		return nil, err
	}
	out := make([]interview.Interview, 0)
	for _, iv := range w.interviews {
		if f.CandidateID != "" && iv.CandidateID != f.CandidateID {
			continue
		}
		if f.JobID != "" && iv.JobID != f.JobID {
			continue
		}
		out = append(out, iv)
	}
	return out, nil
}

// UpcomingInterviews returns up to limit interviews, earliest first.
// Interviews whose datetime does not parse sort last.
func (w *Workspace) UpcomingInterviews(limit int) ([]interview.Interview, error) {
	all, err := w.ListInterviews(InterviewFilter{})
	if err != nil {
		return nil, err
	}

	at := func(iv interview.Interview) (time.Time, bool) {
		t, err := time.Parse(time.RFC3339, iv.Datetime)
		return t, err == nil
	}
	sort.SliceStable(all, func(i, j int) bool {
		ti, okI := at(all[i])
		tj, okJ := at(all[j])
		if okI != okJ {
			return okI
		}
		return ti.Before(tj)
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}
