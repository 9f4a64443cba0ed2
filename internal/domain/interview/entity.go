package interview

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Interview struct {
	ID          string `json:"id"`
	CandidateID string `json:"candidateId"`
	JobID       string `json:"jobId"`
	// Datetime is an ISO-8601 timestamp as supplied by the scheduler.
	Datetime string `json:"datetime"`
	Status   Status `json:"status"`
	Notes    string `json:"notes,omitempty"`
}
