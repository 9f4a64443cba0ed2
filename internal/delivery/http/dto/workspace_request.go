package dto

// SetCurrentJobRequest selects the job uploads are matched against; an
// empty JobID clears it.
type SetCurrentJobRequest struct {
	JobID string `json:"jobId"`
}

type SelectCandidateRequest struct {
	CandidateID string `json:"candidateId"`
}
