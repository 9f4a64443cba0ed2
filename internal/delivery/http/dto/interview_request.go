package dto

type ScheduleInterviewRequest struct {
	CandidateID string `json:"candidateId"`
	JobID       string `json:"jobId"`
	Datetime    string `json:"datetime"`
	Notes       string `json:"notes"`
}
