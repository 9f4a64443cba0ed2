package dto

import "smart-hire/internal/domain/candidate"

type CreateCandidatesRequest struct {
	Candidates []candidate.Candidate `json:"candidates"`
}

type ParseResumeRequest struct {
	Text string `json:"text"`
}
