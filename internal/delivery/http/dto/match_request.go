package dto

type CreateMatchesRequest struct {
	CandidateIDs []string `json:"candidateIds"`
}

type ShortlistRequest struct {
	Shortlisted *bool `json:"shortlisted"`
}

type MatchNotesRequest struct {
	Notes *string `json:"notes"`
}
