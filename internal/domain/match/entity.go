package match

const (
	CategorySkills     = "skills"
	CategoryExperience = "experience"
	CategoryEducation  = "education"

	// ShortlistThreshold is the score above which a new match starts shortlisted.
	ShortlistThreshold = 0.8
)

type Detail struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
	Details  string  `json:"details"`
}

type Match struct {
	ID           string   `json:"id"`
	JobID        string   `json:"jobId"`
	CandidateID  string   `json:"candidateId"`
	Score        float64  `json:"score"`
	MatchDetails []Detail `json:"matchDetails"`
	Shortlisted  bool     `json:"shortlisted"`
	Notes        string   `json:"notes,omitempty"`
}

type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

func BandFor(score float64) Band {
	switch {
	case score >= 0.8:
		return BandHigh
	case score >= 0.6:
		return BandMedium
	default:
		return BandLow
	}
}

func ParseBand(s string) (Band, bool) {
	switch Band(s) {
	case BandHigh, BandMedium, BandLow:
		return Band(s), true
	}
	return "", false
}

// Percentage converts a 0-1 score into a rounded 0-100 value for display.
func Percentage(score float64) int {
	p := int(score*100 + 0.5)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
