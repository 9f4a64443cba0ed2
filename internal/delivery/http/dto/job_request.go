package dto

// CreateJobRequest carries a pasted job description. Title and location,
// when set, replace what the parser derives from the text.
type CreateJobRequest struct {
	Text     string `json:"text"`
	Title    string `json:"title"`
	Location string `json:"location"`
}

type UpdateJobRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Summary     string         `json:"summary"`
	Skills      []string       `json:"skills"`
	Experience  string         `json:"experience"`
	Location    string         `json:"location"`
	PostedDate  string         `json:"postedDate"`
	Metadata    map[string]any `json:"metadata"`
}
