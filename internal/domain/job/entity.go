package job

import "time"

const (
	DefaultTitle      = "New Job Position"
	DefaultLocation   = "Remote"
	DefaultExperience = "Not specified"

	// PostedDateLayout is the YYYY-MM-DD form used for Posting.PostedDate.
	PostedDateLayout = "2006-01-02"
)

// Metadata is a schema-less bag of JSON-compatible values attached to a posting
// (salary range, employment type, department, ...).
type Metadata map[string]any

func (m Metadata) String(key string) string {
	if m == nil {
		return ""
	}
	v, ok := m[key].(string)
	if !ok {
		return ""
	}
	return v
}

type Posting struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Summary     string   `json:"summary,omitempty"`
	Skills      []string `json:"skills"`
	Experience  string   `json:"experience"`
	Location    string   `json:"location"`
	PostedDate  string   `json:"postedDate"`
	Metadata    Metadata `json:"metadata"`
}

func Today(now time.Time) string {
	return now.Format(PostedDateLayout)
}
