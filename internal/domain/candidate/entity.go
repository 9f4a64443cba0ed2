package candidate

type Education struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
}

type Candidate struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone,omitempty"`
	ResumeURL     string      `json:"resumeUrl"`
	Skills        []string    `json:"skills"`
	Experience    []string    `json:"experience"`
	Education     []Education `json:"education"`
	ParsedContent string      `json:"parsedContent,omitempty"`
}

// Active reports whether the candidate has any extracted skills.
func (c Candidate) Active() bool {
	return len(c.Skills) > 0
}
