package parser

import (
	"strings"

	"smart-hire/internal/domain/candidate"
)

const (
	DefaultDegree       = "Degree"
	DefaultFieldOfStudy = "Not specified"
)

var (
	SkillsKeywords     = []string{"skills", "technical skills", "technologies"}
	ExperienceKeywords = []string{"experience", "work experience", "professional experience"}
	EducationKeywords  = []string{"education", "academic background"}

	degreeTypes = []string{"Bachelor", "Master", "PhD", "Doctorate", "B.S.", "M.S.", "B.A.", "M.A."}
)

// ParseResume extracts what it can from plain résumé text. Missing pieces
// come back empty; it never fails. ID and ResumeURL are left for the caller.
func ParseResume(text string) candidate.Candidate {
	c := candidate.Candidate{
		Name:          firstNonBlankLine(text),
		Email:         emailRe.FindString(text),
		Phone:         phoneRe.FindString(text),
		Skills:        ExtractList(extractSectionBody(text, SkillsKeywords)),
		Experience:    extractExperience(ExtractSection(text, ExperienceKeywords)),
		ParsedContent: text,
	}

	eduBody := extractSectionBody(text, EducationKeywords)
	c.Education = extractEducation(eduBody, ExtractSection(text, EducationKeywords))
	return c
}

func firstNonBlankLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}

// extractExperience keeps the lines that carry a year range, in order. The
// header line is kept as is when it carries one.
func extractExperience(sectionText string) []string {
	out := make([]string, 0)
	if sectionText == "" {
		return out
	}
	for _, line := range strings.Split(sectionText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if HasYearRange(line) {
			out = append(out, line)
		}
	}
	return out
}

// extractEducation treats every non-blank line as an institution and looks
// for a degree keyword in that line joined with the next one. One date range,
// the first found anywhere in the section, is shared by every entry.
func extractEducation(body, wholeSection string) []candidate.Education {
	out := make([]candidate.Education, 0)
	if body == "" {
		return out
	}

	var startDate, endDate string
	if r, ok := firstYearRange(wholeSection); ok {
		startDate, endDate = r.Start, r.End
	}

	lines := make([]string, 0)
	for _, l := range strings.Split(body, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		window := line
		if i+1 < len(lines) {
			window = line + " " + lines[i+1]
		}

		degree := DefaultDegree
		for _, dt := range degreeTypes {
			if idx := strings.Index(window, dt); idx != -1 {
				degree = window[idx:]
				break
			}
		}

		if line == "Education" {
			continue
		}

		out = append(out, candidate.Education{
			Institution:  line,
			Degree:       degree,
			FieldOfStudy: DefaultFieldOfStudy,
			StartDate:    startDate,
			EndDate:      endDate,
		})

		if degree != DefaultDegree && !strings.Contains(line, degree) {
			i++
		}
	}
	return out
}
