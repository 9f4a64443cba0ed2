package parser

import (
	"strings"
	"time"
	"unicode/utf8"

	"smart-hire/internal/domain/job"
)

const (
	maxTitleLen = 50

	summaryMaxLen   = 150
	summaryCutLen   = 147
	summaryEllipsis = "..."
)

var JobSkillKeywords = []string{
	"skills required", "requirements", "qualifications",
	"proficient in", "experience with", "expertise in",
}

// ParseJobDescription derives a posting from raw text. Location and posted
// date are defaults the caller may override; ID, Summary and Metadata are
// left for the caller.
func ParseJobDescription(text string, now time.Time) job.Posting {
	title := strings.TrimSpace(firstLine(text))
	if utf8.RuneCountInString(title) > maxTitleLen {
		title = job.DefaultTitle
	}

	experience := jobYearsRe.FindString(text)
	if experience == "" {
		experience = job.DefaultExperience
	}

	return job.Posting{
		Title:       title,
		Description: text,
		Skills:      ExtractBulletPoints(findJobSection(text, JobSkillKeywords)),
		Experience:  experience,
		Location:    job.DefaultLocation,
		PostedDate:  job.Today(now),
	}
}

// GenerateJobSummary truncates descriptions longer than 150 characters to
// 147 characters plus "...".
func GenerateJobSummary(description string) string {
	if utf8.RuneCountInString(description) <= summaryMaxLen {
		return description
	}
	runes := []rune(description)
	return string(runes[:summaryCutLen]) + summaryEllipsis
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i != -1 {
		return text[:i]
	}
	return text
}
