package parser

import (
	"slices"
	"strings"
)

// resumeSections are the headers that close a résumé section.
var resumeSections = []string{
	"experience", "education", "skills", "projects",
	"certifications", "languages", "interests", "references",
}

// jobSectionTerminators close the requirements block of a job posting.
var jobSectionTerminators = []string{
	"responsibilities", "about us", "benefits", "about the company",
	"what we offer", "who you are", "your role",
}

type section struct {
	start  int
	header string
	end    int
}

// locateSection finds the first keyword (in priority order, not text order)
// present in text and the nearest following résumé header that is not one of
// keywords. Matching is plain substring search, so "skills" also fires
// inside "upskilled".
func locateSection(text string, keywords []string) (section, bool) {
	lower := lowerASCII(text)
	for _, kw := range keywords {
		kw = lowerASCII(kw)
		if kw == "" {
			continue
		}
		start := strings.Index(lower, kw)
		if start == -1 {
			continue
		}

		from := start + len(kw)
		end := len(text)
		for _, next := range resumeSections {
			if slices.Contains(keywords, next) {
				continue
			}
			if i := strings.Index(lower[from:], next); i != -1 && from+i < end {
				end = from + i
			}
		}
		return section{start: start, header: text[start:from], end: end}, true
	}
	return section{}, false
}

// ExtractSection returns the trimmed block of text starting at the first
// matching header keyword, or "" when none of keywords occurs.
func ExtractSection(text string, keywords []string) string {
	s, ok := locateSection(text, keywords)
	if !ok {
		return ""
	}
	return strings.TrimSpace(text[s.start:s.end])
}

// extractSectionBody is ExtractSection without the header keyword itself and
// an immediately following colon.
func extractSectionBody(text string, keywords []string) string {
	s, ok := locateSection(text, keywords)
	if !ok {
		return ""
	}
	body := strings.TrimLeft(text[s.start+len(s.header):s.end], " \t")
	body = strings.TrimPrefix(body, ":")
	return strings.TrimSpace(body)
}

// ExtractList turns a section into items. Any comma switches to
// comma-separated mode; otherwise only "-" or "•" bullet lines count.
func ExtractList(sectionText string) []string {
	if sectionText == "" {
		return []string{}
	}
	if !strings.Contains(sectionText, ",") {
		return ExtractBulletPoints(sectionText)
	}

	parts := strings.Split(sectionText, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		switch strings.ToLower(p) {
		case "skill", "skills":
			continue
		}
		out = append(out, p)
	}
	return out
}

func ExtractBulletPoints(text string) []string {
	out := make([]string, 0)
	if text == "" {
		return out
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		var rest string
		switch {
		case strings.HasPrefix(line, "-"):
			rest = line[len("-"):]
		case strings.HasPrefix(line, "•"):
			rest = line[len("•"):]
		default:
			continue
		}
		rest = strings.TrimSpace(rest)
		if rest == "" {
			continue
		}
		out = append(out, rest)
	}
	return out
}

// findJobSection returns the text after the first job keyword up to the
// nearest terminator. Unlike résumé sections, the header is not included.
func findJobSection(text string, keywords []string) string {
	lower := lowerASCII(text)
	for _, kw := range keywords {
		i := strings.Index(lower, kw)
		if i == -1 {
			continue
		}
		from := i + len(kw)
		end := len(text)
		for _, term := range jobSectionTerminators {
			if j := strings.Index(lower[from:], term); j != -1 && from+j < end {
				end = from + j
			}
		}
		return text[from:end]
	}
	return ""
}
