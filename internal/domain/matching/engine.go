package matching

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"smart-hire/internal/domain/job"
	"smart-hire/internal/parser"
)

const (
	SkillWeight      = 0.7
	ExperienceWeight = 0.3

	// NeutralExperienceScore is used when either side of the experience
	// comparison cannot be parsed.
	NeutralExperienceScore = 0.5
)

var requiredYearsRe = regexp.MustCompile(`(?i)(\d+)\+?\s*years?`)

type Breakdown struct {
	Score           float64
	SkillScore      float64
	ExperienceScore float64
	MatchedSkills   []string
	MissingSkills   []string
	EstimatedYears  int
	RequiredYears   int
	// RequiredKnown is false when the requirement had no parseable year count.
	RequiredKnown bool
}

// CalculateMatchScore combines skill overlap and experience sufficiency into
// a 0-1 compatibility score.
func CalculateMatchScore(candidateSkills, jobSkills, candidateExperience []string, requiredExperience string) float64 {
	return Calculate(candidateSkills, jobSkills, candidateExperience, requiredExperience, time.Now().Year()).Score
}

func Calculate(candidateSkills, jobSkills, candidateExperience []string, requiredExperience string, currentYear int) Breakdown {
	matched, missing := SplitSkills(candidateSkills, jobSkills)

	b := Breakdown{
		MatchedSkills: matched,
		MissingSkills: missing,
	}
	if len(jobSkills) > 0 {
		b.SkillScore = float64(len(matched)) / float64(len(jobSkills))
	}

	b.RequiredYears, b.RequiredKnown = RequiredYears(requiredExperience)
	b.EstimatedYears = EstimateYears(candidateExperience, currentYear)
	b.ExperienceScore = experienceScore(b.EstimatedYears, b.RequiredYears, b.RequiredKnown)

	b.Score = b.SkillScore*SkillWeight + b.ExperienceScore*ExperienceWeight
	return b
}

// SkillScore is the fraction of job skills covered by the candidate. A job
// skill is covered when it and a candidate skill contain one another,
// ignoring case.
func SkillScore(candidateSkills, jobSkills []string) float64 {
	if len(jobSkills) == 0 {
		return 0
	}
	matched, _ := SplitSkills(candidateSkills, jobSkills)
	return float64(len(matched)) / float64(len(jobSkills))
}

// SplitSkills partitions jobSkills into the ones a candidate covers and the
// ones they miss, preserving job order.
func SplitSkills(candidateSkills, jobSkills []string) (matched, missing []string) {
	normalized := make([]string, 0, len(candidateSkills))
	for _, s := range candidateSkills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		normalized = append(normalized, s)
	}

	matched = make([]string, 0, len(jobSkills))
	missing = make([]string, 0)
	for _, js := range jobSkills {
		lower := strings.ToLower(js)
		hit := false
		for _, cs := range normalized {
			if strings.Contains(cs, lower) || strings.Contains(lower, cs) {
				hit = true
				break
			}
		}
		if hit {
			matched = append(matched, js)
		} else {
			missing = append(missing, js)
		}
	}
	return matched, missing
}

// ExperienceScore rates estimated years against a free-text requirement such
// as "5+ years".
func ExperienceScore(candidateExperience []string, requiredExperience string, currentYear int) float64 {
	required, ok := RequiredYears(requiredExperience)
	return experienceScore(EstimateYears(candidateExperience, currentYear), required, ok)
}

func experienceScore(estimated, required int, requiredKnown bool) float64 {
	if !requiredKnown {
		return NeutralExperienceScore
	}
	if estimated == 0 {
		return NeutralExperienceScore
	}

	est := float64(estimated)
	req := float64(required)
	if est >= req {
		if est >= req*1.5 {
			return 1.0
		}
		return math.Min(1.0, 0.8+(est-req)*0.04)
	}
	return math.Max(0.4, est/req*0.8)
}

// RequiredYears reads the leading year count out of a requirement string.
func RequiredYears(requiredExperience string) (int, bool) {
	m := requiredYearsRe.FindStringSubmatch(requiredExperience)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// EstimateYears sums end-start over every year range in every entry.
// "present" and "current" count as currentYear.
func EstimateYears(entries []string, currentYear int) int {
	total := 0
	for _, e := range entries {
		for _, r := range parser.YearRanges(e) {
			start, err := strconv.Atoi(r.Start)
			if err != nil {
				continue
			}
			end := currentYear
			if !r.Open() {
				v, err := strconv.Atoi(r.End)
				if err != nil {
					continue
				}
				end = v
			}
			total += end - start
		}
	}
	return total
}

// ScoreJobMatch is the bare skill-overlap ratio used for quick ranking of a
// candidate against a posting. It carries no experience term.
func ScoreJobMatch(p job.Posting, candidateSkills []string) float64 {
	return SkillScore(candidateSkills, p.Skills)
}
