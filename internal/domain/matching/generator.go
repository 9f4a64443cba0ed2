package matching

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"smart-hire/internal/domain/candidate"
	"smart-hire/internal/domain/job"
	"smart-hire/internal/domain/match"
	"smart-hire/internal/parser"
)

const (
	StrategyHeuristic = "heuristic"
	StrategyRandom    = "random"
)

// Generator produces the score and per-category details for one
// (job, candidate) pairing. IDs and persistence are the caller's concern.
type Generator interface {
	Name() string
	Generate(p job.Posting, c candidate.Candidate) (float64, []match.Detail)
}

func NewGenerator(strategy string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", StrategyHeuristic:
		return NewHeuristicGenerator(nil), nil
	case StrategyRandom:
		return NewRandomGenerator(nil), nil
	default:
		return nil, fmt.Errorf("unknown match strategy %q", strategy)
	}
}

type HeuristicGenerator struct {
	now func() time.Time
}

func NewHeuristicGenerator(now func() time.Time) *HeuristicGenerator {
	if now == nil {
		now = time.Now
	}
	return &HeuristicGenerator{now: now}
}

func (g *HeuristicGenerator) Name() string { return StrategyHeuristic }

func (g *HeuristicGenerator) Generate(p job.Posting, c candidate.Candidate) (float64, []match.Detail) {
	b := Calculate(c.Skills, p.Skills, c.Experience, p.Experience, g.now().Year())

	skillsText := fmt.Sprintf("%d/%d required skills matched", len(b.MatchedSkills), len(p.Skills))
	if len(p.Skills) == 0 {
		skillsText = "No required skills listed"
	}

	expText := fmt.Sprintf("%d years experience vs. %s required", b.EstimatedYears, p.Experience)
	switch {
	case !b.RequiredKnown:
		expText = "Experience requirement not specified"
	case b.EstimatedYears == 0:
		expText = "No dated experience entries found"
	}

	eduScore, eduText := educationScore(c.Education)

	return b.Score, []match.Detail{
		{Category: match.CategorySkills, Score: b.SkillScore, Details: skillsText},
		{Category: match.CategoryExperience, Score: b.ExperienceScore, Details: expText},
		{Category: match.CategoryEducation, Score: eduScore, Details: eduText},
	}
}

// educationScore is informational only; it does not feed the overall score.
func educationScore(edu []candidate.Education) (float64, string) {
	for _, e := range edu {
		if e.Degree != "" && e.Degree != parser.DefaultDegree {
			return 1.0, "Degree found: " + e.Degree
		}
	}
	if len(edu) > 0 {
		return NeutralExperienceScore, "Education listed without a recognised degree"
	}
	return NeutralExperienceScore, "No education entries found"
}

// RandomGenerator reproduces the placeholder scoring of the first release:
// overall score in [0.6, 1.0) and each category in [0.7, 1.0).
type RandomGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomGenerator(src rand.Source) *RandomGenerator {
	if src == nil {
		src = rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)
	}
	return &RandomGenerator{rnd: rand.New(src)}
}

func (g *RandomGenerator) Name() string { return StrategyRandom }

func (g *RandomGenerator) Generate(_ job.Posting, _ candidate.Candidate) (float64, []match.Detail) {
	g.mu.Lock()
	defer g.mu.Unlock()

	score := g.uniform(0.6, 1.0)
	return score, []match.Detail{
		{Category: match.CategorySkills, Score: g.uniform(0.7, 1.0), Details: "Skill match analysis"},
		{Category: match.CategoryExperience, Score: g.uniform(0.7, 1.0), Details: "Experience match analysis"},
		{Category: match.CategoryEducation, Score: g.uniform(0.7, 1.0), Details: "Education match analysis"},
	}
}

// uniform draws from [lo, hi). Rounding can land exactly on hi, so that case
// is pulled back below it.
func (g *RandomGenerator) uniform(lo, hi float64) float64 {
	v := lo + g.rnd.Float64()*(hi-lo)
	if v >= hi {
		return math.Nextafter(hi, lo)
	}
	return v
}
