package matching

import (
	"math"
	"testing"

	"smart-hire/internal/domain/job"
)

const testYear = 2024

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSkillScore(t *testing.T) {
	cases := []struct {
		name      string
		candidate []string
		job       []string
		want      float64
	}{
		{name: "no job skills", candidate: []string{"go"}, job: nil, want: 0},
		{name: "half", candidate: []string{"python", "java"}, job: []string{"Python", "SQL"}, want: 0.5},
		{name: "substring either way", candidate: []string{"React Testing Library"}, job: []string{"React", "Testing"}, want: 1},
		{name: "blank candidate skill matches nothing", candidate: []string{"", "  "}, job: []string{"Go"}, want: 0},
		{name: "disjoint", candidate: []string{"Rust"}, job: []string{"Go"}, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SkillScore(tc.candidate, tc.job)
			if !almostEqual(got, tc.want) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
			if got < 0 || got > 1 {
				t.Fatalf("out of range %v", got)
			}
		})
	}
}

func TestSplitSkills(t *testing.T) {
	matched, missing := SplitSkills([]string{"python", "java"}, []string{"Python", "SQL"})
	if len(matched) != 1 || matched[0] != "Python" {
		t.Fatalf("matched=%#v", matched)
	}
	if len(missing) != 1 || missing[0] != "SQL" {
		t.Fatalf("missing=%#v", missing)
	}
}

func TestExperienceScore(t *testing.T) {
	cases := []struct {
		name     string
		entries  []string
		required string
		want     float64
	}{
		{name: "unparseable requirement", entries: []string{"2010-2020"}, required: "Not specified", want: 0.5},
		{name: "no ranges", entries: []string{"Dev at Acme"}, required: "3+ years", want: 0.5},
		{name: "far above", entries: []string{"2015-2022"}, required: "3+ years", want: 1.0},
		{name: "just above", entries: []string{"2016-2020"}, required: "3 years", want: 0.84},
		{name: "equal", entries: []string{"2017-2020"}, required: "3 years", want: 0.8},
		{name: "below", entries: []string{"2018-2020"}, required: "5+ years", want: 0.4},
		{name: "below but close", entries: []string{"2016-2020"}, required: "5 years", want: 0.64},
		{name: "present counts as current year", entries: []string{"2020-present"}, required: "2 years", want: 1.0},
		{name: "sums every range", entries: []string{"2010-2012 and 2014-2016", "2018–2020"}, required: "6 years", want: 0.8},
		{name: "capped at one", entries: []string{"1950-2090"}, required: "100 years", want: 1.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExperienceScore(tc.entries, tc.required, testYear)
			if !almostEqual(got, tc.want) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestEstimateYears(t *testing.T) {
	got := EstimateYears([]string{"Lead (2020-current)", "Dev (2015-2020)", "no dates"}, testYear)
	if got != 9 {
		t.Fatalf("expected 9 years, got %d", got)
	}
}

func TestCalculate_Weighting(t *testing.T) {
	b := Calculate([]string{"python", "java"}, []string{"Python", "SQL"}, []string{"2015-2022"}, "3+ years", testYear)
	if !almostEqual(b.SkillScore, 0.5) {
		t.Fatalf("skill score %v", b.SkillScore)
	}
	if !almostEqual(b.ExperienceScore, 1.0) {
		t.Fatalf("experience score %v", b.ExperienceScore)
	}
	if !almostEqual(b.Score, 0.5*0.7+1.0*0.3) {
		t.Fatalf("overall %v", b.Score)
	}
	if b.EstimatedYears != 7 || b.RequiredYears != 3 || !b.RequiredKnown {
		t.Fatalf("unexpected breakdown %#v", b)
	}
}

func TestCalculateMatchScore_MonotonicInMatchedSkills(t *testing.T) {
	jobSkills := []string{"Go", "SQL", "Redis", "Docker"}
	exp := []string{"2018-2021"}
	prev := -1.0
	for i := 0; i <= len(jobSkills); i++ {
		got := CalculateMatchScore(jobSkills[:i], jobSkills, exp, "5 years")
		if got < prev {
			t.Fatalf("score decreased at %d matched: %v < %v", i, got, prev)
		}
		if got < 0 || got > 1 {
			t.Fatalf("score out of range %v", got)
		}
		prev = got
	}
}

func TestScoreJobMatch(t *testing.T) {
	p := job.Posting{Skills: []string{"React", "TypeScript", "GraphQL", "Jest"}}
	got := ScoreJobMatch(p, []string{"react", "GraphQL"})
	if !almostEqual(got, 0.5) {
		t.Fatalf("got %v", got)
	}
	if ScoreJobMatch(job.Posting{}, []string{"react"}) != 0 {
		t.Fatalf("expected zero without job skills")
	}
}
