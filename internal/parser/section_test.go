package parser

import (
	"reflect"
	"testing"
)

func TestExtractSection_PriorityOrderNotTextOrder(t *testing.T) {
	text := "Technologies: Go\nSkills: Rust\nProjects: none"
	got := ExtractSection(text, []string{"skills", "technologies"})
	if got != "Skills: Rust" {
		t.Fatalf("unexpected section %q", got)
	}
}

func TestExtractSection_EndsAtNextHeader(t *testing.T) {
	text := "Skills:\nGo, SQL\n\nEducation:\nMIT"
	got := ExtractSection(text, SkillsKeywords)
	if got != "Skills:\nGo, SQL" {
		t.Fatalf("unexpected section %q", got)
	}
}

func TestExtractSection_RunsToEndWithoutTerminator(t *testing.T) {
	text := "Jane\nExperience:\nDev (2019-2022)\n"
	got := ExtractSection(text, ExperienceKeywords)
	if got != "Experience:\nDev (2019-2022)" {
		t.Fatalf("unexpected section %q", got)
	}
}

func TestExtractSection_Missing(t *testing.T) {
	if got := ExtractSection("nothing to see", SkillsKeywords); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestExtractSection_SubstringFalsePositive(t *testing.T) {
	text := "I upskills often\nProjects: x"
	if got := ExtractSection(text, []string{"skills"}); got != "skills often" {
		t.Fatalf("unexpected section %q", got)
	}
}

func TestExtractSectionBody_DropsHeader(t *testing.T) {
	text := "Skills: Go, SQL\nEducation: MIT"
	if got := extractSectionBody(text, SkillsKeywords); got != "Go, SQL" {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestExtractList(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: []string{}},
		{name: "comma", in: "Go, SQL , ,Redis", want: []string{"Go", "SQL", "Redis"}},
		{name: "comma drops literal header words", in: "Skills, Go, skill", want: []string{"Go"}},
		{name: "bullets", in: "- Go\n• SQL\nplain line\n-  \n  - Redis", want: []string{"Go", "SQL", "Redis"}},
		{name: "comma wins over bullets", in: "- Go, SQL\n- Redis", want: []string{"- Go", "SQL\n- Redis"}},
		{name: "no bullets no commas", in: "Go\nSQL", want: []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractList(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %#v want %#v", got, tc.want)
			}
		})
	}
}

func TestLowerASCII_PreservesOffsets(t *testing.T) {
	in := "Café SKILLS"
	out := lowerASCII(in)
	if len(out) != len(in) {
		t.Fatalf("length changed: %d vs %d", len(out), len(in))
	}
	if out != "café skills" {
		t.Fatalf("unexpected %q", out)
	}
}
