package parser

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"smart-hire/internal/domain/job"
)

var fixedNow = time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC)

func TestParseJobDescription(t *testing.T) {
	text := "Backend Engineer\nWe need 3+ years of Go.\nRequirements:\n- Python\n- SQL\nResponsibilities:\n- Build things"
	p := ParseJobDescription(text, fixedNow)

	if p.Title != "Backend Engineer" {
		t.Fatalf("title=%q", p.Title)
	}
	if want := []string{"Python", "SQL"}; !reflect.DeepEqual(p.Skills, want) {
		t.Fatalf("skills=%#v", p.Skills)
	}
	if p.Experience != "3+ years" {
		t.Fatalf("experience=%q", p.Experience)
	}
	if p.Location != job.DefaultLocation {
		t.Fatalf("location=%q", p.Location)
	}
	if p.PostedDate != "2024-05-17" {
		t.Fatalf("postedDate=%q", p.PostedDate)
	}
	if p.Description != text {
		t.Fatalf("description not preserved")
	}
}

func TestParseJobDescription_Defaults(t *testing.T) {
	long := strings.Repeat("x", 51)
	p := ParseJobDescription(long+"\nno requirements listed, commas, everywhere", fixedNow)
	if p.Title != job.DefaultTitle {
		t.Fatalf("title=%q", p.Title)
	}
	if p.Experience != job.DefaultExperience {
		t.Fatalf("experience=%q", p.Experience)
	}
	if len(p.Skills) != 0 {
		t.Fatalf("expected no skills, got %#v", p.Skills)
	}
}

func TestParseJobDescription_BulletsOnlyNoCommaSplit(t *testing.T) {
	text := "Role\nQualifications: Go, SQL\n- Kubernetes, Docker\nBenefits:\n- Lunch"
	p := ParseJobDescription(text, fixedNow)
	if want := []string{"Kubernetes, Docker"}; !reflect.DeepEqual(p.Skills, want) {
		t.Fatalf("skills=%#v", p.Skills)
	}
}

func TestParseJobDescription_Idempotent(t *testing.T) {
	text := "Data Scientist\nSkills required:\n- Python\n- Statistics\nAbout us: lab"
	if a, b := ParseJobDescription(text, fixedNow), ParseJobDescription(text, fixedNow); !reflect.DeepEqual(a, b) {
		t.Fatalf("parse not deterministic")
	}
}

func TestGenerateJobSummary(t *testing.T) {
	short := strings.Repeat("a", 150)
	if got := GenerateJobSummary(short); got != short {
		t.Fatalf("expected unchanged summary for 150 chars")
	}

	long := strings.Repeat("b", 200)
	got := GenerateJobSummary(long)
	if len([]rune(got)) != 150 {
		t.Fatalf("expected 150 chars, got %d", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") || !strings.HasPrefix(long, strings.TrimSuffix(got, "...")) {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestGenerateJobSummary_CountsRunes(t *testing.T) {
	in := strings.Repeat("é", 151)
	got := GenerateJobSummary(in)
	if n := len([]rune(got)); n != 150 {
		t.Fatalf("expected 150 runes, got %d", n)
	}
}
