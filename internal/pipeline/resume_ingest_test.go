package pipeline

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync/atomic"
	"testing"

	"smart-hire/internal/infrastructure/blob"
)

func newTestIngest(t *testing.T) *ResumeIngest {
	t.Helper()
	store, err := blob.NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("blob: %v", err)
	}
	p := NewResumeIngest(store, 3, log.New(io.Discard, "", 0))
	var n atomic.Int64
	p.newID = func() string { return fmt.Sprintf("cand-%d", n.Add(1)) }
	return p
}

func TestResumeIngest_KeepsOrderAndReportsFailures(t *testing.T) {
	p := newTestIngest(t)
	files := []ResumeFile{
		{Filename: "jane.txt", ContentType: "text/plain", Data: []byte("Jane Doe\njane@example.com\n\nSkills:\nGo, SQL")},
		{Filename: "photo.png", ContentType: "image/png", Data: []byte{0x89, 0x50}},
		{Filename: "john.txt", Data: []byte("John Roe\nSkills: Python")},
	}

	cands, failed, err := p.Run(context.Background(), files, []string{"Go"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cands) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(cands))
	}
	if cands[0].Name != "Jane Doe" || cands[1].Name != "John Roe" {
		t.Fatalf("unexpected order: %q, %q", cands[0].Name, cands[1].Name)
	}
	if cands[0].Email != "jane@example.com" {
		t.Fatalf("unexpected email: %q", cands[0].Email)
	}
	if cands[1].Email != FallbackEmail {
		t.Fatalf("expected fallback email, got %q", cands[1].Email)
	}
	if !strings.HasPrefix(cands[0].ResumeURL, blob.LocalPrefix) || !strings.HasSuffix(cands[0].ResumeURL, "/jane.txt") {
		t.Fatalf("unexpected resume url: %q", cands[0].ResumeURL)
	}
	if len(failed) != 1 || failed[0].Filename != "photo.png" {
		t.Fatalf("expected photo.png to fail, got %+v", failed)
	}
}

func TestResumeIngest_EmptyFileUsesPlaceholder(t *testing.T) {
	p := newTestIngest(t)
	files := []ResumeFile{{Filename: "alex.smith.txt", Data: []byte("   ")}}

	cands, failed, err := p.Run(context.Background(), files, []string{"Kubernetes", "Go"})
	if err != nil || len(failed) != 0 {
		t.Fatalf("unexpected failure: err=%v failed=%+v", err, failed)
	}
	c := cands[0]
	if c.Name != "alex" {
		t.Fatalf("expected name from file stem, got %q", c.Name)
	}
	if c.Email != "email@example.com" {
		t.Fatalf("expected placeholder email, got %q", c.Email)
	}
	want := []string{"JavaScript", "React", "TypeScript", "Kubernetes", "HTML", "CSS"}
	if strings.Join(c.Skills, ",") != strings.Join(want, ",") {
		t.Fatalf("expected skills %v, got %v", want, c.Skills)
	}
	if len(c.Experience) != 2 {
		t.Fatalf("expected 2 experience entries, got %v", c.Experience)
	}
}

func TestPlaceholderResume_PicksSkillByIndex(t *testing.T) {
	got := PlaceholderResume("cv.pdf", []string{"A", "B"}, 3)
	if !strings.Contains(got, "- B\n") {
		t.Fatalf("expected skill B in placeholder, got %q", got)
	}
	if !strings.HasPrefix(got, "cv\n") {
		t.Fatalf("expected file stem first, got %q", got)
	}
	if strings.Contains(PlaceholderResume("cv.pdf", nil, 0), "- \n") {
		t.Fatalf("expected no empty bullet without job skills")
	}
}

func TestWorkerPool_RunsAllTasks(t *testing.T) {
	pool := NewWorkerPool(2, 10)
	results := pool.Run(context.Background())
	for i := 0; i < 10; i++ {
		i := i
		pool.Submit(func(context.Context) Result { return Result{Index: i} })
	}
	pool.Close()

	seen := map[int]bool{}
	for r := range results {
		seen[r.Index] = true
	}
	if len(seen) != 10 {
		t.Fatalf("expected 10 results, got %d", len(seen))
	}
}
