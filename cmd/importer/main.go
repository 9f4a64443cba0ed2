package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"smart-hire/internal/app"
	"smart-hire/internal/config"
	"smart-hire/internal/domain/match"
	"smart-hire/internal/pipeline"
	"smart-hire/internal/usecase"
)

func main() {
	jobFile := flag.String("job", "", "job description text file to add and match against")
	jobID := flag.String("job_id", "", "existing job to match against (instead of -job)")
	title := flag.String("title", "", "job title override")
	location := flag.String("location", "", "job location override")
	dir := flag.String("resumes", "", "directory of resume files (.txt, .md, .pdf, .docx)")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall import timeout")
	flag.Parse()

	if strings.TrimSpace(*jobFile) == "" && strings.TrimSpace(*jobID) == "" {
		log.Fatalf("provide -job or -job_id")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c, err := app.NewContainer(ctx, cfg, log.Default())
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()
	w := c.Workspace

	if path := strings.TrimSpace(*jobFile); path != "" {
		text, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("read job file: %v", err)
		}
		p, err := w.CreateJobFromText(ctx, usecase.JobTextInput{
			Text:     string(text),
			Title:    *title,
			Location: *location,
		})
		if err != nil {
			log.Fatalf("add job: %v", err)
		}
		log.Printf("importer job added id=%s title=%q skills=%d experience=%q", p.ID, p.Title, len(p.Skills), p.Experience)
	} else {
		p, err := w.SetCurrentJob(strings.TrimSpace(*jobID))
		if err != nil {
			log.Fatalf("select job %s: %v", *jobID, err)
		}
		log.Printf("importer job selected id=%s title=%q", p.ID, p.Title)
	}

	if strings.TrimSpace(*dir) == "" {
		return
	}

	files, err := readResumeDir(*dir)
	if err != nil {
		log.Fatalf("read resumes: %v", err)
	}
	if len(files) == 0 {
		log.Fatalf("no files in %s", *dir)
	}

	res, err := w.UploadResumes(ctx, files)
	if err != nil {
		log.Fatalf("upload resumes: %v", err)
	}
	for _, f := range res.Failed {
		log.Printf("importer file=%s status=failed err=%s", f.Filename, f.Err)
	}

	names := make(map[string]string, len(res.Candidates))
	for _, cand := range res.Candidates {
		names[cand.ID] = cand.Name
	}
	sort.SliceStable(res.Matches, func(i, j int) bool { return res.Matches[i].Score > res.Matches[j].Score })
	for _, m := range res.Matches {
		log.Printf("importer candidate=%q score=%d%% band=%s shortlisted=%t",
			names[m.CandidateID], match.Percentage(m.Score), match.BandFor(m.Score), m.Shortlisted)
	}
	log.Printf("importer status=done candidates=%d matches=%d failed=%d", len(res.Candidates), len(res.Matches), len(res.Failed))
}

func readResumeDir(dir string) ([]pipeline.ResumeFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make([]pipeline.ResumeFile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		files = append(files, pipeline.ResumeFile{Filename: e.Name(), Data: data})
	}
	return files, nil
}
