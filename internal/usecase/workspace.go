package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"smart-hire/internal/domain/candidate"
	"smart-hire/internal/domain/interview"
	"smart-hire/internal/domain/job"
	"smart-hire/internal/domain/match"
	"smart-hire/internal/domain/matching"
	"smart-hire/internal/pipeline"
	"smart-hire/internal/repository"

	"github.com/google/uuid"
)

var (
	// ErrWorkspaceNotReady is returned by every operation until Load succeeds.
	ErrWorkspaceNotReady = errors.New("workspace not loaded")

	ErrInvalidInput      = errors.New("invalid input")
	ErrJobNotFound       = errors.New("job not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrMatchNotFound     = errors.New("match not found")
	ErrNoCurrentJob      = errors.New("no current job selected")
	ErrConflict          = errors.New("record already exists")
	ErrInternal          = errors.New("internal error")
)

const (
	EventJobAdded           = "job_added"
	EventJobUpdated         = "job_updated"
	EventCandidatesAdded    = "candidates_added"
	EventMatchesCreated     = "matches_created"
	EventMatchUpdated       = "match_updated"
	EventInterviewScheduled = "interview_scheduled"
	EventWorkspaceChanged   = "workspace_changed"
)

type Notifier interface {
	Publish(eventType string, data any)
}

type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type ResumeIngester interface {
	Run(ctx context.Context, files []pipeline.ResumeFile, fallbackSkills []string) ([]candidate.Candidate, []pipeline.FileError, error)
}

type WorkspaceDeps struct {
	Store     repository.Store
	Generator matching.Generator
	Ingest    ResumeIngester
	Cache     MatchCache
	Notifier  Notifier
	Logger    *log.Logger

	Now   func() time.Time
	NewID func() string
}

// Workspace is the application state: every job, candidate, match and
// interview, plus the current job and the transient candidate selection.
// Mutations are written to the store first and applied in memory only
// when the write succeeds. Reads return copies.
type Workspace struct {
	store  repository.Store
	gen    matching.Generator
	ingest ResumeIngester
	cache  MatchCache
	notify Notifier
	log    *log.Logger
	now    func() time.Time
	newID  func() string

	mu           sync.RWMutex
	loaded       bool
	jobs         []job.Posting
	candidates   []candidate.Candidate
	matches      []match.Match
	interviews   []interview.Interview
	currentJobID string
	selected     []string
}

func NewWorkspace(deps WorkspaceDeps) *Workspace {
	w := &Workspace{
		store:  deps.Store,
		gen:    deps.Generator,
		ingest: deps.Ingest,
		cache:  deps.Cache,
		notify: deps.Notifier,
		log:    deps.Logger,
		now:    deps.Now,
		newID:  deps.NewID,
	}
	if w.gen == nil {
		w.gen = matching.NewHeuristicGenerator(nil)
	}
	if w.log == nil {
		w.log = log.Default()
	}
	if w.now == nil {
		w.now = time.Now
	}
	if w.newID == nil {
		w.newID = uuid.NewString
	}
	return w
}

// Load replaces the in-memory state with the store's contents. The current
// job and selection survive a reload when their records still exist.
// Cached listings and stats are dropped.
func (w *Workspace) Load(ctx context.Context) error {
	if w.store == nil {
		return fmt.Errorf("%w: nil store", ErrInternal)
	}
	start := time.Now()

	jobs, err := w.store.Jobs().List(ctx)
	if err != nil {
		return w.storeErr("load_jobs", err)
	}
	cands, err := w.store.Candidates().List(ctx)
	if err != nil {
		return w.storeErr("load_candidates", err)
	}
	matches, err := w.store.Matches().List(ctx)
	if err != nil {
		return w.storeErr("load_matches", err)
	}
	ivs, err := w.store.Interviews().List(ctx)
	if err != nil {
		return w.storeErr("load_interviews", err)
	}

	w.mu.Lock()
	w.jobs = jobs
	w.candidates = cands
	w.matches = matches
	w.interviews = ivs
	if w.jobIndex(w.currentJobID) < 0 {
		w.currentJobID = ""
	}
	kept := w.selected[:0]
	for _, id := range w.selected {
		if w.candidateIndex(id) >= 0 {
			kept = append(kept, id)
		}
	}
	w.selected = kept
	w.loaded = true
	w.mu.Unlock()

	w.flushCache(ctx)

	w.log.Printf("workspace op=load status=ok jobs=%d candidates=%d matches=%d interviews=%d duration=%s",
		len(jobs), len(cands), len(matches), len(ivs), time.Since(start))
	return nil
}

func (w *Workspace) Ready() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.loaded
}

func (w *Workspace) Ping(ctx context.Context) error {
	if w.store == nil {
		return fmt.Errorf("%w: nil store", ErrInternal)
	}
	return w.store.Ping(ctx)
}

// Strategy names the match generator in use.
func (w *Workspace) Strategy() string {
	return w.gen.Name()
}

type Snapshot struct {
	Jobs               []job.Posting         `json:"jobs"`
	Candidates         []candidate.Candidate `json:"candidates"`
	Matches            []match.Match         `json:"matches"`
	Interviews         []interview.Interview `json:"interviews"`
	CurrentJob         *job.Posting          `json:"currentJob"`
	SelectedCandidates []candidate.Candidate `json:"selectedCandidates"`
}

func (w *Workspace) Snapshot() (Snapshot, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if err := w.requireLoaded(); err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Jobs:               cloneJobs(w.jobs),
		Candidates:         cloneCandidates(w.candidates),
		Matches:            cloneMatches(w.matches),
		Interviews:         append([]interview.Interview{}, w.interviews...),
		CurrentJob:         w.currentJobLocked(),
		SelectedCandidates: w.selectedLocked(),
	}, nil
}

// requireLoaded must be called with mu held.
func (w *Workspace) requireLoaded() error {
	if !w.loaded {
		return ErrWorkspaceNotReady
	}
	return nil
}

func (w *Workspace) storeErr(op string, err error) error {
	w.log.Printf("workspace op=%s status=error err=%v", op, err)
	if errors.Is(err, repository.ErrDuplicateID) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}

func (w *Workspace) publish(eventType string, data any) {
	if w.notify == nil {
		return
	}
	w.notify.Publish(eventType, data)
}

func (w *Workspace) jobIndex(id string) int {
	if id == "" {
		return -1
	}
	for i := range w.jobs {
		if w.jobs[i].ID == id {
			return i
		}
	}
	return -1
}

func (w *Workspace) candidateIndex(id string) int {
	if id == "" {
		return -1
	}
	for i := range w.candidates {
		if w.candidates[i].ID == id {
			return i
		}
	}
	return -1
}

func (w *Workspace) matchIndex(id string) int {
	if id == "" {
		return -1
	}
	for i := range w.matches {
		if w.matches[i].ID == id {
			return i
		}
	}
	return -1
}
