package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

type matchListCacheKeyInput struct {
	Band        string `json:"band"`
	Sort        string `json:"sort"`
	Shortlisted bool   `json:"shortlisted"`
}

func matchListCacheKey(jobID, band, sortBy string, shortlisted bool) string {
	b, _ := json.Marshal(matchListCacheKeyInput{Band: band, Sort: sortBy, Shortlisted: shortlisted})
	sum := sha256.Sum256(b)
	return "matches:job:" + jobID + ":" + hex.EncodeToString(sum[:8])
}

func matchListCachePattern(jobID string) string {
	return "matches:job:" + jobID + ":*"
}

func jobStatsCacheKey(jobID string) string {
	return "stats:job:" + jobID
}

const (
	allMatchListsCachePattern = "matches:job:*"
	allJobStatsCachePattern   = "stats:job:*"
)

func (w *Workspace) cacheGet(ctx context.Context, key string, out any) bool {
	if w.cache == nil {
		return false
	}
	ok, err := w.cache.GetJSON(ctx, key, out)
	if err != nil {
		return false
	}
	return ok
}

func (w *Workspace) cacheSet(ctx context.Context, key string, value any) {
	if w.cache == nil {
		return
	}
	_ = w.cache.SetJSON(ctx, key, value, 0)
}

// invalidateJob drops cached listings and stats for a job. Failures only
// risk stale reads until the TTL expires, so they are logged.
func (w *Workspace) invalidateJob(ctx context.Context, jobID string) {
	if w.cache == nil {
		return
	}
	if err := w.cache.DeleteByPattern(ctx, matchListCachePattern(jobID)); err != nil {
		w.log.Printf("workspace op=cache_invalidate status=error job_id=%s err=%v", jobID, err)
	}
	if err := w.cache.Delete(ctx, jobStatsCacheKey(jobID)); err != nil {
		w.log.Printf("workspace op=cache_invalidate status=error job_id=%s err=%v", jobID, err)
	}
}

// invalidateStats drops the stats of every job. Candidate totals are
// workspace-wide, so any candidate change makes all of them stale.
func (w *Workspace) invalidateStats(ctx context.Context) {
	if w.cache == nil {
		return
	}
	if err := w.cache.DeleteByPattern(ctx, allJobStatsCachePattern); err != nil {
		w.log.Printf("workspace op=cache_invalidate status=error scope=stats err=%v", err)
	}
}

// flushCache drops every cached listing and stats entry. Load calls it
// because the store may no longer hold what an earlier process cached.
func (w *Workspace) flushCache(ctx context.Context) {
	if w.cache == nil {
		return
	}
	for _, pattern := range []string{allMatchListsCachePattern, allJobStatsCachePattern} {
		if err := w.cache.DeleteByPattern(ctx, pattern); err != nil {
			w.log.Printf("workspace op=cache_flush status=error pattern=%s err=%v", pattern, err)
		}
	}
}
