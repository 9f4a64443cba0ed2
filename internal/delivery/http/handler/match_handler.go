package handler

import (
	"context"

	"smart-hire/internal/delivery/http/dto"
	"smart-hire/internal/domain/match"
	"smart-hire/internal/pkg/response"
	"smart-hire/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchWorkspace interface {
	ListMatches(ctx context.Context, jobID string, f usecase.MatchFilter) ([]usecase.MatchListItem, error)
	CreateMatches(ctx context.Context, jobID string, candidateIDs []string) ([]match.Match, error)
	ShortlistCandidate(ctx context.Context, matchID string, shortlisted bool) (match.Match, error)
	UpdateMatchNotes(ctx context.Context, matchID string, notes string) (match.Match, error)
	JobStats(ctx context.Context, jobID string) (usecase.JobStats, error)
	ScoreCandidate(jobID, candidateID string) (usecase.ScoreResult, error)
}

type MatchHandler struct {
	ws MatchWorkspace
}

func NewMatchHandler(ws MatchWorkspace) *MatchHandler {
	return &MatchHandler{ws: ws}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	jobs := r.Group("/jobs")
	jobs.Get("/:id/matches", h.List)
	jobs.Post("/:id/matches", h.Create)
	jobs.Get("/:id/stats", h.Stats)
	jobs.Get("/:id/candidates/:candidate_id/score", h.Score)

	matches := r.Group("/matches")
	matches.Patch("/:id/shortlist", h.Shortlist)
	matches.Patch("/:id/notes", h.Notes)
}

func (h *MatchHandler) List(c fiber.Ctx) error {
	shortlisted, err := parseQueryBool(c, "shortlisted")
	if err != nil {
		return badRequest("shortlisted must be a boolean", err)
	}

	items, err := h.ws.ListMatches(c.Context(), c.Params("id"), usecase.MatchFilter{
		Band:            c.Query("band"),
		Sort:            c.Query("sort"),
		ShortlistedOnly: shortlisted,
	})
	if err != nil {
		return mapWorkspaceError(err)
	}
	return response.OK(c, items)
}

func (h *MatchHandler) Create(c fiber.Ctx) error {
	var req dto.CreateMatchesRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}
	if len(req.CandidateIDs) == 0 {
		return badRequest("candidateIds is required", nil)
	}

	created, err := h.ws.CreateMatches(c.Context(), c.Params("id"), req.CandidateIDs)
	if err != nil {
		return mapWorkspaceError(err)
	}
	return response.Created(c, created)
}

func (h *MatchHandler) Shortlist(c fiber.Ctx) error {
	var req dto.ShortlistRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}
	if req.Shortlisted == nil {
		return badRequest("shortlisted is required", nil)
	}

	m, err := h.ws.ShortlistCandidate(c.Context(), c.Params("id"), *req.Shortlisted)
	if err != nil {
		return mapWorkspaceError(err)
	}
	return response.OK(c, m)
}

func (h *MatchHandler) Notes(c fiber.Ctx) error {
	var req dto.MatchNotesRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}
	if req.Notes == nil {
		return badRequest("notes is required", nil)
	}

	m, err := h.ws.UpdateMatchNotes(c.Context(), c.Params("id"), *req.Notes)
	if err != nil {
		return mapWorkspaceError(err)
	}
	return response.OK(c, m)
}

func (h *MatchHandler) Stats(c fiber.Ctx) error {
	st, err := h.ws.JobStats(c.Context(), c.Params("id"))
	if err != nil {
		return mapWorkspaceError(err)
	}
	return response.OK(c, st)
}

func (h *MatchHandler) Score(c fiber.Ctx) error {
	res, err := h.ws.ScoreCandidate(c.Params("id"), c.Params("candidate_id"))
	if err != nil {
		return mapWorkspaceError(err)
	}
	return response.OK(c, res)
}
