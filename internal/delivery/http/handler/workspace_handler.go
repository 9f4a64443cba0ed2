package handler

import (
	"strings"

	"smart-hire/internal/delivery/http/dto"
	"smart-hire/internal/domain/candidate"
	"smart-hire/internal/domain/job"
	"smart-hire/internal/pkg/response"
	"smart-hire/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SessionWorkspace interface {
	Snapshot() (usecase.Snapshot, error)
	SetCurrentJob(jobID string) (*job.Posting, error)
	SelectCandidate(candidateID string) ([]candidate.Candidate, error)
	UnselectCandidate(candidateID string) ([]candidate.Candidate, error)
	ClearSelectedCandidates() error
}

// WorkspaceHandler exposes the whole state plus the session-only current
// job and candidate selection.
type WorkspaceHandler struct {
	ws SessionWorkspace
}

func NewWorkspaceHandler(ws SessionWorkspace) *WorkspaceHandler {
	return &WorkspaceHandler{ws: ws}
}

func (h *WorkspaceHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Snapshot)
	r.Put("/current-job", h.SetCurrentJob)
	r.Post("/selected", h.Select)
	r.Delete("/selected/:id", h.Unselect)
	r.Delete("/selected", h.ClearSelection)
}

func (h *WorkspaceHandler) Snapshot(c fiber.Ctx) error {
	snap, err := h.ws.Snapshot()
	if err != nil {
		return mapWorkspaceError(err)
	}
	return response.OK(c, snap)
}

func (h *WorkspaceHandler) SetCurrentJob(c fiber.Ctx) error {
	var req dto.SetCurrentJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	cur, err := h.ws.SetCurrentJob(strings.TrimSpace(req.JobID))
	if err != nil {
		return mapWorkspaceError(err)
	}
	return response.OK(c, cur)
}

func (h *WorkspaceHandler) Select(c fiber.Ctx) error {
	var req dto.SelectCandidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}
	if strings.TrimSpace(req.CandidateID) == "" {
		return badRequest("candidateId is required", nil)
	}

	sel, err := h.ws.SelectCandidate(req.CandidateID)
	if err != nil {
		return mapWorkspaceError(err)
	}
	return response.OK(c, sel)
}

func (h *WorkspaceHandler) Unselect(c fiber.Ctx) error {
	sel, err := h.ws.UnselectCandidate(c.Params("id"))
	if err != nil {
		return mapWorkspaceError(err)
	}
	return response.OK(c, sel)
}

func (h *WorkspaceHandler) ClearSelection(c fiber.Ctx) error {
	if err := h.ws.ClearSelectedCandidates(); err != nil {
		return mapWorkspaceError(err)
	}
	return response.OK(c, []candidate.Candidate{})
}
