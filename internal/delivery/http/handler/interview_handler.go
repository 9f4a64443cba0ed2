package handler

import (
	"context"

	"smart-hire/internal/delivery/http/dto"
	"smart-hire/internal/domain/interview"
	"smart-hire/internal/pkg/response"
	"smart-hire/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const defaultUpcomingLimit = 5

type InterviewWorkspace interface {
	ListInterviews(f usecase.InterviewFilter) ([]interview.Interview, error)
	UpcomingInterviews(limit int) ([]interview.Interview, error)
	ScheduleInterview(ctx context.Context, in usecase.InterviewInput) (interview.Interview, error)
}

type InterviewHandler struct {
	ws InterviewWorkspace
}

func NewInterviewHandler(ws InterviewWorkspace) *InterviewHandler {
	return &InterviewHandler{ws: ws}
}

func (h *InterviewHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
	r.Get("/upcoming", h.Upcoming)
	r.Post("/", h.Schedule)
}

func (h *InterviewHandler) List(c fiber.Ctx) error {
	items, err := h.ws.ListInterviews(usecase.InterviewFilter{
		CandidateID: c.Query("candidate_id"),
		JobID:       c.Query("job_id"),
	})
	if err != nil {
		return mapWorkspaceError(err)
	}
	return response.OK(c, items)
}

func (h *InterviewHandler) Upcoming(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", defaultUpcomingLimit)
	if err != nil || limit <= 0 {
		return badRequest("limit must be a positive integer", err)
	}

	items, err := h.ws.UpcomingInterviews(limit)
	if err != nil {
		return mapWorkspaceError(err)
	}
	return response.OK(c, items)
}

func (h *InterviewHandler) Schedule(c fiber.Ctx) error {
	var req dto.ScheduleInterviewRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	iv, err := h.ws.ScheduleInterview(c.Context(), usecase.InterviewInput{
		CandidateID: req.CandidateID,
		JobID:       req.JobID,
		Datetime:    req.Datetime,
		Notes:       req.Notes,
	})
	if err != nil {
		return mapWorkspaceError(err)
	}
	return response.Created(c, iv)
}
