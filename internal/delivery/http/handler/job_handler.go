package handler

import (
	"context"
	"strings"

	"smart-hire/internal/delivery/http/dto"
	"smart-hire/internal/domain/job"
	"smart-hire/internal/pkg/response"
	"smart-hire/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobWorkspace interface {
	ListJobs() ([]job.Posting, error)
	GetJob(id string) (job.Posting, error)
	CreateJobFromText(ctx context.Context, in usecase.JobTextInput) (job.Posting, error)
	UpdateJob(ctx context.Context, p job.Posting) (job.Posting, error)
	PreviewJob(in usecase.JobTextInput) job.Posting
}

type JobHandler struct {
	ws JobWorkspace
}

func NewJobHandler(ws JobWorkspace) *JobHandler {
	return &JobHandler{ws: ws}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/parse", h.Parse)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	jobs, err := h.ws.ListJobs()
	if err != nil {
		return mapWorkspaceError(err)
	}
	return response.OK(c, jobs)
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	p, err := h.ws.GetJob(c.Params("id"))
	if err != nil {
		return mapWorkspaceError(err)
	}
	return response.OK(c, p)
}

// Create parses a pasted description, stores it and makes it the current
// job.
func (h *JobHandler) Create(c fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}

	p, err := h.ws.CreateJobFromText(c.Context(), usecase.JobTextInput{
		Text:     req.Text,
		Title:    req.Title,
		Location: req.Location,
	})
	if err != nil {
		return mapWorkspaceError(err)
	}
	return response.Created(c, p)
}

func (h *JobHandler) Parse(c fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}
	if strings.TrimSpace(req.Text) == "" {
		return badRequest("job description text is required", nil)
	}

	return response.OK(c, h.ws.PreviewJob(usecase.JobTextInput{
		Text:     req.Text,
		Title:    req.Title,
		Location: req.Location,
	}))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	var req dto.UpdateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}
	if strings.TrimSpace(req.Title) == "" {
		return badRequest("title is required", nil)
	}

	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}
	p, err := h.ws.UpdateJob(c.Context(), job.Posting{
		ID:          c.Params("id"),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Summary:     req.Summary,
		Skills:      skills,
		Experience:  req.Experience,
		Location:    req.Location,
		PostedDate:  req.PostedDate,
		Metadata:    job.Metadata(req.Metadata),
	})
	if err != nil {
		return mapWorkspaceError(err)
	}
	return response.OK(c, p)
}
