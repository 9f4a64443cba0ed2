package handler

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"smart-hire/internal/delivery/http/dto"
	"smart-hire/internal/delivery/http/middleware"
	"smart-hire/internal/domain/candidate"
	"smart-hire/internal/pipeline"
	"smart-hire/internal/pkg/response"
	"smart-hire/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// ResumeFormField is the multipart field that carries résumé files.
const ResumeFormField = "files"

type CandidateWorkspace interface {
	ListCandidates(f usecase.CandidateFilter) ([]candidate.Candidate, error)
	CandidateSkills() ([]string, error)
	GetCandidate(id string) (candidate.Candidate, error)
	AddCandidates(ctx context.Context, cs []candidate.Candidate) ([]candidate.Candidate, error)
	UploadResumes(ctx context.Context, files []pipeline.ResumeFile) (usecase.UploadResult, error)
	PreviewResume(text string) candidate.Candidate
}

type CandidateHandler struct {
	ws CandidateWorkspace
}

func NewCandidateHandler(ws CandidateWorkspace) *CandidateHandler {
	return &CandidateHandler{ws: ws}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
	r.Get("/skills", h.Skills)
	r.Post("/", h.Create)
	r.Post("/upload", h.Upload)
	r.Post("/parse", h.Parse)
	r.Get("/:id", h.Get)
}

func (h *CandidateHandler) List(c fiber.Ctx) error {
	active, err := parseQueryBool(c, "active")
	if err != nil {
		return badRequest("active must be a boolean", err)
	}

	cands, err := h.ws.ListCandidates(usecase.CandidateFilter{
		Query:      c.Query("q"),
		Skill:      c.Query("skill"),
		ActiveOnly: active,
	})
	if err != nil {
		return mapWorkspaceError(err)
	}
	return response.OK(c, cands)
}

func (h *CandidateHandler) Skills(c fiber.Ctx) error {
	skills, err := h.ws.CandidateSkills()
	if err != nil {
		return mapWorkspaceError(err)
	}
	return response.OK(c, skills)
}

func (h *CandidateHandler) Get(c fiber.Ctx) error {
	cand, err := h.ws.GetCandidate(c.Params("id"))
	if err != nil {
		return mapWorkspaceError(err)
	}
	return response.OK(c, cand)
}

func (h *CandidateHandler) Create(c fiber.Ctx) error {
	var req dto.CreateCandidatesRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}
	if len(req.Candidates) == 0 {
		return badRequest("at least one candidate is required", nil)
	}

	added, err := h.ws.AddCandidates(c.Context(), req.Candidates)
	if err != nil {
		return mapWorkspaceError(err)
	}
	return response.Created(c, added)
}

// Upload turns every file of the multipart form into a candidate and
// matches the new candidates against the current job.
func (h *CandidateHandler) Upload(c fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return badRequest("multipart form expected", err)
	}
	headers := form.File[ResumeFormField]
	if len(headers) == 0 {
		return badRequest(fmt.Sprintf("no files in %q field", ResumeFormField), nil)
	}

	files := make([]pipeline.ResumeFile, 0, len(headers))
	for _, fh := range headers {
		data, err := readFormFile(fh)
		if err != nil {
			return badRequest("unreadable file "+fh.Filename, err)
		}
		files = append(files, pipeline.ResumeFile{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	res, err := h.ws.UploadResumes(c.Context(), files)
	if err != nil {
		return mapWorkspaceError(err)
	}
	if len(res.Candidates) == 0 {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "No resume could be processed", res.Failed, nil)
	}
	return response.Created(c, res)
}

func (h *CandidateHandler) Parse(c fiber.Ctx) error {
	var req dto.ParseResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Bad request", err)
	}
	if strings.TrimSpace(req.Text) == "" {
		return badRequest("resume text is required", nil)
	}
	return response.OK(c, h.ws.PreviewResume(req.Text))
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
