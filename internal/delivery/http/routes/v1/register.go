package v1

import (
	"smart-hire/internal/delivery/http/handler"
	"smart-hire/internal/usecase"
	"smart-hire/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Health     *handler.HealthHandler
	Jobs       *handler.JobHandler
	Candidates *handler.CandidateHandler
	Matches    *handler.MatchHandler
	Interviews *handler.InterviewHandler
	Workspace  *handler.WorkspaceHandler
}

// NewHandlers builds every v1 handler on top of one workspace.
func NewHandlers(w *usecase.Workspace, hub *ws.Hub) Handlers {
	return Handlers{
		Health:     handler.NewHealthHandler(w, hub),
		Jobs:       handler.NewJobHandler(w),
		Candidates: handler.NewCandidateHandler(w),
		Matches:    handler.NewMatchHandler(w),
		Interviews: handler.NewInterviewHandler(w),
		Workspace:  handler.NewWorkspaceHandler(w),
	}
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Health != nil {
		h.Health.RegisterRoutes(r)
	}
	RegisterJobs(r, h.Jobs, h.Matches)
	RegisterCandidates(r, h.Candidates)

	if h.Interviews != nil {
		h.Interviews.RegisterRoutes(r.Group("/interviews"))
	}
	if h.Workspace != nil {
		h.Workspace.RegisterRoutes(r.Group("/workspace"))
	}
}
