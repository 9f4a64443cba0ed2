package v1

import (
	"smart-hire/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// RegisterJobs mounts the job routes and the match routes nested under a
// job.
func RegisterJobs(r fiber.Router, jobHandler *handler.JobHandler, matchHandler *handler.MatchHandler) {
	if r == nil {
		return
	}
	if matchHandler != nil {
		matchHandler.RegisterRoutes(r)
	}
	if jobHandler != nil {
		jobHandler.RegisterRoutes(r.Group("/jobs"))
	}
}
