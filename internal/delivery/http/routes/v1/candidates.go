package v1

import (
	"smart-hire/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterCandidates(r fiber.Router, candidateHandler *handler.CandidateHandler) {
	if r == nil {
		return
	}
	if candidateHandler == nil {
		return
	}

	candidateHandler.RegisterRoutes(r.Group("/candidates"))
}
