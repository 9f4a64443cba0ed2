package handler

import (
	"errors"
	"strings"

	"smart-hire/internal/delivery/http/middleware"
	"smart-hire/internal/pkg/response"
	"smart-hire/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func mapWorkspaceError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, badRequestMessage(err), nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrMatchNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Match not found", nil, err)
	case errors.Is(err, usecase.ErrNoCurrentJob):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "No current job selected", nil, err)
	case errors.Is(err, usecase.ErrConflict):
		return middleware.NewAppError(fiber.StatusConflict, "Record already exists", nil, err)
	case errors.Is(err, usecase.ErrWorkspaceNotReady):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Workspace not ready", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

// badRequestMessage exposes the detail after "invalid input: ".
func badRequestMessage(err error) string {
	msg := err.Error()
	prefix := usecase.ErrInvalidInput.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		if detail := strings.TrimSpace(msg[i+len(prefix):]); detail != "" {
			return detail
		}
	}
	return "Bad request"
}

func badRequest(message string, cause error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, message, nil, cause)
}
