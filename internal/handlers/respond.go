package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/littlesous/backend/internal/apperr"
	"github.com/littlesous/backend/internal/dto"
)

// fail maps a service error to the HTTP response. Validation errors keep
// their field so the client can re-prompt the same question or form input.
func fail(c *fiber.Ctx, err error) error {
	var ve *apperr.ValidationError
	var ue *apperr.UpstreamError

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Resource not found",
		})
	case errors.Is(err, apperr.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Access denied",
		})
	case errors.Is(err, apperr.ErrInvalidState):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: "The interview is not in a state that allows this operation",
		})
	case errors.Is(err, apperr.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: "The interview was updated concurrently, please retry",
		})
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: ve.Reason, Field: ve.Field,
		})
	case errors.As(err, &ue):
		slog.Error("generation provider failure", "op", ue.Op, "error", ue.Err)
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Recipe generation is temporarily unavailable, please try again",
		})
	default:
		slog.Error("unhandled service error", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}
