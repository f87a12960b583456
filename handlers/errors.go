package handlers

import (
	"errors"

	"tcg-backend/services"

	"github.com/gofiber/fiber/v2"
)

const msgInternal = "Internal server error"

// respondError maps a service error to its status code and {"error": msg} body.
func respondError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return fail(c, fiber.StatusBadRequest, verr.Message)
	case errors.Is(err, services.ErrInvalidDeckID):
		return fail(c, fiber.StatusBadRequest, "Invalid deck ID")
	case errors.Is(err, services.ErrDeckNotFound):
		return fail(c, fiber.StatusNotFound, "Deck not found")
	case errors.Is(err, services.ErrCardNotFound):
		return fail(c, fiber.StatusNotFound, "Card not found")
	case errors.Is(err, services.ErrMissingCredentials):
		return fail(c, fiber.StatusBadRequest, "Missing required fields")
	case errors.Is(err, services.ErrEmailTaken):
		return fail(c, fiber.StatusConflict, "Email already in use")
	case errors.Is(err, services.ErrInvalidCredentials):
		return fail(c, fiber.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	default:
		return fail(c, fiber.StatusInternalServerError, msgInternal)
	}
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// ErrorHandler is the app-wide fallback for errors no handler turned into a response.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return fail(c, fe.Code, fe.Message)
	}
	return fail(c, fiber.StatusInternalServerError, msgInternal)
}
