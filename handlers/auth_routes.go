package handlers

import (
	"tcg-backend/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(router fiber.Router, auth *services.AuthService) {
	group := router.Group("/auth")

	group.Post("/sign-up", func(c *fiber.Ctx) error {
		var in services.SignUpInput
		if err := c.BodyParser(&in); err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid request body")
		}
		session, err := auth.SignUp(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(session)
	})

	group.Post("/sign-in", func(c *fiber.Ctx) error {
		var in services.SignInInput
		if err := c.BodyParser(&in); err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid request body")
		}
		session, err := auth.SignIn(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(session)
	})
}

func SetupHealthRoutes(router fiber.Router) {
	router.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "TCG Backend Server is running",
		})
	})
}
