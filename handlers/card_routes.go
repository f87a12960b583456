// handlers/card_routes.go
package handlers

import (
	"strconv"

	"tcg-backend/middleware"
	"tcg-backend/services"

	"github.com/gofiber/fiber/v2"
)

type damageRequest struct {
	AttackerID uint `json:"attackerId"`
	DefenderID uint `json:"defenderId"`
}

// SetupCardRoutes mounts the public catalog and the damage preview.
// The refresh route is only mounted when adminToken is set.
func SetupCardRoutes(router fiber.Router, catalog *services.CatalogService, adminToken string) {
	cards := router.Group("/cards")

	cards.Get("/", func(c *fiber.Ctx) error {
		list, err := catalog.Search(c.UserContext(), c.Query("q"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(list)
	})

	cards.Get("/:id", func(c *fiber.Ctx) error {
		id, ok := cardID(c)
		if !ok {
			return fail(c, fiber.StatusBadRequest, "Invalid card ID")
		}
		card, err := catalog.GetCard(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(card)
	})

	cards.Get("/:id/image", func(c *fiber.Ctx) error {
		id, ok := cardID(c)
		if !ok {
			return fail(c, fiber.StatusBadRequest, "Invalid card ID")
		}
		url, err := catalog.ImageURL(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.Redirect(url, fiber.StatusFound)
	})

	router.Post("/battle/damage", func(c *fiber.Ctx) error {
		var req damageRequest
		if err := c.BodyParser(&req); err != nil || req.AttackerID == 0 || req.DefenderID == 0 {
			return fail(c, fiber.StatusBadRequest, "Invalid request body")
		}
		preview, err := catalog.PreviewDamage(c.UserContext(), req.AttackerID, req.DefenderID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(preview)
	})

	if adminToken != "" {
		router.Post("/admin/cards/refresh", middleware.ServiceTokenMiddleware(adminToken), func(c *fiber.Ctx) error {
			n, err := catalog.Refresh(c.UserContext())
			if err != nil {
				return respondError(c, err)
			}
			return c.JSON(fiber.Map{"cards": n})
		})
	}
}

func cardID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 63)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
