// handlers/deck_routes.go
package handlers

import (
	"encoding/json"

	"tcg-backend/middleware"
	"tcg-backend/services"

	"github.com/gofiber/fiber/v2"
)

// SetupDeckRoutes mounts /decks on router; every route requires a bearer token.
func SetupDeckRoutes(router fiber.Router, decks *services.DeckService, verifier services.TokenVerifier) {
	secured := router.Group("/decks", middleware.RequireAuth(verifier))

	secured.Post("/", func(c *fiber.Ctx) error {
		userID, _ := middleware.UserID(c)

		in, err := decodeDeckInput(c.Body())
		if err != nil {
			return respondError(c, err)
		}

		deck, err := decks.Create(c.UserContext(), userID, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON("deck created successfully: " + deck.Name)
	})

	// Registered before /:id so "mine" is never parsed as an id.
	secured.Get("/mine", func(c *fiber.Ctx) error {
		userID, _ := middleware.UserID(c)

		list, err := decks.ListMine(c.UserContext(), userID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(list)
	})

	secured.Get("/:id", func(c *fiber.Ctx) error {
		userID, _ := middleware.UserID(c)

		deck, err := decks.Get(c.UserContext(), userID, c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(deck)
	})

	secured.Patch("/:id", func(c *fiber.Ctx) error {
		userID, _ := middleware.UserID(c)
		rawID := c.Params("id")

		if _, err := services.ParseDeckID(rawID); err != nil {
			return respondError(c, err)
		}
		in, err := decodeDeckInput(c.Body())
		if err != nil {
			return respondError(c, err)
		}

		if _, err := decks.Update(c.UserContext(), userID, rawID, in); err != nil {
			return respondError(c, err)
		}
		return c.JSON("Deck updated successfully")
	})

	secured.Delete("/:id", func(c *fiber.Ctx) error {
		userID, _ := middleware.UserID(c)

		if err := decks.Delete(c.UserContext(), userID, c.Params("id")); err != nil {
			return respondError(c, err)
		}
		return c.JSON("Deck deleted successfully")
	})
}

type rawDeckInput struct {
	Name  string          `json:"name"`
	Cards json.RawMessage `json:"cards"`
}

// decodeDeckInput keeps the name-first rule for bodies whose cards field is
// not a list of ids: a missing name still wins, otherwise it is a card count error.
func decodeDeckInput(body []byte) (services.DeckInput, error) {
	var raw rawDeckInput
	if err := json.Unmarshal(body, &raw); err != nil {
		return services.DeckInput{}, services.ErrInvalidInput
	}

	in := services.DeckInput{Name: raw.Name}
	if len(raw.Cards) == 0 {
		return in, nil
	}
	if err := json.Unmarshal(raw.Cards, &in.Cards); err != nil {
		if verr := services.ValidateDeckInput(in.Name, nil); verr != nil {
			return services.DeckInput{}, verr
		}
	}
	return in, nil
}
