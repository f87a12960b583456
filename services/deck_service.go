package services

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"tcg-backend/models"
)

// DeckInput is the payload accepted by create and update.
type DeckInput struct {
	Name  string `json:"name"`
	Cards []uint `json:"cards"`
}

// DeckService runs the deck operations for an already authenticated user.
// It never sees tokens, only the caller's user id.
type DeckService struct {
	repo DeckRepository
}

func NewDeckService(repo DeckRepository) *DeckService {
	return &DeckService{repo: repo}
}

// ParseDeckID accepts only base-10 unsigned integers that fit a Postgres bigint.
func ParseDeckID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		return 0, ErrInvalidDeckID
	}
	return uint(id), nil
}

// Create validates input and persists the deck with its ten cards.
func (s *DeckService) Create(ctx context.Context, ownerID uint, in DeckInput) (*models.Deck, error) {
	if err := ValidateDeckInput(in.Name, in.Cards); err != nil {
		return nil, err
	}

	deck, err := s.repo.CreateDeck(ctx, ownerID, in.Name, in.Cards)
	if err != nil {
		return nil, s.internal(err, "create deck", ownerID, 0)
	}
	slog.Info("deck created", "deck_id", deck.ID, "user_id", ownerID)
	return deck, nil
}

// ListMine returns id/name pairs; no decks is an empty, non-nil slice.
func (s *DeckService) ListMine(ctx context.Context, ownerID uint) ([]models.DeckSummary, error) {
	decks, err := s.repo.ListDecksByOwner(ctx, ownerID)
	if err != nil {
		return nil, s.internal(err, "list decks", ownerID, 0)
	}

	out := make([]models.DeckSummary, 0, len(decks))
	for _, d := range decks {
		out = append(out, models.DeckSummary{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

func (s *DeckService) Get(ctx context.Context, ownerID uint, rawID string) (*models.Deck, error) {
	deckID, err := ParseDeckID(rawID)
	if err != nil {
		return nil, err
	}
	return s.findOwned(ctx, deckID, ownerID)
}

// Update replaces the name and the whole card set of an owned deck.
func (s *DeckService) Update(ctx context.Context, ownerID uint, rawID string, in DeckInput) (*models.Deck, error) {
	deckID, err := ParseDeckID(rawID)
	if err != nil {
		return nil, err
	}
	if err := ValidateDeckInput(in.Name, in.Cards); err != nil {
		return nil, err
	}
	if _, err := s.findOwned(ctx, deckID, ownerID); err != nil {
		return nil, err
	}

	deck, err := s.repo.ReplaceDeckCards(ctx, deckID, ownerID, in.Name, in.Cards)
	if err != nil {
		// Deleted between the lookup and the write.
		if errors.Is(err, ErrDeckNotFound) {
			return nil, ErrDeckNotFound
		}
		return nil, s.internal(err, "replace deck cards", ownerID, deckID)
	}
	return deck, nil
}

func (s *DeckService) Delete(ctx context.Context, ownerID uint, rawID string) error {
	deckID, err := ParseDeckID(rawID)
	if err != nil {
		return err
	}
	if _, err := s.findOwned(ctx, deckID, ownerID); err != nil {
		return err
	}

	if err := s.repo.DeleteDeck(ctx, deckID, ownerID); err != nil {
		if errors.Is(err, ErrDeckNotFound) {
			return ErrDeckNotFound
		}
		return s.internal(err, "delete deck", ownerID, deckID)
	}
	slog.Info("deck deleted", "deck_id", deckID, "user_id", ownerID)
	return nil
}

func (s *DeckService) findOwned(ctx context.Context, deckID, ownerID uint) (*models.Deck, error) {
	deck, err := s.repo.FindDeckByIDAndOwner(ctx, deckID, ownerID)
	if err != nil {
		if errors.Is(err, ErrDeckNotFound) {
			return nil, ErrDeckNotFound
		}
		return nil, s.internal(err, "find deck", ownerID, deckID)
	}
	if deck == nil {
		return nil, ErrDeckNotFound
	}
	return deck, nil
}

// internal logs the storage detail and hands the caller only ErrInternal.
func (s *DeckService) internal(err error, op string, ownerID, deckID uint) error {
	slog.Error("deck operation failed", "op", op, "user_id", ownerID, "deck_id", deckID, "error", err)
	return ErrInternal
}
