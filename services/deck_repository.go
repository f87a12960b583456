package services

import (
	"context"
	"errors"
	"fmt"

	"tcg-backend/models"

	"gorm.io/gorm"
)

// DeckRepository is the persistence contract the deck workflow relies on.
// Every deck read or write is scoped to the owner: a deck owned by someone
// else is reported as ErrDeckNotFound, the same as a missing one.
type DeckRepository interface {
	CreateDeck(ctx context.Context, ownerID uint, name string, cardIDs []uint) (*models.Deck, error)
	ListDecksByOwner(ctx context.Context, ownerID uint) ([]models.DeckSummary, error)
	FindDeckByIDAndOwner(ctx context.Context, deckID, ownerID uint) (*models.Deck, error)
	// ReplaceDeckCards renames the deck and swaps its whole card set in one transaction.
	ReplaceDeckCards(ctx context.Context, deckID, ownerID uint, name string, cardIDs []uint) (*models.Deck, error)
	DeleteDeck(ctx context.Context, deckID, ownerID uint) error
}

type GormDeckRepository struct {
	DB *gorm.DB
}

var _ DeckRepository = (*GormDeckRepository)(nil)

func NewGormDeckRepository(db *gorm.DB) *GormDeckRepository {
	return &GormDeckRepository{DB: db}
}

func persistenceErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrPersistence, op, err)
}

func (r *GormDeckRepository) CreateDeck(ctx context.Context, ownerID uint, name string, cardIDs []uint) (*models.Deck, error) {
	deck := &models.Deck{
		Name:   name,
		UserID: ownerID,
		Cards:  models.NewDeckCards(0, cardIDs),
	}

	// Header and the ten association rows land together or not at all.
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(deck).Error
	})
	if err != nil {
		return nil, persistenceErr("create deck", err)
	}
	return deck, nil
}

func (r *GormDeckRepository) ListDecksByOwner(ctx context.Context, ownerID uint) ([]models.DeckSummary, error) {
	summaries := []models.DeckSummary{}
	err := r.DB.WithContext(ctx).
		Model(&models.Deck{}).
		Select("id", "name").
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, persistenceErr("list decks", err)
	}
	return summaries, nil
}

func (r *GormDeckRepository) FindDeckByIDAndOwner(ctx context.Context, deckID, ownerID uint) (*models.Deck, error) {
	return findOwnedDeck(r.DB.WithContext(ctx), deckID, ownerID)
}

func findOwnedDeck(db *gorm.DB, deckID, ownerID uint) (*models.Deck, error) {
	var deck models.Deck
	err := db.Preload("Cards", func(q *gorm.DB) *gorm.DB { return q.Order("id ASC") }).
		Where("id = ? AND user_id = ?", deckID, ownerID).
		First(&deck).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeckNotFound
		}
		return nil, persistenceErr("find deck", err)
	}
	return &deck, nil
}

func (r *GormDeckRepository) ReplaceDeckCards(ctx context.Context, deckID, ownerID uint, name string, cardIDs []uint) (*models.Deck, error) {
	var updated *models.Deck
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Deck{}).
			Where("id = ? AND user_id = ?", deckID, ownerID).
			Update("name", name)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrDeckNotFound
		}

		// Replace, not merge: drop every existing association first.
		if err := tx.Where("deck_id = ?", deckID).Delete(&models.DeckCard{}).Error; err != nil {
			return err
		}
		rows := models.NewDeckCards(deckID, cardIDs)
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		deck, err := findOwnedDeck(tx, deckID, ownerID)
		if err != nil {
			return err
		}
		updated = deck
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDeckNotFound) || errors.Is(err, ErrPersistence) {
			return nil, err
		}
		return nil, persistenceErr("replace deck cards", err)
	}
	return updated, nil
}

func (r *GormDeckRepository) DeleteDeck(ctx context.Context, deckID, ownerID uint) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&models.Deck{}).Select("id").Where("id = ? AND user_id = ?", deckID, ownerID)
		if err := tx.Where("deck_id IN (?)", owned).Delete(&models.DeckCard{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND user_id = ?", deckID, ownerID).Delete(&models.Deck{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrDeckNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDeckNotFound) {
			return err
		}
		return persistenceErr("delete deck", err)
	}
	return nil
}
