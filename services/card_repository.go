package services

import (
	"context"
	"errors"

	"tcg-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CardRepository reads the card catalog. UpsertCards is used only by the seed tool.
type CardRepository interface {
	ListCards(ctx context.Context) ([]models.Card, error)
	FindCardByID(ctx context.Context, id uint) (*models.Card, error)
	UpsertCards(ctx context.Context, cards []models.Card) error
}

type GormCardRepository struct {
	DB *gorm.DB
}

var _ CardRepository = (*GormCardRepository)(nil)

func NewGormCardRepository(db *gorm.DB) *GormCardRepository {
	return &GormCardRepository{DB: db}
}

// ListCards returns the whole catalog ordered by pokedex number.
func (r *GormCardRepository) ListCards(ctx context.Context) ([]models.Card, error) {
	cards := []models.Card{}
	if err := r.DB.WithContext(ctx).Order("pokedex_number ASC").Find(&cards).Error; err != nil {
		return nil, persistenceErr("list cards", err)
	}
	return cards, nil
}

func (r *GormCardRepository) FindCardByID(ctx context.Context, id uint) (*models.Card, error) {
	var card models.Card
	if err := r.DB.WithContext(ctx).First(&card, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, persistenceErr("find card", err)
	}
	return &card, nil
}

// UpsertCards inserts or refreshes cards keyed by pokedex number.
func (r *GormCardRepository) UpsertCards(ctx context.Context, cards []models.Card) error {
	if len(cards) == 0 {
		return nil
	}
	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pokedex_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "hp", "attack", "type", "img_url", "updated_at"}),
	}).Create(&cards).Error
	if err != nil {
		return persistenceErr("upsert cards", err)
	}
	return nil
}
