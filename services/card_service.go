package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"tcg-backend/models"
	"tcg-backend/rules"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sahilm/fuzzy"
)

// ImageLinker turns a stored image reference into a URL a client can fetch.
type ImageLinker interface {
	CardImageURL(ctx context.Context, ref string) (string, error)
}

// CatalogService serves the read-only card catalog. The full list is held
// outside the LRU so a catalog larger than the cache never evicts it.
type CatalogService struct {
	repo   CardRepository
	cache  *lru.Cache
	images ImageLinker

	mu  sync.RWMutex
	all []models.Card
}

// NewCatalogService builds the catalog. images may be nil when no object store is configured.
func NewCatalogService(repo CardRepository, cacheSize int, images ImageLinker) (*CatalogService, error) {
	if cacheSize <= 0 {
		cacheSize = 512
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create card cache: %w", err)
	}
	return &CatalogService{repo: repo, cache: cache, images: images}, nil
}

// ListCards returns every card ordered by pokedex number.
func (s *CatalogService) ListCards(ctx context.Context) ([]models.Card, error) {
	s.mu.RLock()
	all := s.all
	s.mu.RUnlock()
	if all != nil {
		return all, nil
	}

	cards, err := s.repo.ListCards(ctx)
	if err != nil {
		slog.Error("card catalog load failed", "error", err)
		return nil, ErrInternal
	}
	s.store(cards)
	return cards, nil
}

func (s *CatalogService) GetCard(ctx context.Context, id uint) (*models.Card, error) {
	if cached, ok := s.cache.Get(cardKey(id)); ok {
		card := cached.(models.Card)
		return &card, nil
	}

	card, err := s.repo.FindCardByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCardNotFound) {
			return nil, ErrCardNotFound
		}
		slog.Error("card lookup failed", "card_id", id, "error", err)
		return nil, ErrInternal
	}
	s.cache.Add(cardKey(id), *card)
	return card, nil
}

type cardNames []models.Card

func (c cardNames) String(i int) string { return strings.ToLower(c[i].Name) }
func (c cardNames) Len() int            { return len(c) }

// Search fuzzy-matches card names, best match first. An empty query returns the full catalog.
func (s *CatalogService) Search(ctx context.Context, query string) ([]models.Card, error) {
	cards, err := s.ListCards(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return cards, nil
	}

	matches := fuzzy.FindFrom(query, cardNames(cards))
	out := make([]models.Card, 0, len(matches))
	for _, m := range matches {
		out = append(out, cards[m.Index])
	}
	return out, nil
}

// Refresh drops the cache and reloads the catalog from storage.
func (s *CatalogService) Refresh(ctx context.Context) (int, error) {
	cards, err := s.repo.ListCards(ctx)
	if err != nil {
		return 0, err
	}
	s.cache.Purge()
	s.store(cards)
	return len(cards), nil
}

func (s *CatalogService) store(cards []models.Card) {
	if cards == nil {
		cards = []models.Card{}
	}
	s.mu.Lock()
	s.all = cards
	s.mu.Unlock()
	for _, c := range cards {
		s.cache.Add(cardKey(c.ID), c)
	}
}

// ImageURL resolves where a card's artwork can be downloaded.
// Absolute URLs are returned as-is; object keys need an ImageLinker.
func (s *CatalogService) ImageURL(ctx context.Context, id uint) (string, error) {
	card, err := s.GetCard(ctx, id)
	if err != nil {
		return "", err
	}
	ref := strings.TrimSpace(card.ImgURL)
	switch {
	case ref == "":
		return "", ErrCardNotFound
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return ref, nil
	case s.images == nil:
		return "", ErrCardNotFound
	}

	url, err := s.images.CardImageURL(ctx, ref)
	if err != nil {
		slog.Error("card image presign failed", "card_id", id, "key", ref, "error", err)
		return "", ErrInternal
	}
	return url, nil
}

// DamagePreview is the outcome of one card attacking another.
type DamagePreview struct {
	Attacker   models.Card `json:"attacker"`
	Defender   models.Card `json:"defender"`
	Multiplier float64     `json:"multiplier"`
	Damage     int         `json:"damage"`
}

// PreviewDamage applies the type rules to two catalog cards using the attacker's attack stat.
func (s *CatalogService) PreviewDamage(ctx context.Context, attackerID, defenderID uint) (*DamagePreview, error) {
	attacker, err := s.GetCard(ctx, attackerID)
	if err != nil {
		return nil, err
	}
	defender, err := s.GetCard(ctx, defenderID)
	if err != nil {
		return nil, err
	}

	return &DamagePreview{
		Attacker:   *attacker,
		Defender:   *defender,
		Multiplier: rules.Multiplier(attacker.Type, defender.Type),
		Damage:     rules.Damage(attacker.Attack, attacker.Type, defender.Type),
	}, nil
}

func cardKey(id uint) string {
	return fmt.Sprintf("card:%d", id)
}
