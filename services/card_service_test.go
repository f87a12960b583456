package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tcg-backend/models"
	"tcg-backend/services/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubLinker struct {
	url string
	err error
	ref string
}

func (s *stubLinker) CardImageURL(_ context.Context, ref string) (string, error) {
	s.ref = ref
	return s.url, s.err
}

func sampleCards() []models.Card {
	return []models.Card{
		{ID: 1, Name: "Bulbasaur", HP: 45, Attack: 49, Type: models.TypeGrass, PokedexNumber: 1, ImgURL: "cards/bulbasaur.png"},
		{ID: 4, Name: "Charmander", HP: 39, Attack: 52, Type: models.TypeFire, PokedexNumber: 4, ImgURL: "https://img.example.com/charmander.png"},
		{ID: 7, Name: "Squirtle", HP: 44, Attack: 48, Type: models.TypeWater, PokedexNumber: 7},
		{ID: 25, Name: "Pikachu", HP: 35, Attack: 55, Type: models.TypeElectric, PokedexNumber: 25},
	}
}

func newCatalog(t *testing.T, linker ImageLinker) (*CatalogService, *mock.MockCardRepository) {
	t.Helper()
	repo := mock.NewMockCardRepository(gomock.NewController(t))
	svc, err := NewCatalogService(repo, 16, linker)
	require.NoError(t, err)
	return svc, repo
}

func TestCatalogListCardsIsCached(t *testing.T) {
	svc, repo := newCatalog(t, nil)
	repo.EXPECT().ListCards(gomock.Any()).Return(sampleCards(), nil).Times(1)

	for i := 0; i < 3; i++ {
		cards, err := svc.ListCards(context.Background())
		require.NoError(t, err)
		assert.Len(t, cards, 4)
	}

	// Individual cards are warmed by the list load.
	card, err := svc.GetCard(context.Background(), 25)
	require.NoError(t, err)
	assert.Equal(t, "Pikachu", card.Name)
}

func TestCatalogListStaysCachedBeyondCacheSize(t *testing.T) {
	big := make([]models.Card, 600)
	for i := range big {
		big[i] = models.Card{ID: uint(i + 1), Name: fmt.Sprintf("Card %d", i+1), Type: models.TypeNormal, PokedexNumber: i + 1}
	}

	repo := mock.NewMockCardRepository(gomock.NewController(t))
	repo.EXPECT().ListCards(gomock.Any()).Return(big, nil).Times(1)
	svc, err := NewCatalogService(repo, 512, nil)
	require.NoError(t, err)

	n, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 600, n)

	for i := 0; i < 5; i++ {
		cards, err := svc.ListCards(context.Background())
		require.NoError(t, err)
		assert.Len(t, cards, 600)
	}

	hits, err := svc.Search(context.Background(), "card 599")
	require.NoError(t, err)
	assert.NotEmpty(t, hits)
}

func TestCatalogGetCard(t *testing.T) {
	svc, repo := newCatalog(t, nil)
	repo.EXPECT().FindCardByID(gomock.Any(), uint(4)).Return(&sampleCards()[1], nil).Times(1)
	repo.EXPECT().FindCardByID(gomock.Any(), uint(999)).Return(nil, ErrCardNotFound)
	repo.EXPECT().FindCardByID(gomock.Any(), uint(500)).Return(nil, ErrPersistence)

	card, err := svc.GetCard(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Charmander", card.Name)

	_, err = svc.GetCard(context.Background(), 4)
	require.NoError(t, err)

	_, err = svc.GetCard(context.Background(), 999)
	assert.ErrorIs(t, err, ErrCardNotFound)

	_, err = svc.GetCard(context.Background(), 500)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCatalogSearch(t *testing.T) {
	svc, repo := newCatalog(t, nil)
	repo.EXPECT().ListCards(gomock.Any()).Return(sampleCards(), nil)

	all, err := svc.Search(context.Background(), "  ")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	hits, err := svc.Search(context.Background(), "PIKA")
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "Pikachu", hits[0].Name)

	none, err := svc.Search(context.Background(), "zzzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalogRefreshReloads(t *testing.T) {
	svc, repo := newCatalog(t, nil)
	gomock.InOrder(
		repo.EXPECT().ListCards(gomock.Any()).Return(sampleCards()[:1], nil),
		repo.EXPECT().ListCards(gomock.Any()).Return(sampleCards(), nil),
	)

	cards, err := svc.ListCards(context.Background())
	require.NoError(t, err)
	assert.Len(t, cards, 1)

	n, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	cards, err = svc.ListCards(context.Background())
	require.NoError(t, err)
	assert.Len(t, cards, 4)
}

func TestCatalogRefreshKeepsCacheOnError(t *testing.T) {
	svc, repo := newCatalog(t, nil)
	gomock.InOrder(
		repo.EXPECT().ListCards(gomock.Any()).Return(sampleCards(), nil),
		repo.EXPECT().ListCards(gomock.Any()).Return(nil, ErrPersistence),
	)

	_, err := svc.ListCards(context.Background())
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrPersistence)

	cards, err := svc.ListCards(context.Background())
	require.NoError(t, err)
	assert.Len(t, cards, 4)
}

func TestCatalogImageURL(t *testing.T) {
	linker := &stubLinker{url: "https://r2.example.com/signed"}
	svc, repo := newCatalog(t, linker)
	repo.EXPECT().ListCards(gomock.Any()).Return(sampleCards(), nil)
	_, err := svc.ListCards(context.Background())
	require.NoError(t, err)

	url, err := svc.ImageURL(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "https://r2.example.com/signed", url)
	assert.Equal(t, "cards/bulbasaur.png", linker.ref)

	url, err = svc.ImageURL(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/charmander.png", url)

	_, err = svc.ImageURL(context.Background(), 7)
	assert.ErrorIs(t, err, ErrCardNotFound)

	linker.err = errors.New("signing failed")
	_, err = svc.ImageURL(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCatalogImageURLWithoutStore(t *testing.T) {
	svc, repo := newCatalog(t, nil)
	repo.EXPECT().FindCardByID(gomock.Any(), uint(1)).Return(&sampleCards()[0], nil)

	_, err := svc.ImageURL(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestCatalogPreviewDamage(t *testing.T) {
	svc, repo := newCatalog(t, nil)
	repo.EXPECT().ListCards(gomock.Any()).Return(sampleCards(), nil)
	_, err := svc.ListCards(context.Background())
	require.NoError(t, err)

	preview, err := svc.PreviewDamage(context.Background(), 25, 7)
	require.NoError(t, err)
	assert.Equal(t, 2.0, preview.Multiplier)
	assert.Equal(t, 110, preview.Damage)

	preview, err = svc.PreviewDamage(context.Background(), 4, 25)
	require.NoError(t, err)
	assert.Equal(t, 1.0, preview.Multiplier)
	assert.Equal(t, 52, preview.Damage)

	repo.EXPECT().FindCardByID(gomock.Any(), uint(404)).Return(nil, ErrCardNotFound)
	_, err = svc.PreviewDamage(context.Background(), 25, 404)
	assert.ErrorIs(t, err, ErrCardNotFound)
}
