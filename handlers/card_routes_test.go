package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tcg-backend/models"
	"tcg-backend/services"
	"tcg-backend/services/mock"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedLinker string

func (l fixedLinker) CardImageURL(_ context.Context, ref string) (string, error) {
	return string(l) + "/" + ref, nil
}

func newCardApp(t *testing.T, adminToken string) (*fiber.App, *mock.MockCardRepository) {
	t.Helper()
	repo := mock.NewMockCardRepository(gomock.NewController(t))
	catalog, err := services.NewCatalogService(repo, 32, fixedLinker("https://signed.example"))
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	api := app.Group("/api")
	SetupHealthRoutes(api)
	SetupCardRoutes(api, catalog, adminToken)
	return app, repo
}

func catalogFixture() []models.Card {
	return []models.Card{
		{ID: 1, Name: "Bulbasaur", Attack: 49, Type: models.TypeGrass, PokedexNumber: 1, ImgURL: "cards/0001-bulbasaur.png"},
		{ID: 2, Name: "Charmander", Attack: 52, Type: models.TypeFire, PokedexNumber: 4},
		{ID: 3, Name: "Squirtle", Attack: 48, Type: models.TypeWater, PokedexNumber: 7},
		{ID: 4, Name: "Pikachu", Attack: 55, Type: models.TypeElectric, PokedexNumber: 25},
	}
}

func TestHealthRoute(t *testing.T) {
	app, _ := newCardApp(t, "")
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestListCardsRoute(t *testing.T) {
	app, repo := newCardApp(t, "")
	repo.EXPECT().ListCards(gomock.Any()).Return(catalogFixture(), nil)

	status, body := doJSON(t, app, http.MethodGet, "/api/cards", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"pokedexNumber":25`)

	status, body = doJSON(t, app, http.MethodGet, "/api/cards?q=squir", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Squirtle")
	assert.NotContains(t, body, "Pikachu")
}

func TestCardImageRoute(t *testing.T) {
	app, repo := newCardApp(t, "")
	repo.EXPECT().ListCards(gomock.Any()).Return(catalogFixture(), nil)
	_, _ = doJSON(t, app, http.MethodGet, "/api/cards", "")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/cards/1/image", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://signed.example/cards/0001-bulbasaur.png", resp.Header.Get("Location"))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/cards/2/image", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/cards/zero/image", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDamageRoute(t *testing.T) {
	app, repo := newCardApp(t, "")
	repo.EXPECT().ListCards(gomock.Any()).Return(catalogFixture(), nil)
	_, _ = doJSON(t, app, http.MethodGet, "/api/cards", "")

	status, body := doJSON(t, app, http.MethodPost, "/api/battle/damage", `{"attackerId":4,"defenderId":3}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"damage":110`)
	assert.Contains(t, body, `"multiplier":2`)

	status, _ = doJSON(t, app, http.MethodPost, "/api/battle/damage", `{"attackerId":4}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	repo.EXPECT().FindCardByID(gomock.Any(), uint(99)).Return(nil, services.ErrCardNotFound)
	status, body = doJSON(t, app, http.MethodPost, "/api/battle/damage", `{"attackerId":4,"defenderId":99}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Card not found", errorOf(t, body))
}

func TestAdminRefreshRoute(t *testing.T) {
	app, repo := newCardApp(t, "ops-secret")
	repo.EXPECT().ListCards(gomock.Any()).Return(catalogFixture(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/cards/refresh", strings.NewReader(""))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/api/admin/cards/refresh", nil)
	req.Header.Set("Authorization", "Bearer ops-secret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminRefreshRouteAbsentWithoutToken(t *testing.T) {
	app, _ := newCardApp(t, "")
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/admin/cards/refresh", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
