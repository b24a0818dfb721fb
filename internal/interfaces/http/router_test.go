package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Soubahou/gestion-stock-atlas/internal/application/dto"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Articles
// ──────────────────────────────────────────────────────────────────────────────

func TestArticles_CRUD(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodPost, "/articles", map[string]any{
		"reference": "QUI-001", "nom": "Vis à bois", "categorie": "Quincaillerie",
		"quantite": 30, "seuilMin": 5, "prixUnitaire": 0.25,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[entity.Article](t, resp)
	assert.Equal(t, "pièce", created.Unit)
	assert.Equal(t, "0.25", created.UnitPrice.String())

	resp = env.do(t, http.MethodPut, "/articles/1", map[string]any{"emplacement": "A-3", "quantite": 500})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[entity.Article](t, resp)
	assert.Equal(t, "A-3", updated.Location)
	assert.Equal(t, 30, updated.Quantity, "quantite no se modifica por PUT")

	resp = env.do(t, http.MethodGet, "/articles/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/articles/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Article supprimé avec succès", decode[dto.MessageResponse](t, resp).Message)

	resp = env.do(t, http.MethodGet, "/articles/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestArticles_CreateSinNom(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodPost, "/articles", map[string]any{"reference": "X"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Nom et référence requis", body.Error)
	assert.Equal(t, "VALIDATION", body.Code)
}

func TestArticles_CuerpoInvalido(t *testing.T) {
	env := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader("{nom:"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestArticles_IDNoNumerico(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodGet, "/articles/abc", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Article introuvable", decode[dto.ErrorResponse](t, resp).Error)
}

func TestArticles_ListFiltros(t *testing.T) {
	low := seedArticle(1, 3)
	low.Name = "Câble"
	env := buildTestApp(t, low, seedArticle(2, 50))

	resp := env.do(t, http.MethodGet, "/articles?stockAlert=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := decode[[]entity.Article](t, resp)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ID)

	resp = env.do(t, http.MethodGet, "/articles?search=CABLE", nil)
	assert.Len(t, decode[[]entity.Article](t, resp), 1)

	resp = env.do(t, http.MethodGet, "/articles", nil)
	assert.Len(t, decode[[]entity.Article](t, resp), 2)
}

func TestArticles_DeleteReferenciado(t *testing.T) {
	env := buildTestApp(t, seedArticle(1, 10))

	resp := env.do(t, http.MethodPost, "/bons", map[string]any{
		"type": "ENTREE", "articles": []map[string]any{{"articleId": 1, "quantity": 5}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/articles/1", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "REFERENCED", decode[dto.ErrorResponse](t, resp).Code)

	resp = env.do(t, http.MethodGet, "/articles/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestArticles_ExportXLSX(t *testing.T) {
	env := buildTestApp(t, seedArticle(1, 10), seedArticle(2, 20))

	resp := env.do(t, http.MethodGet, "/articles/export.xlsx", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventaire_")

	f, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("Inventaire")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bons
// ──────────────────────────────────────────────────────────────────────────────

func TestBons_EntradaSalidaYAnulacion(t *testing.T) {
	env := buildTestApp(t, seedArticle(1, 100))

	resp := env.do(t, http.MethodPost, "/bons", map[string]any{
		"type": "ENTREE", "date": "2024-06-10", "motif": "Livraison",
		"articles": []map[string]any{{"articleId": 1, "quantity": 50}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	bon := decode[entity.Bon](t, resp)
	assert.Equal(t, "BON-ENT-0001", bon.Ref)
	assert.Equal(t, "Admin", bon.User)
	assert.Equal(t, 150, env.qty(t, 1))

	resp = env.do(t, http.MethodPost, "/bons", map[string]any{
		"type": "SORTIE", "articles": []map[string]any{{"articleId": 1, "quantity": 50}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	exit := decode[entity.Bon](t, resp)
	assert.Equal(t, "BON-SOR-0001", exit.Ref)
	assert.Equal(t, 100, env.qty(t, 1))

	resp = env.do(t, http.MethodDelete, "/bons/2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bon supprimé avec succès", decode[dto.MessageResponse](t, resp).Message)
	assert.Equal(t, 150, env.qty(t, 1))

	resp = env.do(t, http.MethodGet, "/bons?type=ENTREE", nil)
	assert.Len(t, decode[[]entity.Bon](t, resp), 1)
}

func TestBons_StockInsuficiente(t *testing.T) {
	env := buildTestApp(t, seedArticle(1, 150))

	resp := env.do(t, http.MethodPost, "/bons", map[string]any{
		"type": "SORTIE", "articles": []map[string]any{{"articleId": 1, "quantity": 200}},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Stock insuffisant pour Article 1", body.Error)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	require.NotNil(t, body.StockDisponible)
	assert.Equal(t, 150, *body.StockDisponible)
	assert.Equal(t, 150, env.qty(t, 1))
}

func TestBons_ArticuloInexistenteYFormaInvalida(t *testing.T) {
	env := buildTestApp(t, seedArticle(1, 10))

	resp := env.do(t, http.MethodPost, "/bons", map[string]any{
		"type": "ENTREE", "articles": []map[string]any{{"articleId": 99, "quantity": 1}},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Article introuvable", decode[dto.ErrorResponse](t, resp).Error)

	resp = env.do(t, http.MethodPost, "/bons", map[string]any{"type": "ENTREE", "articles": []any{}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/bons?type=INCONNU", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBons_AnulacionImposible(t *testing.T) {
	env := buildTestApp(t, seedArticle(1, 0))

	resp := env.do(t, http.MethodPost, "/bons", map[string]any{
		"type": "ENTREE", "articles": []map[string]any{{"articleId": 1, "quantity": 10}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = env.do(t, http.MethodPost, "/mouvements", map[string]any{"articleId": 1, "type": "sortie", "quantite": 8})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/bons/1", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Suppression impossible : stock insuffisant pour annulation", body.Error)
	assert.Equal(t, "REVERSAL_CONFLICT", body.Code)
	assert.Equal(t, 2, env.qty(t, 1))

	resp = env.do(t, http.MethodDelete, "/bons/77", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mouvements
// ──────────────────────────────────────────────────────────────────────────────

func TestMouvements_CreateListDelete(t *testing.T) {
	env := buildTestApp(t, seedArticle(1, 5), seedArticle(2, 5))

	resp := env.do(t, http.MethodPost, "/mouvements", map[string]any{"articleId": 2, "type": "entree", "quantite": 20})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	m := decode[entity.Mouvement](t, resp)
	assert.Equal(t, 25, env.qty(t, 2))

	resp = env.do(t, http.MethodGet, "/mouvements?articleId=2", nil)
	assert.Len(t, decode[[]entity.Mouvement](t, resp), 1)
	resp = env.do(t, http.MethodGet, "/mouvements?articleId=1", nil)
	assert.Empty(t, decode[[]entity.Mouvement](t, resp))
	resp = env.do(t, http.MethodGet, "/mouvements?articleId=x", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/mouvements/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/mouvements/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, env.qty(t, 2))
	assert.Equal(t, int64(1), m.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stats, health, métricas, CORS
// ──────────────────────────────────────────────────────────────────────────────

func TestStats(t *testing.T) {
	env := buildTestApp(t, seedArticle(1, 3), seedArticle(2, 50))

	resp := env.do(t, http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decode[map[string]any](t, resp)
	assert.EqualValues(t, 2, summary["totalArticles"])
	assert.EqualValues(t, 53, summary["totalQuantite"])
	assert.EqualValues(t, 106, summary["valeurStock"])
	assert.EqualValues(t, 1, summary["articlesEnAlerte"])

	resp = env.do(t, http.MethodGet, "/stats/low-stock", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := decode[[]map[string]any](t, resp)
	require.Len(t, items, 1)
	assert.EqualValues(t, 15, items[0]["stockIdeal"])
	assert.EqualValues(t, 12, items[0]["quantiteSuggeree"])
}

func TestHealthMetricsYRutaDesconocida(t *testing.T) {
	env := buildTestApp(t, seedArticle(1, 10))

	resp := env.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode[map[string]string](t, resp)["status"])
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	env.do(t, http.MethodPost, "/mouvements", map[string]any{"articleId": 1, "type": "sortie", "quantite": 99})
	resp = env.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `gestion_stock_records_rejected_total{code="INSUFFICIENT_STOCK",kind="mouvement",op="create"} 1`)

	resp = env.do(t, http.MethodGet, "/inconnu", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Route non trouvée", decode[dto.ErrorResponse](t, resp).Error)
}

func TestCORS_Preflight(t *testing.T) {
	env := buildTestApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/bons", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)

	assert.Contains(t, []int{http.StatusOK, http.StatusNoContent}, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "DELETE")
}
