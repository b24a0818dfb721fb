package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Soubahou/gestion-stock-atlas/internal/application/inventory"
	"github.com/Soubahou/gestion-stock-atlas/internal/application/usecase"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
	"github.com/Soubahou/gestion-stock-atlas/internal/infrastructure/memory"
	"github.com/Soubahou/gestion-stock-atlas/internal/infrastructure/metrics"
	"github.com/Soubahou/gestion-stock-atlas/internal/infrastructure/snapshot"
	"github.com/Soubahou/gestion-stock-atlas/internal/infrastructure/xlsx"
	apphttp "github.com/Soubahou/gestion-stock-atlas/internal/interfaces/http"
)

func TestMain(m *testing.M) {
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app   *fiber.App
	store *memory.Store
}

// buildTestApp arma la aplicación completa sobre un almacén en memoria.
func buildTestApp(t *testing.T, articles ...*entity.Article) *testEnv {
	t.Helper()
	snap := entity.NewSnapshot()
	snap.Articles = append(snap.Articles, articles...)
	store := memory.NewStoreWith(snap)

	log := zerolog.Nop()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	tx := snapshot.NewTxRunner(store, log)

	app := apphttp.NewApp(apphttp.AppConfig{
		Name:    "gestion-stock-test",
		Metrics: reg,
		Log:     log,
	}, apphttp.RouterDeps{
		ArticleUC:  usecase.NewArticleUseCase(tx, nil, log, xlsx.NewExporter(), m),
		VoucherUC:  inventory.NewVoucherUseCase(tx, nil, log, m),
		MovementUC: inventory.NewMovementUseCase(tx, nil, log, m),
		ReportUC:   inventory.NewStockReportUseCase(tx),
	})
	return &testEnv{app: app, store: store}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) qty(t *testing.T, id int64) int {
	t.Helper()
	snap, err := e.store.Load(t.Context())
	require.NoError(t, err)
	for _, a := range snap.Articles {
		if a.ID == id {
			return a.Quantity
		}
	}
	t.Fatalf("artículo %d no encontrado", id)
	return 0
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func seedArticle(id int64, qty int) *entity.Article {
	return &entity.Article{
		ID: id, Reference: "ART-00" + string(rune('0'+id)), Name: "Article " + string(rune('0'+id)),
		Category: "Quincaillerie", Quantity: qty, MinThreshold: 10, Unit: entity.DefaultUnit,
		UnitPrice: decimal.NewFromInt(2),
	}
}
