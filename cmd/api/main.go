package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Soubahou/gestion-stock-atlas/internal/application/dto"
	"github.com/Soubahou/gestion-stock-atlas/internal/application/inventory"
	"github.com/Soubahou/gestion-stock-atlas/internal/application/usecase"
	"github.com/Soubahou/gestion-stock-atlas/internal/infrastructure/metrics"
	"github.com/Soubahou/gestion-stock-atlas/internal/infrastructure/snapshot"
	"github.com/Soubahou/gestion-stock-atlas/internal/infrastructure/xlsx"
	httpRouter "github.com/Soubahou/gestion-stock-atlas/internal/interfaces/http"
	"github.com/Soubahou/gestion-stock-atlas/pkg/config"
	"github.com/Soubahou/gestion-stock-atlas/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	// prixUnitaire viaja como número JSON, igual que en el cliente web.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	store, closeStore, err := snapshot.OpenStore(ctx, cfg, log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén de stock")
	}
	defer closeStore()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.New(reg)

	zl := log.Zerolog()
	txRunner := snapshot.NewTxRunner(store, zl)
	articleUC := usecase.NewArticleUseCase(txRunner, nil, zl, xlsx.NewExporter(), recorder)
	voucherUC := inventory.NewVoucherUseCase(txRunner, nil, zl, recorder)
	movementUC := inventory.NewMovementUseCase(txRunner, nil, zl, recorder)
	reportUC := inventory.NewStockReportUseCase(txRunner)

	// Verifica el almacén al arrancar e inicializa el gauge de artículos.
	if articles, err := articleUC.List(ctx, dto.ArticleFilter{}); err != nil {
		log.Fatal().Err(err).Msg("leer snapshot inicial")
	} else {
		recorder.SetArticleCount(len(articles))
		log.Info().Int("articles", len(articles)).Msg("snapshot cargado")
	}

	appCfg := httpRouter.AppConfig{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		SwaggerFile: cfg.HTTP.SwaggerFile,
		Log:         zl,
	}
	if cfg.Metrics.Enabled {
		appCfg.Metrics = reg
	}
	app := httpRouter.NewApp(appCfg, httpRouter.RouterDeps{
		ArticleUC:  articleUC,
		VoucherUC:  voucherUC,
		MovementUC: movementUC,
		ReportUC:   reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
