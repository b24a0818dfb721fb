package http

import (
	"errors"
	"os"
	"time"

	"github.com/Soubahou/gestion-stock-atlas/internal/application/dto"
	"github.com/Soubahou/gestion-stock-atlas/internal/application/inventory"
	"github.com/Soubahou/gestion-stock-atlas/internal/application/usecase"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ArticleUC  *usecase.ArticleUseCase
	VoucherUC  *inventory.VoucherUseCase
	MovementUC *inventory.MovementUseCase
	ReportUC   *inventory.StockReportUseCase
}

// AppConfig opciones de la aplicación Fiber.
type AppConfig struct {
	Name        string
	CORSOrigins string
	SwaggerFile string              // vacío o inexistente = sin /docs
	Metrics     prometheus.Gatherer // nil = sin /metrics
	Log         zerolog.Logger
}

// NewApp construye la aplicación con middlewares, /health, /metrics, /docs y las rutas de la API.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(RequestLogger(cfg.Log))

	origins := cfg.CORSOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type," + HeaderRequestID,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.SwaggerFile != "" {
		if _, err := os.Stat(cfg.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.SwaggerFile,
				Path:     "docs",
				Title:    "Gestion de stock API",
			}))
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Metrics, promhttp.HandlerOpts{})))
	}

	Router(app, deps)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Route non trouvée", Code: domain.CodeNotFound})
	})
	return app
}

// Router registra las rutas de la API.
func Router(app fiber.Router, deps RouterDeps) {
	articles := app.Group("/articles")
	articleHandler := NewArticleHandler(deps.ArticleUC)
	articles.Get("/", articleHandler.List)
	articles.Get("/export.xlsx", articleHandler.Export)
	articles.Post("/", articleHandler.Create)
	articles.Get("/:id", articleHandler.GetByID)
	articles.Put("/:id", articleHandler.Update)
	articles.Delete("/:id", articleHandler.Delete)

	bons := app.Group("/bons")
	voucherHandler := NewVoucherHandler(deps.VoucherUC)
	bons.Get("/", voucherHandler.List)
	bons.Post("/", voucherHandler.Create)
	bons.Get("/:id", voucherHandler.GetByID)
	bons.Delete("/:id", voucherHandler.Delete)

	mouvements := app.Group("/mouvements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	mouvements.Get("/", movementHandler.List)
	mouvements.Post("/", movementHandler.Create)
	mouvements.Get("/:id", movementHandler.GetByID)
	mouvements.Delete("/:id", movementHandler.Delete)

	stats := app.Group("/stats")
	statsHandler := NewStatsHandler(deps.ReportUC)
	stats.Get("/", statsHandler.Summary)
	stats.Get("/low-stock", statsHandler.LowStock)
}

// errorHandler respuesta JSON para errores de Fiber (405, cuerpo demasiado grande, panics).
func errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	body := dto.ErrorResponse{Error: "Erreur serveur", Code: domain.CodeInternal}
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		status = fe.Code
		body = dto.ErrorResponse{Error: fe.Message, Code: domain.CodeValidation}
		if fe.Code == fiber.StatusNotFound {
			body.Code = domain.CodeNotFound
		}
	}
	return c.Status(status).JSON(body)
}
