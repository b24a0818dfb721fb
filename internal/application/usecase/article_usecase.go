package usecase

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/Soubahou/gestion-stock-atlas/internal/application/dto"
	appinv "github.com/Soubahou/gestion-stock-atlas/internal/application/inventory"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/inventory"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ArticleExporter serializa el inventario (p. ej. a xlsx).
type ArticleExporter interface {
	ContentType() string
	Export(w io.Writer, articles []*entity.Article) error
}

// ArticleGauge recibe el número de artículos tras cada cambio.
type ArticleGauge interface {
	SetArticleCount(n int)
}

// ArticleUseCase casos de uso CRUD para artículos. La cantidad se maneja vía bons y mouvements.
type ArticleUseCase struct {
	tx       appinv.TxRunner
	ids      inventory.IDGenerator
	log      zerolog.Logger
	exporter ArticleExporter
	gauge    ArticleGauge
	now      func() time.Time
}

// NewArticleUseCase construye el caso de uso. exporter y gauge pueden ser nil.
func NewArticleUseCase(tx appinv.TxRunner, ids inventory.IDGenerator, log zerolog.Logger, exporter ArticleExporter, gauge ArticleGauge) *ArticleUseCase {
	if ids == nil {
		ids = inventory.SequenceIDGenerator{}
	}
	return &ArticleUseCase{
		tx:       tx,
		ids:      ids,
		log:      log.With().Str("kind", "article").Logger(),
		exporter: exporter,
		gauge:    gauge,
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *ArticleUseCase) WithClock(now func() time.Time) *ArticleUseCase {
	uc.now = now
	return uc
}

// Create crea un artículo. quantite es el stock inicial; los cambios posteriores pasan por bons y mouvements.
func (uc *ArticleUseCase) Create(ctx context.Context, in dto.CreateArticleRequest) (*entity.Article, error) {
	article := &entity.Article{
		Reference: in.Reference,
		Name:      in.Name,
		Category:  strings.TrimSpace(in.Category),
		Unit:      strings.TrimSpace(in.Unit),
		Location:  in.Location,
		Supplier:  in.Supplier,
		UnitPrice: decimal.Zero,
	}
	if in.Quantity != nil {
		article.Quantity = *in.Quantity
	}
	if in.MinThreshold != nil {
		article.MinThreshold = *in.MinThreshold
	}
	if in.UnitPrice != nil {
		article.UnitPrice = *in.UnitPrice
	}

	var duplicates, total int
	err := uc.tx.Run(ctx, func(snap *entity.Snapshot) error {
		ledger := inventory.NewLedger(snap, uc.ids, uc.now)
		duplicates = ledger.CountReference(strings.TrimSpace(in.Reference))
		if _, err := ledger.Create(article); err != nil {
			return err
		}
		total = len(snap.Articles)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if duplicates > 0 {
		uc.log.Warn().Str("reference", article.Reference).Int("existing", duplicates).Msg("referencia de artículo duplicada")
	}
	uc.setCount(total)
	uc.log.Info().Int64("id", article.ID).Str("reference", article.Reference).Msg("artículo creado")
	return article, nil
}

// GetByID obtiene un artículo por ID.
func (uc *ArticleUseCase) GetByID(ctx context.Context, id int64) (*entity.Article, error) {
	var found *entity.Article
	err := uc.tx.View(ctx, func(snap *entity.Snapshot) error {
		a, err := inventory.NewLedger(snap, uc.ids, uc.now).Get(id)
		found = a
		return err
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// List devuelve los artículos en orden de creación, filtrados.
func (uc *ArticleUseCase) List(ctx context.Context, f dto.ArticleFilter) ([]*entity.Article, error) {
	search := inventory.Fold(f.Search)
	category := inventory.Fold(f.Category)
	out := []*entity.Article{}
	err := uc.tx.View(ctx, func(snap *entity.Snapshot) error {
		for _, a := range snap.Articles {
			if category != "" && inventory.Fold(a.Category) != category {
				continue
			}
			if f.StockAlert && !a.BelowThreshold() {
				continue
			}
			if search != "" && !matches(a, search) {
				continue
			}
			out = append(out, a)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update actualiza un artículo. quantite no se modifica aquí.
func (uc *ArticleUseCase) Update(ctx context.Context, id int64, in dto.UpdateArticleRequest) (*entity.Article, error) {
	patch := entity.ArticlePatch{
		Reference:    in.Reference,
		Name:         in.Name,
		Category:     in.Category,
		Unit:         in.Unit,
		MinThreshold: in.MinThreshold,
		Location:     in.Location,
		Supplier:     in.Supplier,
		UnitPrice:    in.UnitPrice,
	}
	var updated *entity.Article
	err := uc.tx.Run(ctx, func(snap *entity.Snapshot) error {
		a, err := inventory.NewLedger(snap, uc.ids, uc.now).Update(id, patch)
		updated = a
		return err
	})
	if err != nil {
		return nil, err
	}
	if in.Quantity != nil && *in.Quantity != updated.Quantity {
		uc.log.Debug().Int64("id", id).Int("ignored_quantite", *in.Quantity).Msg("quantite ignorada en actualización")
	}
	uc.log.Info().Int64("id", id).Msg("artículo actualizado")
	return updated, nil
}

// Delete elimina un artículo que no esté referenciado por ningún bon ni mouvement.
func (uc *ArticleUseCase) Delete(ctx context.Context, id int64) error {
	var total int
	err := uc.tx.Run(ctx, func(snap *entity.Snapshot) error {
		if err := inventory.NewLedger(snap, uc.ids, uc.now).Delete(id); err != nil {
			return err
		}
		total = len(snap.Articles)
		return nil
	})
	if err != nil {
		uc.log.Warn().Err(err).Int64("id", id).Msg("eliminación de artículo rechazada")
		return err
	}
	uc.setCount(total)
	uc.log.Info().Int64("id", id).Msg("artículo eliminado")
	return nil
}

// ExportContentType MIME del export ("" si no hay exportador).
func (uc *ArticleUseCase) ExportContentType() string {
	if uc.exporter == nil {
		return ""
	}
	return uc.exporter.ContentType()
}

// Export escribe el inventario filtrado con el exportador configurado.
func (uc *ArticleUseCase) Export(ctx context.Context, w io.Writer, f dto.ArticleFilter) error {
	if uc.exporter == nil {
		return ErrExportUnavailable
	}
	articles, err := uc.List(ctx, f)
	if err != nil {
		return err
	}
	return uc.exporter.Export(w, articles)
}

func (uc *ArticleUseCase) setCount(n int) {
	if uc.gauge != nil {
		uc.gauge.SetArticleCount(n)
	}
}

func matches(a *entity.Article, search string) bool {
	return strings.Contains(inventory.Fold(a.Name), search) ||
		strings.Contains(inventory.Fold(a.Reference), search) ||
		strings.Contains(inventory.Fold(a.Category), search)
}
