package inventory

import (
	"context"
	"math"
	"sort"

	"github.com/Soubahou/gestion-stock-atlas/internal/application/dto"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// idealStockFactor stock ideal = seuilMin * 1.5.
var idealStockFactor = decimal.NewFromFloat(1.5)

var maxQuantity = decimal.NewFromInt(math.MaxInt)

// StockReportUseCase genera el resumen del dashboard y la lista de reposición.
// Solo lectura: nunca guarda el snapshot.
type StockReportUseCase struct {
	tx TxRunner
}

// NewStockReportUseCase construye el caso de uso.
func NewStockReportUseCase(tx TxRunner) *StockReportUseCase {
	return &StockReportUseCase{tx: tx}
}

// Summary calcula los indicadores del dashboard.
func (uc *StockReportUseCase) Summary(ctx context.Context) (*dto.StockSummaryDTO, error) {
	out := &dto.StockSummaryDTO{TotalUnits: decimal.Zero, StockValue: decimal.Zero, Categories: map[string]int{}}
	err := uc.tx.View(ctx, func(snap *entity.Snapshot) error {
		out.ArticleCount = len(snap.Articles)
		for _, a := range snap.Articles {
			out.TotalUnits = out.TotalUnits.Add(decimal.NewFromInt(int64(a.Quantity)))
			out.StockValue = out.StockValue.Add(a.StockValue())
			if a.BelowThreshold() {
				out.LowStockCount++
			}
			if a.Quantity == 0 {
				out.OutOfStockCount++
			}
			out.Categories[a.Category]++
		}
		for _, b := range snap.Bons {
			if b.Direction() == entity.DirectionExit {
				out.BonsSortie++
			} else {
				out.BonsEntree++
			}
		}
		for _, m := range snap.Mouvements {
			if m.Direction() == entity.DirectionExit {
				out.MouvementsOut++
			} else {
				out.MouvementsIn++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LowStock devuelve los artículos en alerta (quantite <= seuilMin) con la cantidad sugerida
// de pedido, ordenados por déficit relativo al umbral y luego por costo estimado.
func (uc *StockReportUseCase) LowStock(ctx context.Context) ([]dto.LowStockDTO, error) {
	var items []dto.LowStockDTO
	err := uc.tx.View(ctx, func(snap *entity.Snapshot) error {
		for _, a := range snap.Articles {
			if !a.BelowThreshold() {
				continue
			}
			ideal := idealStock(a.MinThreshold)
			suggested := max(ideal-a.Quantity, 0)
			items = append(items, dto.LowStockDTO{
				ArticleID:          a.ID,
				Reference:          a.Reference,
				Name:               a.Name,
				Quantity:           a.Quantity,
				MinThreshold:       a.MinThreshold,
				IdealStock:         ideal,
				SuggestedOrderQty:  suggested,
				EstimatedOrderCost: a.UnitPrice.Mul(decimal.NewFromInt(int64(suggested))),
				Supplier:           a.Supplier,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		return []dto.LowStockDTO{}, nil
	}

	// Primero los agotados, luego el mayor déficit frente al umbral, luego el mayor costo.
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if (a.Quantity == 0) != (b.Quantity == 0) {
			return a.Quantity == 0
		}
		defA, defB := a.MinThreshold-a.Quantity, b.MinThreshold-b.Quantity
		if defA != defB {
			return defA > defB
		}
		return a.EstimatedOrderCost.GreaterThan(b.EstimatedOrderCost)
	})
	for i := range items {
		items[i].Priority = i + 1
	}
	return items, nil
}

// idealStock ceil(threshold * 1.5), acotado a math.MaxInt.
func idealStock(threshold int) int {
	ideal := decimal.NewFromInt(int64(threshold)).Mul(idealStockFactor).Ceil()
	if ideal.GreaterThan(maxQuantity) {
		return math.MaxInt
	}
	return int(ideal.IntPart())
}
