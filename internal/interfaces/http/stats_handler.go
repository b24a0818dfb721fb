package http

import (
	"github.com/Soubahou/gestion-stock-atlas/internal/application/inventory"
	"github.com/gofiber/fiber/v2"
)

// StatsHandler endpoints del dashboard.
type StatsHandler struct {
	uc *inventory.StockReportUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *inventory.StockReportUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Summary godoc
// @Summary      Indicadores del dashboard
// @Tags         stats
// @Produce      json
// @Success      200  {object}  dto.StockSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /stats [get]
func (h *StatsHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Artículos en alerta con cantidad sugerida de pedido
// @Tags         stats
// @Produce      json
// @Success      200  {array}   dto.LowStockDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /stats/low-stock [get]
func (h *StatsHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
