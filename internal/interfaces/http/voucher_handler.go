package http

import (
	"github.com/Soubahou/gestion-stock-atlas/internal/application/dto"
	"github.com/Soubahou/gestion-stock-atlas/internal/application/inventory"
	"github.com/gofiber/fiber/v2"
)

// VoucherHandler maneja los bons de entrada y salida.
type VoucherHandler struct {
	uc *inventory.VoucherUseCase
}

// NewVoucherHandler construye el handler.
func NewVoucherHandler(uc *inventory.VoucherUseCase) *VoucherHandler {
	return &VoucherHandler{uc: uc}
}

// List godoc
// @Summary      Listar bons (más reciente primero)
// @Tags         bons
// @Produce      json
// @Param        type  query  string  false  "ENTREE | SORTIE"
// @Success      200   {array}   entity.Bon
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /bons [get]
func (h *VoucherHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener bon por ID
// @Tags         bons
// @Produce      json
// @Param        id   path  int  true  "ID del bon"
// @Success      200  {object}  entity.Bon
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /bons/{id} [get]
func (h *VoucherHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "bon")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar bon
// @Description  Valida todas las líneas antes de tocar el stock; una salida sin stock suficiente
// @Description  rechaza el bon completo con stockDisponible.
// @Tags         bons
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBonRequest  true  "type, date, articles[{articleId, quantity}], motif, utilisateur"
// @Success      201   {object}  entity.Bon
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /bons [post]
func (h *VoucherHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBonRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Anular bon
// @Tags         bons
// @Produce      json
// @Param        id   path  int  true  "ID del bon"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse  "La anulación dejaría stock negativo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /bons/{id} [delete]
func (h *VoucherHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "bon")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Bon supprimé avec succès"})
}
