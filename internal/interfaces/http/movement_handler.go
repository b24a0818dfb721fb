package http

import (
	"strconv"

	"github.com/Soubahou/gestion-stock-atlas/internal/application/dto"
	"github.com/Soubahou/gestion-stock-atlas/internal/application/inventory"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// MovementHandler maneja los mouvements de un solo artículo.
type MovementHandler struct {
	uc *inventory.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List godoc
// @Summary      Listar mouvements (más reciente primero)
// @Tags         mouvements
// @Produce      json
// @Param        type       query  string  false  "entree | sortie"
// @Param        articleId  query  int     false  "Filtrar por artículo"
// @Success      200  {array}   entity.Mouvement
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /mouvements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	f := dto.MouvementFilter{Type: c.Query("type")}
	if raw := c.Query("articleId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return respondError(c, domain.Invalid("articleId", "articleId invalide"))
		}
		f.ArticleID = id
	}
	out, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener mouvement por ID
// @Tags         mouvements
// @Produce      json
// @Param        id   path  int  true  "ID del mouvement"
// @Success      200  {object}  entity.Mouvement
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /mouvements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "mouvement")
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
// @Summary      Registrar mouvement
// @Tags         mouvements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMouvementRequest  true  "articleId, type, quantite, date, motif, utilisateur"
// @Success      201   {object}  entity.Mouvement
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /mouvements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMouvementRequest
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
// @Summary      Anular mouvement
// @Tags         mouvements
// @Produce      json
// @Param        id   path  int  true  "ID del mouvement"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /mouvements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "mouvement")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Mouvement supprimé avec succès"})
}
