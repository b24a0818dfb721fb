package http

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Soubahou/gestion-stock-atlas/internal/application/dto"
	"github.com/Soubahou/gestion-stock-atlas/internal/application/usecase"
	"github.com/gofiber/fiber/v2"
)

// ArticleHandler maneja las peticiones HTTP para artículos.
type ArticleHandler struct {
	uc *usecase.ArticleUseCase
}

// NewArticleHandler construye el handler.
func NewArticleHandler(uc *usecase.ArticleUseCase) *ArticleHandler {
	return &ArticleHandler{uc: uc}
}

// List godoc
// @Summary      Listar artículos
// @Tags         articles
// @Produce      json
// @Param        search      query  string  false  "Busca en nom, reference y categorie (sin acentos)"
// @Param        categorie   query  string  false  "Categoría exacta"
// @Param        stockAlert  query  bool    false  "Solo quantite <= seuilMin"
// @Success      200  {array}   entity.Article
// @Router       /articles [get]
func (h *ArticleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), articleFilter(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         articles
// @Produce      json
// @Param        id   path  int  true  "ID del artículo"
// @Success      200  {object}  entity.Article
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /articles/{id} [get]
func (h *ArticleHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "article")
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
// @Summary      Crear artículo
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateArticleRequest  true  "nom y reference obligatorios"
// @Success      201   {object}  entity.Article
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /articles [post]
func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateArticleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar artículo
// @Description  quantite se ignora: el stock cambia solo con bons y mouvements.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del artículo"
// @Param        body  body  dto.UpdateArticleRequest  true  "Campos a actualizar"
// @Success      200   {object}  entity.Article
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /articles/{id} [put]
func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "article")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateArticleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar artículo
// @Tags         articles
// @Produce      json
// @Param        id   path  int  true  "ID del artículo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse  "Referenciado por bons o mouvements"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /articles/{id} [delete]
func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "article")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Article supprimé avec succès"})
}

// Export godoc
// @Summary      Exportar inventario a Excel
// @Tags         articles
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        search      query  string  false  "Mismos filtros que el listado"
// @Param        categorie   query  string  false  "Categoría exacta"
// @Param        stockAlert  query  bool    false  "Solo artículos en alerta"
// @Success      200
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /articles/export.xlsx [get]
func (h *ArticleHandler) Export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.uc.Export(c.UserContext(), &buf, articleFilter(c)); err != nil {
		return respondError(c, err)
	}
	name := fmt.Sprintf("inventaire_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, h.uc.ExportContentType())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.Send(buf.Bytes())
}

func articleFilter(c *fiber.Ctx) dto.ArticleFilter {
	return dto.ArticleFilter{
		Search:     c.Query("search"),
		Category:   c.Query("categorie"),
		StockAlert: c.QueryBool("stockAlert", false),
	}
}
