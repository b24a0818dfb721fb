package http

import (
	"errors"

	"github.com/Soubahou/gestion-stock-atlas/internal/application/dto"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// respondError traduce un error de dominio a {error, code, ...extra} con su status.
func respondError(c *fiber.Ctx, err error) error {
	body := dto.ErrorResponse{Error: err.Error(), Code: domain.ErrorCode(err)}

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		body.Field = vErr.Field
	}
	var stockErr *domain.InsufficientStockError
	if errors.As(err, &stockErr) {
		available := stockErr.Available
		body.Article = stockErr.Name
		body.StockDisponible = &available
	}

	status := fiber.StatusBadRequest
	switch body.Code {
	case domain.CodeNotFound:
		status = fiber.StatusNotFound
	case domain.CodeInternal:
		status = fiber.StatusInternalServerError
		body.Error = "Erreur serveur"
	}
	return c.Status(status).JSON(body)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: "Corps de requête invalide",
		Code:  domain.CodeValidation,
	})
}

// paramID lee :id; un id no numérico equivale a un recurso inexistente.
func paramID(c *fiber.Ctx, resource string) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, &domain.NotFoundError{Resource: resource}
	}
	return int64(id), nil
}
