package dto

import "github.com/shopspring/decimal"

// CreateArticleRequest entrada para crear un artículo. nom y reference son obligatorios.
// El cliente web también envía id y createdAt; se ignoran.
type CreateArticleRequest struct {
	Reference    string           `json:"reference"`
	Name         string           `json:"nom"`
	Category     string           `json:"categorie"`
	Quantity     *int             `json:"quantite"`
	Unit         string           `json:"unite"`
	MinThreshold *int             `json:"seuilMin"`
	Location     string           `json:"emplacement"`
	Supplier     string           `json:"fournisseur"`
	UnitPrice    *decimal.Decimal `json:"prixUnitaire"`
}

// UpdateArticleRequest entrada parcial para actualizar un artículo.
// quantite se acepta en el cuerpo pero no se aplica: el stock se maneja vía bons y mouvements.
type UpdateArticleRequest struct {
	Reference    *string          `json:"reference"`
	Name         *string          `json:"nom"`
	Category     *string          `json:"categorie"`
	Quantity     *int             `json:"quantite"`
	Unit         *string          `json:"unite"`
	MinThreshold *int             `json:"seuilMin"`
	Location     *string          `json:"emplacement"`
	Supplier     *string          `json:"fournisseur"`
	UnitPrice    *decimal.Decimal `json:"prixUnitaire"`
}

// ArticleFilter filtros del listado de artículos.
type ArticleFilter struct {
	Search     string // nom, reference o categorie (sin acentos ni mayúsculas)
	Category   string
	StockAlert bool // solo quantite <= seuilMin
}
