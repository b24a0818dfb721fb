package entity

import "github.com/shopspring/decimal"

// DefaultUnit unidad asignada cuando el artículo se crea sin "unite".
const DefaultUnit = "pièce"

// DateLayout formato de createdAt de artículos y de la fecha de bons/mouvements.
const DateLayout = "2006-01-02"

// Article representa un artículo del stock (entrada del ledger).
// Quantity nunca es negativa: solo la modifican los bons y mouvements.
type Article struct {
	ID           int64           `json:"id"`
	Reference    string          `json:"reference"`
	Name         string          `json:"nom"`
	Category     string          `json:"categorie"`
	Quantity     int             `json:"quantite"`
	Unit         string          `json:"unite"`
	MinThreshold int             `json:"seuilMin"`
	Location     string          `json:"emplacement"`
	Supplier     string          `json:"fournisseur"`
	UnitPrice    decimal.Decimal `json:"prixUnitaire"`
	CreatedAt    string          `json:"createdAt"`
}

// BelowThreshold indica alerta de stock (cantidad en o bajo el umbral mínimo).
func (a *Article) BelowThreshold() bool {
	return a.Quantity <= a.MinThreshold
}

// StockValue valor del stock a precio unitario.
func (a *Article) StockValue() decimal.Decimal {
	return a.UnitPrice.Mul(decimal.NewFromInt(int64(a.Quantity)))
}

// ArticlePatch campos opcionales para actualizar un artículo.
// La cantidad no forma parte del patch: se maneja vía bons y mouvements.
type ArticlePatch struct {
	Reference    *string
	Name         *string
	Category     *string
	Unit         *string
	MinThreshold *int
	Location     *string
	Supplier     *string
	UnitPrice    *decimal.Decimal
}
