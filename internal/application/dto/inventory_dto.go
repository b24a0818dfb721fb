package dto

import (
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateBonRequest body para POST /bons.
type CreateBonRequest struct {
	Type     string        `json:"type"`
	Date     string        `json:"date"`
	Articles []entity.Line `json:"articles"`
	Reason   string        `json:"motif"`
	User     string        `json:"utilisateur"`
}

// CreateMouvementRequest body para POST /mouvements.
type CreateMouvementRequest struct {
	ArticleID int64  `json:"articleId"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantite"`
	Date      string `json:"date"`
	Reason    string `json:"motif"`
	User      string `json:"utilisateur"`
}

// MouvementFilter filtros del listado de mouvements (cero = sin filtro).
type MouvementFilter struct {
	Type      string
	ArticleID int64
}

// StockSummaryDTO respuesta de GET /stats.
type StockSummaryDTO struct {
	ArticleCount    int             `json:"totalArticles"`
	TotalUnits      decimal.Decimal `json:"totalQuantite"` // sin tope de int
	StockValue      decimal.Decimal `json:"valeurStock"` // Σ quantite × prixUnitaire
	LowStockCount   int             `json:"articlesEnAlerte"`
	OutOfStockCount int             `json:"articlesEnRupture"`
	BonsEntree      int             `json:"bonsEntree"`
	BonsSortie      int             `json:"bonsSortie"`
	MouvementsIn    int             `json:"mouvementsEntree"`
	MouvementsOut   int             `json:"mouvementsSortie"`
	Categories      map[string]int  `json:"categories"` // artículos por categoría
}

// LowStockDTO sugerencia de reposición para un artículo en alerta.
type LowStockDTO struct {
	ArticleID          int64           `json:"articleId"`
	Reference          string          `json:"reference"`
	Name               string          `json:"nom"`
	Quantity           int             `json:"quantite"`
	MinThreshold       int             `json:"seuilMin"`
	IdealStock         int             `json:"stockIdeal"`       // ceil(seuilMin * 1.5)
	SuggestedOrderQty  int             `json:"quantiteSuggeree"` // stockIdeal - quantite
	EstimatedOrderCost decimal.Decimal `json:"coutEstime"`       // quantiteSuggeree * prixUnitaire
	Supplier           string          `json:"fournisseur"`
	Priority           int             `json:"priorite"` // 1 = más urgente
}
