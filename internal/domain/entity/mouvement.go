package entity

import "time"

// Tipos de mouvement.
const (
	MouvementTypeEntree = "entree"
	MouvementTypeSortie = "sortie"
)

// Mouvement representa una entrada o salida de un solo artículo.
type Mouvement struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"articleId"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantite"`
	Date      string    `json:"date"`
	Reason    string    `json:"motif"`
	User      string    `json:"utilisateur"`
	CreatedAt time.Time `json:"createdAt"`
}

var _ StockRecord = (*Mouvement)(nil)

func (m *Mouvement) RecordID() int64 { return m.ID }

func (m *Mouvement) Direction() Direction {
	if m.Type == MouvementTypeSortie {
		return DirectionExit
	}
	return DirectionEntry
}

func (m *Mouvement) StockLines() []Line {
	return []Line{{ArticleID: m.ArticleID, Quantity: m.Quantity}}
}
