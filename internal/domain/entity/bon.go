package entity

import "time"

// Tipos de bon.
const (
	BonTypeEntree = "ENTREE"
	BonTypeSortie = "SORTIE"
)

// DefaultBonUser utilisateur asignado cuando el bon llega sin él.
const DefaultBonUser = "Admin"

// Bon representa un bon de entrada o salida con varias líneas de artículo.
type Bon struct {
	ID        int64     `json:"id"`
	Ref       string    `json:"ref"`
	Type      string    `json:"type"`
	Date      string    `json:"date"`
	Articles  []Line    `json:"articles"`
	Reason    string    `json:"motif"`
	User      string    `json:"utilisateur"`
	CreatedAt time.Time `json:"createdAt"`
}

var _ StockRecord = (*Bon)(nil)

func (b *Bon) RecordID() int64 { return b.ID }

func (b *Bon) Direction() Direction {
	if b.Type == BonTypeSortie {
		return DirectionExit
	}
	return DirectionEntry
}

func (b *Bon) StockLines() []Line { return b.Articles }
