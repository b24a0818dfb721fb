package entity

// Direction sentido de un registro de stock.
type Direction int

const (
	DirectionEntry Direction = iota + 1 // entrada: suma
	DirectionExit                       // salida: resta
)

func (d Direction) String() string {
	switch d {
	case DirectionEntry:
		return "entry"
	case DirectionExit:
		return "exit"
	}
	return "unknown"
}

// Sign devuelve +1 para entradas y -1 para salidas.
func (d Direction) Sign() int {
	if d == DirectionExit {
		return -1
	}
	return 1
}

// Line una línea de artículo dentro de un registro de stock.
type Line struct {
	ArticleID int64 `json:"articleId"`
	Quantity  int   `json:"quantity"`
}

// StockRecord es cualquier registro cuya creación y borrado modifican el ledger
// (bons y mouvements comparten el mismo contrato).
type StockRecord interface {
	RecordID() int64
	Direction() Direction
	StockLines() []Line
}
