package entity

// Nombres de secuencia de IDs dentro del snapshot.
const (
	SeqArticles   = "articles"
	SeqBons       = "bons"
	SeqMouvements = "mouvements"
)

// Snapshot es el documento persistido completo: ledger, registros de stock y contadores.
// Se lee y se reescribe entero en cada operación de escritura.
type Snapshot struct {
	Articles   []*Article       `json:"articles"`
	Bons       []*Bon           `json:"bons"`
	Mouvements []*Mouvement     `json:"mouvements"`
	Counters   map[string]int   `json:"counters"`
	Sequences  map[string]int64 `json:"sequences,omitempty"`
}

// NewSnapshot devuelve el estado inicial vacío (pero válido).
func NewSnapshot() *Snapshot {
	s := &Snapshot{}
	s.Normalize()
	return s
}

// Normalize reemplaza colecciones nil por vacías y garantiza los contadores por tipo de bon.
// Necesario para documentos antiguos que no traen mouvements ni sequences.
func (s *Snapshot) Normalize() {
	if s.Articles == nil {
		s.Articles = []*Article{}
	}
	if s.Bons == nil {
		s.Bons = []*Bon{}
	}
	if s.Mouvements == nil {
		s.Mouvements = []*Mouvement{}
	}
	if s.Counters == nil {
		s.Counters = map[string]int{}
	}
	for _, t := range []string{BonTypeEntree, BonTypeSortie} {
		if _, ok := s.Counters[t]; !ok {
			s.Counters[t] = 0
		}
	}
	if s.Sequences == nil {
		s.Sequences = map[string]int64{}
	}
	for _, b := range s.Bons {
		if b.Articles == nil {
			b.Articles = []Line{}
		}
	}
}
