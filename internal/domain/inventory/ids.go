package inventory

import "github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"

// IDGenerator asigna IDs nuevos dentro de un snapshot.
type IDGenerator interface {
	NextID(snap *entity.Snapshot, seq string) int64
}

// SequenceIDGenerator usa una secuencia persistida por colección en el snapshot.
// La secuencia nunca queda por debajo del mayor ID existente, así los documentos
// antiguos con IDs por timestamp siguen siendo válidos.
type SequenceIDGenerator struct{}

var _ IDGenerator = SequenceIDGenerator{}

// NextID incrementa y devuelve la secuencia seq.
func (SequenceIDGenerator) NextID(snap *entity.Snapshot, seq string) int64 {
	if snap.Sequences == nil {
		snap.Sequences = map[string]int64{}
	}
	cur := snap.Sequences[seq]
	if m := maxID(snap, seq); m > cur {
		cur = m
	}
	cur++
	snap.Sequences[seq] = cur
	return cur
}

func maxID(snap *entity.Snapshot, seq string) int64 {
	var m int64
	switch seq {
	case entity.SeqArticles:
		for _, a := range snap.Articles {
			m = max(m, a.ID)
		}
	case entity.SeqBons:
		for _, b := range snap.Bons {
			m = max(m, b.ID)
		}
	case entity.SeqMouvements:
		for _, mv := range snap.Mouvements {
			m = max(m, mv.ID)
		}
	}
	return m
}
