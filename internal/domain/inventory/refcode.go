package inventory

import (
	"fmt"

	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
)

// Prefijos de referencia de bons.
const (
	RefPrefixEntree = "BON-ENT"
	RefPrefixSortie = "BON-SOR"
)

// RefCode formatea la referencia visible de un bon: PREFIJO-NNNN.
func RefCode(bonType string, n int) string {
	prefix := RefPrefixEntree
	if bonType == entity.BonTypeSortie {
		prefix = RefPrefixSortie
	}
	return fmt.Sprintf("%s-%04d", prefix, n)
}

// NextRef incrementa el contador persistido del tipo y devuelve la nueva referencia.
// Solo debe llamarse cuando el bon se va a guardar de verdad.
func NextRef(snap *entity.Snapshot, bonType string) string {
	if snap.Counters == nil {
		snap.Counters = map[string]int{}
	}
	snap.Counters[bonType]++
	return RefCode(bonType, snap.Counters[bonType])
}
