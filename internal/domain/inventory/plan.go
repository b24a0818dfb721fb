package inventory

import (
	"fmt"
	"math"

	"github.com/Soubahou/gestion-stock-atlas/internal/domain"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
)

// Plan conjunto de deltas ya validados contra el ledger. Commit no puede fallar:
// toda validación ocurre al construir el plan, antes de cualquier mutación.
type Plan struct {
	deltas  []delta
	skipped []int64
}

type delta struct {
	articleID int64
	amount    int
}

// Skipped IDs de artículos inexistentes que la anulación ignoró.
func (p *Plan) Skipped() []int64 { return p.skipped }

// Commit aplica los deltas al ledger.
func (p *Plan) Commit(l *Ledger) {
	for _, d := range p.deltas {
		l.AdjustQuantity(d.articleID, d.amount)
	}
}

// ValidateLines comprueba la forma de las líneas: al menos una, artículo y cantidad > 0.
func ValidateLines(lines []entity.Line) error {
	if len(lines) == 0 {
		return domain.Invalid("articles", "Au moins un article est requis")
	}
	for _, line := range lines {
		if line.ArticleID <= 0 {
			return domain.Invalid("articleId", "Article requis")
		}
		if line.Quantity <= 0 {
			return domain.Invalid("quantity", "La quantité doit être supérieure à 0")
		}
	}
	return nil
}

// PlanApply valida la creación de un registro: forma, existencia de cada artículo y,
// para salidas, que la cantidad pedida (sumada por artículo) no supere la disponible.
// Para entradas, que la suma no desborde int. Si una sola línea falla no se aplica ninguna.
func PlanApply(l *Ledger, dir entity.Direction, lines []entity.Line) (*Plan, error) {
	if dir != entity.DirectionEntry && dir != entity.DirectionExit {
		return nil, domain.Invalid("type", "Type requis")
	}
	if err := ValidateLines(lines); err != nil {
		return nil, err
	}
	// pending <= a.Quantity en salidas y pending <= MaxInt-a.Quantity en entradas.
	pending := make(map[int64]int, len(lines))
	plan := &Plan{deltas: make([]delta, 0, len(lines))}
	for _, line := range lines {
		a, err := l.Get(line.ArticleID)
		if err != nil {
			return nil, err
		}
		id := line.ArticleID
		if dir == entity.DirectionExit {
			if line.Quantity > a.Quantity-pending[id] {
				return nil, &domain.InsufficientStockError{
					ArticleID: a.ID,
					Name:      a.Name,
					Available: a.Quantity,
					Requested: saturatingAdd(pending[id], line.Quantity),
				}
			}
		} else if line.Quantity > headroom(a.Quantity, pending[id]) {
			return nil, tooLarge(a)
		}
		pending[id] += line.Quantity
		plan.deltas = append(plan.deltas, delta{articleID: id, amount: dir.Sign() * line.Quantity})
	}
	return plan, nil
}

// PlanReverse valida el borrado de un registro. Anular una entrada resta lo que se sumó,
// así que exige stock suficiente por artículo; anular una salida devuelve stock y solo
// exige que la suma no desborde. Las líneas cuyo artículo ya no existe se omiten para
// que el registro pueda borrarse igual.
func PlanReverse(l *Ledger, dir entity.Direction, lines []entity.Line) (*Plan, error) {
	pending := make(map[int64]int, len(lines))
	plan := &Plan{deltas: make([]delta, 0, len(lines))}
	for _, line := range lines {
		a, err := l.Get(line.ArticleID)
		if err != nil {
			plan.skipped = append(plan.skipped, line.ArticleID)
			continue
		}
		id := line.ArticleID
		if dir == entity.DirectionEntry {
			if line.Quantity > a.Quantity-pending[id] {
				return nil, &domain.InsufficientStockError{
					ArticleID: a.ID,
					Name:      a.Name,
					Available: a.Quantity,
					Requested: saturatingAdd(pending[id], line.Quantity),
					Reversal:  true,
				}
			}
		} else if line.Quantity > headroom(a.Quantity, pending[id]) {
			return nil, tooLarge(a)
		}
		pending[id] += line.Quantity
		plan.deltas = append(plan.deltas, delta{articleID: id, amount: -dir.Sign() * line.Quantity})
	}
	return plan, nil
}

// headroom cuánto puede crecer qty+pending sin pasar de math.MaxInt (ambos >= 0).
func headroom(qty, pending int) int {
	return math.MaxInt - qty - pending
}

func saturatingAdd(a, b int) int {
	if b > math.MaxInt-a {
		return math.MaxInt
	}
	return a + b
}

func tooLarge(a *entity.Article) error {
	return domain.Invalid("quantity", fmt.Sprintf("Quantité trop élevée pour %s", a.Name))
}
