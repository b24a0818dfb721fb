package inventory

import (
	"strings"
	"time"

	"github.com/Soubahou/gestion-stock-atlas/internal/domain"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Ledger es la vista de artículos sobre un snapshot cargado: única fuente de verdad
// de la cantidad disponible por artículo. No persiste nada; el llamador guarda el snapshot.
type Ledger struct {
	snap *entity.Snapshot
	ids  IDGenerator
	now  func() time.Time
}

// NewLedger construye el ledger. now puede ser nil (time.Now).
func NewLedger(snap *entity.Snapshot, ids IDGenerator, now func() time.Time) *Ledger {
	if ids == nil {
		ids = SequenceIDGenerator{}
	}
	if now == nil {
		now = time.Now
	}
	return &Ledger{snap: snap, ids: ids, now: now}
}

// Get devuelve el artículo o un NotFoundError.
func (l *Ledger) Get(id int64) (*entity.Article, error) {
	if a := l.find(id); a != nil {
		return a, nil
	}
	return nil, &domain.NotFoundError{Resource: "article", ID: id}
}

// All devuelve los artículos en el orden almacenado.
func (l *Ledger) All() []*entity.Article {
	return l.snap.Articles
}

// Create valida, completa valores por defecto y agrega el artículo con un ID nuevo.
func (l *Ledger) Create(a *entity.Article) (*entity.Article, error) {
	a.Name = strings.TrimSpace(a.Name)
	a.Reference = strings.TrimSpace(a.Reference)
	if a.Name == "" || a.Reference == "" {
		return nil, domain.Invalid("nom", "Nom et référence requis")
	}
	if err := checkNonNegative(a.Quantity, a.MinThreshold, a.UnitPrice); err != nil {
		return nil, err
	}
	if a.Unit == "" {
		a.Unit = entity.DefaultUnit
	}
	a.ID = l.ids.NextID(l.snap, entity.SeqArticles)
	a.CreatedAt = l.now().Format(entity.DateLayout)
	l.snap.Articles = append(l.snap.Articles, a)
	return a, nil
}

// Update aplica los campos presentes del patch. ID, createdAt y cantidad se conservan.
func (l *Ledger) Update(id int64, p entity.ArticlePatch) (*entity.Article, error) {
	a, err := l.Get(id)
	if err != nil {
		return nil, err
	}
	next := *a
	if p.Reference != nil {
		next.Reference = strings.TrimSpace(*p.Reference)
	}
	if p.Name != nil {
		next.Name = strings.TrimSpace(*p.Name)
	}
	if next.Name == "" || next.Reference == "" {
		return nil, domain.Invalid("nom", "Nom et référence requis")
	}
	if p.Category != nil {
		next.Category = *p.Category
	}
	if p.Unit != nil && *p.Unit != "" {
		next.Unit = *p.Unit
	}
	if p.MinThreshold != nil {
		next.MinThreshold = *p.MinThreshold
	}
	if p.Location != nil {
		next.Location = *p.Location
	}
	if p.Supplier != nil {
		next.Supplier = *p.Supplier
	}
	if p.UnitPrice != nil {
		next.UnitPrice = *p.UnitPrice
	}
	if err := checkNonNegative(next.Quantity, next.MinThreshold, next.UnitPrice); err != nil {
		return nil, err
	}
	*a = next
	return a, nil
}

// Delete elimina el artículo si ningún bon ni mouvement lo referencia.
func (l *Ledger) Delete(id int64) error {
	if _, err := l.Get(id); err != nil {
		return err
	}
	if n := l.References(id); n > 0 {
		return &domain.ReferenceError{ArticleID: id, Count: n}
	}
	for i, a := range l.snap.Articles {
		if a.ID == id {
			l.snap.Articles = append(l.snap.Articles[:i], l.snap.Articles[i+1:]...)
			break
		}
	}
	return nil
}

// References cuenta los bons y mouvements que citan el artículo.
func (l *Ledger) References(id int64) int {
	n := 0
	for _, b := range l.snap.Bons {
		for _, line := range b.Articles {
			if line.ArticleID == id {
				n++
				break
			}
		}
	}
	for _, m := range l.snap.Mouvements {
		if m.ArticleID == id {
			n++
		}
	}
	return n
}

// CountReference número de artículos con la misma referencia (la unicidad es solo orientativa).
func (l *Ledger) CountReference(ref string) int {
	n := 0
	for _, a := range l.snap.Articles {
		if strings.EqualFold(a.Reference, ref) {
			n++
		}
	}
	return n
}

// AdjustQuantity suma delta a la cantidad sin revalidar. Uso exclusivo del procesador
// de bons/mouvements, que valida antes de mutar. Devuelve false si el artículo no existe.
func (l *Ledger) AdjustQuantity(id int64, delta int) bool {
	a := l.find(id)
	if a == nil {
		return false
	}
	a.Quantity += delta
	return true
}

func (l *Ledger) find(id int64) *entity.Article {
	for _, a := range l.snap.Articles {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func checkNonNegative(qty, threshold int, price decimal.Decimal) error {
	if qty < 0 {
		return domain.Invalid("quantite", "La quantité ne peut pas être négative")
	}
	if threshold < 0 {
		return domain.Invalid("seuilMin", "Le seuil ne peut pas être négatif")
	}
	if price.IsNegative() {
		return domain.Invalid("prixUnitaire", "Le prix ne peut pas être négatif")
	}
	return nil
}
