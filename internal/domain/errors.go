package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// Los mensajes se devuelven tal cual al cliente, por eso van en francés.
var (
	ErrNotFound          = errors.New("ressource introuvable")
	ErrInvalidInput      = errors.New("données invalides")
	ErrConflict          = errors.New("conflit avec l'état actuel")
	ErrInsufficientStock = errors.New("stock insuffisant")
	ErrReferenced        = errors.New("article référencé par des mouvements")
	ErrPersistence       = errors.New("erreur serveur")
	ErrCorruptSnapshot   = errors.New("document de stock illisible")
)

// ValidationError indica un campo obligatorio ausente o mal formado.
type ValidationError struct {
	Field   string
	Message string
}

// Invalid construye un ValidationError.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NotFoundError indica que el artículo o el registro pedido no existe.
type NotFoundError struct {
	Resource string // "article", "bon", "mouvement"
	ID       int64
}

func (e *NotFoundError) Error() string {
	switch e.Resource {
	case "article":
		return "Article introuvable"
	case "bon":
		return "Bon non trouvé"
	case "mouvement":
		return "Mouvement non trouvé"
	}
	return ErrNotFound.Error()
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InsufficientStockError indica que una salida (o la anulación de una entrada)
// dejaría la cantidad del artículo por debajo de cero.
type InsufficientStockError struct {
	ArticleID int64
	Name      string
	Available int
	Requested int
	Reversal  bool // true: borrado de una entrada
}

func (e *InsufficientStockError) Error() string {
	if e.Reversal {
		return "Suppression impossible : stock insuffisant pour annulation"
	}
	return fmt.Sprintf("Stock insuffisant pour %s", e.Name)
}

// Unwrap: una anulación imposible es además un conflicto con el estado actual.
func (e *InsufficientStockError) Unwrap() []error {
	if e.Reversal {
		return []error{ErrInsufficientStock, ErrConflict}
	}
	return []error{ErrInsufficientStock}
}

// ReferenceError indica que el artículo sigue referenciado por bons o mouvements.
type ReferenceError struct {
	ArticleID int64
	Count     int
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("Suppression impossible : article utilisé dans %d mouvement(s)", e.Count)
}

func (e *ReferenceError) Unwrap() []error { return []error{ErrReferenced, ErrConflict} }

// Códigos estables para clientes y métricas.
const (
	CodeValidation        = "VALIDATION"
	CodeNotFound          = "NOT_FOUND"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeReversalConflict  = "REVERSAL_CONFLICT"
	CodeReferenced        = "REFERENCED"
	CodeConflict          = "CONFLICT"
	CodeInternal          = "INTERNAL"
)

// ErrorCode clasifica un error de dominio. El orden importa: una anulación
// imposible envuelve tanto ErrInsufficientStock como ErrConflict.
func ErrorCode(err error) string {
	var stockErr *InsufficientStockError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return CodeValidation
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.As(err, &stockErr) && stockErr.Reversal:
		return CodeReversalConflict
	case errors.Is(err, ErrInsufficientStock):
		return CodeInsufficientStock
	case errors.Is(err, ErrReferenced):
		return CodeReferenced
	case errors.Is(err, ErrConflict):
		return CodeConflict
	}
	return CodeInternal
}
