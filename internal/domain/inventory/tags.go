package inventory

import (
	"strings"
	"unicode"

	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normaliza texto para comparaciones: sin acentos, sin mayúsculas, sin espacios extremos.
// "Entrée" y "ENTREE" quedan iguales.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		out = strings.TrimSpace(s)
	}
	return cases.Fold().String(out)
}

// TagSet par de etiquetas (entrada, salida) de un tipo de registro.
type TagSet struct {
	Entry string
	Exit  string
}

// Parse resuelve una etiqueta recibida a la canónica y su sentido.
func (t TagSet) Parse(tag string) (string, entity.Direction, bool) {
	switch Fold(tag) {
	case "":
		return "", 0, false
	case Fold(t.Entry):
		return t.Entry, entity.DirectionEntry, true
	case Fold(t.Exit):
		return t.Exit, entity.DirectionExit, true
	}
	return "", 0, false
}
