package inventory

import (
	"strings"
	"time"

	"github.com/Soubahou/gestion-stock-atlas/internal/domain"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
)

// normalizeDate acepta YYYY-MM-DD o RFC 3339; vacío = hoy.
func normalizeDate(raw string, now time.Time) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.Format(entity.DateLayout), nil
	}
	if _, err := time.Parse(entity.DateLayout, raw); err == nil {
		return raw, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format(entity.DateLayout), nil
	}
	return "", domain.Invalid("date", "Date invalide : "+raw)
}
