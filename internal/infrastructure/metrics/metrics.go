// Package metrics expone contadores Prometheus de bons, mouvements y artículos.
package metrics

import (
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gestion_stock"

// Metrics implementa inventory.Recorder y usecase.ArticleGauge.
type Metrics struct {
	created  *prometheus.CounterVec
	lines    *prometheus.CounterVec
	deleted  *prometheus.CounterVec
	rejected *prometheus.CounterVec
	articles prometheus.Gauge
}

// New registra los colectores en reg (prometheus.DefaultRegisterer en producción).
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_created_total",
			Help:      "Bons y mouvements creados, por tipo y sentido.",
		}, []string{"kind", "direction"}),
		lines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "record_lines_total",
			Help:      "Líneas de stock aplicadas.",
		}, []string{"kind", "direction"}),
		deleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_deleted_total",
			Help:      "Bons y mouvements eliminados (anulados).",
		}, []string{"kind", "direction"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_rejected_total",
			Help:      "Operaciones rechazadas, por código de error.",
		}, []string{"kind", "op", "code"}),
		articles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "articles",
			Help:      "Número de artículos en el inventario.",
		}),
	}
	reg.MustRegister(m.created, m.lines, m.deleted, m.rejected, m.articles)
	return m
}

func (m *Metrics) RecordCreated(kind string, dir entity.Direction, lines int) {
	m.created.WithLabelValues(kind, dir.String()).Inc()
	m.lines.WithLabelValues(kind, dir.String()).Add(float64(lines))
}

func (m *Metrics) RecordDeleted(kind string, dir entity.Direction) {
	m.deleted.WithLabelValues(kind, dir.String()).Inc()
}

func (m *Metrics) RecordRejected(kind, op, code string) {
	m.rejected.WithLabelValues(kind, op, code).Inc()
}

// SetArticleCount actualiza el gauge de artículos.
func (m *Metrics) SetArticleCount(n int) {
	m.articles.Set(float64(n))
}
