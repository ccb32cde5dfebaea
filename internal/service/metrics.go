package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"curador/internal/suggestion"
)

// SuggestionMetrics counts ingestion suggestions by the parser strategy that produced them.
type SuggestionMetrics struct {
	total *prometheus.CounterVec
}

// NewSuggestionMetrics registers object_suggestions_total on reg.
func NewSuggestionMetrics(reg prometheus.Registerer) (*SuggestionMetrics, error) {
	m := &SuggestionMetrics{
		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "object_suggestions_total",
				Help: "Suggestions produced while ingesting object images, by parse source.",
			},
			[]string{"source"},
		),
	}
	if err := reg.Register(m.total); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *SuggestionMetrics) observe(src suggestion.Source) {
	if m == nil {
		return
	}
	m.total.WithLabelValues(src.String()).Inc()
}
