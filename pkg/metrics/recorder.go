package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Generation outcomes.
const (
	OutcomeModel    = "model"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

// Translation outcomes.
const (
	OutcomeTranslated = "translated"
	OutcomeSkipped    = "skipped"
)

// Recorder exposes the service counters. A nil *Recorder is a no-op.
type Recorder struct {
	registry    *prometheus.Registry
	generations *prometheus.CounterVec
	expansions  *prometheus.CounterVec
	translation *prometheus.CounterVec
	tokens      *prometheus.CounterVec
}

// NewRecorder registers the counters on a dedicated registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		generations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wellness_tip_generations_total",
			Help: "Tip batch generations by outcome",
		}, []string{"outcome"}),
		expansions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wellness_tip_expansions_total",
			Help: "Tip detail expansions by outcome",
		}, []string{"outcome"}),
		translation: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wellness_tip_translations_total",
			Help: "Per tip translation results",
		}, []string{"outcome"}),
		tokens: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wellness_llm_tokens_total",
			Help: "Tokens reported by the generation provider",
		}, []string{"kind"}),
	}
}

// Registry returns the registry backing the /metrics endpoint.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

func (r *Recorder) ObserveGeneration(outcome string) {
	if r == nil {
		return
	}
	r.generations.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ObserveExpansion(outcome string) {
	if r == nil {
		return
	}
	r.expansions.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ObserveTranslation(outcome string) {
	if r == nil {
		return
	}
	r.translation.WithLabelValues(outcome).Inc()
}
