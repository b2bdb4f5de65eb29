package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Placement tracks assessment activity for the /metrics endpoint.
type Placement struct {
	AttemptsSubmitted *prometheus.CounterVec
	Certifications    *prometheus.CounterVec
	Scores            *prometheus.HistogramVec
}

// NewPlacement registers placement metrics on the given registerer. Pass
// prometheus.DefaultRegisterer in production.
func NewPlacement(reg prometheus.Registerer) *Placement {
	factory := promauto.With(reg)
	return &Placement{
		AttemptsSubmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "placement_attempts_submitted_total",
			Help: "Placement test submissions by step.",
		}, []string{"step"}),
		Certifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "placement_certifications_total",
			Help: "Certification outcomes by level.",
		}, []string{"level"}),
		Scores: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "placement_score_percent",
			Help:    "Distribution of placement scores.",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		}, []string{"step"}),
	}
}

// ObserveAttempt records one completed submission.
func (p *Placement) ObserveAttempt(step int, score int, level string) {
	s := strconv.Itoa(step)
	p.AttemptsSubmitted.WithLabelValues(s).Inc()
	p.Certifications.WithLabelValues(level).Inc()
	p.Scores.WithLabelValues(s).Observe(float64(score))
}
