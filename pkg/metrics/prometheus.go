package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	matchesParsed  prometheus.Counter
	matchesSkipped *prometheus.CounterVec
	eventsWritten  *prometheus.CounterVec
	rowsEmitted    prometheus.Counter
	errorsTotal    *prometheus.CounterVec
	lastPrediction *prometheus.GaugeVec
	latency        *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		matchesParsed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "cricpull_matches_parsed_total",
				Help: "Total number of raw match records parsed successfully",
			},
		),
		matchesSkipped: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cricpull_matches_skipped_total",
				Help: "Total number of raw match records skipped",
			},
			[]string{"reason"},
		),
		eventsWritten: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cricpull_ball_events_written_total",
				Help: "Total ball events written to a backend",
			},
			[]string{"backend"},
		),
		rowsEmitted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "cricpull_training_rows_emitted_total",
				Help: "Total training rows emitted by feature synthesis",
			},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cricpull_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastPrediction: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "cricpull_last_predicted_score",
				Help: "Last predicted final score per batting team",
			},
			[]string{"batting_team"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cricpull_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordMatchParsed records one successfully parsed match.
func (r *Recorder) RecordMatchParsed() {
	r.matchesParsed.Inc()
}

// RecordMatchSkipped records a skipped match by reason.
func (r *Recorder) RecordMatchSkipped(reason string) {
	r.matchesSkipped.WithLabelValues(reason).Inc()
}

// RecordEventsWritten records ball events written to a backend.
func (r *Recorder) RecordEventsWritten(backend string, n int) {
	r.eventsWritten.WithLabelValues(backend).Add(float64(n))
}

// RecordRowsEmitted records training rows emitted.
func (r *Recorder) RecordRowsEmitted(n int) {
	r.rowsEmitted.Add(float64(n))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLastPrediction records the last predicted score for a batting team.
func (r *Recorder) RecordLastPrediction(battingTeam string, score float64) {
	r.lastPrediction.WithLabelValues(battingTeam).Set(score)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
