package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedirectDuration tracks the latency of the tracking redirect.
	RedirectDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "afftrack_redirect_duration_seconds",
			Help: "Duration of tracking redirects in seconds",
			Buckets: []float64{
				0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5,
			},
		},
		[]string{"status"}, // success, not_found or failed
	)

	// ClicksRecorded counts recorded clicks by link kind and uniqueness.
	ClicksRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "afftrack_clicks_recorded_total",
			Help: "Clicks recorded through tracking links",
		},
		[]string{"kind", "unique"},
	)

	// ConversionsRecorded counts conversion postbacks by outcome.
	ConversionsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "afftrack_conversions_recorded_total",
			Help: "Conversion postbacks by result",
		},
		[]string{"result"}, // recorded, duplicate or rejected
	)

	// PayoutTransitions counts payout status changes.
	PayoutTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "afftrack_payout_transitions_total",
			Help: "Payout status transitions by target state",
		},
		[]string{"to"},
	)
)

// RecordRedirect records one redirect observation.
func RecordRedirect(status string, seconds float64) {
	RedirectDuration.WithLabelValues(status).Observe(seconds)
}

// RecordClick counts a click.
func RecordClick(kind string, unique bool) {
	label := "false"
	if unique {
		label = "true"
	}
	ClicksRecorded.WithLabelValues(kind, label).Inc()
}

// RecordConversion counts a conversion postback outcome.
func RecordConversion(result string) {
	ConversionsRecorded.WithLabelValues(result).Inc()
}

// RecordPayoutTransition counts a payout moving to a new status.
func RecordPayoutTransition(to string) {
	PayoutTransitions.WithLabelValues(to).Inc()
}
