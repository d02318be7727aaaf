package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	responseTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "response_time",
			Help:    "http response time.",
			Buckets: []float64{0.005, 0.05, 0.5, 1, 5, 10, 30},
		},
	)

	totalHttpRequestsToUri = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "total_http_requests_to_uri", Help: "http requests to uri"},
		[]string{"code", "uri", "method"},
	)

	totalHttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "total_http_requests", Help: "http requests by code, and method"},
		[]string{"code", "method"},
	)

	rosterChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "activity_roster_changes_total", Help: "signup and unregister attempts by outcome"},
		[]string{"activity", "operation", "outcome"},
	)

	participants = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "activity_participants", Help: "current roster size per activity"},
		[]string{"activity"},
	)
)

func init() {
	prometheus.MustRegister(
		responseTime,
		totalHttpRequestsToUri,
		totalHttpRequests,
		rosterChanges,
		participants,
	)
}
