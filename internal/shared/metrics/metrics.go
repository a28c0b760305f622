package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guide_http_requests_total",
			Help: "Total HTTP requests by route and status",
		},
		[]string{"route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "guide_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"route"},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guide_recommendations_total",
			Help: "Career recommendation runs by personality type",
		},
		[]string{"mbti"},
	)

	ResortMatches = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "guide_resort_matches",
			Help:    "Number of resorts returned per filter run",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13},
		},
		[]string{"mode"},
	)

	SymptomLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guide_symptom_lookups_total",
			Help: "Symptom lookups by symptom key",
		},
		[]string{"symptom"},
	)

	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guide_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"group"},
	)
)

// ObserveRequest records one finished HTTP request.
func ObserveRequest(route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
