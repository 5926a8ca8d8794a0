package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Métriques exposées sur /metrics. Le label path est la route gin
// (ex: /api/stats/years/:year), jamais l'URL brute : cardinalité bornée.
var (
	reqTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gescon",
			Name:      "http_requests_total",
			Help:      "Nombre de requêtes HTTP traitées.",
		},
		[]string{"path", "method", "status"},
	)
	reqLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gescon",
			Name:      "http_request_duration_seconds",
			Help:      "Latence des requêtes HTTP.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
	reqInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "gescon",
			Name:      "http_requests_in_flight",
			Help:      "Requêtes HTTP en cours de traitement.",
		},
	)
)

func init() { prometheus.MustRegister(reqTotal, reqLatency, reqInFlight) }

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqInFlight.Inc()
		c.Next()
		reqInFlight.Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		reqTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		reqLatency.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
