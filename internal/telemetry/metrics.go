// Package telemetry defines the Prometheus metrics of pathdiv.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/pathdiv/diverse"
)

// Search outcomes used as the "outcome" label.
const (
	OutcomeFound  = "found"
	OutcomeNoPath = "no_path"
)

var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathdiv_searches_total",
			Help: "Bidirectional searches run, by outcome",
		},
		[]string{"outcome"},
	)

	SearchPops = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pathdiv_search_pops",
			Help:    "Frontier entries popped per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)

	PathsExtracted = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pathdiv_paths_extracted",
			Help:    "Unique paths returned per diversification request",
			Buckets: prometheus.LinearBuckets(0, 1, 11),
		},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pathdiv_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathdiv_errors_total",
			Help: "API errors by code",
		},
		[]string{"code"},
	)

	SessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pathdiv_sessions_active",
			Help: "Sessions currently holding visit counters",
		},
	)
)

func init() {
	prometheus.MustRegister(
		SearchesTotal, SearchPops, PathsExtracted,
		RequestDuration, ErrorsTotal, SessionsActive,
	)
}

// SearchObserver feeds diverse.SearchStats into the search metrics.
type SearchObserver struct{}

var _ diverse.Observer = SearchObserver{}

// ObserveSearch implements diverse.Observer.
func (SearchObserver) ObserveSearch(st diverse.SearchStats) {
	outcome := OutcomeNoPath
	if st.Found {
		outcome = OutcomeFound
	}
	SearchesTotal.WithLabelValues(outcome).Inc()
	SearchPops.Observe(float64(st.Pops))
}

// Middleware records the duration of every HTTP request.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath() // route pattern keeps label cardinality bounded
		if path == "" {
			path = "unknown"
		}
		RequestDuration.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
