package telemetry_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathdiv/core"
	"github.com/katalvlaran/pathdiv/diverse"
	"github.com/katalvlaran/pathdiv/internal/telemetry"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSearchObserver(t *testing.T) {
	found := testutil.ToFloat64(telemetry.SearchesTotal.WithLabelValues(telemetry.OutcomeFound))
	missed := testutil.ToFloat64(telemetry.SearchesTotal.WithLabelValues(telemetry.OutcomeNoPath))

	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1, 1))
	require.NoError(t, g.AddVertex("Z"))

	_, err := diverse.FindPaths(g, "A", "B", 2, diverse.WithObserver(telemetry.SearchObserver{}))
	require.NoError(t, err)
	_, err = diverse.FindPaths(g, "A", "Z", 2, diverse.WithObserver(telemetry.SearchObserver{}))
	require.NoError(t, err)

	assert.Equal(t, found+2, testutil.ToFloat64(telemetry.SearchesTotal.WithLabelValues(telemetry.OutcomeFound)))
	assert.Equal(t, missed+1, testutil.ToFloat64(telemetry.SearchesTotal.WithLabelValues(telemetry.OutcomeNoPath)),
		"extraction stops at the first miss")
}

func TestMiddlewareAndHandler(t *testing.T) {
	r := gin.New()
	r.Use(telemetry.Middleware())
	r.GET("/ping/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(telemetry.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping/42", http.NoBody))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `pathdiv_http_request_duration_seconds_count{method="GET",path="/ping/:id",status="204"} 1`)
}
