package monitor

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCodecMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCodecMetrics(reg)

	m.Observe(DirectionEncode, time.Now(), false, "")
	m.Observe(DirectionDecode, time.Now(), true, "length_mismatch")
	m.Observe(DirectionDecode, time.Now(), true, "length_mismatch")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues(DirectionEncode, ResultSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues(DirectionDecode, ResultError)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ErrorsTotal.WithLabelValues(DirectionDecode, "length_mismatch")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Duration))

	var nilMetrics *CodecMetrics
	assert.NotPanics(t, func() { nilMetrics.Observe(DirectionEncode, time.Now(), false, "") })
}

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	Init()
	Init()

	r := gin.New()
	r.Use(PrometheusMiddleware())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/items/:id", "204"))
	for _, path := range []string{"/items/1", "/items/2", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, before+2, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/items/:id", "204")))
	assert.NotNil(t, Codec)
}
