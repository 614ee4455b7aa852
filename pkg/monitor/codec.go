package monitor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	DirectionEncode = "encode"
	DirectionDecode = "decode"

	ResultSuccess = "success"
	ResultError   = "error"
)

// CodecMetrics 定义 txrep 编解码业务指标
type CodecMetrics struct {
	OperationsTotal *prometheus.CounterVec
	ErrorsTotal     *prometheus.CounterVec
	Duration        *prometheus.HistogramVec
}

// Codec 为全局实例，Init 之前为 nil
var Codec *CodecMetrics

// NewCodecMetrics registers the codec metrics with reg
func NewCodecMetrics(reg prometheus.Registerer) *CodecMetrics {
	factory := promauto.With(reg)
	return &CodecMetrics{
		OperationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "txrep_codec_operations_total",
			Help: "Number of txrep encode/decode calls by result.",
		}, []string{"direction", "result"}),
		ErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "txrep_codec_errors_total",
			Help: "Number of failed txrep calls by error kind.",
		}, []string{"direction", "kind"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "txrep_codec_duration_seconds",
			Help:    "Duration of txrep encode/decode calls.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}, []string{"direction"}),
	}
}

// Observe records one call. kind is only used when failed.
func (m *CodecMetrics) Observe(direction string, start time.Time, failed bool, kind string) {
	if m == nil {
		return
	}
	m.Duration.WithLabelValues(direction).Observe(time.Since(start).Seconds())
	if failed {
		m.OperationsTotal.WithLabelValues(direction, ResultError).Inc()
		m.ErrorsTotal.WithLabelValues(direction, kind).Inc()
		return
	}
	m.OperationsTotal.WithLabelValues(direction, ResultSuccess).Inc()
}
