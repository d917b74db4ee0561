package exporter

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus 指標：引擎每處理一筆指令就記一次
var (
	commandCounter  *prometheus.CounterVec
	errorCounter    prometheus.Counter
	commandDuration prometheus.Histogram

	initialized bool
)

// Init 建立並註冊所有指標，重複呼叫沒有效果
func Init() {
	if initialized {
		return
	}
	initialized = true

	commandCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "membank",
		Subsystem: "core",
		Name:      "command_count",
		Help:      "Counts processed commands by type",
	}, []string{"type"})
	prometheus.MustRegister(commandCounter)

	errorCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "membank",
		Subsystem: "core",
		Name:      "error_count",
		Help:      "Counts commands that ended in a business error",
	})
	prometheus.MustRegister(errorCounter)

	commandDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "membank",
		Subsystem: "core",
		Name:      "command_duration_seconds",
		Help:      "Command processing latency",
		Buckets:   prometheus.DefBuckets,
	})
	prometheus.MustRegister(commandDuration)
}

// ObserveCommand 記錄一筆指令的類型、耗時與結果
// Init 沒被呼叫過時直接略過 (測試環境不需要指標)
func ObserveCommand(commandType string, elapsed time.Duration, err error) {
	if !initialized {
		return
	}
	commandCounter.WithLabelValues(commandType).Inc()
	commandDuration.Observe(elapsed.Seconds())
	if err != nil {
		errorCounter.Inc()
	}
}
