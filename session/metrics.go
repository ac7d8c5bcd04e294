package session

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	sendCount    atomic.Uint32
	sendErrors   atomic.Uint32
	switchCount  atomic.Uint32
	sendDuration prometheus.Summary
}

func registerMetrics(reg *prometheus.Registry, m *metrics) {
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "push",
		Subsystem: "session",
		Name:      "send_count",
		Help:      "total count of send operations",
	}, func() float64 {
		return float64(m.sendCount.Load())
	}))
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "push",
		Subsystem: "session",
		Name:      "send_errors",
		Help:      "total count of failed send operations",
	}, func() float64 {
		return float64(m.sendErrors.Load())
	}))
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "push",
		Subsystem: "session",
		Name:      "switch_count",
		Help:      "total count of account switches",
	}, func() float64 {
		return float64(m.switchCount.Load())
	}))
	m.sendDuration = prometheus.NewSummary(prometheus.SummaryOpts{
		Namespace: "push",
		Subsystem: "session",
		Name:      "send_duration_seconds",
		Objectives: map[float64]float64{
			0.5:  0.5,
			0.85: 0.01,
			0.95: 0.0005,
			0.99: 0.0001,
		},
	})
	reg.MustRegister(m.sendDuration)
}
