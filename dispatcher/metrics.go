package dispatcher

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/talkdeck/talkdeck-push-server/domain"
)

type metrics struct {
	sent         *prometheus.CounterVec
	failed       *prometheus.CounterVec
	sendDuration *prometheus.SummaryVec
}

func registerMetrics(reg *prometheus.Registry, d *dispatcher) {
	d.metrics.sent = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "push",
		Subsystem: "dispatcher",
		Name:      "sent_total",
		Help:      "messages accepted by the gateway",
	}, []string{"type"})
	d.metrics.failed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "push",
		Subsystem: "dispatcher",
		Name:      "failed_total",
		Help:      "messages rejected by the gateway",
	}, []string{"type"})
	d.metrics.sendDuration = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: "push",
		Subsystem: "dispatcher",
		Name:      "duration_seconds",
		Objectives: map[float64]float64{
			0.5:  0.5,
			0.85: 0.01,
			0.95: 0.0005,
			0.99: 0.0001,
		},
	}, []string{"type"})
	reg.MustRegister(d.metrics.sent, d.metrics.failed, d.metrics.sendDuration)
}

func (m *metrics) observe(msgType domain.MessageType, dur time.Duration, err error) {
	if m.sent == nil {
		return
	}
	m.sendDuration.WithLabelValues(string(msgType)).Observe(dur.Seconds())
	if err != nil {
		m.failed.WithLabelValues(string(msgType)).Inc()
	} else {
		m.sent.WithLabelValues(string(msgType)).Inc()
	}
}
