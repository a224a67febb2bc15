// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package metrics exposes notification log activity to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"grimm.is/flywatch/internal/notification"
	"grimm.is/flywatch/internal/page"
)

// Metrics holds all flywatch Prometheus metrics. It implements
// notification.Observer.
type Metrics struct {
	Appended *prometheus.CounterVec
	Evicted  prometheus.Counter
	Cleared  prometheus.Counter
	Held     prometheus.Gauge

	PageRenders    *prometheus.CounterVec
	IngestRejected *prometheus.CounterVec

	SSHSessions      prometheus.Gauge
	SSHSessionsTotal prometheus.Counter
}

// NewMetrics creates the metric set. Label values are pre-populated so
// series exist at zero before the first event.
func NewMetrics() *Metrics {
	m := &Metrics{
		Appended: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "flywatch_notifications_appended_total",
			Help: "Total number of notification events appended to the log",
		}, []string{"kind"}),
		Evicted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flywatch_notifications_evicted_total",
			Help: "Total number of events dropped because the log was full",
		}),
		Cleared: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flywatch_notifications_cleared_total",
			Help: "Total number of events removed by clear-all",
		}),
		Held: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "flywatch_notifications_retained",
			Help: "Number of events currently held in the log",
		}),
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "flywatch_notification_page_renders_total",
			Help: "Total number of notification page renders by state",
		}, []string{"state"}),
		IngestRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "flywatch_notifications_ingest_rejected_total",
			Help: "Total number of events refused by the ingest API",
		}, []string{"reason"}),
		SSHSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "flywatch_ssh_sessions_active",
			Help: "Number of open SSH operator sessions",
		}),
		SSHSessionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flywatch_ssh_sessions_total",
			Help: "Total number of SSH operator sessions",
		}),
	}
	for _, k := range notification.Kinds {
		m.Appended.WithLabelValues(string(k))
	}
	for _, s := range []page.State{page.StateUnconfigured, page.StateWaitingForEvents, page.StatePopulated} {
		m.PageRenders.WithLabelValues(s.String())
	}
	return m
}

// Describe implements prometheus.Collector
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.Appended.Describe(ch)
	m.Evicted.Describe(ch)
	m.Cleared.Describe(ch)
	m.Held.Describe(ch)
	m.PageRenders.Describe(ch)
	m.IngestRejected.Describe(ch)
	m.SSHSessions.Describe(ch)
	m.SSHSessionsTotal.Describe(ch)
}

// Collect implements prometheus.Collector
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.Appended.Collect(ch)
	m.Evicted.Collect(ch)
	m.Cleared.Collect(ch)
	m.Held.Collect(ch)
	m.PageRenders.Collect(ch)
	m.IngestRejected.Collect(ch)
	m.SSHSessions.Collect(ch)
	m.SSHSessionsTotal.Collect(ch)
}

func (m *Metrics) EventAppended(kind notification.Kind) {
	m.Appended.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) EventsEvicted(n int) { m.Evicted.Add(float64(n)) }
func (m *Metrics) LogCleared(n int)    { m.Cleared.Add(float64(n)) }
func (m *Metrics) Retained(n int)      { m.Held.Set(float64(n)) }

// PageRendered counts one render in the given state.
func (m *Metrics) PageRendered(s page.State) {
	m.PageRenders.WithLabelValues(s.String()).Inc()
}

// Rejected counts an ingest request refused for reason.
func (m *Metrics) Rejected(reason string) {
	m.IngestRejected.WithLabelValues(reason).Inc()
}

// SessionOpened and SessionClosed track SSH operator sessions.
func (m *Metrics) SessionOpened() {
	m.SSHSessions.Inc()
	m.SSHSessionsTotal.Inc()
}

func (m *Metrics) SessionClosed() { m.SSHSessions.Dec() }

// NewRegistry returns a registry holding m plus the Go runtime and process
// collectors.
func NewRegistry(m *Metrics) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		m,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves reg in the Prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
