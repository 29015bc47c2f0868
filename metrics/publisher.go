package metrics

import "github.com/prometheus/client_golang/prometheus"

// PublisherMetrics tracks one publisher loop. Every field is labelled with the
// publisher variant ("text" or "face").
type PublisherMetrics struct {
	ConnectAttempts *prometheus.CounterVec
	ConnectFailures *prometheus.CounterVec
	MessagesSent    *prometheus.CounterVec
	SendFailures    *prometheus.CounterVec
	Streaming       *prometheus.GaugeVec
}

// NewPublisherMetrics creates and registers publisher metrics on the given registry.
func NewPublisherMetrics(reg prometheus.Registerer) *PublisherMetrics {
	m := &PublisherMetrics{
		ConnectAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "publisher",
			Name:      "connect_attempts_total",
			Help:      "Total number of websocket connect attempts.",
		}, []string{"variant"}),
		ConnectFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "publisher",
			Name:      "connect_failures_total",
			Help:      "Total number of failed websocket connect attempts.",
		}, []string{"variant"}),
		MessagesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "publisher",
			Name:      "messages_sent_total",
			Help:      "Total number of messages written to the session.",
		}, []string{"variant"}),
		SendFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "publisher",
			Name:      "send_failures_total",
			Help:      "Total number of failed sends that tore the session down.",
		}, []string{"variant"}),
		Streaming: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "publisher",
			Name:      "streaming",
			Help:      "1 while the publisher holds a live session, 0 while disconnected.",
		}, []string{"variant"}),
	}

	reg.MustRegister(m.ConnectAttempts, m.ConnectFailures, m.MessagesSent, m.SendFailures, m.Streaming)
	return m
}
