package metrics

import "github.com/prometheus/client_golang/prometheus"

// InquiryMetrics exposes counters/histograms for the inquiry pipeline.
type InquiryMetrics struct {
	submissionsTotal *prometheus.CounterVec
	emailsTotal      *prometheus.CounterVec
	sendLatency      *prometheus.HistogramVec
}

func NewInquiryMetrics(reg prometheus.Registerer) *InquiryMetrics {
	m := &InquiryMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cloudsitefy",
			Subsystem: "inquiries",
			Name:      "submissions_total",
			Help:      "Contact form submissions by outcome",
		}, []string{"outcome"}),
		emailsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cloudsitefy",
			Subsystem: "inquiries",
			Name:      "emails_total",
			Help:      "Notification and reply emails by kind and status",
		}, []string{"kind", "status"}),
		sendLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cloudsitefy",
			Subsystem: "inquiries",
			Name:      "email_send_seconds",
			Help:      "Latency of email provider sends",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.emailsTotal, m.sendLatency)
	return m
}

func (m *InquiryMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *InquiryMetrics) ObserveEmail(kind, status string) {
	if m == nil {
		return
	}
	m.emailsTotal.WithLabelValues(kind, status).Inc()
}

func (m *InquiryMetrics) ObserveSendLatency(provider string, seconds float64) {
	if m == nil {
		return
	}
	m.sendLatency.WithLabelValues(provider).Observe(seconds)
}
