// Package metrics holds the process-wide prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pcc1"

var (
	// DispatchOutcomes counts dispatcher results by workflow and outcome.
	DispatchOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "dispatch",
		Name:      "outcomes_total",
		Help:      "Notification dispatch results by workflow and outcome.",
	}, []string{"workflow", "outcome"})

	CaptchaVerifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "captcha",
		Name:      "verifications_total",
		Help:      "Captcha verification attempts by result.",
	}, []string{"result"})

	MailSends = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mail",
		Name:      "sends_total",
		Help:      "Email send attempts by provider, template and result.",
	}, []string{"provider", "template", "result"})

	MailSendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "mail",
		Name:      "send_duration_seconds",
		Help:      "Time spent calling the email provider.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"provider"})

	OutboxDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "outbox",
		Name:      "deliveries_total",
		Help:      "Outbox event processing results.",
	}, []string{"table", "result"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route and status code.",
	}, []string{"route", "method", "code"})
)
