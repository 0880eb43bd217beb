package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "studyhub", Name: "http_requests_total", Help: "HTTP requests by method, route and status."},
		[]string{"method", "route", "status"},
	)
	RateLimitAllowed = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "studyhub", Name: "rate_limit_allowed_total", Help: "Requests allowed by the rate limiter."},
	)
	RateLimitRejected = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "studyhub", Name: "rate_limit_rejected_total", Help: "Requests rejected by the rate limiter."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RequestsTotal)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
