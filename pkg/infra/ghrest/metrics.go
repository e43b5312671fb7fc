package ghrest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "relnote_github_requests_total",
		Help: "GitHub GET attempts by response status, connection_error or timeout",
	}, []string{"status"})

	fetchRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "relnote_github_retries_total",
		Help: "GitHub GET retries by the status or error that caused them",
	}, []string{"reason"})
)
