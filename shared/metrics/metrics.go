package metrics

import (
	kitmetrics "github.com/go-kit/kit/metrics"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const MethodLabel = "method"

// Request is the counter and latency pair a service decorator or the HTTP middleware reports to.
type Request struct {
	Counter kitmetrics.Counter
	Latency kitmetrics.Histogram
}

// MakeMetrics registers a request counter and a latency summary for one service. Registration
// panics on duplicates, so call it once per subsystem.
//
//	counter, latency := metrics.MakeMetrics("eventzone", "event")
func MakeMetrics(namespace, subsystem string) (*kitprometheus.Counter, *kitprometheus.Summary) {
	counter := kitprometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_count",
		Help:      "Number of requests received.",
	}, []string{MethodLabel})
	latency := kitprometheus.NewSummaryFrom(stdprometheus.SummaryOpts{
		Namespace:  namespace,
		Subsystem:  subsystem,
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		Name:       "request_latency_seconds",
		Help:       "Total duration of requests in seconds.",
	}, []string{MethodLabel})

	return counter, latency
}

func NewRequest(namespace, subsystem string) Request {
	counter, latency := MakeMetrics(namespace, subsystem)

	return Request{Counter: counter, Latency: latency}
}
