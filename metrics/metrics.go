// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/middleware"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/service"
)

const namespace = "pollsvc"

/*
Every Metrics value owns its registry, so tests can build as many as they
like without duplicate registration panics.

- VotesCast: votes that were recorded.
- VotesRejected: vote attempts that failed, labelled by error kind.
- RequestDuration: handler latency by route pattern and status code.
*/
type Metrics struct {
	registry        *prometheus.Registry
	VotesCast       prometheus.Counter
	VotesRejected   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		VotesCast: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "voting",
			Name:      "votes_cast_total",
			Help:      "Total number of votes recorded",
		}),
		VotesRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "voting",
				Name:      "votes_rejected_total",
				Help:      "Total number of rejected vote attempts",
			},
			[]string{"reason"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Histogram of request handling times",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "status"},
		),
	}
}

// ObserveVote records the outcome of a vote attempt.
func (m *Metrics) ObserveVote(err error) {
	if err == nil {
		m.VotesCast.Inc()
		return
	}
	m.VotesRejected.WithLabelValues(rejectReason(err)).Inc()
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, service.ErrAlreadyVoted):
		return "already_voted"
	case errors.Is(err, service.ErrNotFound):
		return "not_found"
	case errors.Is(err, service.ErrBadRequest):
		return "bad_request"
	case errors.Is(err, service.ErrInternal):
		return "internal"
	default:
		return "unavailable"
	}
}

// Instrument times next and labels the observation with the matched route.
func (m *Metrics) Instrument(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := middleware.NewStatusWriter(w)

		next(sw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		m.RequestDuration.
			WithLabelValues(route, strconv.Itoa(sw.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
