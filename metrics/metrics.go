// Package metrics exposes the ambient observability surface the pipeline
// and front-ends report through: queue depths, job throughput, and
// per-algorithm invocation counts, via github.com/prometheus/client_golang.
// Non-goals exclude multi-host distribution, persistence, and
// authentication; they do not exclude observability, so this concern is
// carried the way it is across this pack's service-shaped repos
// (ahrav-go-gavel, dshills-langgraph-go, yesoreyeram-thaiyyal all expose
// prometheus gauges/counters from their core engines).
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// QueueDepth reports the current number of jobs waiting in a named stage
// queue.
var QueueDepth = prometheus.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "graphpipe",
	Name:      "queue_depth",
	Help:      "Number of jobs currently queued at a pipeline stage.",
}, []string{"stage"})

// JobsAdmitted counts jobs entering the pipeline at stage 1.
var JobsAdmitted = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "graphpipe",
	Name:      "jobs_admitted_total",
	Help:      "Total number of jobs admitted to the pipeline.",
})

// JobsCompleted counts jobs that reached the terminal stage and had a
// report written back to their client.
var JobsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "graphpipe",
	Name:      "jobs_completed_total",
	Help:      "Total number of jobs that completed the pipeline.",
})

// AlgorithmInvocations counts dispatch.Run calls by algorithm name.
var AlgorithmInvocations = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "graphpipe",
	Name:      "algorithm_invocations_total",
	Help:      "Total number of times each algorithm has been invoked via dispatch.Run.",
}, []string{"algorithm"})

func init() {
	prometheus.MustRegister(QueueDepth, JobsAdmitted, JobsCompleted, AlgorithmInvocations)
}

// Handler returns the Prometheus scrape handler, mounted by server
// binaries at /metrics alongside their TCP listener.
func Handler() http.Handler {
	return promhttp.Handler()
}
