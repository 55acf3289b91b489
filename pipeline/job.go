// Package pipeline implements the bounded, four-stage blocking-queue
// pipeline of §4.4: MST -> MaxFlow -> MaxClique -> CliqueCount. Each
// stage is realized as a goroutine popping from a buffered channel
// (type Queue), which gives the block-on-full/block-on-empty/
// wake-on-shutdown suspension points of §5 for free from Go's channel
// semantics rather than a hand-rolled mutex+condvar queue.
package pipeline

import (
	"io"
	"time"

	"github.com/fadinuj/graphpipe/graph"
)

// Job is the unit of work carried through the pipeline: a monotonically
// assigned id, the graph it owns exclusively, a handle to write the
// final report back to the client, a start timestamp, and one string
// slot per stage for the accumulated partial results (§3).
//
// A Job is single-owner at all times: once pushed onto a Queue, the
// producer must not retain or mutate it further.
type Job struct {
	ID      uint64
	Graph   *graph.Graph
	Client  io.WriteCloser
	Started time.Time

	MST         string
	MaxFlow     string
	MaxClique   string
	CliqueCount string
}

// Elapsed returns the time since the job was admitted.
func (j *Job) Elapsed() time.Duration {
	return time.Since(j.Started)
}
