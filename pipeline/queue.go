package pipeline

import (
	"context"

	"github.com/fadinuj/graphpipe/metrics"
)

// Queue is a bounded FIFO of *Job with a name for diagnostics (§3). It
// wraps a buffered channel: Push blocks when the channel is full, Pop
// blocks when it is empty, and both wake immediately
// when the supplied context is cancelled, which is how shutdown (§4.4,
// §5) propagates without a separate broadcast primitive.
type Queue struct {
	Name string
	ch   chan *Job
}

// NewQueue allocates a Queue with the given capacity.
func NewQueue(name string, capacity int) *Queue {
	return &Queue{Name: name, ch: make(chan *Job, capacity)}
}

// Push enqueues job, blocking if the queue is full. It returns
// ctx.Err() if ctx is cancelled before the job could be enqueued,
// in which case the job was NOT pushed and the caller owns it again.
func (q *Queue) Push(ctx context.Context, job *Job) error {
	select {
	case q.ch <- job:
		metrics.QueueDepth.WithLabelValues(q.Name).Set(float64(len(q.ch)))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pop dequeues the next job, blocking if the queue is empty. ok is false
// if the queue was closed and drained, or if ctx was cancelled first.
func (q *Queue) Pop(ctx context.Context) (job *Job, ok bool) {
	select {
	case job, ok = <-q.ch:
		metrics.QueueDepth.WithLabelValues(q.Name).Set(float64(len(q.ch)))
		return job, ok
	case <-ctx.Done():
		return nil, false
	}
}

// Close closes the underlying channel. Only the queue's single producer
// may call this, once, when it has no more jobs to push (§4.4: "the
// pipeline has a single producer feeding each non-initial queue").
func (q *Queue) Close() {
	close(q.ch)
}

// Len reports the number of jobs currently buffered, for diagnostics.
func (q *Queue) Len() int {
	return len(q.ch)
}
