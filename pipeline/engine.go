package pipeline

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/fadinuj/graphpipe/algorithms"
	"github.com/fadinuj/graphpipe/metrics"
	"github.com/fadinuj/graphpipe/wire"
	"golang.org/x/sync/errgroup"
)

// stageNames is the fixed K=4 stage order of the reference configuration
// (§4.4): MST -> MaxFlow -> MaxClique -> CliqueCount.
var stageNames = [4]string{"mst", "maxflow", "maxclique", "cliquecount"}

// Engine owns the four stage queues and the job-id counter. The zero
// value is not usable; construct with NewEngine.
type Engine struct {
	queues    [4]*Queue
	nextJobID atomic.Uint64
}

// NewEngine allocates an Engine with capacity-C queues per stage.
func NewEngine(capacity int) *Engine {
	e := &Engine{}
	for i, name := range stageNames {
		e.queues[i] = NewQueue(name, capacity)
	}
	return e
}

// Intake returns stage 1's input queue, the entry point new jobs are
// pushed onto (§4.4: "the acceptor... pushes onto stage 1's queue").
func (e *Engine) Intake() *Queue { return e.queues[0] }

// NextJobID atomically allocates the next monotonically increasing job
// id (§5: "the job-id counter is guarded by a dedicated mutex"; realized
// here with a lock-free atomic counter, the idiomatic Go equivalent).
func (e *Engine) NextJobID() uint64 { return e.nextJobID.Add(1) }

// Run spawns one goroutine per stage and blocks until every stage worker
// exits: either because ctx was cancelled (shutdown) or because stage 1's
// queue was closed and fully drained, which cascades through stages 2-4
// as each stage closes the next queue on exit.
func (e *Engine) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		runStage(ctx, e.queues[0], e.queues[1], func(job *Job) {
			out, _ := algorithms.FindMST(job.Graph)
			job.MST = out.String()
		})
		return nil
	})
	g.Go(func() error {
		runStage(ctx, e.queues[1], e.queues[2], func(job *Job) {
			out, err := algorithms.MaxFlowDefault(job.Graph)
			if err != nil {
				job.MaxFlow = "MaxFlow: " + err.Error()
				return
			}
			job.MaxFlow = out.String()
		})
		return nil
	})
	g.Go(func() error {
		runStage(ctx, e.queues[2], e.queues[3], func(job *Job) {
			job.MaxClique = algorithms.MaxClique(job.Graph).String()
		})
		return nil
	})
	g.Go(func() error {
		runStage(ctx, e.queues[3], nil, terminalTransform)
		return nil
	})

	return g.Wait()
}

// runStage pops jobs from in, applies transform, and (if out is
// non-nil) pushes the job onward; it stops popping once in is closed
// and drained, or ctx is cancelled, and always closes out exactly once
// before returning so downstream stages observe the same shutdown.
func runStage(ctx context.Context, in, out *Queue, transform func(*Job)) {
	defer func() {
		if out != nil {
			out.Close()
		}
	}()
	for {
		job, ok := in.Pop(ctx)
		if !ok {
			return
		}
		transform(job)
		if out != nil {
			if err := out.Push(ctx, job); err != nil {
				// Shutdown in progress: this job's push is abandoned per §4.4.
				return
			}
		}
	}
}

// terminalTransform runs CliqueCount, then performs the terminal-stage
// duties of §4.4: assemble the fixed-layout report, write it to the
// client, close the client channel, destroy the graph, and release the
// job.
func terminalTransform(job *Job) {
	job.CliqueCount = algorithms.CountCliques(job.Graph).String()

	elapsed := job.Elapsed().Seconds()
	n := job.Graph.N()
	if err := wire.WritePipelineResponse(job.Client, job.ID, n, elapsed, job.MST, job.MaxFlow, job.MaxClique, job.CliqueCount); err != nil {
		log.Printf("pipeline: job %d: failed to write report: %v", job.ID, err)
	}
	if err := job.Client.Close(); err != nil {
		log.Printf("pipeline: job %d: failed to close client: %v", job.ID, err)
	}
	job.Graph.Close()
	job.Graph = nil

	metrics.JobsCompleted.Inc()
}

// DefaultShutdownGrace is a time budget for a graceful drain. Nothing in
// this module references it: the cmd/ binaries wait for the stages to
// exit without a deadline.
const DefaultShutdownGrace = 5 * time.Second
