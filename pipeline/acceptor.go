package pipeline

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/fadinuj/graphpipe/graph"
	"github.com/fadinuj/graphpipe/metrics"
	"github.com/fadinuj/graphpipe/wire"
)

// Accept reads one pipeline request off conn, builds its graph, and
// admits it onto the engine's intake queue as a Job. It owns conn for
// the lifetime of the job: on any decode failure conn is closed here;
// on success, the terminal stage closes it once the report is written.
//
// Accept blocks until the job is admitted or ctx is cancelled, mirroring
// §4.4's "a full stage-1 queue makes new connections wait to be admitted".
func Accept(ctx context.Context, e *Engine, conn net.Conn) {
	req, err := wire.ReadPipelineRequest(conn)
	if err != nil {
		log.Printf("pipeline: %s: bad request: %v", conn.RemoteAddr(), err)
		conn.Close()
		return
	}

	g, skipped, err := graph.Decode(int(req.Vertices), req.Edges)
	if err != nil {
		log.Printf("pipeline: %s: decode failed: %v", conn.RemoteAddr(), err)
		conn.Close()
		return
	}
	if skipped > 0 {
		log.Printf("pipeline: %s: skipped %d duplicate edge(s)", conn.RemoteAddr(), skipped)
	}

	job := &Job{
		ID:      e.NextJobID(),
		Graph:   g,
		Client:  conn,
		Started: time.Now(),
	}

	if err := e.Intake().Push(ctx, job); err != nil {
		log.Printf("pipeline: job %d: not admitted, shutting down: %v", job.ID, err)
		g.Close()
		conn.Close()
		return
	}
	metrics.JobsAdmitted.Inc()
}

// Serve listens on addr and hands every accepted connection to Accept,
// running the engine's four stages concurrently. It returns when ctx is
// cancelled, after closing the listener.
//
// Shutdown does not close the intake queue: Accept goroutines may still
// be racing to push onto it, and Queue.Push's select treats a send on a
// closed channel as a ready (panicking) case just like ctx.Done(), so a
// close here could crash the process instead of draining cleanly. Stage
// 1 instead stops via ctx cancellation alone — Queue.Pop's ctx.Done()
// case unblocks it, and its deferred Close() of queue 2 cascades the
// shutdown through the remaining stages (§4.4/§5: in-flight pushes are
// abandoned, not raced against a close).
func Serve(ctx context.Context, e *Engine, addr string) error {
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("pipeline: listen %s: %w", addr, err)
	}

	engineErr := make(chan error, 1)
	go func() { engineErr <- e.Run(ctx) }()

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				<-engineErr
				return nil
			default:
				return fmt.Errorf("pipeline: accept: %w", err)
			}
		}
		go Accept(ctx, e, conn)
	}
}
