// Package leaderfollower implements the leader-follower worker pool
// front-end of §4.4: a fixed set of P workers, exactly one of which is
// "the leader" blocked in accept() at any moment. When the leader accepts
// a connection, it promotes the next worker (round robin) to leader, then
// serves the connection itself before rejoining the pool to wait for its
// next turn.
//
// Promotion is a single-slot handoff among a fixed worker set, not a
// producer/consumer queue, so it is guarded by one sync.Mutex and one
// sync.Cond rather than a channel — the one place in this module where a
// condition variable is the idiomatic choice over channel-based queueing
// (§4.4, §5).
package leaderfollower

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync"

	"github.com/fadinuj/graphpipe/dispatch"
	"github.com/fadinuj/graphpipe/graph"
	"github.com/fadinuj/graphpipe/wire"
)

// Pool is a leader-follower worker pool of fixed size. The zero value is
// not usable; construct with NewPool.
type Pool struct {
	size int

	mu     sync.Mutex
	cond   *sync.Cond
	leader int
	closed bool
}

// NewPool allocates a Pool of the given size. Worker 0 is the initial
// leader (§9's resolved open question: no separate un-joined acceptor
// goroutine exists; worker 0 simply runs the accept loop inline on its
// first turn).
func NewPool(size int) *Pool {
	p := &Pool{size: size}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// Serve listens on addr and runs the pool's P workers until ctx is
// cancelled or the listener errors.
func (p *Pool) Serve(ctx context.Context, addr string) error {
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("leaderfollower: listen %s: %w", addr, err)
	}

	go func() {
		<-ctx.Done()
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()
		p.cond.Broadcast()
		ln.Close()
	}()

	var wg sync.WaitGroup
	wg.Add(p.size)
	for id := 0; id < p.size; id++ {
		go func(id int) {
			defer wg.Done()
			p.worker(ctx, id, ln)
		}(id)
	}
	wg.Wait()
	return nil
}

// worker runs worker id's lifecycle: wait for its turn as leader, accept
// exactly one connection, promote the next worker, then serve the
// accepted connection as a follower before looping back to wait again.
func (p *Pool) worker(ctx context.Context, id int, ln net.Listener) {
	for {
		p.mu.Lock()
		for p.leader != id && !p.closed {
			p.cond.Wait()
		}
		if p.closed {
			p.mu.Unlock()
			return
		}
		p.mu.Unlock()

		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return
			default:
				log.Printf("leaderfollower: worker %d: accept: %v", id, err)
				// Release the followers waiting for a turn that will never come.
				p.mu.Lock()
				p.closed = true
				p.mu.Unlock()
				p.cond.Broadcast()
				return
			}
		}

		p.mu.Lock()
		p.leader = (id + 1) % p.size
		p.mu.Unlock()
		p.cond.Broadcast()

		handleConn(id, conn)
	}
}

// handleConn serves single-shot dispatch requests on conn until it
// errors or the client closes it, identical in protocol to reqreply's
// handler but run by a fixed pool worker rather than a per-connection
// goroutine.
func handleConn(workerID int, conn net.Conn) {
	defer conn.Close()
	for {
		req, err := wire.ReadDispatchRequest(conn)
		if err != nil {
			return
		}

		g, skipped, err := graph.Decode(req.N, req.Edges)
		if err != nil {
			wire.WriteDispatchResponse(conn, 0, "")
			return
		}
		if skipped > 0 {
			log.Printf("leaderfollower: worker %d: skipped %d duplicate edge(s)", workerID, skipped)
		}

		out, runErr := dispatch.Run(g, req.AlgorithmID)
		g.Close()

		status := 1
		if runErr != nil {
			status = 0
		}
		if err := wire.WriteDispatchResponse(conn, status, out); err != nil {
			log.Printf("leaderfollower: worker %d: write response: %v", workerID, err)
			return
		}
	}
}
