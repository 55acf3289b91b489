// Package reqreply implements the per-connection request/reply front-end
// of §6: a client opens a TCP connection, sends one single-shot dispatch
// request, and receives one response, repeating as many times as it
// likes on the same connection until it closes it. Unlike the pipeline
// front-end, there is no queueing here: one goroutine per connection
// serves requests inline, resolving each through dispatch.Run.
package reqreply

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"

	"github.com/fadinuj/graphpipe/dispatch"
	"github.com/fadinuj/graphpipe/graph"
	"github.com/fadinuj/graphpipe/wire"
)

// Serve listens on addr and spawns one goroutine per accepted connection
// running handleConn, until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("reqreply: listen %s: %w", addr, err)
	}

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
				return fmt.Errorf("reqreply: accept: %w", err)
			}
		}
		go handleConn(conn)
	}
}

// handleConn serves requests on conn until reading a request fails or
// writing a response fails, then closes conn. A read that ends at EOF
// closes silently; any other read error, including a request the wire
// layer rejects, is logged. A request whose graph cannot be built or whose
// id is unknown gets a status-0 response and the loop continues.
func handleConn(conn net.Conn) {
	defer conn.Close()
	for {
		req, err := wire.ReadDispatchRequest(conn)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("reqreply: %s: read request: %v", conn.RemoteAddr(), err)
			}
			return
		}

		body, status := handleRequest(req)
		if err := wire.WriteDispatchResponse(conn, status, body); err != nil {
			log.Printf("reqreply: %s: write response: %v", conn.RemoteAddr(), err)
			return
		}
	}
}

// handleRequest decodes req's graph and runs the requested algorithm,
// returning the response body and a status of 1 (success) or 0 (failure).
func handleRequest(req *wire.DispatchRequest) (body string, status int) {
	g, skipped, err := graph.Decode(req.N, req.Edges)
	if err != nil {
		return "", 0
	}
	defer g.Close()
	if skipped > 0 {
		log.Printf("reqreply: skipped %d duplicate edge(s)", skipped)
	}

	out, err := dispatch.Run(g, req.AlgorithmID)
	if err != nil {
		return out, 0
	}
	return out, 1
}
