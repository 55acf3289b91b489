// Command test-client exercises all three server front-ends: a single
// pipeline job, one single-shot dispatch request over a request/reply or
// leader-follower connection, and a concurrent-admission
// run against the pipeline server matching the end-to-end scenario of
// submitting several identical jobs back to back.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net"
	"os"
	"sync"
	"time"

	"github.com/fadinuj/graphpipe/graph"
	"github.com/fadinuj/graphpipe/wire"
)

var (
	mode       = flag.String("mode", "pipeline", "pipeline | reqreply | lf")
	addr       = flag.String("addr", "127.0.0.1:9000", "server address")
	vertices   = flag.Int("vertices", 8, "number of vertices in the random graph")
	edgeProb   = flag.Float64("edge-prob", 0.4, "probability of each candidate edge existing")
	maxWeight  = flag.Int("max-weight", 10, "maximum edge weight")
	seed       = flag.Int64("seed", 1, "random seed")
	concurrent = flag.Int("concurrent", 1, "number of identical jobs to submit concurrently (pipeline mode only)")
	algorithm  = flag.Int("algorithm", 3, "algorithm id for reqreply/lf mode (1-5)")
)

func main() {
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	edges := randomEdges(rng, *vertices, *edgeProb, *maxWeight)

	switch *mode {
	case "pipeline":
		runPipeline(edges)
	case "reqreply", "lf":
		runDispatch(edges)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q: want pipeline, reqreply, or lf\n", *mode)
		os.Exit(2)
	}
}

// randomEdges generates a random undirected edge set over n vertices,
// including each candidate pair independently with probability p.
func randomEdges(rng *rand.Rand, n int, p float64, maxW int) []graph.EdgeTriple {
	var edges []graph.EdgeTriple
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				w := 1 + rng.Intn(maxW)
				edges = append(edges, graph.EdgeTriple{U: u, V: v, W: w})
			}
		}
	}
	return edges
}

// runPipeline submits *concurrent copies of the same graph to the
// pipeline server and prints every report, each carrying its job id; the
// ids are printed, not checked.
func runPipeline(edges []graph.EdgeTriple) {
	var wg sync.WaitGroup
	var mu sync.Mutex
	reports := make([]string, *concurrent)

	for i := 0; i < *concurrent; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			report, err := submitPipelineJob(edges)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("job %d: %v", i, err)
				return
			}
			reports[i] = report
		}(i)
	}
	wg.Wait()

	for i, r := range reports {
		fmt.Printf("--- job %d ---\n%s\n", i, r)
	}
}

func submitPipelineJob(edges []graph.EdgeTriple) (string, error) {
	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		return "", fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	if err := writeInt32(conn, int32(*seed)); err != nil {
		return "", err
	}
	if err := writeInt32(conn, int32(*maxWeight)); err != nil {
		return "", err
	}
	if err := writeInt32(conn, int32(*vertices)); err != nil {
		return "", err
	}
	if err := writeInt32(conn, int32(len(edges))); err != nil {
		return "", err
	}
	for _, e := range edges {
		if err := writeInt32(conn, int32(e.U)); err != nil {
			return "", err
		}
		if err := writeInt32(conn, int32(e.V)); err != nil {
			return "", err
		}
		if err := writeInt32(conn, int32(e.W)); err != nil {
			return "", err
		}
	}

	conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	buf := make([]byte, 0, 4096)
	chunk := make([]byte, 4096)
	for {
		n, err := conn.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if err != nil {
			break
		}
	}
	return string(buf), nil
}

// runDispatch sends one single-shot dispatch request for the configured
// algorithm and prints the response; works against both reqreply and lf
// servers since they share the same wire protocol.
func runDispatch(edges []graph.EdgeTriple) {
	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		log.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := writeInt32(conn, int32(*algorithm)); err != nil {
		log.Fatalf("write algorithm id: %v", err)
	}
	if err := writeInt32(conn, int32(*vertices)); err != nil {
		log.Fatalf("write vertex count: %v", err)
	}

	if *algorithm == 1 || *algorithm == 4 || *algorithm == 5 {
		matrix := make([][]bool, *vertices)
		for i := range matrix {
			matrix[i] = make([]bool, *vertices)
		}
		for _, e := range edges {
			matrix[e.U][e.V] = true
			matrix[e.V][e.U] = true
		}
		for i := 0; i < *vertices; i++ {
			for j := 0; j < *vertices; j++ {
				v := int32(0)
				if matrix[i][j] {
					v = 1
				}
				if err := writeInt32(conn, v); err != nil {
					log.Fatalf("write matrix entry: %v", err)
				}
			}
		}
	} else {
		if err := writeInt32(conn, int32(len(edges))); err != nil {
			log.Fatalf("write edge count: %v", err)
		}
		for _, e := range edges {
			writeInt32(conn, int32(e.U))
			writeInt32(conn, int32(e.V))
			writeInt32(conn, int32(e.W))
		}
	}

	status, body, err := wire.ReadDispatchResponse(conn)
	if err != nil {
		log.Fatalf("read response: %v", err)
	}
	fmt.Printf("status=%d body=%q\n", status, body)
}

func writeInt32(conn net.Conn, v int32) error {
	buf := [4]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	_, err := conn.Write(buf[:])
	return err
}
