// Command pipeline-server runs the four-stage blocking-queue pipeline
// front-end: clients connect, submit one graph, and receive a combined
// MST/MaxFlow/MaxClique/CliqueCount report once every stage has run.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/fadinuj/graphpipe/config"
	"github.com/fadinuj/graphpipe/metrics"
	"github.com/fadinuj/graphpipe/pipeline"
)

var configPath = flag.String("config", "", "optional YAML config file")

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pipeline-server [-config path] <port>")
		os.Exit(2)
	}
	port, err := strconv.Atoi(flag.Arg(0))
	if err != nil || port < 1 || port > 65535 {
		log.Fatalf("invalid port %q: must be in [1, 65535]", flag.Arg(0))
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		go func() {
			log.Printf("metrics listening on %s", cfg.MetricsAddr)
			if err := startMetrics(cfg.MetricsAddr); err != nil {
				log.Printf("metrics server: %v", err)
			}
		}()
	}

	addr := fmt.Sprintf(":%d", port)
	engine := pipeline.NewEngine(cfg.QueueCapacity)

	log.Printf("pipeline-server listening on %s (queue capacity %d)", addr, cfg.QueueCapacity)
	if err := pipeline.Serve(ctx, engine, addr); err != nil {
		log.Fatalf("pipeline-server: %v", err)
	}
	log.Printf("pipeline-server shut down cleanly")
}

func startMetrics(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	return http.ListenAndServe(addr, mux)
}
