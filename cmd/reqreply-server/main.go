// Command reqreply-server runs the per-connection request/reply
// front-end: each connection may submit any number of single-shot
// dispatch requests, one response per request, until it closes.
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
	"github.com/fadinuj/graphpipe/reqreply"
)

var configPath = flag.String("config", "", "optional YAML config file")

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: reqreply-server [-config path] <port>")
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
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())
			log.Printf("metrics listening on %s", cfg.MetricsAddr)
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				log.Printf("metrics server: %v", err)
			}
		}()
	}

	addr := fmt.Sprintf(":%d", port)
	log.Printf("reqreply-server listening on %s", addr)
	if err := reqreply.Serve(ctx, addr); err != nil {
		log.Fatalf("reqreply-server: %v", err)
	}
	log.Printf("reqreply-server shut down cleanly")
}
