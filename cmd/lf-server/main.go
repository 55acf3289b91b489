// Command lf-server runs the leader-follower worker pool front-end: a
// fixed set of workers take turns being the one blocked in accept(),
// each serving its accepted connection before rejoining the pool.
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
	"github.com/fadinuj/graphpipe/leaderfollower"
	"github.com/fadinuj/graphpipe/metrics"
)

var configPath = flag.String("config", "", "optional YAML config file")

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: lf-server [-config path] <port>")
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
	pool := leaderfollower.NewPool(cfg.LFPoolSize)

	log.Printf("lf-server listening on %s (pool size %d)", addr, cfg.LFPoolSize)
	if err := pool.Serve(ctx, addr); err != nil {
		log.Fatalf("lf-server: %v", err)
	}
	log.Printf("lf-server shut down cleanly")
}
