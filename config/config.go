// Package config loads the optional ambient configuration for the server
// binaries: queue capacity, worker pool sizes, and the metrics listen
// address. The port itself is always a required CLI positional argument
// per §6 and is never read from this file.
//
// The loader shape (Load reading YAML over the defaults, Validate
// range-checking the result) follows
// mundrapranay/silhouette-db's algorithms/common/config.go.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultQueueCapacity is the reference queue capacity C from §3.
const DefaultQueueCapacity = 32

// DefaultLFPoolSize is the reference leader-follower pool size P from §4.4.
const DefaultLFPoolSize = 4

// Config holds the optional tunables a server binary may load from a
// YAML file via the -config flag.
type Config struct {
	// QueueCapacity is the bounded capacity of each pipeline stage queue.
	QueueCapacity int `yaml:"queue_capacity"`

	// LFPoolSize is the number of workers in the leader-follower pool.
	LFPoolSize int `yaml:"lf_pool_size"`

	// MetricsAddr is the listen address for the Prometheus /metrics
	// endpoint. Empty disables it.
	MetricsAddr string `yaml:"metrics_addr"`
}

// Default returns a Config with the reference values from §3/§4.4.
func Default() Config {
	return Config{
		QueueCapacity: DefaultQueueCapacity,
		LFPoolSize:    DefaultLFPoolSize,
		MetricsAddr:   "",
	}
}

// Load reads a YAML config file at path, applying Default() for any
// field left zero-valued. An empty path returns Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	loaded := Config{}
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if loaded.QueueCapacity > 0 {
		cfg.QueueCapacity = loaded.QueueCapacity
	}
	if loaded.LFPoolSize > 0 {
		cfg.LFPoolSize = loaded.LFPoolSize
	}
	if loaded.MetricsAddr != "" {
		cfg.MetricsAddr = loaded.MetricsAddr
	}

	return cfg.Validate()
}

// Validate checks the config's invariants, returning c unchanged when they
// hold.
func (c Config) Validate() (Config, error) {
	if c.QueueCapacity <= 0 {
		return Config{}, fmt.Errorf("config: queue_capacity must be > 0, got %d", c.QueueCapacity)
	}
	if c.LFPoolSize <= 0 {
		return Config{}, fmt.Errorf("config: lf_pool_size must be > 0, got %d", c.LFPoolSize)
	}
	return c, nil
}
