// Package main implements ringbench, a benchmark driver for the circular
// buffer. It measures single-threaded throughput for push, push/take cycles,
// sliding-window churn, and iteration, and can expose buffer metrics over
// Prometheus while running.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/SergeyMakeev/CircularBuffer/circular"
	"github.com/SergeyMakeev/CircularBuffer/metric"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "ringbench"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Benchmark run failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cfg := parseFlags()
	if err := validateFlags(cfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if cfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	}

	if cfg.ShowHelp {
		printDetailedHelp()
		return nil
	}

	logger := setupLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RunTimeout)
	defer cancel()

	// Optional Prometheus exposition while the benchmark runs.
	var registry *metric.MetricsRegistry
	if cfg.MetricsPort > 0 {
		registry = metric.NewMetricsRegistry()
		server := metric.NewServer(cfg.MetricsPort, "/metrics", registry)
		go func() {
			if err := server.Start(); err != nil {
				slog.Error("Metrics server failed", "error", err)
			}
		}()
		defer func() { _ = server.Stop() }()
		slog.Info("Metrics server started", "address", server.Address())
	}

	slog.Info("Starting benchmark",
		"capacity", cfg.Capacity,
		"iterations", cfg.Iterations,
		"policy", cfg.Policy,
		"scenario", cfg.Scenario,
		"force_heap", cfg.ForceHeap)

	buf, err := newBuffer(cfg, registry)
	if err != nil {
		return fmt.Errorf("buffer construction: %w", err)
	}

	scenarios := selectScenarios(cfg.Scenario)
	for _, sc := range scenarios {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("run timeout: %w", err)
		}

		buf.Clear()
		buf.Stats().Reset()

		elapsed := sc.run(buf, cfg.Iterations)
		report(sc.name, buf, cfg.Iterations, elapsed)
	}

	slog.Info("Benchmark complete", "scenarios", len(scenarios))
	return nil
}

func newBuffer(cfg *CLIConfig, registry *metric.MetricsRegistry) (*circular.Buffer[int], error) {
	options := []circular.Option[int]{}

	if cfg.Policy == "discard" {
		options = append(options, circular.WithPolicy[int](circular.Discard))
	}
	if cfg.ForceHeap {
		options = append(options, circular.WithInlineThreshold[int](0))
	}
	if registry != nil {
		options = append(options, circular.WithMetrics[int](registry, "ringbench"))
	}

	return circular.New[int](cfg.Capacity, options...)
}

// scenario is one measured workload over a prepared buffer.
type scenario struct {
	name string
	run  func(buf *circular.Buffer[int], iterations int) time.Duration
}

func selectScenarios(name string) []scenario {
	all := []scenario{
		{"push", runPush},
		{"cycle", runCycle},
		{"window", runWindow},
		{"iterate", runIterate},
	}
	if name == "all" {
		return all
	}
	for _, sc := range all {
		if sc.name == name {
			return []scenario{sc}
		}
	}
	return nil
}

// runPush measures raw back-insert throughput. Past capacity, every insert
// exercises the overflow policy.
func runPush(buf *circular.Buffer[int], iterations int) time.Duration {
	start := time.Now()
	for i := 0; i < iterations; i++ {
		buf.PushBack(i)
	}
	return time.Since(start)
}

// runCycle measures paired insert/remove operations with the buffer held at
// half capacity, so neither end ever wraps the policy in.
func runCycle(buf *circular.Buffer[int], iterations int) time.Duration {
	threshold := buf.Capacity() / 2
	if threshold == 0 {
		threshold = 1
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		buf.PushBack(i)
		if buf.Len() >= threshold {
			buf.TakeFront()
		}
	}
	return time.Since(start)
}

// runWindow measures sliding-window churn: the buffer is kept exactly full
// and each iteration drops the oldest element before pushing a new one.
func runWindow(buf *circular.Buffer[int], iterations int) time.Duration {
	for i := 0; i < buf.Capacity(); i++ {
		buf.PushBack(i)
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		buf.DropFront()
		buf.PushBack(i)
	}
	return time.Since(start)
}

// runIterate measures full forward traversal of a wrapped buffer, counting
// one traversal pass per capacity elements visited.
func runIterate(buf *circular.Buffer[int], iterations int) time.Duration {
	for i := 0; i < buf.Capacity()*3/2; i++ {
		buf.PushBack(i) // force the seam into the middle
	}

	passes := iterations / buf.Capacity()
	if passes == 0 {
		passes = 1
	}

	sum := 0
	start := time.Now()
	for p := 0; p < passes; p++ {
		for _, v := range buf.All() {
			sum += v
		}
	}
	elapsed := time.Since(start)
	_ = sum
	return elapsed
}

func report(name string, buf *circular.Buffer[int], iterations int, elapsed time.Duration) {
	opsPerSec := float64(iterations) / elapsed.Seconds()
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iterations)

	summary := buf.Stats().Summary()
	slog.Info("Scenario complete",
		"scenario", name,
		"elapsed", elapsed.Round(time.Millisecond),
		"ops_per_sec", fmt.Sprintf("%.0f", opsPerSec),
		"ns_per_op", fmt.Sprintf("%.1f", nsPerOp),
		"storage", buf.Storage().String(),
		"inserts", summary.Inserts,
		"removals", summary.Removals,
		"overwrites", summary.Overwrites,
		"discards", summary.Discards,
		"max_size", summary.MaxSize)
}
