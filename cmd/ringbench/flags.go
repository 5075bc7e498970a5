package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	Capacity    int
	Iterations  int
	Policy      string
	Scenario    string
	ForceHeap   bool
	LogLevel    string
	LogFormat   string
	MetricsPort int
	RunTimeout  time.Duration
	ShowVersion bool
	ShowHelp    bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	// Define flags with environment variable fallback
	flag.IntVar(&cfg.Capacity, "capacity",
		getEnvInt("RINGBENCH_CAPACITY", 1024),
		"Buffer capacity (env: RINGBENCH_CAPACITY)")

	flag.IntVar(&cfg.Iterations, "iterations",
		getEnvInt("RINGBENCH_ITERATIONS", 10_000_000),
		"Operations per scenario (env: RINGBENCH_ITERATIONS)")

	flag.StringVar(&cfg.Policy, "policy",
		getEnv("RINGBENCH_POLICY", "overwrite"),
		"Overflow policy: overwrite, discard (env: RINGBENCH_POLICY)")

	flag.StringVar(&cfg.Scenario, "scenario",
		getEnv("RINGBENCH_SCENARIO", "all"),
		"Scenario: push, cycle, window, iterate, all (env: RINGBENCH_SCENARIO)")

	flag.BoolVar(&cfg.ForceHeap, "force-heap",
		getEnvBool("RINGBENCH_FORCE_HEAP", false),
		"Force heap storage regardless of capacity (env: RINGBENCH_FORCE_HEAP)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("RINGBENCH_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: RINGBENCH_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("RINGBENCH_LOG_FORMAT", "text"),
		"Log format: json, text (env: RINGBENCH_LOG_FORMAT)")

	flag.IntVar(&cfg.MetricsPort, "metrics-port",
		getEnvInt("RINGBENCH_METRICS_PORT", 0),
		"Prometheus metrics port, 0 to disable (env: RINGBENCH_METRICS_PORT)")

	flag.DurationVar(&cfg.RunTimeout, "timeout",
		getEnvDuration("RINGBENCH_TIMEOUT", 5*time.Minute),
		"Overall run timeout (env: RINGBENCH_TIMEOUT)")

	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")

	// Custom usage
	flag.Usage = func() {
		printDetailedHelp()
	}

	flag.Parse()

	return cfg
}

func validateFlags(cfg *CLIConfig) error {
	// Skip validation for special flags
	if cfg.ShowVersion || cfg.ShowHelp {
		return nil
	}

	if cfg.Capacity <= 0 {
		return fmt.Errorf("invalid capacity: %d", cfg.Capacity)
	}

	if cfg.Iterations <= 0 {
		return fmt.Errorf("invalid iteration count: %d", cfg.Iterations)
	}

	validPolicies := []string{"overwrite", "discard"}
	if !contains(validPolicies, cfg.Policy) {
		return fmt.Errorf("invalid policy: %s", cfg.Policy)
	}

	validScenarios := []string{"push", "cycle", "window", "iterate", "all"}
	if !contains(validScenarios, cfg.Scenario) {
		return fmt.Errorf("invalid scenario: %s", cfg.Scenario)
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	validFormats := []string{"json", "text"}
	if !contains(validFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	if cfg.MetricsPort < 0 || cfg.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port: %d", cfg.MetricsPort)
	}

	return nil
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - Circular Buffer Benchmark Driver

Usage: %s [options]

Options:
`, appName, os.Args[0])
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, `
Examples:
  # Push throughput with a power-of-two capacity
  %s --scenario=push --capacity=1024

  # Sliding-window churn with the discard policy
  %s --scenario=window --policy=discard

  # All scenarios with live Prometheus metrics
  %s --metrics-port=9090

  # Run with environment variables
  export RINGBENCH_CAPACITY=4096
  export RINGBENCH_ITERATIONS=50000000
  %s

Version: %s
Build: %s
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], Version, BuildTime)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// Utility function to check if slice contains string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
