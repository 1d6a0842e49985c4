package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/wesleyorama2/primebench/internal/benchmark/config"
	"github.com/wesleyorama2/primebench/internal/benchmark/engine"
)

func TestOverlayFlags(t *testing.T) {
	cfg := &config.BenchConfig{
		Bound:       5000,
		Repetitions: 3,
	}

	runCmd.Flags().Set("bound", "100")
	runCmd.Flags().Set("strategies", "serial,parallel")
	runCmd.Flags().Set("warmup", "2")
	defer resetRunFlags(t)

	if err := overlayFlags(runCmd, cfg); err != nil {
		t.Fatalf("overlayFlags returned error: %v", err)
	}

	if cfg.Bound != 100 {
		t.Errorf("Expected bound 100, got %d", cfg.Bound)
	}
	if len(cfg.Strategies) != 2 || cfg.Strategies[0] != "serial" || cfg.Strategies[1] != "parallel" {
		t.Errorf("Expected strategies [serial parallel], got %v", cfg.Strategies)
	}
	if cfg.Warmup != 2 {
		t.Errorf("Expected warmup 2, got %d", cfg.Warmup)
	}
	// Flags that were not set leave the loaded values alone.
	if cfg.Repetitions != 3 {
		t.Errorf("Expected repetitions 3, got %d", cfg.Repetitions)
	}
}

func TestOverlayFlagsInvalid(t *testing.T) {
	cfg := &config.BenchConfig{}

	runCmd.Flags().Set("strategies", "serial,warp-drive")
	defer resetRunFlags(t)

	if err := overlayFlags(runCmd, cfg); err == nil {
		t.Error("Expected validation error for unknown strategy, got nil")
	}
}

func TestRunCommandWritesJSON(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "results.json")

	RootCmd.SetArgs([]string{
		"run",
		"--bound", "1000",
		"--strategies", "serial",
		"--output", outputPath,
		"--quiet", "--no-color",
	})
	defer resetRunFlags(t)

	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("Error executing run command: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Expected results file to exist: %v", err)
	}

	var result engine.Result
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Results file is not valid JSON: %v", err)
	}
	if len(result.Strategies) != 1 {
		t.Fatalf("Expected 1 strategy result, got %d", len(result.Strategies))
	}
	if result.Strategies[0].Primes != 167 {
		t.Errorf("Expected 167 primes below 1000, got %d", result.Strategies[0].Primes)
	}
}

func TestRunCommandConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bench.yaml")
	configData := []byte(`name: CLI test
bound: 500
strategies:
  - serial
`)
	if err := os.WriteFile(configPath, configData, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	RootCmd.SetArgs([]string{"run", "--config", configPath, "--quiet", "--no-color"})
	defer resetRunFlags(t)

	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("Error executing run command with config file: %v", err)
	}
}

func TestRunCommandMissingConfigFile(t *testing.T) {
	RootCmd.SetArgs([]string{"run", "--config", "does-not-exist.yaml"})
	RootCmd.SetErr(new(bytes.Buffer))
	defer resetRunFlags(t)

	if err := RootCmd.Execute(); err == nil {
		t.Error("Expected error for missing config file, got nil")
	}
}

// resetRunFlags restores the run command's flags to their defaults so tests
// do not leak state into each other.
func resetRunFlags(t *testing.T) {
	t.Helper()
	runCmd.Flags().Visit(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			if err := sv.Replace(nil); err != nil {
				t.Fatalf("Failed to reset flag %s: %v", f.Name, err)
			}
		} else if err := f.Value.Set(f.DefValue); err != nil {
			t.Fatalf("Failed to reset flag %s: %v", f.Name, err)
		}
		f.Changed = false
	})
}
