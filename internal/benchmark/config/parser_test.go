package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseDurationString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "standard seconds", input: "30s", expected: 30 * time.Second},
		{name: "standard minutes", input: "2m", expected: 2 * time.Minute},
		{name: "milliseconds", input: "500ms", expected: 500 * time.Millisecond},
		{name: "combined duration", input: "1h30m", expected: 90 * time.Minute},
		{name: "integer as seconds", input: "30", expected: 30 * time.Second},
		{name: "empty string", input: "", expected: 0},
		{name: "invalid format", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDurationString(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDurationString() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.expected {
				t.Errorf("ParseDurationString() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseConfig_YAML(t *testing.T) {
	yamlConfig := `
name: "Strategy Comparison"
bound: 100000
strategies:
  - serial
  - parallel
repetitions: 3
warmup: 1
workers: 4
collectResults: true
timeout: 2m
`

	cfg, err := ParseConfig([]byte(yamlConfig), "test.yaml")
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	if cfg.Name != "Strategy Comparison" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Bound != 100000 {
		t.Errorf("Bound = %d, want 100000", cfg.Bound)
	}
	if len(cfg.Strategies) != 2 || cfg.Strategies[1] != "parallel" {
		t.Errorf("Strategies = %v", cfg.Strategies)
	}
	if cfg.Repetitions != 3 || cfg.Warmup != 1 || cfg.Workers != 4 {
		t.Errorf("Repetitions/Warmup/Workers = %d/%d/%d", cfg.Repetitions, cfg.Warmup, cfg.Workers)
	}
	if !cfg.CollectResults {
		t.Error("CollectResults = false, want true")
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		t.Fatalf("TimeoutDuration() error = %v", err)
	}
	if timeout != 2*time.Minute {
		t.Errorf("TimeoutDuration() = %v, want 2m", timeout)
	}
}

func TestParseConfig_JSON(t *testing.T) {
	jsonConfig := `{
		"name": "JSON Config",
		"bound": 5000,
		"strategies": ["batch-invoke"],
		"repetitions": 2
	}`

	cfg, err := ParseConfig([]byte(jsonConfig), "test.json")
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Bound != 5000 || cfg.Strategies[0] != "batch-invoke" {
		t.Errorf("parsed config = %+v", cfg)
	}
}

func TestParseConfig_JSONSchemaViolation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "unknown property", doc: `{"bond": 10}`},
		{name: "wrong type", doc: `{"bound": "many"}`},
		{name: "negative bound", doc: `{"bound": -1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.doc), "test.json"); err == nil {
				t.Error("ParseConfig() expected schema error, got nil")
			}
		})
	}
}

func TestParseConfig_InvalidYAML(t *testing.T) {
	if _, err := ParseConfig([]byte("bound: [unclosed"), "test.yaml"); err == nil {
		t.Error("ParseConfig() expected error for invalid YAML")
	}
}

func TestParseConfig_ValidationFailure(t *testing.T) {
	if _, err := ParseConfig([]byte(`strategies: [warp-speed]`), "test.yaml"); err == nil {
		t.Error("ParseConfig() expected error for unknown strategy name")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.yaml")
	content := []byte("name: file test\nbound: 42\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Name != "file test" || cfg.Bound != 42 {
		t.Errorf("LoadConfig() = %+v", cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("/does/not/exist.yaml"); err == nil {
		t.Error("LoadConfig() expected error for missing file")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &BenchConfig{}
	ApplyDefaults(cfg)

	if cfg.Name == "" {
		t.Error("Name not defaulted")
	}
	if cfg.Bound != 10_000_000 {
		t.Errorf("Bound = %d, want 10000000", cfg.Bound)
	}
	if cfg.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", cfg.Repetitions)
	}

	// Explicit values survive.
	cfg2 := &BenchConfig{Name: "keep", Bound: 99, Repetitions: 7}
	ApplyDefaults(cfg2)
	if cfg2.Name != "keep" || cfg2.Bound != 99 || cfg2.Repetitions != 7 {
		t.Errorf("ApplyDefaults() clobbered explicit values: %+v", cfg2)
	}
}
