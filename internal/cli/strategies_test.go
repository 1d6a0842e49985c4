package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wesleyorama2/primebench/internal/benchmark/strategy"
)

func TestStrategiesCommand(t *testing.T) {
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs([]string{"strategies"})

	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("Error executing strategies command: %v", err)
	}

	listing := out.String()
	for _, st := range strategy.All() {
		if !strings.Contains(listing, string(st)) {
			t.Errorf("Expected listing to mention %q, got:\n%s", st, listing)
		}
	}

	// Canonical execution order is preserved in the listing.
	serialIdx := strings.Index(listing, string(strategy.TypeSerial))
	submitIdx := strings.Index(listing, string(strategy.TypeBatchSubmit))
	if serialIdx < 0 || submitIdx < 0 || serialIdx > submitIdx {
		t.Errorf("Expected serial before batch-submit in listing:\n%s", listing)
	}
}
