package jsonpath

import (
	"testing"
)

const testDoc = `{
	"name": "Prime Strategies",
	"parallelism": 8,
	"strategies": [
		{"strategy": "serial", "elapsed": 1200, "timing": {"p95": 1250}},
		{"strategy": "parallel", "elapsed": 300, "timing": {"p95": 320}}
	]
}`

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "top-level field", path: "$.name", want: "Prime Strategies"},
		{name: "numeric field", path: "$.parallelism", want: "8"},
		{name: "array index", path: "$.strategies[0].strategy", want: "serial"},
		{name: "nested after index", path: "$.strategies[1].timing.p95", want: "320"},
		{name: "native gjson path", path: "strategies.0.elapsed", want: "1200"},
		{name: "gjson query", path: `strategies.#(strategy=="parallel").elapsed`, want: "300"},
		{name: "missing path", path: "$.bogus", wantErr: true},
		{name: "empty path", path: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(testDoc, tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Extract() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Extract() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractEmptyDocument(t *testing.T) {
	if _, err := Extract("", "$.name"); err == nil {
		t.Fatal("Extract() with empty document expected error, got nil")
	}
}

func TestToGjsonPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "$.a.b", want: "a.b"},
		{in: "$.a[3].b", want: "a.3.b"},
		{in: "a[0][1]", want: "a.0.1"},
		{in: "plain.path", want: "plain.path"},
	}

	for _, tt := range tests {
		if got := toGjsonPath(tt.in); got != tt.want {
			t.Errorf("toGjsonPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
