// Package jsonpath extracts values from JSON documents using JSONPath
// expressions.
package jsonpath

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Extract extracts a value from a JSON document using a JSONPath
// expression. Plain gjson paths (dot syntax) are accepted as well.
func Extract(json string, path string) (string, error) {
	if json == "" {
		return "", fmt.Errorf("empty JSON document")
	}
	if path == "" {
		return "", fmt.Errorf("empty JSONPath expression")
	}

	result := gjson.Get(json, toGjsonPath(path))
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}

	if result.Type == gjson.Null {
		return "null", nil
	}
	return result.String(), nil
}

// toGjsonPath converts a JSONPath expression to gjson path syntax.
//
//	JSONPath: $.strategies[0].timing.p95
//	gjson:    strategies.0.timing.p95
//
// Expressions without the leading "$." pass through with only bracket
// conversion, so native gjson queries keep working.
func toGjsonPath(path string) string {
	p := strings.TrimPrefix(path, "$.")
	p = strings.TrimPrefix(p, "$")

	// [n] -> .n
	var sb strings.Builder
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '[':
			if sb.Len() > 0 {
				sb.WriteByte('.')
			}
		case ']':
			// dropped
		default:
			sb.WriteByte(p[i])
		}
	}
	return sb.String()
}
