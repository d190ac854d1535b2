package utils_test

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/paysera/commonsdk-go/internal/utils"
)

func TestEncodeJSON_NoHTMLEscaping_NoTrailingNewline(t *testing.T) {
	in := map[string]any{
		"error_description": "value must be < 10 & > 0",
	}

	b, err := utils.EncodeJSON(in)
	if err != nil {
		t.Fatalf("EncodeJSON error: %v", err)
	}
	out := string(b)

	if strings.Contains(out, `\u003c`) || strings.Contains(out, `\u003e`) || strings.Contains(out, `\u0026`) {
		t.Fatalf("found escaped HTML in output: %q", out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Fatalf("output must not end with newline, got: %q", out)
	}

	var rt map[string]any
	if err := json.Unmarshal(b, &rt); err != nil {
		t.Fatalf("round-trip unmarshal failed: %v\npayload: %q", err, out)
	}
	if rt["error_description"] != in["error_description"] {
		t.Fatalf("round-trip value = %v, want %v", rt["error_description"], in["error_description"])
	}
}

func TestEncodeJSON_ErrorOnUnsupportedValues(t *testing.T) {
	// encoding/json rejects NaN/Inf
	in := map[string]any{
		"bad": math.Inf(1),
	}
	if _, err := utils.EncodeJSON(in); err == nil {
		t.Fatalf("expected error for unsupported value, got nil")
	}
}

func TestEncodeJSON_ErrorOnUnsupportedType(t *testing.T) {
	_, err := utils.EncodeJSON(map[string]any{"c": make(chan int)})
	if err == nil {
		t.Fatalf("expected error for unsupported type (chan), got nil")
	}
	if !strings.Contains(err.Error(), "encode json:") {
		t.Fatalf("error should be wrapped with context, got: %v", err)
	}
}
