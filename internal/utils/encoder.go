package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EncodeJSON encodes v without HTML escaping, so descriptions such as
// "a < b" reach logs and callers unchanged. The trailing newline added by
// json.Encoder is dropped.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
