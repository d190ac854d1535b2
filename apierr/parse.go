package apierr

import (
	"bytes"
	"encoding/json"
	"io"
	"maps"
	"net/http"
	"strings"

	"github.com/paysera/commonsdk-go/internal/utils"
)

// Wire keys of the error body.
const (
	keyError       = "error"
	keyErrors      = "errors"
	keyDescription = "error_description"
	keyProperties  = "error_properties"
	keyData        = "error_data"

	keyFieldCode    = "code"
	keyFieldField   = "field"
	keyFieldMessage = "message"
)

// wireKeys records which recognized keys a payload carried, so that values
// such as "" or null survive Map even though they equal the zero value.
type wireKeys uint8

const (
	hasError wireKeys = 1 << iota
	hasErrors
	hasDescription
	hasProperties
	hasData

	hasFieldCode
	hasFieldField
	hasFieldMessage
)

// Decode maps a decoded JSON object onto an APIError. Unknown keys and values
// of an unexpected type are ignored; it never fails, so Decode(nil) yields an
// APIError with nothing set. error_properties is copied; error_data is kept
// as given.
func Decode(obj map[string]any) *APIError {
	e := &APIError{}
	var ok bool
	if e.Err, ok = getString(obj, keyError); ok {
		e.wire |= hasError
	}
	if e.Description, ok = getString(obj, keyDescription); ok {
		e.wire |= hasDescription
	}
	switch props := obj[keyProperties].(type) {
	case map[string]any:
		e.Properties = maps.Clone(props)
		e.wire |= hasProperties
	case nil:
		if isNull(obj, keyProperties) {
			e.wire |= hasProperties
		}
	}
	if data, ok := obj[keyData]; ok {
		e.Data = data
		e.wire |= hasData
	}
	switch list := obj[keyErrors].(type) {
	case []any:
		e.Errors = make([]FieldError, 0, len(list))
		for _, item := range list {
			fo, ok := item.(map[string]any)
			if !ok {
				continue
			}
			e.Errors = append(e.Errors, decodeFieldError(fo))
		}
		e.wire |= hasErrors
	case nil:
		if isNull(obj, keyErrors) {
			e.wire |= hasErrors
		}
	}
	return e
}

func decodeFieldError(obj map[string]any) FieldError {
	var fe FieldError
	var ok bool
	if fe.Code, ok = getString(obj, keyFieldCode); ok {
		fe.wire |= hasFieldCode
	}
	if fe.Field, ok = getString(obj, keyFieldField); ok {
		fe.wire |= hasFieldField
	}
	if fe.Message, ok = getString(obj, keyFieldMessage); ok {
		fe.wire |= hasFieldMessage
	}
	return fe
}

// isNull reports a key that is present with a JSON null value.
func isNull(obj map[string]any, key string) bool {
	v, ok := obj[key]
	return ok && v == nil
}

// Parse turns a raw error body into an APIError and attaches status.
// slurp should already be size-limited. Bodies that are not a JSON object
// become Mapping errors carrying the body; an empty body is classified by
// status alone.
func Parse(slurp []byte, status int) *APIError {
	trimmed := strings.TrimSpace(string(slurp))

	if trimmed == "" {
		e := byStatus(status)
		e.StatusCode = status
		return e
	}

	if trimmed[0] != '{' {
		e := Mapping(trimmed)
		e.StatusCode = status
		e.Raw = trimmed
		return e
	}

	obj, err := decodeObject([]byte(trimmed))
	if err != nil {
		e := Mapping(trimmed)
		e.StatusCode = status
		e.Raw = trimmed
		return e
	}

	e := Decode(obj)
	if e.wire&hasError == 0 {
		fallback := byStatus(status)
		if fallback.Err != CodeUnknown {
			e.Err = fallback.Err
			if e.wire&hasDescription == 0 {
				e.Description = fallback.Description
			}
		}
	}
	e.StatusCode = status
	e.Raw = trimmed
	return e
}

func byStatus(status int) *APIError {
	switch {
	case status >= http.StatusInternalServerError:
		return InternalServerError()
	case status == http.StatusUnauthorized:
		return Unauthorized()
	}
	return Unknown()
}

// decodeObject keeps numbers as json.Number so they survive re-encoding.
func decodeObject(b []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	// anything after the object, including a stray '}' or ']'
	if _, err := dec.Token(); err != io.EOF {
		return nil, &json.SyntaxError{Offset: dec.InputOffset()}
	}
	return obj, nil
}

// Map projects the fields back onto their wire keys: every key the decoded
// payload carried, plus any field set to a non-zero value.
// StatusCode, Raw and Cause are not part of the body and are left out.
func (e *APIError) Map() map[string]any {
	out := map[string]any{}
	if e == nil {
		return out
	}
	if e.Err != "" || e.wire&hasError != 0 {
		out[keyError] = e.Err
	}
	if e.Description != "" || e.wire&hasDescription != 0 {
		out[keyDescription] = e.Description
	}
	if e.Properties != nil {
		out[keyProperties] = e.Properties
	} else if e.wire&hasProperties != 0 {
		out[keyProperties] = nil
	}
	if e.Data != nil || e.wire&hasData != 0 {
		out[keyData] = e.Data
	}
	if e.Errors != nil {
		list := make([]any, 0, len(e.Errors))
		for _, fe := range e.Errors {
			list = append(list, fe.Map())
		}
		out[keyErrors] = list
	} else if e.wire&hasErrors != 0 {
		out[keyErrors] = nil
	}
	return out
}

func (fe FieldError) Map() map[string]any {
	out := make(map[string]any, 3)
	if fe.Code != "" || fe.wire&hasFieldCode != 0 {
		out[keyFieldCode] = fe.Code
	}
	if fe.Field != "" || fe.wire&hasFieldField != 0 {
		out[keyFieldField] = fe.Field
	}
	if fe.Message != "" || fe.wire&hasFieldMessage != 0 {
		out[keyFieldMessage] = fe.Message
	}
	return out
}

// MarshalJSON encodes the wire projection returned by Map.
func (e *APIError) MarshalJSON() ([]byte, error) {
	return utils.EncodeJSON(e.Map())
}

// UnmarshalJSON decodes an error body. Input that is not a JSON object is
// stored as a Mapping error instead of failing.
func (e *APIError) UnmarshalJSON(b []byte) error {
	if string(bytes.TrimSpace(b)) == "null" {
		return nil
	}
	obj, err := decodeObject(b)
	if err != nil || obj == nil {
		*e = *Mapping(strings.TrimSpace(string(b)))
		return nil
	}
	*e = *Decode(obj)
	return nil
}

func getString(m map[string]any, key string) (string, bool) {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}
