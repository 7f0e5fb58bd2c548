package discourse

import (
	"encoding/json"
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/mitchellh/mapstructure"
)

// allowedFields is the set of top-level response fields the client
// recognizes. Everything else is dropped during normalization; the server
// growing new fields never breaks callers.
var allowedFields = map[string]struct{}{
	"success":     {},
	"message":     {},
	"errors":      {},
	"user_id":     {},
	"user":        {},
	"user_badges": {},
	"api_key":     {},
	"category":    {},
}

// body is a normalized response payload. A JSON object body is filtered to
// the allow-listed fields with keys re-keyed to snake_case; anything that
// fails JSON decoding is carried as an opaque raw string instead. Some
// endpoints legitimately answer with an empty non-JSON body on success, so
// a decode failure is never an error.
type body struct {
	fields map[string]any
	raw    string
	isJSON bool
}

// parseBody normalizes a raw response body.
func parseBody(data []byte) body {
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return body{raw: string(data)}
	}

	fields := make(map[string]any, len(decoded))
	for key, value := range decoded {
		key = strcase.ToSnake(key)
		if _, ok := allowedFields[key]; ok {
			fields[key] = value
		}
	}

	return body{fields: fields, isJSON: true}
}

// get returns the value for an allow-listed field, or nil.
func (b body) get(key string) any {
	if !b.isJSON {
		return nil
	}
	return b.fields[key]
}

// str returns the field as a string, or "" when absent or not a string.
func (b body) str(key string) string {
	s, _ := b.get(key).(string)
	return s
}

// decode maps an allow-listed field into a typed struct. JSON numbers
// arrive as float64, so decoding is weakly typed. Unknown fields inside
// the sub-object are ignored.
func (b body) decode(key string, out any) error {
	value := b.get(key)
	if value == nil {
		return fmt.Errorf("response has no %q field", key)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder for %q: %w", key, err)
	}
	if err := dec.Decode(value); err != nil {
		return fmt.Errorf("failed to decode %q field: %w", key, err)
	}
	return nil
}

// decodeAll maps the whole normalized body into a typed struct.
func (b body) decodeAll(out any) error {
	if !b.isJSON {
		return fmt.Errorf("response body is not JSON")
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to build body decoder: %w", err)
	}
	if err := dec.Decode(b.fields); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// fieldErrors extracts the "errors" payload as a field→messages map.
// Returns nil when the field is absent or empty.
func (b body) fieldErrors() map[string][]string {
	value := b.get("errors")
	if value == nil {
		return nil
	}

	var fields map[string][]string
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &fields,
		WeaklyTypedInput: true,
	})
	if err != nil || dec.Decode(value) != nil {
		return nil
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
