package ipc

import "encoding/json"

// ParseResult is the outcome of a Schema.SafeParse call.
type ParseResult struct {
	Success bool
	Data    any
	Err     error
}

// Ok wraps a successfully parsed (and possibly transformed) value.
func Ok(data any) ParseResult { return ParseResult{Success: true, Data: data} }

// Fail wraps a rejected payload.
func Fail(err error) ParseResult { return ParseResult{Success: false, Err: err} }

// Schema is the one-method adapter contract from spec.md §9: "multiple
// schema libraries satisfy it by adapter... treat it as a thin
// capability, not a class hierarchy." Any validator — hand-rolled,
// reflection-based, or a wrapper around a third-party library — can
// implement this interface.
type Schema interface {
	SafeParse(data json.RawMessage) ParseResult
}

// SchemaFunc adapts a plain function to the Schema interface.
type SchemaFunc func(data json.RawMessage) ParseResult

// SafeParse implements Schema.
func (f SchemaFunc) SafeParse(data json.RawMessage) ParseResult { return f(data) }

// SchemaMap maps event-type strings to their schema.
type SchemaMap map[string]Schema

// Void is a schema for events with no payload; it succeeds regardless of
// what "p" contained (there should be none) and always yields nil.
var Void Schema = SchemaFunc(func(json.RawMessage) ParseResult {
	return Ok(nil)
})

// Any accepts any JSON value unmodified as a map[string]any / []any /
// scalar, decoded via encoding/json's default unmarshal target.
var Any Schema = SchemaFunc(func(data json.RawMessage) ParseResult {
	if len(data) == 0 {
		return Ok(nil)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return Fail(err)
	}
	return Ok(v)
})

// String requires the payload to be a JSON string.
var String Schema = SchemaFunc(func(data json.RawMessage) ParseResult {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return Fail(err)
	}
	return Ok(v)
})

// Number requires the payload to be a JSON number.
var Number Schema = SchemaFunc(func(data json.RawMessage) ParseResult {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return Fail(err)
	}
	return Ok(v)
})

// Struct builds a Schema that unmarshals into a fresh *T and hands back
// the pointed-to value, relying on encoding/json to only populate the
// fields declared on T — any unknown key present in the raw payload
// (including a nested "__proto__") is never copied into the result.
func Struct[T any]() Schema {
	return SchemaFunc(func(data json.RawMessage) ParseResult {
		var v T
		if len(data) == 0 {
			return Ok(v)
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return Fail(err)
		}
		return Ok(v)
	})
}
