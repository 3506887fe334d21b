package ipc

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// WireEnvelope is the reflectable counterpart of Envelope used only for
// schema generation — Envelope itself keeps "p" as raw JSON, which
// reflects into an opaque schema; this mirror declares "p" as `any` so
// GenerateEnvelopeSchema produces a useful document for host
// applications that want to validate the wire format outside Go.
type WireEnvelope struct {
	Ch string `json:"$ch" jsonschema:"required,description=event type, optionally namespace-prefixed"`
	P  any    `json:"p,omitempty" jsonschema:"description=schema-specific payload, absent for void events"`
}

// GenerateEnvelopeSchema reflects WireEnvelope into a JSON Schema
// document (cookie types are not included), mirroring the teacher's
// internal/config/schema.go GenerateSchemaFile pattern: a Reflector,
// a doc-level title/description, and indented JSON output.
func GenerateEnvelopeSchema() ([]byte, error) {
	r := &jsonschema.Reflector{}
	schema := r.Reflect(&WireEnvelope{})
	schema.Title = "Native Window IPC Envelope"
	schema.Description = "Wire format for messages exchanged over a typed channel."
	return json.MarshalIndent(schema, "", "  ")
}
