package definition

import (
	"bytes"
	"encoding/json"

	"github.com/wippyai/wasm-embed/errors"
)

// IsCompiledPayload reports whether a serialized definition is in the
// compiled shape. Detection is structural: presence of the "d" key.
func IsCompiledPayload(raw []byte) bool {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	_, ok := probe["d"]
	return ok
}

// DecodeCompiled parses the serialized form of a compiled definition.
// Decoding is strict: the payload must carry exactly t, s, d and optionally
// e; unknown keys and authoring-shaped payloads are rejected.
func DecodeCompiled(raw []byte) (*Compiled, error) {
	if !IsCompiledPayload(raw) {
		return nil, errors.Shape(`payload has no "d" key; authoring definitions cannot be decoded at run time`)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var c Compiled
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Wrap(errors.PhaseValidate, errors.KindShape, err, "decode compiled definition")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
