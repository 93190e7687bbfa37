package codec

import "encoding/base64"

// Decode converts the base64 payload of a compiled definition back into raw
// wasm bytes. Decoding is binary-exact: Decode(Encode(b)) returns a byte
// sequence equal to b for any b, including NUL and high bytes.
func Decode(payload string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(payload)
}

// Encode converts raw wasm bytes into the base64 payload stored in a
// compiled definition.
func Encode(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}

// ImportObject shapes the import mapping passed to instantiation.
//
// It returns nil when key is empty or env has no entries, so the loader can
// distinguish "no import object at all" from an empty one: hosts treat the
// two differently for modules with zero declared imports versus modules
// expecting an environment namespace. Otherwise the result has exactly one
// top-level key, mapping key to env.
func ImportObject(key string, env map[string]any) map[string]map[string]any {
	if key == "" || len(env) == 0 {
		return nil
	}
	return map[string]map[string]any{key: env}
}
