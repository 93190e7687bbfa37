// Package definition holds the data model for one embeddable wasm unit.
//
// A Definition exists in exactly one of two shapes. Authoring carries inline
// source text and compile configuration; it is what a developer writes at a
// call site. Compiled carries the base64-encoded binary plus the minimal
// runtime tags t, s, d and e; it is what the compile pipeline writes back.
// Shape detection on serialized payloads is structural: presence of "d"
// means compiled.
//
// Export signatures use WIT types from go.bytecodealliance.org so that build
// tooling can shape-check the declared export surface; the loader itself
// never reads them.
package definition
