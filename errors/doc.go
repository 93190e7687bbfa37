// Package errors provides structured error types for the wasm-embed library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category) and support errors.Is/As. Use the convenience constructors:
//
//	err := errors.MissingCompileStep("fast-hash")
//	err := errors.FieldMissing("fast-hash", "code")
//
// The loader itself defines a single error condition, MissingCompileStep.
// Failures reported by the host WebAssembly engine are deliberately not
// wrapped in this package's Error type; they reach the caller unchanged.
package errors
