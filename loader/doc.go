// Package loader turns compiled definitions into bytes, modules, or live
// instances, memoizing intermediate artifacts per definition.
//
// Bind dispatches on the definition's shape: compiled definitions yield an
// Accessor; authoring definitions are handed to the capture sink during the
// build pass, or fail with MissingCompileStep at ordinary run time. The
// accessor's behavior is a matrix of output type (bytes, module, instance)
// by execution contract (blocking Get, future-returning GetAsync).
//
// Decoded bytes and compiled modules live in single-init cache cells owned
// exclusively by their accessor. Instances are constructed fresh on every
// invocation. Concurrent first calls in async mode are not deduplicated;
// see Accessor.GetAsync.
package loader
