// Package engine wraps the host WebAssembly engine (wazero) behind the two
// operations the loader performs: compiling raw bytes into a module and
// instantiating a module, optionally with a host-function import object.
// Engine failures from compile and instantiate are passed through verbatim.
package engine
