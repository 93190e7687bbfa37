// Package testwasm provides hand-assembled wasm binaries for tests, so the
// test suite needs no compiler toolchain. Each builder returns a fresh
// slice; section sizes are single-byte LEB128 since every payload is tiny.
package testwasm

// Empty returns the smallest valid module: magic and version only.
func Empty() []byte {
	return []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}
}

// Add returns a module exporting add(i32, i32) -> i32 and a one-page
// "memory".
//
//	(module
//	  (memory (export "memory") 1)
//	  (func (export "add") (param i32 i32) (result i32)
//	    (i32.add (local.get 0) (local.get 1))))
func Add() []byte {
	return []byte{
		0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00,
		// type: (i32, i32) -> i32
		0x01, 0x07, 0x01, 0x60, 0x02, 0x7F, 0x7F, 0x01, 0x7F,
		// function: one func of type 0
		0x03, 0x02, 0x01, 0x00,
		// memory: min 1 page
		0x05, 0x03, 0x01, 0x00, 0x01,
		// exports: "add" func 0, "memory" mem 0
		0x07, 0x10, 0x02,
		0x03, 'a', 'd', 'd', 0x00, 0x00,
		0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
		// code: local.get 0, local.get 1, i32.add
		0x0A, 0x09, 0x01, 0x07, 0x00, 0x20, 0x00, 0x20, 0x01, 0x6A, 0x0B,
	}
}

// NeedsEnvLog returns a module importing env.log(i32) and exporting
// run() plus a one-page "memory". Calling run invokes env.log(42).
//
//	(module
//	  (import "env" "log" (func $log (param i32)))
//	  (memory (export "memory") 1)
//	  (func (export "run") (call $log (i32.const 42))))
func NeedsEnvLog() []byte {
	return []byte{
		0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00,
		// types: (i32) -> (), () -> ()
		0x01, 0x08, 0x02, 0x60, 0x01, 0x7F, 0x00, 0x60, 0x00, 0x00,
		// import: env.log of type 0
		0x02, 0x0B, 0x01,
		0x03, 'e', 'n', 'v', 0x03, 'l', 'o', 'g', 0x00, 0x00,
		// function: one func of type 1
		0x03, 0x02, 0x01, 0x01,
		// memory: min 1 page
		0x05, 0x03, 0x01, 0x00, 0x01,
		// exports: "run" func 1 (func 0 is the import), "memory" mem 0
		0x07, 0x10, 0x02,
		0x03, 'r', 'u', 'n', 0x00, 0x01,
		0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
		// code: i32.const 42, call 0
		0x0A, 0x08, 0x01, 0x06, 0x00, 0x41, 0x2A, 0x10, 0x00, 0x0B,
	}
}
