// Package wasmembed turns small WebAssembly binaries embedded in generated
// Go code into bytes, compiled modules, or live instances at run time.
//
// A build step compiles inline source (C, WAT, Rust, ...) into a wasm binary
// and rewrites the call site so it carries a compiled Definition: a base64
// payload plus a handful of runtime tags. This library is the runtime half of
// that contract; it never invokes a compiler toolchain.
//
// # Architecture Overview
//
// The library is organized into small packages with distinct responsibilities:
//
//	wasmembed/           Root package with the Load entry point generated code calls
//	├── definition/      Definition data model: authoring and compiled shapes
//	├── capture/         Build-time capture sink for uncompiled definitions
//	├── codec/           base64 payload codec and import-object shaping
//	├── loader/          Accessor dispatch, memoization, and futures
//	├── engine/          wazero host-engine wrapper (compile, instantiate, env)
//	└── errors/          Structured error types
//
// # Quick Start
//
// A generated call site binds a compiled Definition and produces the artifact
// it was authored to produce:
//
//	acc, err := wasmembed.Load(ctx, &definition.Compiled{
//	    T: definition.OutputInstance,
//	    S: true,
//	    D: "AGFzbQEAAAA...",
//	    E: "env",
//	}, loader.WithEnv(map[string]any{
//	    "log": func(ctx context.Context, v uint32) { fmt.Println(v) },
//	}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	art, err := acc.Get(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sum, _ := art.Instance.ExportedFunction("add").Call(ctx, 2, 3)
//
// Asynchronous definitions return a Future instead:
//
//	art, err := acc.GetAsync(ctx).Await()
//
// # Compile-Time Capture
//
// During the build-time evaluation pass a capture.Sink is injected into the
// Loader. Binding an authoring-shaped Definition then registers it with the
// sink and returns a *capture.Signal, halting the call path so the external
// compile pipeline can take over. At ordinary run time no sink exists and an
// authoring Definition is a fatal MissingCompileStep error: the artifact was
// never compiled.
//
// # Memory Contract
//
// Compiled modules are expected to export their linear memory under the name
// "memory" alongside the declared function exports. The loader does not
// verify this; callers read and write linear memory directly through the
// wazero api.Module they receive.
package wasmembed
