// Package capture is the build-time side channel between authoring call
// sites and the external compile pipeline.
//
// During the build's evaluation pass a Sink is injected into the loader.
// Every authoring definition the loader sees is registered with the sink and
// the call path is halted with a Signal error; a separate source-scanning
// pass then compiles each registration and rewrites its call site with the
// compiled shape. The sink is deliberately an explicit dependency rather
// than an ambient package variable.
package capture
