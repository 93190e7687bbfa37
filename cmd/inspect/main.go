// Command inspect examines a compiled wasm-embed definition.
//
// Usage:
//
//	inspect <definition.json>
//
// The file holds one compiled definition in its wire form, for example
// {"t":2,"s":true,"d":"AGFzbQ...","e":"env"}. The tool decodes the payload,
// compiles it through the loader, and reports the runtime tags alongside the
// module's actual export surface. On a terminal it runs an interactive view;
// otherwise it prints a plain summary.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/wippyai/wasm-embed/definition"
	"github.com/wippyai/wasm-embed/loader"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect <definition.json>")
		os.Exit(2)
	}

	report, err := inspect(context.Background(), os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspect: %v\n", err)
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		report.print(os.Stdout)
		return
	}

	if _, err := tea.NewProgram(newModel(report)).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "inspect: %v\n", err)
		os.Exit(1)
	}
}

type exportInfo struct {
	name    string
	params  int
	results int
}

type report struct {
	file      string
	def       *definition.Compiled
	rawSize   int
	exports   []exportInfo
	hasMemory bool
}

func inspect(ctx context.Context, file string) (*report, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	def, err := definition.DecodeCompiled(raw)
	if err != nil {
		return nil, err
	}

	l, err := loader.New(ctx)
	if err != nil {
		return nil, err
	}
	defer l.Close(ctx)

	// Force module output so the export surface can be enumerated without
	// needing the definition's host environment.
	acc, err := l.Bind(&definition.Compiled{T: definition.OutputModule, S: true, D: def.D})
	if err != nil {
		return nil, err
	}
	art, err := acc.Get(ctx)
	if err != nil {
		return nil, err
	}

	r := &report{file: file, def: def}

	bytesAcc, err := l.Bind(&definition.Compiled{T: definition.OutputBytes, S: true, D: def.D})
	if err != nil {
		return nil, err
	}
	bytesArt, err := bytesAcc.Get(ctx)
	if err != nil {
		return nil, err
	}
	r.rawSize = len(bytesArt.Bytes)

	for name, fn := range art.Module.ExportedFunctions() {
		r.exports = append(r.exports, exportInfo{
			name:    name,
			params:  len(fn.ParamTypes()),
			results: len(fn.ResultTypes()),
		})
	}
	sort.Slice(r.exports, func(i, j int) bool { return r.exports[i].name < r.exports[j].name })

	_, r.hasMemory = art.Module.ExportedMemories()["memory"]

	return r, nil
}

func (r *report) print(w *os.File) {
	fmt.Fprintf(w, "%s\n", r.file)
	fmt.Fprintf(w, "  output:  %s\n", r.def.T)
	fmt.Fprintf(w, "  mode:    %s\n", r.def.Mode())
	if r.def.E != "" {
		fmt.Fprintf(w, "  imports: %s\n", r.def.E)
	}
	fmt.Fprintf(w, "  size:    %d bytes decoded, %d encoded\n", r.rawSize, len(r.def.D))
	fmt.Fprintf(w, "  memory:  %v\n", r.hasMemory)
	fmt.Fprintln(w, "  exports:")
	for _, e := range r.exports {
		fmt.Fprintf(w, "    %s (%d params, %d results)\n", e.name, e.params, e.results)
	}
}
