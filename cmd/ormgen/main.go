// Command ormgen is the static-codegen supplement to pkg/schema.Derive: it
// parses a package's .go files for `surreal:"..."` struct tags (or an
// `ormgen:model` doc-comment marker) and emits one "<name>_generated.go"
// companion per model implementing model.SchemaModel without runtime
// reflection (spec §4.4). It runs none of pkg/schema.Derive's validation
// rules; the only build-time check in its output is the model.SchemaModel
// interface assertion.
//
// Usage:
//
//	ormgen -dir ./internal/models
//
// Typically invoked via a `//go:generate ormgen -dir .` directive next to
// the models it covers.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	dir := flag.String("dir", ".", "Directory containing the model structs to generate companions for")
	flag.Parse()

	models, pkgName, err := discoverModels(*dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ormgen:", err)
		os.Exit(1)
	}
	if len(models) == 0 {
		fmt.Println("ormgen: no models found in", *dir)
		return
	}

	written, err := writeGenerated(*dir, pkgName, models)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ormgen:", err)
		os.Exit(1)
	}
	for _, path := range written {
		fmt.Println("ormgen: wrote", path)
	}
}
