// Package main provides the CLI entrypoint for resolver-generator.
//
// resolver-generator is a codegen tool that:
//   - Loads Go packages (go/types) into a flat, ordered type catalog
//   - Collects resolver specifications from source directives and an
//     optional YAML manifest
//   - Emits one reflection-free dispatch artifact per property-name key
//   - Reports duplicate specifications as located, compile-blocking errors
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "resolver-generator:", err)
		os.Exit(1)
	}
}
