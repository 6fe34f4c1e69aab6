// SPDX-License-Identifier: MIT

// Command linalg runs the LU and transpose engines on matrix documents.
//
// Usage:
//
//	linalg lu A.yaml
//	linalg transpose --safe A.json --out AT.cbor
//	linalg solve A.yaml --rhs 3,0,10
//	linalg det A.toml
//	linalg verify A.yaml --log-level debug
package main

import (
	"context"
	"os"

	"github.com/katalvlaran/linalg/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
