// Command enforce-integer-column validates that the first column of every
// row of a delimited file is a plain non-negative integer, reporting
// offenders and optionally writing a cleaned copy.
package main

import (
	"os"

	"github.com/David-Botos/ingress-lint/pkg/cli"
)

func main() {
	os.Exit(cli.NewIntegerColumnApp().Execute(os.Args[1:]))
}
