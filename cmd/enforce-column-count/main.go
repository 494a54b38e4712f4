// Command enforce-column-count validates that every row of a delimited file
// has the expected number of columns, reporting offenders and optionally
// writing a cleaned copy or replacing the input in place.
package main

import (
	"os"

	"github.com/David-Botos/ingress-lint/pkg/cli"
)

func main() {
	os.Exit(cli.NewColumnCountApp().Execute(os.Args[1:]))
}
