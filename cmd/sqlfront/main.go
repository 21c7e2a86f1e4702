// Command sqlfront parses, dumps, and lints SQL files using the
// sqlfront/parser library.
package main

import (
	"fmt"
	"os"

	"github.com/sqlfront/parser/cmd/sqlfront/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
