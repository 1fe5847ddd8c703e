// Command tinflex builds hat/squeeze envelopes for the built-in densities
// and prints them as a table, JSON or YAML.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
