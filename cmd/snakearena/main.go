// Command snakearena runs grid survival matches, interactively in a terminal
// or headless with a JSON summary
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "snakearena: %v\n", err)
		os.Exit(1)
	}
}
