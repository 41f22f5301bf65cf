// main is the entry point for the orbweave CLI.
package main

import (
	"fmt"
	"os"

	"github.com/orbweave/orbweave/cmd"
	"github.com/orbweave/orbweave/internal/iocache"
)

func main() {
	err := cmd.Execute()
	iocache.CloseCaching()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
