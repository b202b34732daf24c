// Command ufpath inspects union-find universes and grids: it lists
// components and finds chains of new items that join two of them (the
// cheapest such chain on grids).
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
