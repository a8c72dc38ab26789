// Command lvsearch runs the search strategies against a Pacman-style maze layout.
//
//	lvsearch run --layout testdata/tinyMaze.lay --strategy astar --heuristic manhattan
//	lvsearch compare --layout testdata/tinyMaze.lay
//	lvsearch version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvsearch:", err)
		os.Exit(1)
	}
}
