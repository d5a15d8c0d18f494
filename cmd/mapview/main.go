// Package main is a terminal viewer for MovingAI benchmark maps.
//
// Usage:
//
//	mapview <map-file> [scen-file]
//
// Arrow keys or hjkl move the tile cursor; the legal neighbors of the
// cursor tile are highlighted. With a scenario file loaded, n/p cycle
// through its records and draw the A* path between start and goal.
// Esc or q quits.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/renkav/movingai/parser"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <map-file> [scen-file]\n", os.Args[0])
		os.Exit(2)
	}

	m, err := parser.ParseMapFile(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}

	var scen []parser.SceneRecord
	if len(os.Args) == 3 {
		if scen, err = parser.ParseScenFile(os.Args[2]); err != nil {
			log.Fatalf("Failed to load scenario file: %v", err)
		}
	}

	v, err := newViewer(m, scen)
	if err != nil {
		log.Fatalf("Failed to initialize terminal: %v", err)
	}
	defer v.close()

	v.run()
}
