// Package movingai is a Go library for the MovingAI pathfinding benchmark
// format: 2D grid maps (.map) and their scenario files (.scen).
//
// What it gives you:
//
//	grid/   – the immutable grid map and its traversability rules:
//	          per-tile terrain labels, octile / 4-connected adjacency,
//	          directed step legality with corner-cutting, neighbor sets.
//	parser/ – text parsers for the .map and .scen formats.
//	astar/  – an A* driver over grid.Map, useful as a reference consumer
//	          and for checking scenario optimal lengths.
//
// The grid package is the foundation: every search algorithm built on top
// of it (A*, JPS, ...) relies on its exact step-legality rules, so those
// rules follow the benchmark semantics to the letter: swamp is enterable
// only from open ground or swamp, water only from water, and a diagonal
// step is legal only when both L-shaped orthogonal detours around it are
// fully legal.
//
// Maps are immutable once constructed and safe for concurrent readers.
package movingai
