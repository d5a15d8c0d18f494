// Package grid defines the core types and sentinel errors for the
// MovingAI grid-map model.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyMap indicates a non-positive width or height at construction.
	ErrEmptyMap = errors.New("grid: width and height must be positive")
	// ErrDimensionMismatch indicates the supplied cell sequence length does
	// not equal width*height.
	ErrDimensionMismatch = errors.New("grid: cell count does not match width*height")
	// ErrOutOfBounds indicates a direct cell access outside the map bounds.
	ErrOutOfBounds = errors.New("grid: coordinate outside map bounds")
)

// Cell is a single terrain label, one byte of the MovingAI map alphabet.
// Labels outside the known alphabet are legal to store and are treated as
// blocking by every traversability query.
type Cell byte

// The MovingAI terrain alphabet.
const (
	// Ground is open ground, always enterable.
	Ground Cell = '.'
	// AltGround is the open-ground variant, always enterable.
	AltGround Cell = 'G'
	// Swamp is enterable only from Ground or Swamp.
	Swamp Cell = 'S'
	// Water is enterable only from Water.
	Water Cell = 'W'
	// Obstacle is never enterable.
	Obstacle Cell = '@'
	// Void marks out-of-bounds regions inside the map body; never enterable.
	Void Cell = 'O'
	// Tree is never enterable.
	Tree Cell = 'T'
)

// Coords identifies a tile by column (X) and row (Y). Valid coordinates are
// non-negative; a Coords with a negative component is out of bounds on every
// map and is never produced by Coords or Neighbors.
type Coords struct {
	X, Y int
}

// Topology selects movement connectivity: 8-directional (Octile) or
// 4-directional (FourConnected). It is fixed at map construction from the
// map-type header: "octile" selects Octile, anything else FourConnected.
type Topology int

const (
	// FourConnected permits orthogonal steps only: N, E, S, W.
	FourConnected Topology = iota
	// Octile additionally permits diagonal steps, subject to the
	// corner-cutting rule.
	Octile
)

// OctileType is the map-type header value selecting Octile topology.
const OctileType = "octile"

// Map is an immutable MovingAI grid map: a row-major buffer of Cell labels
// with fixed dimensions and topology. Construct one with NewMap; it never
// mutates afterwards, so concurrent readers need no synchronization.
type Map struct {
	mapType  string
	width    int
	height   int
	topology Topology
	cells    []Cell
	offsets  [][2]int
}
