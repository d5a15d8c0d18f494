// Package astar defines the options, result type, and sentinel errors for
// the A* search over grid maps.
package astar

import (
	"errors"
	"math"

	"github.com/renkav/movingai/grid"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilMap indicates a nil *grid.Map was passed to FindPath.
	ErrNilMap = errors.New("astar: map is nil")

	// ErrStartUntraversable indicates the start tile can never be occupied.
	ErrStartUntraversable = errors.New("astar: start tile is not traversable")

	// ErrGoalUntraversable indicates the goal tile can never be occupied.
	ErrGoalUntraversable = errors.New("astar: goal tile is not traversable")

	// ErrNoPath indicates the goal is unreachable from the start.
	ErrNoPath = errors.New("astar: no path between start and goal")

	// ErrExpansionBudget indicates the MaxExpansions budget was exhausted
	// before the goal was reached.
	ErrExpansionBudget = errors.New("astar: expansion budget exhausted")

	// ErrBadMaxExpansions indicates a non-positive MaxExpansions value.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be positive")
)

// Options configures a single FindPath run.
//
// ReturnPath    – if true (default), Result.Path holds the full tile
// sequence from start to goal; if false only the cost is produced.
// MaxExpansions – cap on finalized tile expansions. Must be > 0.
// Default is math.MaxInt (effectively unbounded).
type Options struct {
	ReturnPath    bool
	MaxExpansions int
}

// Option is a functional option for configuring FindPath.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: full path
// reconstruction, no expansion cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath:    true,
		MaxExpansions: math.MaxInt,
	}
}

// WithoutPath disables predecessor bookkeeping; Result.Path comes back nil
// and only Result.Cost is meaningful.
func WithoutPath() Option {
	return func(o *Options) {
		o.ReturnPath = false
	}
}

// WithMaxExpansions caps the number of tiles the search may finalize.
// Panics with ErrBadMaxExpansions for non-positive n.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// Result is the outcome of a successful FindPath run.
type Result struct {
	// Path is the tile sequence from start to goal inclusive,
	// nil when WithoutPath was set.
	Path []grid.Coords
	// Cost is the total path cost: orthogonal steps count 1,
	// diagonal steps √2.
	Cost float64
	// Expanded is the number of tiles the search finalized.
	Expanded int
}
