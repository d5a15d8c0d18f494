package parser

import (
	"errors"

	"github.com/renkav/movingai/grid"
)

// Sentinel errors for parser operations.
var (
	// ErrMalformedHeader indicates a non-integer height or width header value.
	ErrMalformedHeader = errors.New("parser: malformed map header")
	// ErrMissingMapBody indicates the contents ended before a "map" marker.
	ErrMissingMapBody = errors.New("parser: missing map body marker")
	// ErrMalformedRecord indicates a scenario line with the wrong field count
	// or a non-numeric field.
	ErrMalformedRecord = errors.New("parser: malformed scenario record")
)

// scenFields is the exact number of tab-separated fields per scenario record.
const scenFields = 9

// SceneRecord is one parsed line of a .scen file: a start/goal path query
// against a named map, bucketed by optimal length, with the known optimal
// path cost. It is plain data; nothing here validates the record against an
// actual map.
type SceneRecord struct {
	Bucket        uint32
	MapFile       string
	MapWidth      int
	MapHeight     int
	StartPos      grid.Coords
	GoalPos       grid.Coords
	OptimalLength float64
}
