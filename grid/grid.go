package grid

import (
	"encoding/json"
	"fmt"
	"iter"
)

// NewMap constructs a Map from a map-type tag, dimensions, and a flat
// row-major cell sequence (index = y*width + x).
// It deep-copies cells to guarantee immutability.
// Returns ErrEmptyMap if width or height is not positive,
// ErrDimensionMismatch if len(cells) != width*height; the cell sequence is
// never truncated or padded.
// The label alphabet is not validated here: unknown labels are stored as-is
// and reported non-traversable at query time.
// Complexity: O(W×H) time and memory.
func NewMap(mapType string, height, width int, cells []Cell) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyMap, width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: got %d cells, want %d", ErrDimensionMismatch, len(cells), width*height)
	}
	// Deep copy to prevent external mutation.
	buf := make([]Cell, len(cells))
	copy(buf, cells)

	topology := FourConnected
	if mapType == OctileType {
		topology = Octile
	}

	return &Map{
		mapType:  mapType,
		width:    width,
		height:   height,
		topology: topology,
		cells:    buf,
		offsets:  neighborOffsets(topology),
	}, nil
}

// neighborOffsets returns the fixed candidate enumeration order for
// Neighbors under the given topology: clockwise from north, diagonals
// included only under Octile.
func neighborOffsets(t Topology) [][2]int {
	if t == Octile {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// MapType returns the raw map-type header value the Map was built with.
func (m *Map) MapType() string { return m.mapType }

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// Topology returns the movement topology derived from the map type.
func (m *Map) Topology() Topology { return m.topology }

// index maps (x,y) to its row-major position: y*width + x.
func (m *Map) index(c Coords) int { return c.Y*m.width + c.X }

// IsOutOfBounds reports whether c lies outside [0,width) × [0,height).
// Negative components are out of bounds by definition, never wrapped.
// Complexity: O(1).
func (m *Map) IsOutOfBounds(c Coords) bool {
	return c.X < 0 || c.Y < 0 || c.X >= m.width || c.Y >= m.height
}

// CellAt returns the terrain label stored at c.
// Returns ErrOutOfBounds if c lies outside the map.
// Complexity: O(1).
func (m *Map) CellAt(c Coords) (Cell, error) {
	if m.IsOutOfBounds(c) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.X, c.Y)
	}
	return m.cells[m.index(c)], nil
}

// Coords returns a lazy sequence of every coordinate in row-major order
// (y outer, x inner), exactly width*height values. Each call yields a fresh
// sequence, so the result is freely re-rangeable. Nothing is materialized.
func (m *Map) Coords() iter.Seq[Coords] {
	return func(yield func(Coords) bool) {
		for y := 0; y < m.height; y++ {
			for x := 0; x < m.width; x++ {
				if !yield(Coords{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// MarshalJSON serializes the map header and body. The cell buffer is encoded
// as one flat row-major string.
func (m *Map) MarshalJSON() ([]byte, error) {
	body := make([]byte, len(m.cells))
	for i, c := range m.cells {
		body[i] = byte(c)
	}
	return json.Marshal(struct {
		Type   string `json:"type"`
		Height int    `json:"height"`
		Width  int    `json:"width"`
		Map    string `json:"map"`
	}{m.mapType, m.height, m.width, string(body)})
}
