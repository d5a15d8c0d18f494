package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renkav/movingai/grid"
)

//----------------------------------------------------------------------------//
// IsTraversable
//----------------------------------------------------------------------------//

// TestIsTraversable checks the context-free label classification, including
// out-of-bounds coordinates and unrecognized labels.
func TestIsTraversable(t *testing.T) {
	m := mustMap(t, "octile", ".GS", "W@O", "T?.")

	cases := []struct {
		name string
		c    grid.Coords
		want bool
	}{
		{"Ground", grid.Coords{X: 0, Y: 0}, true},
		{"AltGround", grid.Coords{X: 1, Y: 0}, true},
		{"Swamp", grid.Coords{X: 2, Y: 0}, true},
		{"Water", grid.Coords{X: 0, Y: 1}, true},
		{"Obstacle", grid.Coords{X: 1, Y: 1}, false},
		{"Void", grid.Coords{X: 2, Y: 1}, false},
		{"Tree", grid.Coords{X: 0, Y: 2}, false},
		{"Unrecognized", grid.Coords{X: 1, Y: 2}, false},
		{"OutOfBoundsEast", grid.Coords{X: 3, Y: 0}, false},
		{"OutOfBoundsNegative", grid.Coords{X: -1, Y: 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, m.IsTraversable(tc.c))
		})
	}
}

//----------------------------------------------------------------------------//
// Adjacent
//----------------------------------------------------------------------------//

// TestAdjacent_Octile verifies 8-connected adjacency, including the self-case.
func TestAdjacent_Octile(t *testing.T) {
	m := mustMap(t, "octile", "...", "...", "...")

	a := grid.Coords{X: 1, Y: 1}
	adjacent := []grid.Coords{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
		{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
	}
	for _, b := range adjacent {
		assert.True(t, m.Adjacent(a, b), "Adjacent(%v,%v)", a, b)
	}
	assert.False(t, m.Adjacent(grid.Coords{X: 0, Y: 0}, grid.Coords{X: 2, Y: 0}))
	assert.False(t, m.Adjacent(grid.Coords{X: 0, Y: 0}, grid.Coords{X: 2, Y: 2}))
}

// TestAdjacent_FourConnected verifies that diagonals and the self-case are
// not adjacent on 4-connected maps.
func TestAdjacent_FourConnected(t *testing.T) {
	m := mustMap(t, "tile", "...", "...", "...")

	a := grid.Coords{X: 1, Y: 1}
	for _, b := range []grid.Coords{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1}} {
		assert.True(t, m.Adjacent(a, b), "Adjacent(%v,%v)", a, b)
	}
	for _, b := range []grid.Coords{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, a} {
		assert.False(t, m.Adjacent(a, b), "Adjacent(%v,%v)", a, b)
	}
}

//----------------------------------------------------------------------------//
// IsTraversableFrom: terrain table
//----------------------------------------------------------------------------//

// TestIsTraversableFrom_TerrainTable drives every interesting (from,to)
// label pair through an orthogonal step. Swamp accepts entry only from
// ground or swamp, water only from water; the soft terrains never
// interconnect directly.
func TestIsTraversableFrom_TerrainTable(t *testing.T) {
	cases := []struct {
		name string
		from grid.Cell
		to   grid.Cell
		want bool
	}{
		{"GroundToGround", grid.Ground, grid.Ground, true},
		{"GroundToAltGround", grid.Ground, grid.AltGround, true},
		{"SwampToGround", grid.Swamp, grid.Ground, true},
		{"WaterToGround", grid.Water, grid.Ground, true},
		{"GroundToSwamp", grid.Ground, grid.Swamp, true},
		{"SwampToSwamp", grid.Swamp, grid.Swamp, true},
		{"AltGroundToSwamp", grid.AltGround, grid.Swamp, false},
		{"WaterToSwamp", grid.Water, grid.Swamp, false},
		{"WaterToWater", grid.Water, grid.Water, true},
		{"GroundToWater", grid.Ground, grid.Water, false},
		{"SwampToWater", grid.Swamp, grid.Water, false},
		{"GroundToObstacle", grid.Ground, grid.Obstacle, false},
		{"GroundToVoid", grid.Ground, grid.Void, false},
		{"GroundToTree", grid.Ground, grid.Tree, false},
		{"GroundToUnrecognized", grid.Ground, grid.Cell('?'), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// A 1×2 strip: step east from the `from` label onto the `to` label.
			m, err := grid.NewMap("octile", 1, 2, []grid.Cell{tc.from, tc.to})
			assert.NoError(t, err)
			got := m.IsTraversableFrom(grid.Coords{X: 0, Y: 0}, grid.Coords{X: 1, Y: 0})
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestIsTraversableFrom_Rejections covers the structural refusals: out of
// bounds endpoints and non-adjacent jumps.
func TestIsTraversableFrom_Rejections(t *testing.T) {
	m := mustMap(t, "octile", "...", "...", "...")

	assert.False(t, m.IsTraversableFrom(grid.Coords{X: 0, Y: 0}, grid.Coords{X: -1, Y: 0}))
	assert.False(t, m.IsTraversableFrom(grid.Coords{X: -1, Y: 0}, grid.Coords{X: 0, Y: 0}))
	assert.False(t, m.IsTraversableFrom(grid.Coords{X: 0, Y: 0}, grid.Coords{X: 3, Y: 0}))
	// In bounds but two tiles apart.
	assert.False(t, m.IsTraversableFrom(grid.Coords{X: 0, Y: 0}, grid.Coords{X: 2, Y: 0}))
	assert.False(t, m.IsTraversableFrom(grid.Coords{X: 0, Y: 0}, grid.Coords{X: 2, Y: 2}))
}

//----------------------------------------------------------------------------//
// IsTraversableFrom: corner cutting
//----------------------------------------------------------------------------//

// TestCornerCutting exercises the all-four-sub-steps rule on a 3×3 grid:
// the diagonal (0,0)→(1,1) is legal only while both corner tiles (1,0) and
// (0,1) are open. Blocking either corner alone must refuse the diagonal.
func TestCornerCutting(t *testing.T) {
	from, to := grid.Coords{X: 0, Y: 0}, grid.Coords{X: 1, Y: 1}

	cases := []struct {
		name string
		rows []string
		want bool
	}{
		{"AllOpen", []string{"...", "...", "..."}, true},
		{"EastCornerBlocked", []string{".T.", "...", "..."}, false},
		{"SouthCornerBlocked", []string{"...", "T..", "..."}, false},
		{"BothCornersBlocked", []string{".T.", "T..", "..."}, false},
		{"TargetBlocked", []string{"...", ".T.", "..."}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustMap(t, "octile", tc.rows...)
			assert.Equal(t, tc.want, m.IsTraversableFrom(from, to))

			found := false
			for _, n := range m.Neighbors(from) {
				if n == to {
					found = true
				}
			}
			assert.Equal(t, tc.want, found, "Neighbors(%v) containment of %v", from, to)
		})
	}
}

// TestCornerCutting_FourConnected: no diagonal step exists at all on a
// 4-connected map, open corners or not.
func TestCornerCutting_FourConnected(t *testing.T) {
	m := mustMap(t, "tile", "...", "...", "...")
	assert.False(t, m.IsTraversableFrom(grid.Coords{X: 0, Y: 0}, grid.Coords{X: 1, Y: 1}))
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

// TestNeighbors_Interior checks the full 8-neighbor set of an open interior
// tile and its deterministic enumeration order.
func TestNeighbors_Interior(t *testing.T) {
	m := mustMap(t, "octile", "...", "...", "...")

	got := m.Neighbors(grid.Coords{X: 1, Y: 1})
	want := []grid.Coords{
		{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2},
		{X: 1, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 1}, {X: 0, Y: 0},
	}
	assert.Equal(t, want, got)

	// Determinism: a second call yields the identical slice.
	assert.Equal(t, got, m.Neighbors(grid.Coords{X: 1, Y: 1}))
}

// TestNeighbors_Boundary verifies origin and far-corner calls neither panic
// nor emit coordinates with negative axes.
func TestNeighbors_Boundary(t *testing.T) {
	m := mustMap(t, "octile", "...", "...", "...")

	for _, c := range []grid.Coords{{X: 0, Y: 0}, {X: 2, Y: 2}} {
		for _, n := range m.Neighbors(c) {
			assert.GreaterOrEqual(t, n.X, 0)
			assert.GreaterOrEqual(t, n.Y, 0)
			assert.False(t, m.IsOutOfBounds(n))
		}
	}
	assert.Len(t, m.Neighbors(grid.Coords{X: 0, Y: 0}), 3)
	assert.Len(t, m.Neighbors(grid.Coords{X: 2, Y: 2}), 3)
}

// TestNeighbors_FourConnected: only orthogonal neighbors on 4-connected maps.
func TestNeighbors_FourConnected(t *testing.T) {
	m := mustMap(t, "tile", "...", "...", "...")

	got := m.Neighbors(grid.Coords{X: 1, Y: 1})
	want := []grid.Coords{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1}}
	assert.Equal(t, want, got)
}

// TestNeighbors_Water: standing in water surrounded by swamp, only the
// orthogonal water tiles are legal targets: swamp never accepts entry from
// water, orthogonally or via a diagonal sub-step.
func TestNeighbors_Water(t *testing.T) {
	m := mustMap(t, "octile", "SWS", "WWW", "SWS")

	got := m.Neighbors(grid.Coords{X: 1, Y: 1})
	for _, n := range got {
		cell, err := m.CellAt(n)
		assert.NoError(t, err)
		assert.Equal(t, grid.Water, cell)
	}
	assert.Len(t, got, 4)
}

//----------------------------------------------------------------------------//
// FreeStates
//----------------------------------------------------------------------------//

// TestFreeStates_MatchesFilteredCoords: FreeStates must equal the count of
// coordinates whose IsTraversable is true.
func TestFreeStates_MatchesFilteredCoords(t *testing.T) {
	m := mustMap(t, "octile", ".@S", "WT.", "GO.")

	manual := 0
	for c := range m.Coords() {
		if m.IsTraversable(c) {
			manual++
		}
	}
	assert.Equal(t, manual, m.FreeStates())
	assert.Equal(t, 6, m.FreeStates())
}
