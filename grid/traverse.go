package grid

// enterable reports whether a tile carrying this label could ever be
// occupied, regardless of approach direction. Unknown labels block.
func enterable(c Cell) bool {
	switch c {
	case Ground, AltGround, Swamp, Water:
		return true
	default:
		return false
	}
}

// canEnter is the terrain interaction table for a single orthogonal step,
// keyed by (to, from). Swamp accepts entry only from open ground or swamp,
// water only from water; the two soft terrains never interconnect directly.
func canEnter(to, from Cell) bool {
	switch to {
	case Ground, AltGround:
		return true
	case Swamp:
		return from == Ground || from == Swamp
	case Water:
		return from == Water
	default:
		return false
	}
}

// IsTraversable reports whether the tile at c could ever be occupied.
// Out-of-bounds coordinates are simply not traversable, never an error.
// This check is context-free; entering from a specific direction is the
// business of IsTraversableFrom.
// Complexity: O(1).
func (m *Map) IsTraversable(c Coords) bool {
	if m.IsOutOfBounds(c) {
		return false
	}
	return enterable(m.cells[m.index(c)])
}

// Adjacent reports geometric adjacency of a and b under the map topology,
// ignoring terrain. Under Octile both axes may differ by at most 1, which
// makes a tile adjacent to itself; callers must not rely on Adjacent to
// exclude the self-case. Under FourConnected exactly one axis must differ
// by 1.
// Complexity: O(1).
func (m *Map) Adjacent(a, b Coords) bool {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if m.topology == Octile {
		return dx <= 1 && dy <= 1
	}
	return dx+dy == 1
}

// IsTraversableFrom reports whether the single directed step from → to is
// legal. The step must stay in bounds and be Adjacent. An orthogonal step
// (or any step on a non-Octile map) is decided by the terrain table alone.
// A diagonal step on an Octile map is legal only when all four orthogonal
// sub-steps of both L-shaped detours around it are legal: if either corner
// tile blocks, the diagonal is refused even when to itself is open, so an
// agent can never clip through a wall corner. The recursion is bounded
// because the sub-steps are orthogonal and never re-enter the diagonal
// branch.
// Complexity: O(1).
func (m *Map) IsTraversableFrom(from, to Coords) bool {
	if m.IsOutOfBounds(from) || m.IsOutOfBounds(to) {
		return false
	}
	if !m.Adjacent(from, to) {
		return false
	}
	diagonal := from.X != to.X && from.Y != to.Y
	if m.topology != Octile || !diagonal {
		return canEnter(m.cells[m.index(to)], m.cells[m.index(from)])
	}
	// Both corners of the diagonal, one per L-shaped detour.
	vertical := Coords{X: from.X, Y: to.Y}
	horizontal := Coords{X: to.X, Y: from.Y}

	return m.IsTraversableFrom(from, vertical) && m.IsTraversableFrom(vertical, to) &&
		m.IsTraversableFrom(from, horizontal) && m.IsTraversableFrom(horizontal, to)
}

// Neighbors returns every coordinate reachable from c in one legal step.
// Candidates are evaluated in a fixed clockwise-from-north order, so the
// result is deterministic for a fixed map; boundary candidates that would
// need a negative axis are excluded before any bounds or terrain check.
// Complexity: O(1), at most 8 candidates.
func (m *Map) Neighbors(c Coords) []Coords {
	out := make([]Coords, 0, len(m.offsets))
	for _, d := range m.offsets {
		n := Coords{X: c.X + d[0], Y: c.Y + d[1]}
		if n.X < 0 || n.Y < 0 {
			continue
		}
		if m.IsTraversableFrom(c, n) {
			out = append(out, n)
		}
	}
	return out
}

// FreeStates counts the traversable tiles of the map, a common measure of
// map openness.
// Complexity: O(W×H).
func (m *Map) FreeStates() int {
	count := 0
	for c := range m.Coords() {
		if m.IsTraversable(c) {
			count++
		}
	}
	return count
}

// abs returns |v|.
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
