package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/renkav/movingai/astar"
	"github.com/renkav/movingai/grid"
	"github.com/renkav/movingai/parser"
)

// viewer owns the terminal screen, the loaded map, and the cursor and
// scenario selection state.
type viewer struct {
	screen  tcell.Screen
	m       *grid.Map
	scen    []parser.SceneRecord
	scenIdx int
	cursor  grid.Coords
	path    map[grid.Coords]bool
	status  string
}

// newViewer creates and initializes the terminal screen.
func newViewer(m *grid.Map, scen []parser.SceneRecord) (*viewer, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()

	v := &viewer{screen: s, m: m, scen: scen, scenIdx: -1}
	v.status = fmt.Sprintf("%s %dx%d | %d free states | n/p: scenario, Esc: quit",
		m.MapType(), m.Width(), m.Height(), m.FreeStates())
	return v, nil
}

// close finalizes the screen and restores terminal state.
func (v *viewer) close() {
	v.screen.Fini()
}

// run is the event loop: render, wait for an event, handle it.
func (v *viewer) run() {
	for {
		v.render()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey applies one key event; a false return exits the loop.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.moveCursor(0, -1)
	case tcell.KeyDown:
		v.moveCursor(0, 1)
	case tcell.KeyLeft:
		v.moveCursor(-1, 0)
	case tcell.KeyRight:
		v.moveCursor(1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'h':
			v.moveCursor(-1, 0)
		case 'l':
			v.moveCursor(1, 0)
		case 'k':
			v.moveCursor(0, -1)
		case 'j':
			v.moveCursor(0, 1)
		case 'n':
			v.cycleScenario(1)
		case 'p':
			v.cycleScenario(-1)
		}
	}
	return true
}

// moveCursor shifts the cursor, clamped to the map bounds.
func (v *viewer) moveCursor(dx, dy int) {
	next := grid.Coords{X: v.cursor.X + dx, Y: v.cursor.Y + dy}
	if v.m.IsOutOfBounds(next) {
		return
	}
	v.cursor = next
}

// cycleScenario selects the next/previous scenario record and computes the
// A* path for it. Search failures land in the status line instead of
// aborting the viewer.
func (v *viewer) cycleScenario(delta int) {
	if len(v.scen) == 0 {
		v.status = "no scenario file loaded"
		return
	}
	v.scenIdx = ((v.scenIdx+delta)%len(v.scen) + len(v.scen)) % len(v.scen)
	rec := v.scen[v.scenIdx]

	res, err := astar.FindPath(v.m, rec.StartPos, rec.GoalPos)
	if err != nil {
		v.path = nil
		v.status = fmt.Sprintf("scenario %d: %v", v.scenIdx, err)
		return
	}
	v.path = make(map[grid.Coords]bool, len(res.Path))
	for _, c := range res.Path {
		v.path[c] = true
	}
	v.cursor = rec.StartPos
	v.status = fmt.Sprintf("scenario %d: (%d,%d) -> (%d,%d) cost %.4f (optimal %.4f)",
		v.scenIdx, rec.StartPos.X, rec.StartPos.Y, rec.GoalPos.X, rec.GoalPos.Y,
		res.Cost, rec.OptimalLength)
}

// render draws the map, the scenario path, the cursor and its legal
// neighbors, and the status line.
func (v *viewer) render() {
	v.screen.Clear()

	reachable := make(map[grid.Coords]bool)
	for _, n := range v.m.Neighbors(v.cursor) {
		reachable[n] = true
	}

	for c := range v.m.Coords() {
		cell, err := v.m.CellAt(c)
		if err != nil {
			continue
		}
		style := tileStyle(cell)
		switch {
		case c == v.cursor:
			style = style.Reverse(true)
		case reachable[c]:
			style = style.Foreground(tcell.ColorYellow).Bold(true)
		case v.path[c]:
			style = style.Foreground(tcell.ColorRed).Bold(true)
		}
		v.screen.SetContent(c.X, c.Y, rune(cell), nil, style)
	}

	v.drawStatus()
	v.screen.Show()
}

// drawStatus writes the status line plus the cursor tile summary below the
// map.
func (v *viewer) drawStatus() {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	cell, _ := v.m.CellAt(v.cursor)
	line := fmt.Sprintf("(%d,%d) '%c' traversable=%t | %s",
		v.cursor.X, v.cursor.Y, cell, v.m.IsTraversable(v.cursor), v.status)
	for i, ch := range line {
		v.screen.SetContent(i, v.m.Height(), ch, nil, style)
	}
}

// tileStyle maps a terrain label to its display style.
func tileStyle(c grid.Cell) tcell.Style {
	switch c {
	case grid.Ground, grid.AltGround:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case grid.Tree:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case grid.Water:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case grid.Swamp:
		return tcell.StyleDefault.Foreground(tcell.ColorOlive)
	case grid.Obstacle, grid.Void:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	default:
		return tcell.StyleDefault
	}
}
