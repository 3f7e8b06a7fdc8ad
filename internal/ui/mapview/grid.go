// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package mapview

import (
	"strings"

	"github.com/twpayne/go-geom"
)

// =============================================================================
// TERMINAL GRID CANVAS
// =============================================================================

// Grid renders markers and a path onto a character grid. Projection is
// a plain linear fit of the route's bounding box onto the grid, padded
// so stops never sit on the border.
type Grid struct {
	width  int
	height int

	markers []gridMarker
	path    []geom.Coord
}

type gridMarker struct {
	lat, lon float64
	label    string
}

const (
	pathRune   = '·'
	markerRune = '●'
)

// NewGrid creates a canvas of the given character dimensions.
func NewGrid(width, height int) *Grid {
	if width < 8 {
		width = 8
	}
	if height < 4 {
		height = 4
	}
	return &Grid{width: width, height: height}
}

// SetSize resizes the grid. Existing markers and path are kept and
// reprojected on the next View.
func (g *Grid) SetSize(width, height int) {
	if width >= 8 {
		g.width = width
	}
	if height >= 4 {
		g.height = height
	}
}

// ClearAll removes every marker and path.
func (g *Grid) ClearAll() {
	g.markers = g.markers[:0]
	g.path = nil
}

// SetMarker places a stop marker.
func (g *Grid) SetMarker(lat, lon float64, label string) {
	g.markers = append(g.markers, gridMarker{lat: lat, lon: lon, label: label})
}

// SetPath draws the route polyline through coords.
func (g *Grid) SetPath(coords []geom.Coord) {
	g.path = coords
}

// Empty reports whether the grid has nothing to draw.
func (g *Grid) Empty() bool {
	return len(g.markers) == 0 && len(g.path) == 0
}

// View renders the grid as height lines of width runes.
func (g *Grid) View() string {
	cells := make([][]rune, g.height)
	for i := range cells {
		cells[i] = make([]rune, g.width)
		for j := range cells[i] {
			cells[i][j] = ' '
		}
	}

	if !g.Empty() {
		minLat, maxLat, minLon, maxLon := g.bounds()
		// Path under markers: markers win a contested cell.
		for i := 0; i+1 < len(g.path); i++ {
			g.drawSegment(cells, g.path[i], g.path[i+1], minLat, maxLat, minLon, maxLon)
		}
		for _, m := range g.markers {
			row, col := g.project(m.lat, m.lon, minLat, maxLat, minLon, maxLon)
			cells[row][col] = markerRune
			g.placeLabel(cells, row, col, m.label)
		}
	}

	var b strings.Builder
	for i, line := range cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(line))
	}
	return b.String()
}

func (g *Grid) bounds() (minLat, maxLat, minLon, maxLon float64) {
	first := true
	visit := func(lat, lon float64) {
		if first {
			minLat, maxLat, minLon, maxLon = lat, lat, lon, lon
			first = false
			return
		}
		if lat < minLat {
			minLat = lat
		}
		if lat > maxLat {
			maxLat = lat
		}
		if lon < minLon {
			minLon = lon
		}
		if lon > maxLon {
			maxLon = lon
		}
	}
	for _, m := range g.markers {
		visit(m.lat, m.lon)
	}
	for _, c := range g.path {
		visit(c.Y(), c.X())
	}
	return minLat, maxLat, minLon, maxLon
}

// project maps a coordinate into the grid with a one-cell margin. A
// degenerate span (single stop, or a perfectly straight north-south
// run) centers on the flat axis.
func (g *Grid) project(lat, lon, minLat, maxLat, minLon, maxLon float64) (row, col int) {
	innerW := g.width - 2
	innerH := g.height - 2

	if spanLon := maxLon - minLon; spanLon > 0 {
		col = 1 + int(float64(innerW-1)*(lon-minLon)/spanLon+0.5)
	} else {
		col = g.width / 2
	}
	if spanLat := maxLat - minLat; spanLat > 0 {
		row = 1 + int(float64(innerH-1)*(maxLat-lat)/spanLat+0.5)
	} else {
		row = g.height / 2
	}

	if col < 0 {
		col = 0
	}
	if col >= g.width {
		col = g.width - 1
	}
	if row < 0 {
		row = 0
	}
	if row >= g.height {
		row = g.height - 1
	}
	return row, col
}

func (g *Grid) drawSegment(cells [][]rune, a, b geom.Coord, minLat, maxLat, minLon, maxLon float64) {
	r0, c0 := g.project(a.Y(), a.X(), minLat, maxLat, minLon, maxLon)
	r1, c1 := g.project(b.Y(), b.X(), minLat, maxLat, minLon, maxLon)

	steps := abs(r1-r0)
	if d := abs(c1 - c0); d > steps {
		steps = d
	}
	if steps == 0 {
		cells[r0][c0] = pathRune
		return
	}
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		row := r0 + int(float64(r1-r0)*t+0.5)
		col := c0 + int(float64(c1-c0)*t+0.5)
		cells[row][col] = pathRune
	}
}

// placeLabel writes the stop number beside its marker when the row has
// room, preferring the right side.
func (g *Grid) placeLabel(cells [][]rune, row, col int, label string) {
	runes := []rune(label)
	if len(runes) == 0 {
		return
	}
	if col+1+len(runes) < g.width && cellsFree(cells[row], col+1, len(runes)) {
		copy(cells[row][col+1:], runes)
		return
	}
	if col-len(runes) >= 0 && cellsFree(cells[row], col-len(runes), len(runes)) {
		copy(cells[row][col-len(runes):], runes)
	}
}

func cellsFree(row []rune, start, n int) bool {
	for i := start; i < start+n; i++ {
		if row[i] != ' ' {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
