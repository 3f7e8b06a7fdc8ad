// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package mapview

import (
	"strconv"

	"github.com/twpayne/go-geom"
)

// =============================================================================
// CANVAS CONTRACT
// =============================================================================

// Canvas is a drawing surface for one route. Coordinates arrive as
// geographic lat/lon; projection is the canvas's problem.
type Canvas interface {
	// ClearAll removes every marker and path.
	ClearAll()

	// SetMarker places a stop marker.
	SetMarker(lat, lon float64, label string)

	// SetPath draws the route polyline through coords. Coords use the
	// geom convention: X is longitude, Y is latitude.
	SetPath(coords []geom.Coord)
}

// =============================================================================
// DRAW DISCIPLINE
// =============================================================================

// Render draws a route's waypoints onto the canvas. The canvas is
// cleared unconditionally, so selecting a route with no geometry blanks
// the previous one instead of leaving it stranded. Stops are numbered
// in route order; a path needs at least two stops.
func Render(c Canvas, coords []geom.Coord) {
	c.ClearAll()
	if len(coords) == 0 {
		return
	}
	for i, coord := range coords {
		c.SetMarker(coord.Y(), coord.X(), strconv.Itoa(i+1))
	}
	if len(coords) >= 2 {
		c.SetPath(coords)
	}
}
