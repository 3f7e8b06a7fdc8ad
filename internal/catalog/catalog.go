// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/twpayne/go-geom"

	"github.com/ayvoy/kiosk-tui/internal/logging"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrStoreUnreadable reports that the route identifier source could
	// not be read at all. Downstream must render this differently from
	// a search that simply matched nothing.
	ErrStoreUnreadable = errors.New("route store unreadable")

	// ErrNoMatches reports a search that ran against a readable store
	// and found nothing.
	ErrNoMatches = errors.New("no matching routes")
)

// =============================================================================
// SOURCES
// =============================================================================

// Sources names the three backing files of the catalog.
type Sources struct {
	// RoutesFile lists one route identifier per line.
	RoutesFile string
	// DestinationsFile maps `identifier:description` per line. The first
	// colon separates; descriptions may themselves contain colons.
	DestinationsFile string
	// GeometryFile maps `identifier:lat,lon;lat,lon;...` per line.
	GeometryFile string
}

// =============================================================================
// CATALOG
// =============================================================================

// Catalog answers route queries from an in-memory snapshot of the
// sources. The snapshot is replaced wholesale by Reload; the mutex only
// exists because the file watcher reloads from its own goroutine.
type Catalog struct {
	mu      sync.RWMutex
	sources Sources
	log     logging.Logger

	ids          []string // source order
	idsReadable  bool
	descriptions map[string]string
	geometries   map[string]*geom.LineString

	watcher *watcher
}

// New builds a catalog and loads all three sources. Loading fails soft:
// a catalog over missing files is empty, not broken.
func New(sources Sources, log logging.Logger) *Catalog {
	if log == nil {
		log = logging.Nop()
	}
	c := &Catalog{
		sources: sources,
		log:     log,
	}
	c.Reload()
	return c
}

// Reload re-reads all sources and swaps in the new snapshot.
func (c *Catalog) Reload() {
	ids, readable := c.loadRoutes()
	descs := c.loadDescriptions()
	geos := c.loadGeometries()

	c.mu.Lock()
	c.ids = ids
	c.idsReadable = readable
	c.descriptions = descs
	c.geometries = geos
	c.mu.Unlock()

	c.log.Debug("catalog loaded",
		"routes", len(ids), "descriptions", len(descs), "geometries", len(geos))
}

// Routes returns all known route identifiers in source order.
func (c *Catalog) Routes() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Search returns identifiers containing query, case-insensitively, in
// source order. An empty query returns every identifier. A query that
// matches nothing returns ErrNoMatches; an unreadable identifier source
// returns ErrStoreUnreadable. The two must stay distinguishable all the
// way to the screen.
func (c *Catalog) Search(query string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.idsReadable {
		return nil, ErrStoreUnreadable
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]string, len(c.ids))
		copy(out, c.ids)
		return out, nil
	}

	var out []string
	for _, id := range c.ids {
		if strings.Contains(strings.ToLower(id), query) {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoMatches
	}
	return out, nil
}

// Description returns the destination text for a route. The second
// return is false for known routes that simply have no description;
// callers render those as "description unavailable", not as errors.
func (c *Catalog) Description(id string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.descriptions[id]
	return d, ok
}

// GeometryFor returns the route's waypoints in path order, or an empty
// slice when the route has no usable geometry. Coordinates are x=lon,
// y=lat. A non-empty result always has at least two points; anything
// shorter is dropped at load time because it cannot be drawn.
func (c *Catalog) GeometryFor(id string) []geom.Coord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ls, ok := c.geometries[id]
	if !ok {
		return nil
	}
	return ls.Coords()
}

// =============================================================================
// LOADERS
// =============================================================================

// loadRoutes reads the identifier list. The bool reports whether the
// source was readable; an unreadable source is logged and yields an
// empty set, never an error to the caller.
func (c *Catalog) loadRoutes() ([]string, bool) {
	data, err := os.ReadFile(c.sources.RoutesFile)
	if err != nil {
		c.log.Warn("routes file unreadable", "path", c.sources.RoutesFile, "error", err)
		return nil, false
	}

	var ids []string
	for _, line := range strings.Split(string(data), "\n") {
		id := strings.TrimSpace(line)
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	return ids, true
}

// loadDescriptions parses `identifier:description` lines. Lines without
// a colon are skipped; the first colon splits, so descriptions keep any
// colons of their own.
func (c *Catalog) loadDescriptions() map[string]string {
	descs := make(map[string]string)

	data, err := os.ReadFile(c.sources.DestinationsFile)
	if err != nil {
		c.log.Warn("destinations file unreadable", "path", c.sources.DestinationsFile, "error", err)
		return descs
	}

	for _, line := range strings.Split(string(data), "\n") {
		id, desc, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		descs[id] = strings.TrimSpace(desc)
	}
	return descs
}

// loadGeometries parses `identifier:lat,lon;lat,lon;...` lines into
// line strings. Geometries with fewer than two valid waypoints are
// dropped: a single point is not a drawable path.
func (c *Catalog) loadGeometries() map[string]*geom.LineString {
	geos := make(map[string]*geom.LineString)

	data, err := os.ReadFile(c.sources.GeometryFile)
	if err != nil {
		c.log.Warn("geometry file unreadable", "path", c.sources.GeometryFile, "error", err)
		return geos
	}

	for _, line := range strings.Split(string(data), "\n") {
		id, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}

		coords := parseWaypoints(rest)
		if len(coords) < 2 {
			if strings.TrimSpace(rest) != "" {
				c.log.Warn("geometry too short, dropped", "route", id, "points", len(coords))
			}
			continue
		}

		ls, err := geom.NewLineString(geom.XY).SetCoords(coords)
		if err != nil {
			c.log.Warn("geometry rejected", "route", id, "error", err)
			continue
		}
		geos[id] = ls
	}
	return geos
}

// parseWaypoints parses `lat,lon;lat,lon;...`, skipping malformed pairs.
func parseWaypoints(s string) []geom.Coord {
	var coords []geom.Coord
	for _, pair := range strings.Split(s, ";") {
		latStr, lonStr, ok := strings.Cut(pair, ",")
		if !ok {
			continue
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
		if err != nil {
			continue
		}
		coords = append(coords, geom.Coord{lon, lat})
	}
	return coords
}
