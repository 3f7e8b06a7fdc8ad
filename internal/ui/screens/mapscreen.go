// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package screens

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/twpayne/go-geom"

	"github.com/ayvoy/kiosk-tui/internal/catalog"
	"github.com/ayvoy/kiosk-tui/internal/nav"
	"github.com/ayvoy/kiosk-tui/internal/ui/mapview"
	"github.com/ayvoy/kiosk-tui/internal/util"
)

// =============================================================================
// ROUTE MAP
// =============================================================================

// MapScreen shows the route catalog: a search box, the matching route
// list, and the selected route drawn on the grid with its description.
type MapScreen struct {
	ctx *Context

	search   textinput.Model
	grid     *mapview.Grid
	routes   []string
	selected int
	hasPath  bool
	errMsg   string
}

// NewMapScreen builds the screen with every route listed and the first
// one drawn.
func NewMapScreen(ctx *Context) *MapScreen {
	ti := textinput.New()
	ti.Placeholder = "Buscar ruta"
	ti.CharLimit = 48
	ti.Width = 28
	ti.Focus()

	s := &MapScreen{
		ctx:    ctx,
		search: ti,
		grid:   mapview.NewGrid(mapWidth(ctx.Width), mapHeight(ctx.Height)),
	}
	s.refresh()
	return s
}

func mapWidth(total int) int {
	w := total/2 - 4
	if w < 24 {
		w = 24
	}
	return w
}

func mapHeight(total int) int {
	h := total - 10
	if h < 8 {
		h = 8
	}
	return h
}

func (s *MapScreen) Init() tea.Cmd { return textinput.Blink }

// refresh re-runs the search and redraws the selected route.
func (s *MapScreen) refresh() {
	query := s.search.Value()
	routes, err := s.ctx.Catalog.Search(query)
	switch {
	case errors.Is(err, catalog.ErrStoreUnreadable):
		s.routes = nil
		s.errMsg = "No se pudo leer el catálogo de rutas."
	case errors.Is(err, catalog.ErrNoMatches):
		s.routes = nil
		s.errMsg = "Sin coincidencias para \"" + query + "\"."
	case err != nil:
		s.routes = nil
		s.errMsg = "No se pudo consultar las rutas."
	default:
		s.routes = routes
		s.errMsg = ""
	}

	if s.selected >= len(s.routes) {
		s.selected = 0
	}
	s.redraw()
}

func (s *MapScreen) redraw() {
	var coords []geom.Coord
	if len(s.routes) > 0 {
		coords = s.ctx.Catalog.GeometryFor(s.routes[s.selected])
	}
	mapview.Render(s.grid, coords)
	s.hasPath = len(coords) > 0

	// A route with no drawable path still shows the city center so the
	// panel is never a blank box.
	if len(coords) == 0 && s.ctx.Config != nil {
		s.grid.SetMarker(s.ctx.Config.Map.CenterLat, s.ctx.Config.Map.CenterLon, "")
	}
}

func (s *MapScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return s, func() tea.Msg { return GoMsg{Action: nav.ActionReturn} }
		case "up", "ctrl+p":
			if s.selected > 0 {
				s.selected--
				s.redraw()
			}
			return s, nil
		case "down", "ctrl+n":
			if s.selected < len(s.routes)-1 {
				s.selected++
				s.redraw()
			}
			return s, nil
		case "f2":
			return s, func() tea.Msg { return GoMsg{Action: nav.ActionOpenBalance} }
		}
	}

	var cmd tea.Cmd
	before := s.search.Value()
	s.search, cmd = s.search.Update(msg)
	if s.search.Value() != before {
		s.refresh()
	}
	return s, cmd
}

func (s *MapScreen) View() string {
	t := s.ctx.Theme

	var left strings.Builder
	left.WriteString(t.Title.Render("Rutas"))
	left.WriteString("\n")
	left.WriteString(t.FieldBox.Render(s.search.View()))
	left.WriteString("\n\n")

	if s.errMsg != "" {
		left.WriteString(t.ErrorText.Render(s.errMsg))
	} else {
		for i, id := range s.routes {
			style := t.ListItem
			if i == s.selected {
				style = t.ListSelected
			}
			left.WriteString(style.Render(util.TruncateWidth(id, 30)))
			left.WriteString("\n")
		}
	}

	var right strings.Builder
	right.WriteString(t.MapBox.Render(s.grid.View()))
	right.WriteString("\n")
	if len(s.routes) > 0 {
		id := s.routes[s.selected]
		if desc, ok := s.ctx.Catalog.Description(id); ok {
			right.WriteString(t.Subtitle.Render(util.TruncateWidth(desc, mapWidth(s.ctx.Width))))
		} else {
			right.WriteString(t.Subtitle.Render("Sin descripción disponible."))
		}
		if !s.hasPath {
			right.WriteString("\n" + t.NoticeText.Render("Sin trazado disponible."))
		}
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(s.ctx.Width/2-2).Render(left.String()),
		right.String(),
	)

	footer := t.ShortcutKey.Render("↑/↓") + t.ShortcutDesc.Render(" ruta  ") +
		t.ShortcutKey.Render("f2") + t.ShortcutDesc.Render(" saldo  ") +
		t.ShortcutKey.Render("esc") + t.ShortcutDesc.Render(" regresar")

	return t.Container.Render(body + "\n\n" + footer)
}
