// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayvoy/kiosk-tui/internal/nav"
)

// =============================================================================
// MAIN MENU
// =============================================================================

type menuEntry struct {
	label  string
	action nav.Action
	quit   bool
}

// MainMenu is the welcome screen riders see between sessions.
type MainMenu struct {
	ctx      *Context
	entries  []menuEntry
	selected int
}

// NewMainMenu builds the menu. The login entry appears while logged
// out; balance and logout appear while a session is running.
func NewMainMenu(ctx *Context) *MainMenu {
	var entries []menuEntry
	if !ctx.Session.Active() {
		entries = append(entries, menuEntry{label: "Iniciar Sesión", action: nav.ActionOpenLogin})
	}
	entries = append(entries,
		menuEntry{label: "Trámites", action: nav.ActionOpenProcedures},
		menuEntry{label: "Ver Mapa de Rutas", action: nav.ActionOpenMap},
	)
	if ctx.Session.Active() {
		entries = append(entries,
			menuEntry{label: "Consultar Saldo", action: nav.ActionOpenBalance},
			menuEntry{label: "Cerrar Sesión", action: nav.ActionLogout},
		)
	}
	entries = append(entries, menuEntry{label: "Salir", quit: true})
	return &MainMenu{ctx: ctx, entries: entries}
}

func (m *MainMenu) Init() tea.Cmd { return nil }

func (m *MainMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.entries)-1 {
				m.selected++
			}
		case "enter":
			entry := m.entries[m.selected]
			if entry.quit {
				return m, tea.Quit
			}
			action := entry.action
			return m, func() tea.Msg { return GoMsg{Action: action} }
		}
	}
	return m, nil
}

func (m *MainMenu) View() string {
	t := m.ctx.Theme
	var b strings.Builder

	b.WriteString(t.Title.Render("AyVoy"))
	b.WriteString("\n")
	b.WriteString(t.Subtitle.Render("Bienvenido"))
	b.WriteString("\n\n")

	var items []string
	for i, entry := range m.entries {
		style := t.MenuItem
		if i == m.selected {
			style = t.MenuItemSelected
		}
		items = append(items, style.Render(entry.label))
	}
	b.WriteString(t.MenuBox.Render(strings.Join(items, "\n")))
	b.WriteString("\n\n")
	b.WriteString(t.ShortcutKey.Render("↑/↓") + t.ShortcutDesc.Render(" mover  ") +
		t.ShortcutKey.Render("enter") + t.ShortcutDesc.Render(" elegir"))

	return lipgloss.Place(m.ctx.Width, m.ctx.Height, lipgloss.Center, lipgloss.Center, b.String())
}
