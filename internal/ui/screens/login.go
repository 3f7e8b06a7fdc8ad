// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayvoy/kiosk-tui/internal/nav"
)

// =============================================================================
// LOGIN
// =============================================================================

// Login asks for the rider's folio. A rejected folio comes back to a
// fresh Login carrying the typed value and the error, so the rider can
// correct instead of retyping.
type Login struct {
	ctx    *Context
	input  textinput.Model
	errMsg string
}

// NewLogin builds the login form. folio and errMsg carry over from a
// failed attempt; both empty on a first visit.
func NewLogin(ctx *Context, folio, errMsg string) *Login {
	ti := textinput.New()
	ti.Placeholder = "Folio"
	ti.CharLimit = 32
	ti.Width = 24
	ti.SetValue(folio)
	ti.Focus()
	return &Login{ctx: ctx, input: ti, errMsg: errMsg}
}

func (l *Login) Init() tea.Cmd { return textinput.Blink }

func (l *Login) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			folio := l.input.Value()
			return l, func() tea.Msg { return SubmitFolioMsg{Folio: folio} }
		case "esc":
			return l, func() tea.Msg { return GoMsg{Action: nav.ActionReturn} }
		}
	}
	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

func (l *Login) View() string {
	t := l.ctx.Theme
	var b strings.Builder

	b.WriteString(t.Title.Render("Iniciar Sesión"))
	b.WriteString("\n\n")
	b.WriteString(t.Label.Render("Ingresa tu folio:"))
	b.WriteString("\n")
	b.WriteString(t.FieldBox.Render(l.input.View()))
	b.WriteString("\n")
	if l.errMsg != "" {
		b.WriteString("\n" + t.ErrorText.Render(l.errMsg) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(t.ShortcutKey.Render("enter") + t.ShortcutDesc.Render(" entrar  ") +
		t.ShortcutKey.Render("esc") + t.ShortcutDesc.Render(" regresar"))

	return lipgloss.Place(l.ctx.Width, l.ctx.Height, lipgloss.Center, lipgloss.Center, b.String())
}
