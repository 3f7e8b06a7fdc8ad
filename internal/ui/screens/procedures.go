// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayvoy/kiosk-tui/internal/docs"
	"github.com/ayvoy/kiosk-tui/internal/nav"
)

// =============================================================================
// PROCEDURES MENU
// =============================================================================

// proceduresHelp is shown as an overlay for riders unsure which card
// applies to them.
const proceduresHelp = `# Trámites de Tarjeta

Elige la tarjeta que corresponde a tu caso:

- **Tarjeta Discapacitado** — tarifa preferente con Tarjeta DIF vigente.
- **Tarjeta Adulto Mayor** — tarifa preferente con Tarjeta INAPAM.
- **Tarjeta Estudiante** — tarifa preferente con credencial escolar
  vigente y comprobante de estudios.

Cada trámite pide una lista de documentos. Ten los archivos a la mano
(PDF o imagen) antes de comenzar.

*Si es una reactivación, también se solicita tu Tarjeta YOVOY anterior.*
`

// Procedures lets a rider pick a discount-card application.
type Procedures struct {
	ctx      *Context
	profiles []docs.Profile
	selected int
	errMsg   string

	showHelp bool
	helpText string
}

// NewProcedures builds the menu.
func NewProcedures(ctx *Context, errMsg string) *Procedures {
	return &Procedures{ctx: ctx, profiles: docs.Profiles(), errMsg: errMsg}
}

func (p *Procedures) Init() tea.Cmd { return nil }

func (p *Procedures) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if p.showHelp {
		p.showHelp = false
		return p, nil
	}

	switch key.String() {
	case "esc":
		return p, func() tea.Msg { return GoMsg{Action: nav.ActionReturn} }
	case "?":
		if p.helpText == "" {
			rendered, err := glamour.Render(proceduresHelp, "auto")
			if err != nil {
				p.ctx.Log.Warn("help render failed", "error", err)
				rendered = proceduresHelp
			}
			p.helpText = rendered
		}
		p.showHelp = true
	case "up", "k":
		if p.selected > 0 {
			p.selected--
		}
	case "down", "j":
		if p.selected < len(p.profiles)-1 {
			p.selected++
		}
	case "enter":
		profile := p.profiles[p.selected]
		return p, func() tea.Msg { return ChooseProfileMsg{Profile: profile} }
	}
	return p, nil
}

func (p *Procedures) View() string {
	t := p.ctx.Theme

	if p.showHelp {
		return lipgloss.Place(p.ctx.Width, p.ctx.Height, lipgloss.Center, lipgloss.Center,
			t.MenuBox.Render(p.helpText+"\n"+t.ShortcutDesc.Render("cualquier tecla para cerrar")))
	}

	var b strings.Builder
	b.WriteString(t.Title.Render("Trámites"))
	b.WriteString("\n\n")

	var items []string
	for i, profile := range p.profiles {
		style := t.MenuItem
		if i == p.selected {
			style = t.MenuItemSelected
		}
		items = append(items, style.Render(profile.DisplayName()))
	}
	b.WriteString(t.MenuBox.Render(strings.Join(items, "\n")))

	if p.errMsg != "" {
		b.WriteString("\n\n" + t.ErrorText.Render(p.errMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(t.ShortcutKey.Render("enter") + t.ShortcutDesc.Render(" elegir  ") +
		t.ShortcutKey.Render("?") + t.ShortcutDesc.Render(" ayuda  ") +
		t.ShortcutKey.Render("esc") + t.ShortcutDesc.Render(" regresar"))

	return lipgloss.Place(p.ctx.Width, p.ctx.Height, lipgloss.Center, lipgloss.Center, b.String())
}
