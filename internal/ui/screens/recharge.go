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
// RECHARGE FORM
// =============================================================================

const (
	fieldCard = iota
	fieldMonth
	fieldYear
	fieldHolder
	fieldCVV
	fieldAmount
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Número de Tarjeta",
	"Mes (MM)",
	"Año (AA)",
	"Titular de la Tarjeta",
	"Código de Seguridad (CVV)",
	"Monto a Recargar",
}

// Recharge collects the payment form. Validation happens in the
// navigator on submit; a refused form comes back here with the message.
type Recharge struct {
	ctx     *Context
	inputs  [fieldCount]textinput.Model
	focused int
	errMsg  string
}

// NewRecharge builds a blank form. errMsg carries a validation message
// from a refused submit.
func NewRecharge(ctx *Context, errMsg string) *Recharge {
	r := &Recharge{ctx: ctx, errMsg: errMsg}

	for i := range r.inputs {
		ti := textinput.New()
		ti.Width = 24
		r.inputs[i] = ti
	}
	r.inputs[fieldCard].CharLimit = 19
	r.inputs[fieldCard].Placeholder = "0000 0000 0000 0000"
	r.inputs[fieldMonth].CharLimit = 2
	r.inputs[fieldMonth].Width = 4
	r.inputs[fieldYear].CharLimit = 2
	r.inputs[fieldYear].Width = 4
	r.inputs[fieldHolder].CharLimit = 48
	r.inputs[fieldCVV].CharLimit = 4
	r.inputs[fieldCVV].Width = 6
	r.inputs[fieldCVV].EchoMode = textinput.EchoPassword
	r.inputs[fieldAmount].CharLimit = 10
	r.inputs[fieldAmount].Placeholder = "0.00"

	r.inputs[fieldCard].Focus()
	return r
}

func (r *Recharge) Init() tea.Cmd { return textinput.Blink }

func (r *Recharge) form() nav.PaymentForm {
	return nav.PaymentForm{
		CardNumber:  r.inputs[fieldCard].Value(),
		ExpiryMonth: r.inputs[fieldMonth].Value(),
		ExpiryYear:  r.inputs[fieldYear].Value(),
		Holder:      r.inputs[fieldHolder].Value(),
		CVV:         r.inputs[fieldCVV].Value(),
		Amount:      r.inputs[fieldAmount].Value(),
	}
}

func (r *Recharge) focus(i int) {
	r.inputs[r.focused].Blur()
	r.focused = i
	r.inputs[r.focused].Focus()
}

func (r *Recharge) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return r, func() tea.Msg { return GoMsg{Action: nav.ActionReturn} }
		case "tab", "down":
			r.focus((r.focused + 1) % fieldCount)
			return r, nil
		case "shift+tab", "up":
			r.focus((r.focused + fieldCount - 1) % fieldCount)
			return r, nil
		case "enter":
			if r.focused < fieldCount-1 {
				r.focus(r.focused + 1)
				return r, nil
			}
			form := r.form()
			return r, func() tea.Msg { return SubmitRechargeMsg{Form: form} }
		}
	}

	var cmd tea.Cmd
	r.inputs[r.focused], cmd = r.inputs[r.focused].Update(msg)
	return r, cmd
}

func (r *Recharge) View() string {
	t := r.ctx.Theme
	var b strings.Builder

	b.WriteString(t.Title.Render("Recargar Tarjeta"))
	b.WriteString("\n\n")

	for i, ti := range r.inputs {
		b.WriteString(t.Label.Render(fieldLabels[i] + ":"))
		b.WriteString("\n")
		b.WriteString(t.FieldBox.Render(ti.View()))
		b.WriteString("\n")
	}

	if r.errMsg != "" {
		b.WriteString("\n" + t.ErrorText.Render(r.errMsg) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(t.ShortcutKey.Render("tab") + t.ShortcutDesc.Render(" campo  ") +
		t.ShortcutKey.Render("enter") + t.ShortcutDesc.Render(" confirmar  ") +
		t.ShortcutKey.Render("esc") + t.ShortcutDesc.Render(" regresar"))

	return lipgloss.Place(r.ctx.Width, r.ctx.Height, lipgloss.Center, lipgloss.Center, b.String())
}
