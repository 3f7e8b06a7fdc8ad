// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ayvoy/kiosk-tui/internal/nav"
)

// esMX renders amounts the way the fare cards print them; the ui.locale
// config key swaps it for another tag.
var esMX = message.NewPrinter(language.MustParse("es-MX"))

// FormatMXN renders a balance in Mexican pesos with the default locale.
func FormatMXN(v float64) string {
	return esMX.Sprintf("%v", currency.Symbol(currency.MXN.Amount(v)))
}

// currencyPrinter builds a printer for a configured locale, falling
// back to es-MX when the tag does not parse.
func currencyPrinter(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		return esMX
	}
	return message.NewPrinter(tag)
}

// =============================================================================
// BALANCE
// =============================================================================

// Balance shows the logged-in folio's balance and movement history.
type Balance struct {
	ctx     *Context
	history viewport.Model
	printer *message.Printer
	balance float64
	loaded  bool
	infoMsg string
	errMsg  string
}

// NewBalance builds the screen, loading the account immediately.
// infoMsg carries a confirmation from a recharge that just landed.
func NewBalance(ctx *Context, infoMsg string) *Balance {
	vp := viewport.New(40, historyHeight(ctx.Height))

	b := &Balance{ctx: ctx, history: vp, infoMsg: infoMsg, printer: esMX}
	if ctx.Config != nil {
		b.printer = currencyPrinter(ctx.Config.UI.Locale)
	}
	acct, err := ctx.Ledger.BalanceOf(ctx.Session.Folio())
	if err != nil {
		b.errMsg = "No se pudo consultar el saldo."
		ctx.Log.Error("balance lookup failed", "error", err)
		return b
	}
	b.balance = acct.Balance
	b.loaded = true

	if len(acct.Movements) == 0 {
		vp.SetContent(ctx.Theme.MovementRow.Render("Sin movimientos."))
	} else {
		var rows []string
		for _, mv := range acct.Movements {
			rows = append(rows, ctx.Theme.MovementRow.Render(mv))
		}
		vp.SetContent(strings.Join(rows, "\n"))
	}
	b.history = vp
	return b
}

func historyHeight(total int) int {
	h := total - 12
	if h < 3 {
		h = 3
	}
	return h
}

func (b *Balance) Init() tea.Cmd { return nil }

func (b *Balance) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return b, func() tea.Msg { return GoMsg{Action: nav.ActionReturn} }
		case "r":
			return b, func() tea.Msg { return GoMsg{Action: nav.ActionOpenRecharge} }
		}
	}
	var cmd tea.Cmd
	b.history, cmd = b.history.Update(msg)
	return b, cmd
}

func (b *Balance) View() string {
	t := b.ctx.Theme
	var out strings.Builder

	out.WriteString(t.Title.Render("Saldo de tu Tarjeta"))
	out.WriteString("\n\n")

	switch {
	case b.errMsg != "":
		out.WriteString(t.ErrorText.Render(b.errMsg))
	default:
		out.WriteString(t.BalanceAmount.Render(
			b.printer.Sprintf("%v", currency.Symbol(currency.MXN.Amount(b.balance)))))
		out.WriteString("\n\n")
		out.WriteString(t.Subtitle.Render("Movimientos"))
		out.WriteString("\n")
		out.WriteString(b.history.View())
	}

	if b.infoMsg != "" {
		out.WriteString("\n\n" + t.InfoText.Render(b.infoMsg))
	}

	out.WriteString("\n\n")
	out.WriteString(t.ShortcutKey.Render("r") + t.ShortcutDesc.Render(" recargar  ") +
		t.ShortcutKey.Render("↑/↓") + t.ShortcutDesc.Render(" historial  ") +
		t.ShortcutKey.Render("esc") + t.ShortcutDesc.Render(" regresar"))

	return lipgloss.Place(b.ctx.Width, b.ctx.Height, lipgloss.Center, lipgloss.Center, out.String())
}
