// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styled components every screen draws with.
type Theme struct {
	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// ==========================================================================
	// MENU STYLES
	// ==========================================================================

	MenuBox          lipgloss.Style
	MenuItem         lipgloss.Style
	MenuItemSelected lipgloss.Style

	// ==========================================================================
	// FORM STYLES
	// ==========================================================================

	Label       lipgloss.Style
	FieldBox    lipgloss.Style
	Button      lipgloss.Style
	ButtonFocus lipgloss.Style

	// ==========================================================================
	// FEEDBACK STYLES
	// ==========================================================================

	ErrorText  lipgloss.Style
	InfoText   lipgloss.Style
	WarningBar lipgloss.Style
	NoticeText lipgloss.Style

	// ==========================================================================
	// LIST AND MAP STYLES
	// ==========================================================================

	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	MapBox       lipgloss.Style
	MapPath      lipgloss.Style
	MapStop      lipgloss.Style

	// ==========================================================================
	// BALANCE STYLES
	// ==========================================================================

	BalanceAmount lipgloss.Style
	MovementRow   lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
}

// NewTheme creates a theme with every style configured.
func NewTheme() *Theme {
	t := &Theme{}
	t.initStyles()
	return t
}

// SetSize records the terminal dimensions for styles that fill width.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
	t.StatusBar = t.StatusBar.Width(width)
	t.WarningBar = t.WarningBar.Width(width)
	t.Header = t.Header.Width(width)
}

func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(1, 2)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(TransitBlue).
		Background(SurfaceDim).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TransitBlue)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Menus
	t.MenuBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(TransitBlue).
		Padding(1, 3)

	t.MenuItem = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 1)

	t.MenuItemSelected = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(TransitBlue).
		Bold(true).
		Padding(0, 1)

	// Forms
	t.Label = lipgloss.NewStyle().
		Foreground(TransitBlue)

	t.FieldBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.Button = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SurfaceDim).
		Padding(0, 3)

	t.ButtonFocus = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(TransitBlue).
		Bold(true).
		Padding(0, 3)

	// Feedback
	t.ErrorText = lipgloss.NewStyle().
		Foreground(AlertRed).
		Bold(true)

	t.InfoText = lipgloss.NewStyle().
		Foreground(FareGreen)

	t.WarningBar = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(NoticeAmber).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Center)

	t.NoticeText = lipgloss.NewStyle().
		Foreground(AlertRed)

	// Lists and map
	t.ListItem = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 1)

	t.ListSelected = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(TransitBlueDeep).
		Padding(0, 1)

	t.MapBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.MapPath = lipgloss.NewStyle().
		Foreground(RoutePath)

	t.MapStop = lipgloss.NewStyle().
		Foreground(RouteStop).
		Bold(true)

	// Balance
	t.BalanceAmount = lipgloss.NewStyle().
		Bold(true).
		Foreground(FareGreen)

	t.MovementRow = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(TransitBlue).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)
}
