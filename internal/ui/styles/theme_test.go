// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "testing"

func TestNewThemeStylesConfigured(t *testing.T) {
	theme := NewTheme()

	if !theme.Title.GetBold() {
		t.Error("Title should be bold")
	}
	if !theme.ErrorText.GetBold() {
		t.Error("ErrorText should be bold")
	}
	if theme.MenuBox.GetBorderStyle() != theme.MapBox.GetBorderStyle() {
		t.Error("menu and map boxes should share the rounded border")
	}
}

func TestSetSizePropagatesWidth(t *testing.T) {
	theme := NewTheme()
	theme.SetSize(120, 40)

	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("size = %dx%d", theme.Width, theme.Height)
	}
	if theme.StatusBar.GetWidth() != 120 {
		t.Errorf("status bar width = %d", theme.StatusBar.GetWidth())
	}
	if theme.WarningBar.GetWidth() != 120 {
		t.Errorf("warning bar width = %d", theme.WarningBar.GetWidth())
	}
}
