// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// BRAND COLORS
// =============================================================================

// TransitBlue - Headers, titles, primary buttons. The signage blue.
var TransitBlue = lipgloss.AdaptiveColor{Light: "#0056B3", Dark: "#4D9FFF"}

// TransitBlueDeep - Darker blue for selected backgrounds
var TransitBlueDeep = lipgloss.AdaptiveColor{Light: "#003D80", Dark: "#1A3A5C"}

// FareGreen - Balances, confirmations, success states
var FareGreen = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#66BB6A"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// AlertRed - Errors, the reactivation notice, danger states
var AlertRed = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#EF5350"}

// NoticeAmber - Idle warnings, caution states
var NoticeAmber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE AND TEXT
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - Headers and footers
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}

// Overlay - Borders and separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Labels, less prominent text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - Hints and key legends
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// TextInverse - Text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#11111B"}

// =============================================================================
// MAP COLORS
// =============================================================================

// RoutePath - The polyline drawn through a route's stops
var RoutePath = lipgloss.AdaptiveColor{Light: "#0056B3", Dark: "#4D9FFF"}

// RouteStop - Stop markers on the map grid
var RouteStop = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#EF5350"}
