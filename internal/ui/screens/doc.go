// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package screens holds one bubbletea model per kiosk view.
//
// Screens render and collect input only. When the rider commits a menu
// choice, a folio, or a payment form, the screen emits a message and
// the root model routes it through the navigator, which owns the flow
// rules. Screens are rebuilt on every transition, so none
// of them carries state across visits.
package screens
