// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package nav owns the kiosk's screen flow.
//
// Screens themselves only render and collect input; every decision
// about where the rider goes next lives here, in one transition table
// with its guards. That keeps the rules testable without standing up a
// terminal: balance needs a login, a failed login stays put with an
// error, and Return always walks back up the same path.
package nav
