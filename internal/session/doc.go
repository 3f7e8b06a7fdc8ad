// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks the rider currently using the kiosk.
//
// A kiosk is a shared terminal, so a session is short-lived by design:
// it starts when a folio authenticates, refreshes on every keypress,
// warns when idle, and logs out on its own when the idle timeout
// lapses. Login attempts are rate limited so a walk-up cannot enumerate
// folios by hammering the login form.
package session
