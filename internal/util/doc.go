// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides shared helpers for the kiosk application:
// atomic file replacement for the flat account store, rune-safe string
// truncation for screen rendering, and two-decimal currency arithmetic
// for fare balances.
package util
