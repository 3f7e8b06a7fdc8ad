// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ledger holds the stored-value fare accounts.
//
// An account is keyed by folio, carries a two-decimal balance and an
// append-only movement history, and lives in an account store behind
// the AccountRepository seam. The default store is the flat
// `folio,balance[,movement]*` text file; a SQLite store exists behind
// the same seam for installs that outgrow the file.
//
// A deliberate inherited asymmetry: recharging updates the balance but
// never appends a movement record, so balance and history can diverge.
// Tests pin this behavior; do not "fix" it here without product intent.
package ledger
