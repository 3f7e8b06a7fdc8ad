// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads and manages the kiosk TOML configuration: data
// file locations, map viewport, session timeout, store backend, and
// logging. See config.go for the file format and defaults.
package config
