// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles holds the kiosk's visual styling. Colors follow the
// transit authority's print palette, adapted for light and dark
// terminals.
package styles
