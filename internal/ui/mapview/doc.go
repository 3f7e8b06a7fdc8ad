// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mapview draws a route's stops and path onto a canvas.
//
// The draw discipline lives in Render, independent of any particular
// canvas: the previous route is always cleared first, every stop gets a
// marker, and the connecting path is drawn only when there are at least
// two stops. Grid is the terminal canvas the kiosk ships with; tests
// substitute a recording canvas to check the discipline itself.
package mapview
