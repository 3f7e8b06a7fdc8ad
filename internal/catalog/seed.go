// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import _ "embed"

// SeedGeometry is the production route geometry table, embedded at
// compile time. ayvoy-admin init writes it into a fresh kiosk home so
// the map draws routes before the operator has edited anything.
//
//go:embed seed/rutas_geo.txt
var SeedGeometry []byte
