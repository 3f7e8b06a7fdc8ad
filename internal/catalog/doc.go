// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catalog resolves bus route identifiers to descriptions and
// polyline geometries.
//
// The three backing sources (identifier list, destination descriptions,
// geometry file) are independently operator-edited text files whose key
// sets are not guaranteed to agree. The catalog never assumes one source
// implies another exists: a route may be listed but undescribed, or
// described but unlisted, and both are valid non-fatal states. A missing
// source degrades to empty results and is logged, never raised.
package catalog
