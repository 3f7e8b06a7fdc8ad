// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Balances are stored with exactly two decimal places and every accepted
// mutation must keep them representable that way.

// ErrBadAmount is returned when a string does not parse as a finite
// currency amount.
var ErrBadAmount = errors.New("invalid amount")

// Round2 rounds a currency amount to two decimal places, half away from
// zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders a balance the way the account store records it:
// plain decimal, exactly two fraction digits, no grouping.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ParseAmount parses a currency amount, rejecting NaN and infinities.
// Surrounding whitespace is tolerated because amounts arrive from either
// hand-edited store files or form inputs.
func ParseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, ErrBadAmount
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrBadAmount
	}
	return v, nil
}
