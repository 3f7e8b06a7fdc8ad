// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package docs describes the discount-card paperwork and collects the
// files riders hand over at the kiosk.
//
// Each rider profile (disabled, student, senior) carries an ordered
// list of required document labels. The kiosk shows the labels in that
// order and stashes each uploaded file under the intake directory named
// label_originalname, so back-office staff can pair files with the
// checklist without opening them.
package docs
