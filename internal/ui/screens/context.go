// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package screens

import (
	"github.com/ayvoy/kiosk-tui/internal/catalog"
	"github.com/ayvoy/kiosk-tui/internal/config"
	"github.com/ayvoy/kiosk-tui/internal/docs"
	"github.com/ayvoy/kiosk-tui/internal/ledger"
	"github.com/ayvoy/kiosk-tui/internal/logging"
	"github.com/ayvoy/kiosk-tui/internal/nav"
	"github.com/ayvoy/kiosk-tui/internal/session"
	"github.com/ayvoy/kiosk-tui/internal/ui/styles"
)

// =============================================================================
// SHARED CONTEXT
// =============================================================================

// Context carries the services every screen may need. The root model
// builds one and hands the same pointer to each screen it constructs.
type Context struct {
	Theme    *styles.Theme
	Catalog  *catalog.Catalog
	Ledger   *ledger.Ledger
	Session  *session.Manager
	Uploader *docs.Uploader
	Config   *config.Config
	Log      logging.Logger

	Width  int
	Height int
}

// =============================================================================
// SCREEN MESSAGES
// =============================================================================

// GoMsg asks the root model to apply a navigation action.
type GoMsg struct {
	Action nav.Action
}

// SubmitFolioMsg carries the login form.
type SubmitFolioMsg struct {
	Folio string
}

// SubmitRechargeMsg carries the completed payment form.
type SubmitRechargeMsg struct {
	Form nav.PaymentForm
}

// ChooseProfileMsg selects a discount-card checklist.
type ChooseProfileMsg struct {
	Profile docs.Profile
}

// UploadRequestMsg asks for the file at Path to be filed under Label.
type UploadRequestMsg struct {
	Label string
	Path  string
}

// UploadDoneMsg reports the outcome of an upload back to the
// documents screen.
type UploadDoneMsg struct {
	Label string
	Dest  string
	Err   error
}
