// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nav

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ayvoy/kiosk-tui/internal/docs"
	"github.com/ayvoy/kiosk-tui/internal/ledger"
	"github.com/ayvoy/kiosk-tui/internal/logging"
	"github.com/ayvoy/kiosk-tui/internal/session"
	"github.com/ayvoy/kiosk-tui/internal/util"
)

// =============================================================================
// SCREENS AND ACTIONS
// =============================================================================

// Screen identifies one kiosk view.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenLogin
	ScreenMap
	ScreenBalance
	ScreenRecharge
	ScreenProcedures
	ScreenDocuments
)

// String returns the screen name for logs.
func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenLogin:
		return "login"
	case ScreenMap:
		return "map"
	case ScreenBalance:
		return "balance"
	case ScreenRecharge:
		return "recharge"
	case ScreenProcedures:
		return "procedures"
	case ScreenDocuments:
		return "documents"
	default:
		return "unknown"
	}
}

// Action is a rider request to move between screens.
type Action int

const (
	ActionOpenLogin Action = iota
	ActionOpenMap
	ActionOpenBalance
	ActionOpenRecharge
	ActionOpenProcedures
	ActionReturn
	ActionLogout
)

// =============================================================================
// RESULT
// =============================================================================

// Result is what a navigation step produced: the screen now showing,
// the profile when that screen is the document checklist, and the
// message to surface. ErrMsg set means the step was refused and the
// rider stayed where the Screen field says.
type Result struct {
	Screen  Screen
	Profile docs.Profile
	ErrMsg  string
	InfoMsg string
}

// =============================================================================
// NAVIGATOR
// =============================================================================

// Navigator applies the kiosk's screen-flow rules.
type Navigator struct {
	current Screen
	profile docs.Profile

	session *session.Manager
	ledger  *ledger.Ledger
	log     logging.Logger
}

// New starts a navigator on the main menu.
func New(sess *session.Manager, led *ledger.Ledger, log logging.Logger) *Navigator {
	if log == nil {
		log = logging.Nop()
	}
	return &Navigator{current: ScreenMain, session: sess, ledger: led, log: log}
}

// Current returns the screen now showing.
func (n *Navigator) Current() Screen {
	return n.current
}

// Profile returns the profile selected for the documents screen. Only
// meaningful while Current() is ScreenDocuments.
func (n *Navigator) Profile() docs.Profile {
	return n.profile
}

// returnTargets walks each screen back to the one it was opened from.
// Anything unlisted falls back to the main menu.
var returnTargets = map[Screen]Screen{
	ScreenBalance:   ScreenMap,
	ScreenRecharge:  ScreenBalance,
	ScreenDocuments: ScreenProcedures,
}

// Go applies an action from the current screen. Guarded actions that
// need a login redirect to the login screen instead of refusing.
func (n *Navigator) Go(action Action) Result {
	switch action {
	case ActionOpenLogin:
		return n.moveTo(ScreenLogin)

	case ActionOpenMap:
		return n.moveTo(ScreenMap)

	case ActionOpenBalance:
		if !n.session.Active() {
			return n.moveTo(ScreenLogin)
		}
		return n.moveTo(ScreenBalance)

	case ActionOpenRecharge:
		if !n.session.Active() {
			return n.moveTo(ScreenLogin)
		}
		return n.moveTo(ScreenRecharge)

	case ActionOpenProcedures:
		return n.moveTo(ScreenProcedures)

	case ActionReturn:
		target, ok := returnTargets[n.current]
		if !ok {
			target = ScreenMain
		}
		if n.current == ScreenDocuments {
			n.profile = ""
		}
		return n.moveTo(target)

	case ActionLogout:
		n.session.Logout()
		n.profile = ""
		return n.moveTo(ScreenMain)

	default:
		return Result{Screen: n.current, ErrMsg: "Acción desconocida."}
	}
}

// ForceMain drops the rider back to the main menu, clearing any
// selected profile. Used when the session idles out underneath a
// screen.
func (n *Navigator) ForceMain() Result {
	n.profile = ""
	return n.moveTo(ScreenMain)
}

// =============================================================================
// FORM SUBMISSIONS
// =============================================================================

// SubmitFolio handles the login form. A bad folio keeps the rider on
// the login screen with a message; a good one starts a session and
// opens the route map.
func (n *Navigator) SubmitFolio(folio string) Result {
	folio = strings.TrimSpace(folio)
	if folio == "" {
		return Result{Screen: ScreenLogin, ErrMsg: "Ingresa tu folio."}
	}
	if !n.session.AllowLoginAttempt() {
		return Result{Screen: ScreenLogin, ErrMsg: "Demasiados intentos. Espera un momento."}
	}

	_, err := n.ledger.Authenticate(folio)
	if errors.Is(err, ledger.ErrNotFound) {
		return Result{Screen: ScreenLogin, ErrMsg: "Folio no encontrado."}
	}
	if err != nil {
		n.log.Error("login lookup failed", "error", err)
		return Result{Screen: ScreenLogin, ErrMsg: "No se pudo verificar el folio. Intenta de nuevo."}
	}

	n.session.Login(folio)
	return n.moveTo(ScreenMap)
}

// PaymentForm is the recharge form as typed. Every field is required;
// the card data is not stored or verified beyond presence.
type PaymentForm struct {
	CardNumber  string
	ExpiryMonth string
	ExpiryYear  string
	Holder      string
	CVV         string
	Amount      string
}

// Validate checks the form and returns the parsed amount.
func (f PaymentForm) Validate() (float64, error) {
	fields := []string{
		f.CardNumber, f.ExpiryMonth, f.ExpiryYear, f.Holder, f.CVV, f.Amount,
	}
	for _, field := range fields {
		if strings.TrimSpace(field) == "" {
			return 0, errors.New("Por favor, completa todos los campos.")
		}
	}
	amount, err := util.ParseAmount(f.Amount)
	if err != nil || amount <= 0 {
		return 0, errors.New("Ingresa un monto válido.")
	}
	return amount, nil
}

// SubmitRecharge handles the recharge form for the logged-in folio.
// Success returns to the balance screen with a confirmation message.
func (n *Navigator) SubmitRecharge(form PaymentForm) Result {
	if !n.session.Active() {
		return n.moveTo(ScreenLogin)
	}

	amount, err := form.Validate()
	if err != nil {
		return Result{Screen: ScreenRecharge, ErrMsg: err.Error()}
	}

	newBalance, err := n.ledger.Recharge(n.session.Folio(), amount)
	if errors.Is(err, ledger.ErrInvalidAmount) {
		return Result{Screen: ScreenRecharge, ErrMsg: "Ingresa un monto válido."}
	}
	if errors.Is(err, ledger.ErrNotFound) {
		// The account vanished mid-session; nothing sane to show but
		// the door.
		n.session.Logout()
		return n.moveTo(ScreenMain)
	}
	if err != nil {
		n.log.Error("recharge failed", "error", err)
		return Result{Screen: ScreenRecharge, ErrMsg: "No se pudo completar la recarga."}
	}

	res := n.moveTo(ScreenBalance)
	res.InfoMsg = "Se recargaron $" + strconv.FormatFloat(amount, 'f', 2, 64) +
		" correctamente. Saldo: $" + strconv.FormatFloat(newBalance, 'f', 2, 64)
	return res
}

// ChooseProfile opens the document checklist for a discount card.
func (n *Navigator) ChooseProfile(p docs.Profile) Result {
	if !p.Valid() {
		return Result{Screen: n.current, ErrMsg: "Trámite no disponible."}
	}
	n.profile = p
	return n.moveTo(ScreenDocuments)
}

func (n *Navigator) moveTo(s Screen) Result {
	if s != n.current {
		n.log.Debug("screen change", "from", n.current.String(), "to", s.String())
	}
	n.current = s
	return Result{Screen: s, Profile: n.profile}
}
