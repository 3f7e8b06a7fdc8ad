// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ledger

import (
	"errors"
	"strings"

	"github.com/ayvoy/kiosk-tui/internal/logging"
	"github.com/ayvoy/kiosk-tui/internal/util"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrNotFound reports a folio with no record in the account store.
	ErrNotFound = errors.New("folio not found")

	// ErrInvalidAmount reports a recharge amount that is not a positive
	// finite number. Raised before the store is touched.
	ErrInvalidAmount = errors.New("invalid recharge amount")
)

// =============================================================================
// ACCOUNT
// =============================================================================

// Account is one fare account as stored.
type Account struct {
	// Folio is the unique identifier, immutable once provisioned.
	Folio string
	// Balance is the stored value, always representable with two
	// decimal places.
	Balance float64
	// Movements is the free-text history, oldest first. Not guaranteed
	// to reflect every balance change (see package doc).
	Movements []string
}

// =============================================================================
// REPOSITORY SEAM
// =============================================================================

// AccountRepository is the seam between fare operations and whatever
// actually stores the accounts. Today that is a flat file rewritten in
// full on every update; the seam exists so a transactional store can
// replace it without touching navigation or screens.
type AccountRepository interface {
	// FindAccount returns the first record matching folio in store
	// order, or ErrNotFound. Store-order-first is load-bearing: a
	// duplicated folio (a data-integrity anomaly) must resolve the
	// same way on every read.
	FindAccount(folio string) (Account, error)

	// UpdateAccount replaces the balance of the first record matching
	// folio, leaving every other record untouched, and returns
	// ErrNotFound when no record matches.
	UpdateAccount(folio string, newBalance float64) error

	// Accounts returns every account in store order. Operator surface;
	// no kiosk screen lists accounts.
	Accounts() ([]Account, error)
}

// =============================================================================
// LEDGER OPERATIONS
// =============================================================================

// Ledger exposes the fare operations the screens call.
type Ledger struct {
	repo AccountRepository
	log  logging.Logger
}

// New builds a ledger over a repository.
func New(repo AccountRepository, log logging.Logger) *Ledger {
	if log == nil {
		log = logging.Nop()
	}
	return &Ledger{repo: repo, log: log}
}

// Authenticate looks up a folio for login. The folio is trimmed of
// surrounding whitespace but otherwise matched exactly. No session is
// created here; that is the caller's decision on success.
func (l *Ledger) Authenticate(folio string) (Account, error) {
	folio = strings.TrimSpace(folio)
	acct, err := l.repo.FindAccount(folio)
	if err != nil {
		l.log.Info("authentication failed", "folio", folio)
		return Account{}, err
	}
	l.log.Info("folio authenticated", "folio", folio)
	return acct, nil
}

// BalanceOf returns the current balance and movement history.
func (l *Ledger) BalanceOf(folio string) (Account, error) {
	return l.repo.FindAccount(strings.TrimSpace(folio))
}

// Recharge credits amount to the folio's balance and returns the new
// balance, rounded to two decimals. Amounts that are not positive
// finite numbers are rejected with ErrInvalidAmount before the store is
// read or written. No movement record is appended (see package doc).
func (l *Ledger) Recharge(folio string, amount float64) (float64, error) {
	if !validAmount(amount) {
		return 0, ErrInvalidAmount
	}

	folio = strings.TrimSpace(folio)
	acct, err := l.repo.FindAccount(folio)
	if err != nil {
		return 0, err
	}

	newBalance := util.Round2(acct.Balance + amount)
	if err := l.repo.UpdateAccount(folio, newBalance); err != nil {
		return 0, err
	}

	l.log.Info("recharge applied", "folio", folio, "amount", amount, "balance", newBalance)
	return newBalance, nil
}

func validAmount(v float64) bool {
	// NaN fails both comparisons; infinities fail the upper bound.
	// The bound itself is arbitrary but keeps a fat-fingered amount
	// from inflating a balance past what the store format ever sees.
	return v > 0 && v <= 1e9
}
