// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ledger

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ayvoy/kiosk-tui/internal/logging"
)

func writeAccountFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "usuarios.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func newTestLedger(t *testing.T, content string) (*Ledger, string) {
	t.Helper()
	path := writeAccountFile(t, content)
	store := NewFlatFileStore(path, logging.Nop())
	return New(store, logging.Nop()), path
}

// =============================================================================
// AUTHENTICATE
// =============================================================================

func TestAuthenticateKnownFolio(t *testing.T) {
	l, _ := newTestLedger(t, "A100,50.00,Bus fare -3.00\nB200,12.50\n")

	acct, err := l.Authenticate("A100")
	if err != nil {
		t.Fatalf("Authenticate(A100): %v", err)
	}
	if acct.Folio != "A100" || acct.Balance != 50.00 {
		t.Errorf("got folio=%s balance=%v", acct.Folio, acct.Balance)
	}
	if len(acct.Movements) != 1 || acct.Movements[0] != "Bus fare -3.00" {
		t.Errorf("movements = %v", acct.Movements)
	}
}

func TestAuthenticateTrimsInput(t *testing.T) {
	l, _ := newTestLedger(t, "A100,50.00\n")
	if _, err := l.Authenticate("  A100  "); err != nil {
		t.Errorf("trimmed folio should authenticate: %v", err)
	}
}

func TestAuthenticateUnknownFolio(t *testing.T) {
	l, _ := newTestLedger(t, "A100,50.00\n")
	_, err := l.Authenticate("Z999")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestAuthenticateWhitespacePaddedRecord(t *testing.T) {
	l, _ := newTestLedger(t, "  A100 , 50.00 , Bus fare -3.00 \n")

	acct, err := l.Authenticate("A100")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if acct.Balance != 50.00 {
		t.Errorf("balance = %v", acct.Balance)
	}
	if acct.Movements[0] != "Bus fare -3.00" {
		t.Errorf("movement not trimmed: %q", acct.Movements[0])
	}
}

func TestDuplicateFolioFirstRecordWins(t *testing.T) {
	l, _ := newTestLedger(t, "A100,50.00\nA100,99.00\n")

	acct, err := l.Authenticate("A100")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if acct.Balance != 50.00 {
		t.Errorf("balance = %v, want first record's 50.00", acct.Balance)
	}
}

// =============================================================================
// RECHARGE
// =============================================================================

func TestRechargeUpdatesBalanceOnly(t *testing.T) {
	l, path := newTestLedger(t, "A100,50.00,Bus fare -3.00\n")

	newBal, err := l.Recharge("A100", 20)
	if err != nil {
		t.Fatalf("Recharge: %v", err)
	}
	if newBal != 70.00 {
		t.Errorf("new balance = %v, want 70.00", newBal)
	}

	// The history is not appended to: a recharge changes the balance
	// field and nothing else.
	got := readFile(t, path)
	want := "A100,70.00,Bus fare -3.00\n"
	if got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestRechargePreservesOtherLines(t *testing.T) {
	content := "A100,50.00\n  B200 , 12.50 ,weird   spacing\n# not an account\nC300,0.00\n"
	l, path := newTestLedger(t, content)

	if _, err := l.Recharge("C300", 5); err != nil {
		t.Fatalf("Recharge: %v", err)
	}

	got := readFile(t, path)
	want := "A100,50.00\n  B200 , 12.50 ,weird   spacing\n# not an account\nC300,5.00\n"
	if got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestRechargeRejectsNonPositiveAmounts(t *testing.T) {
	content := "A100,50.00\n"
	l, path := newTestLedger(t, content)

	for _, amount := range []float64{0, -1, -0.01, math.NaN(), math.Inf(1)} {
		if _, err := l.Recharge("A100", amount); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Recharge(%v) err = %v, want ErrInvalidAmount", amount, err)
		}
	}

	// Rejected amounts never reach the store.
	if got := readFile(t, path); got != content {
		t.Errorf("file changed after rejected recharges: %q", got)
	}
}

func TestRechargeUnknownFolio(t *testing.T) {
	content := "A100,50.00\n"
	l, path := newTestLedger(t, content)

	if _, err := l.Recharge("Z999", 10); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if got := readFile(t, path); got != content {
		t.Errorf("file changed after failed recharge: %q", got)
	}
}

func TestRechargeDuplicateFolioUpdatesFirst(t *testing.T) {
	l, path := newTestLedger(t, "A100,50.00\nA100,99.00\n")

	if _, err := l.Recharge("A100", 10); err != nil {
		t.Fatalf("Recharge: %v", err)
	}
	got := readFile(t, path)
	want := "A100,60.00\nA100,99.00\n"
	if got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestRechargeRoundsToTwoDecimals(t *testing.T) {
	l, _ := newTestLedger(t, "A100,0.10\n")

	newBal, err := l.Recharge("A100", 0.20)
	if err != nil {
		t.Fatalf("Recharge: %v", err)
	}
	if newBal != 0.30 {
		t.Errorf("new balance = %v, want 0.30", newBal)
	}
}

func TestRechargeFractionalAmount(t *testing.T) {
	l, path := newTestLedger(t, "A100,50.00\n")

	newBal, err := l.Recharge("A100", 12.345)
	if err != nil {
		t.Fatalf("Recharge: %v", err)
	}
	if newBal != 62.35 {
		t.Errorf("new balance = %v, want 62.35", newBal)
	}
	if got := readFile(t, path); got != "A100,62.35\n" {
		t.Errorf("file = %q", got)
	}
}

// =============================================================================
// STORE ROUND-TRIP
// =============================================================================

func TestFlatFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usuarios.txt")
	store := NewFlatFileStore(path, logging.Nop())

	seed := []struct {
		folio   string
		balance float64
	}{
		{"A100", 50.00},
		{"B200", 0},
		{"C300", 1234.56},
	}
	for _, s := range seed {
		if err := store.CreateAccount(s.folio, s.balance); err != nil {
			t.Fatalf("CreateAccount(%s): %v", s.folio, err)
		}
	}
	for _, s := range seed {
		acct, err := store.FindAccount(s.folio)
		if err != nil {
			t.Fatalf("FindAccount(%s): %v", s.folio, err)
		}
		if acct.Balance != s.balance {
			t.Errorf("%s balance = %v, want %v", s.folio, acct.Balance, s.balance)
		}
	}
}

func TestFlatFileAccountsListsInFileOrder(t *testing.T) {
	path := writeAccountFile(t, "B200,12.50\nA100,50.00\n# comment\n")
	store := NewFlatFileStore(path, logging.Nop())

	accounts, err := store.Accounts()
	if err != nil {
		t.Fatalf("Accounts: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("accounts = %v", accounts)
	}
	if accounts[0].Folio != "B200" || accounts[1].Folio != "A100" {
		t.Errorf("order = %s, %s; want file order", accounts[0].Folio, accounts[1].Folio)
	}
}

func TestFlatFileAccountsMissingFileEmpty(t *testing.T) {
	store := NewFlatFileStore(filepath.Join(t.TempDir(), "absent.txt"), logging.Nop())
	accounts, err := store.Accounts()
	if err != nil {
		t.Fatalf("Accounts: %v", err)
	}
	if len(accounts) != 0 {
		t.Errorf("accounts = %v", accounts)
	}
}

func TestFlatFileCreateDuplicateRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usuarios.txt")
	store := NewFlatFileStore(path, logging.Nop())

	if err := store.CreateAccount("A100", 10); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	if err := store.CreateAccount("A100", 20); err == nil {
		t.Error("duplicate CreateAccount should fail")
	}
}

func TestFlatFileMissingFile(t *testing.T) {
	store := NewFlatFileStore(filepath.Join(t.TempDir(), "absent.txt"), logging.Nop())

	if _, err := store.FindAccount("A100"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindAccount err = %v, want ErrNotFound", err)
	}
	if err := store.UpdateAccount("A100", 10); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateAccount err = %v, want ErrNotFound", err)
	}
}

func TestFlatFileCRLFTolerated(t *testing.T) {
	path := writeAccountFile(t, "A100,50.00\r\nB200,12.50\r\n")
	store := NewFlatFileStore(path, logging.Nop())

	acct, err := store.FindAccount("B200")
	if err != nil {
		t.Fatalf("FindAccount: %v", err)
	}
	if acct.Balance != 12.50 {
		t.Errorf("balance = %v", acct.Balance)
	}
}
