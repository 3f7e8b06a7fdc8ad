// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"testing"
	"time"

	"github.com/ayvoy/kiosk-tui/internal/logging"
)

func newTestManager(cfg Config) *Manager {
	return NewManager(cfg, logging.Nop())
}

func TestLoginStartsSession(t *testing.T) {
	m := newTestManager(DefaultConfig())

	if m.Active() {
		t.Fatal("fresh manager should have nobody logged in")
	}

	id := m.Login("A100")
	if id == "" {
		t.Fatal("Login returned empty session ID")
	}
	if !m.Active() {
		t.Error("Active() = false after Login")
	}
	if m.Folio() != "A100" {
		t.Errorf("Folio() = %q", m.Folio())
	}
	if m.SessionID() != id {
		t.Errorf("SessionID() = %q, want %q", m.SessionID(), id)
	}
}

func TestLoginReplacesSession(t *testing.T) {
	m := newTestManager(DefaultConfig())

	first := m.Login("A100")
	second := m.Login("B200")

	if first == second {
		t.Error("second login reused the session ID")
	}
	if m.Folio() != "B200" {
		t.Errorf("Folio() = %q, want B200", m.Folio())
	}
}

func TestLogoutIdempotent(t *testing.T) {
	m := newTestManager(DefaultConfig())

	m.Logout() // nobody logged in; must not panic
	m.Login("A100")
	m.Logout()
	m.Logout()

	if m.Active() {
		t.Error("still active after Logout")
	}
	if m.Folio() != "" {
		t.Errorf("Folio() = %q after Logout", m.Folio())
	}
}

func TestExpiredAfterIdleTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = 20 * time.Millisecond
	cfg.WarningBefore = 5 * time.Millisecond
	m := newTestManager(cfg)

	m.Login("A100")
	if m.Expired() {
		t.Fatal("expired immediately after login")
	}

	time.Sleep(30 * time.Millisecond)
	if !m.Expired() {
		t.Error("not expired after idle timeout elapsed")
	}
}

func TestActivityResetsIdleClock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = 40 * time.Millisecond
	m := newTestManager(cfg)

	m.Login("A100")
	time.Sleep(25 * time.Millisecond)
	m.RecordActivity()
	time.Sleep(25 * time.Millisecond)

	if m.Expired() {
		t.Error("expired despite activity inside the window")
	}
}

func TestZeroTimeoutDisablesIdleLogout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = 0
	m := newTestManager(cfg)

	m.Login("A100")
	time.Sleep(10 * time.Millisecond)

	if m.Expired() {
		t.Error("zero timeout should disable expiry")
	}
	if m.ShouldWarn() {
		t.Error("zero timeout should disable warnings")
	}
}

func TestWarningLatches(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = 100 * time.Millisecond
	cfg.WarningBefore = 80 * time.Millisecond
	m := newTestManager(cfg)

	m.Login("A100")
	time.Sleep(30 * time.Millisecond)

	if !m.ShouldWarn() {
		t.Fatal("warning not raised inside warning window")
	}
	if m.ShouldWarn() {
		t.Error("warning raised twice without intervening activity")
	}

	m.RecordActivity()
	time.Sleep(30 * time.Millisecond)
	if !m.ShouldWarn() {
		t.Error("warning not re-armed by activity")
	}
}

func TestNoWarningWithoutSession(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = 10 * time.Millisecond
	cfg.WarningBefore = 8 * time.Millisecond
	m := newTestManager(cfg)

	time.Sleep(15 * time.Millisecond)
	if m.ShouldWarn() {
		t.Error("warning with nobody logged in")
	}
	if m.Expired() {
		t.Error("expiry with nobody logged in")
	}
}

func TestLoginAttemptThrottle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LoginBurst = 3
	cfg.LoginInterval = time.Hour // no refill inside the test
	m := newTestManager(cfg)

	for i := 0; i < 3; i++ {
		if !m.AllowLoginAttempt() {
			t.Fatalf("attempt %d rejected inside burst", i+1)
		}
	}
	if m.AllowLoginAttempt() {
		t.Error("attempt allowed past exhausted burst")
	}
}

func TestLoginThrottleDisabledInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LoginBurst = 1
	cfg.LoginInterval = 0
	m := newTestManager(cfg)

	for i := 0; i < 10; i++ {
		if !m.AllowLoginAttempt() {
			t.Fatal("zero interval should not throttle")
		}
	}
}
