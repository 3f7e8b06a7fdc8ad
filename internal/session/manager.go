// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/ayvoy/kiosk-tui/internal/logging"
)

// =============================================================================
// SESSION MANAGER
// =============================================================================

// Manager tracks the authenticated folio and its idle clock. One
// Manager outlives many sessions: Login starts one, Logout or an idle
// timeout ends it, and the manager sits empty between riders.
type Manager struct {
	mu sync.Mutex

	// Current session; id is empty when nobody is logged in.
	id           string
	folio        string
	startTime    time.Time
	lastActivity time.Time

	// Timeout configuration. A zero timeout disables idle logout.
	timeout       time.Duration
	warningBefore time.Duration
	warningShown  bool

	// Login throttling, shared across sessions.
	limiter *rate.Limiter

	log logging.Logger
}

// Config holds configuration for the session manager.
type Config struct {
	// Timeout is the idle duration after which the session ends.
	// Zero disables idle logout.
	Timeout time.Duration

	// WarningBefore is how long before timeout to warn the rider.
	WarningBefore time.Duration

	// LoginBurst is how many login attempts may arrive back to back.
	LoginBurst int

	// LoginInterval is how often the attempt budget refills.
	LoginInterval time.Duration
}

// DefaultConfig returns the kiosk defaults: a two-minute idle timeout
// with a twenty-second warning, and five login attempts refilling one
// every three seconds.
func DefaultConfig() Config {
	return Config{
		Timeout:       2 * time.Minute,
		WarningBefore: 20 * time.Second,
		LoginBurst:    5,
		LoginInterval: 3 * time.Second,
	}
}

// NewManager creates a session manager with nobody logged in.
func NewManager(cfg Config, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop()
	}
	if cfg.LoginBurst < 1 {
		cfg.LoginBurst = 1
	}
	limit := rate.Inf
	if cfg.LoginInterval > 0 {
		limit = rate.Every(cfg.LoginInterval)
	}
	return &Manager{
		timeout:       cfg.Timeout,
		warningBefore: cfg.WarningBefore,
		limiter:       rate.NewLimiter(limit, cfg.LoginBurst),
		log:           log,
	}
}

// =============================================================================
// LOGIN / LOGOUT
// =============================================================================

// AllowLoginAttempt consumes one token from the login budget. Callers
// check this before touching the account store; a false return means
// the form should tell the rider to wait.
func (m *Manager) AllowLoginAttempt() bool {
	return m.limiter.Allow()
}

// Login starts a session for folio, replacing any session already
// running. Returns the new session ID.
func (m *Manager) Login(folio string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	m.id = uuid.NewString()
	m.folio = folio
	m.startTime = now
	m.lastActivity = now
	m.warningShown = false

	m.log.Info("session started", "session_id", m.id, "folio", folio)
	return m.id
}

// Logout ends the current session. Safe to call with nobody logged in.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.id == "" {
		return
	}
	m.log.Info("session ended", "session_id", m.id, "folio", m.folio,
		"duration", time.Since(m.startTime).String())
	m.id = ""
	m.folio = ""
	m.warningShown = false
}

// Active reports whether a rider is logged in.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id != ""
}

// Folio returns the authenticated folio, or "" with nobody logged in.
func (m *Manager) Folio() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.folio
}

// SessionID returns the current session ID, or "" with nobody logged in.
func (m *Manager) SessionID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id
}

// =============================================================================
// IDLE TRACKING
// =============================================================================

// RecordActivity refreshes the idle clock. Called on every keypress
// while a session is running.
func (m *Manager) RecordActivity() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.id == "" {
		return
	}
	m.lastActivity = time.Now()
	m.warningShown = false
}

// IdleTime returns how long since the rider last touched a key.
func (m *Manager) IdleTime() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.id == "" {
		return 0
	}
	return time.Since(m.lastActivity)
}

// RemainingTime returns time until idle logout, zero when already
// expired or with the timeout disabled.
func (m *Manager) RemainingTime() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.id == "" || m.timeout == 0 {
		return 0
	}
	remaining := m.timeout - time.Since(m.lastActivity)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expired reports whether the current session has idled out. Always
// false with nobody logged in or the timeout disabled.
func (m *Manager) Expired() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.expiredLocked()
}

func (m *Manager) expiredLocked() bool {
	if m.id == "" || m.timeout == 0 {
		return false
	}
	return time.Since(m.lastActivity) >= m.timeout
}

// ShouldWarn reports whether the idle warning is due. It latches: once
// reported true it stays false until activity resets it, so the UI
// shows the warning once per idle stretch.
func (m *Manager) ShouldWarn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.id == "" || m.timeout == 0 || m.warningShown || m.warningBefore <= 0 {
		return false
	}
	idle := time.Since(m.lastActivity)
	if idle >= m.timeout-m.warningBefore && idle < m.timeout {
		m.warningShown = true
		return true
	}
	return false
}

// =============================================================================
// BUBBLE TEA INTEGRATION
// =============================================================================

// TickMsg is sent periodically to drive idle checking.
type TickMsg struct {
	Time time.Time
}

// WarningMsg tells the UI the session is about to idle out.
type WarningMsg struct {
	Remaining time.Duration
}

// TimeoutMsg tells the UI the session has idled out.
type TimeoutMsg struct{}

// TickCmd returns a command that ticks once a second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// HandleTick evaluates the idle clock and returns the follow-up
// commands: a warning or timeout message when due, plus the next tick.
// On timeout the session is logged out here, so the UI only has to
// react to the message.
func (m *Manager) HandleTick() tea.Cmd {
	var cmds []tea.Cmd

	if m.ShouldWarn() {
		remaining := m.RemainingTime()
		cmds = append(cmds, func() tea.Msg {
			return WarningMsg{Remaining: remaining}
		})
	}

	if m.Expired() {
		m.log.Info("session idle timeout", "folio", m.Folio())
		m.Logout()
		cmds = append(cmds, func() tea.Msg {
			return TimeoutMsg{}
		})
	}

	cmds = append(cmds, TickCmd())
	return tea.Batch(cmds...)
}
