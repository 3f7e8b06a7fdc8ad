// AyVoy kiosk - the municipal transit self-service terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/ayvoy/kiosk-tui/internal/catalog"
	"github.com/ayvoy/kiosk-tui/internal/config"
	"github.com/ayvoy/kiosk-tui/internal/docs"
	"github.com/ayvoy/kiosk-tui/internal/ledger"
	"github.com/ayvoy/kiosk-tui/internal/logging"
	"github.com/ayvoy/kiosk-tui/internal/nav"
	"github.com/ayvoy/kiosk-tui/internal/session"
	"github.com/ayvoy/kiosk-tui/internal/ui/screens"
	"github.com/ayvoy/kiosk-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// ROOT MODEL
// =============================================================================

// Model owns the navigator and the screen now showing. Screens are
// rebuilt on every transition; only the context they share persists.
type Model struct {
	ctx  *screens.Context
	navr *nav.Navigator

	screen  tea.Model
	warning string
}

func newModel(ctx *screens.Context, navr *nav.Navigator) *Model {
	return &Model{
		ctx:    ctx,
		navr:   navr,
		screen: screens.NewMainMenu(ctx),
	}
}

// Init starts the screen and the session tick.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.screen.Init(), session.TickCmd())
}

// buildScreen constructs the model for a navigation result. The login
// screen re-carries the typed folio on a failed attempt.
func (m *Model) buildScreen(res nav.Result, folio string) tea.Model {
	switch res.Screen {
	case nav.ScreenLogin:
		return screens.NewLogin(m.ctx, folio, res.ErrMsg)
	case nav.ScreenMap:
		return screens.NewMapScreen(m.ctx)
	case nav.ScreenBalance:
		return screens.NewBalance(m.ctx, res.InfoMsg)
	case nav.ScreenRecharge:
		return screens.NewRecharge(m.ctx, res.ErrMsg)
	case nav.ScreenProcedures:
		return screens.NewProcedures(m.ctx, res.ErrMsg)
	case nav.ScreenDocuments:
		return screens.NewDocuments(m.ctx, res.Profile)
	default:
		return screens.NewMainMenu(m.ctx)
	}
}

// show swaps in the screen for a navigation result and starts it.
func (m *Model) show(res nav.Result, folio string) (tea.Model, tea.Cmd) {
	m.screen = m.buildScreen(res, folio)
	return m, m.screen.Init()
}

// Update routes messages: navigation and form submissions go through
// the navigator, everything else to the current screen.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ctx.Width = msg.Width
		m.ctx.Height = msg.Height
		m.ctx.Theme.SetSize(msg.Width, msg.Height)
		// Rebuild so size-dependent screens relayout.
		return m.show(nav.Result{Screen: m.navr.Current(), Profile: m.navr.Profile()}, "")

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.ctx.Session.RecordActivity()
		m.warning = ""
		screen, cmd := m.screen.Update(msg)
		m.screen = screen
		return m, cmd

	case session.TickMsg:
		return m, m.ctx.Session.HandleTick()

	case session.WarningMsg:
		m.warning = fmt.Sprintf("Tu sesión terminará en %d segundos.",
			int(msg.Remaining.Seconds()))
		return m, nil

	case session.TimeoutMsg:
		m.warning = ""
		return m.show(m.navr.ForceMain(), "")

	case screens.GoMsg:
		return m.show(m.navr.Go(msg.Action), "")

	case screens.SubmitFolioMsg:
		return m.show(m.navr.SubmitFolio(msg.Folio), msg.Folio)

	case screens.SubmitRechargeMsg:
		return m.show(m.navr.SubmitRecharge(msg.Form), "")

	case screens.ChooseProfileMsg:
		return m.show(m.navr.ChooseProfile(msg.Profile), "")
	}

	screen, cmd := m.screen.Update(msg)
	m.screen = screen
	return m, cmd
}

// View renders the current screen, with the idle warning bar on top
// when one is pending.
func (m *Model) View() string {
	view := m.screen.View()
	if m.warning != "" {
		view = m.ctx.Theme.WarningBar.Render(m.warning) + "\n" + view
	}
	return view
}

// =============================================================================
// STARTUP
// =============================================================================

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("ayvoy-kiosk %s (%s, %s)\n", Version, GitCommit, BuildDate)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: the kiosk needs an interactive terminal")
		os.Exit(1)
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	config.SetGlobal(cfg)

	log := buildLogger(cfg)
	log.Info("kiosk starting", "version", Version)

	cat := catalog.New(catalog.Sources{
		RoutesFile:       cfg.Data.RoutesFile,
		DestinationsFile: cfg.Data.DestinationsFile,
		GeometryFile:     cfg.Data.GeometryFile,
	}, log)
	if err := cat.Watch(); err != nil {
		log.Warn("catalog watch unavailable", "error", err)
	}
	defer cat.Close()

	repo, closeRepo, err := buildRepository(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening account store: %v\n", err)
		os.Exit(1)
	}
	defer closeRepo()

	sess := session.NewManager(session.Config{
		Timeout:       time.Duration(cfg.Session.TimeoutSecs) * time.Second,
		WarningBefore: time.Duration(cfg.Session.WarningSecs) * time.Second,
		LoginBurst:    cfg.Session.LoginBurst,
		LoginInterval: time.Duration(cfg.Session.LoginIntervalSecs) * time.Second,
	}, log)

	ctx := &screens.Context{
		Theme:    styles.NewTheme(),
		Catalog:  cat,
		Ledger:   ledger.New(repo, log),
		Session:  sess,
		Uploader: docs.NewUploader(cfg.Data.DocumentsDir, log),
		Config:   cfg,
		Log:      log,
	}
	navr := nav.New(sess, ctx.Ledger, log)

	program := tea.NewProgram(newModel(ctx, navr), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Error("kiosk crashed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Info("kiosk stopped")
}

// buildLogger assembles the log sinks from config. The TUI owns
// stdout, so console logging goes to stderr and is off by default.
func buildLogger(cfg *config.Config) logging.Logger {
	var writers []io.Writer
	if cfg.Log.Console {
		writers = append(writers, logging.ConsoleWriter())
	}
	if cfg.Log.Path != "" {
		writers = append(writers, logging.FileWriter(cfg.Log.Path))
	}
	if len(writers) == 0 {
		return logging.Nop()
	}
	return logging.New(logging.ParseLevel(cfg.Log.Level), writers...)
}

// buildRepository selects the account backend.
func buildRepository(cfg *config.Config, log logging.Logger) (ledger.AccountRepository, func(), error) {
	switch cfg.Store.Backend {
	case "sqlite":
		store, err := ledger.NewSQLiteStore(cfg.Store.SQLitePath, log)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	default:
		store := ledger.NewFlatFileStore(cfg.Data.UsersFile, log)
		return store, func() {}, nil
	}
}
