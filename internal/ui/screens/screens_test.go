// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package screens

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayvoy/kiosk-tui/internal/catalog"
	"github.com/ayvoy/kiosk-tui/internal/docs"
	"github.com/ayvoy/kiosk-tui/internal/ledger"
	"github.com/ayvoy/kiosk-tui/internal/logging"
	"github.com/ayvoy/kiosk-tui/internal/nav"
	"github.com/ayvoy/kiosk-tui/internal/session"
	"github.com/ayvoy/kiosk-tui/internal/ui/styles"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	dir := t.TempDir()

	users := filepath.Join(dir, "usuarios.txt")
	if err := os.WriteFile(users, []byte("A100,50.00,Bus fare -3.00\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	routes := filepath.Join(dir, "rutas.txt")
	if err := os.WriteFile(routes, []byte("Ruta 4\nRuta 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	dests := filepath.Join(dir, "destinos.txt")
	if err := os.WriteFile(dests, []byte("Ruta 4:Centro - CBTIS\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	geo := filepath.Join(dir, "rutas_geo.txt")
	if err := os.WriteFile(geo, []byte("Ruta 4:21.88,-102.28;21.89,-102.29\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cat := catalog.New(catalog.Sources{
		RoutesFile:       routes,
		DestinationsFile: dests,
		GeometryFile:     geo,
	}, logging.Nop())

	cfg := session.DefaultConfig()
	cfg.LoginInterval = 0
	sess := session.NewManager(cfg, logging.Nop())

	led := ledger.New(ledger.NewFlatFileStore(users, logging.Nop()), logging.Nop())

	theme := styles.NewTheme()
	theme.SetSize(80, 24)

	return &Context{
		Theme:    theme,
		Catalog:  cat,
		Ledger:   led,
		Session:  sess,
		Uploader: docs.NewUploader(filepath.Join(dir, "TRAMITES"), logging.Nop()),
		Log:      logging.Nop(),
		Width:    80,
		Height:   24,
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMainMenuHidesSessionEntriesWhenLoggedOut(t *testing.T) {
	ctx := newTestContext(t)
	view := NewMainMenu(ctx).View()

	if strings.Contains(view, "Cerrar Sesión") {
		t.Error("logout entry shown with nobody logged in")
	}
	if !strings.Contains(view, "Iniciar Sesión") {
		t.Error("login entry missing with nobody logged in")
	}
	if !strings.Contains(view, "Trámites") {
		t.Error("procedures entry missing")
	}
}

func TestMainMenuShowsSessionEntriesWhenLoggedIn(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Session.Login("A100")
	view := NewMainMenu(ctx).View()

	if !strings.Contains(view, "Cerrar Sesión") {
		t.Error("logout entry missing for a running session")
	}
	if !strings.Contains(view, "Consultar Saldo") {
		t.Error("balance entry missing for a running session")
	}
	if strings.Contains(view, "Iniciar Sesión") {
		t.Error("login entry shown during a running session")
	}
}

func TestMainMenuEnterEmitsGo(t *testing.T) {
	ctx := newTestContext(t)
	m := NewMainMenu(ctx)

	_, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	msg, ok := cmd().(GoMsg)
	if !ok {
		t.Fatalf("msg = %T, want GoMsg", cmd())
	}
	if msg.Action != nav.ActionOpenLogin {
		t.Errorf("action = %v, want open login", msg.Action)
	}
}

func TestLoginCarriesFolioAndError(t *testing.T) {
	ctx := newTestContext(t)
	l := NewLogin(ctx, "Z999", "Folio no encontrado.")

	view := l.View()
	if !strings.Contains(view, "Z999") {
		t.Error("typed folio not preserved")
	}
	if !strings.Contains(view, "Folio no encontrado.") {
		t.Error("error message not shown")
	}
}

func TestLoginEnterSubmits(t *testing.T) {
	ctx := newTestContext(t)
	l := NewLogin(ctx, "A100", "")

	_, cmd := l.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	msg, ok := cmd().(SubmitFolioMsg)
	if !ok || msg.Folio != "A100" {
		t.Errorf("msg = %#v", cmd())
	}
}

func TestMapScreenListsRoutes(t *testing.T) {
	ctx := newTestContext(t)
	view := NewMapScreen(ctx).View()

	if !strings.Contains(view, "Ruta 4") || !strings.Contains(view, "Ruta 10") {
		t.Errorf("routes missing from view:\n%s", view)
	}
	if !strings.Contains(view, "Centro - CBTIS") {
		t.Error("selected route description missing")
	}
}

func TestBalanceShowsAmountAndMovements(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Session.Login("A100")
	view := NewBalance(ctx, "").View()

	if !strings.Contains(view, "50.00") {
		t.Errorf("balance missing:\n%s", view)
	}
	if !strings.Contains(view, "Bus fare -3.00") {
		t.Error("movement history missing")
	}
}

func TestRechargeFormCollectsFields(t *testing.T) {
	ctx := newTestContext(t)
	r := NewRecharge(ctx, "")

	r.inputs[fieldCard].SetValue("4111111111111111")
	r.inputs[fieldMonth].SetValue("09")
	r.inputs[fieldYear].SetValue("27")
	r.inputs[fieldHolder].SetValue("MARIA LOPEZ")
	r.inputs[fieldCVV].SetValue("123")
	r.inputs[fieldAmount].SetValue("20")

	form := r.form()
	if _, err := form.Validate(); err != nil {
		t.Errorf("complete form refused: %v", err)
	}
}

func TestProceduresListsAllProfiles(t *testing.T) {
	ctx := newTestContext(t)
	view := NewProcedures(ctx, "").View()

	for _, p := range docs.Profiles() {
		if !strings.Contains(view, p.DisplayName()) {
			t.Errorf("profile %s missing", p.DisplayName())
		}
	}
}

func TestDocumentsShowsChecklistAndReactivation(t *testing.T) {
	ctx := newTestContext(t)
	d := NewDocuments(ctx, docs.ProfileDisabled)
	view := d.View()

	if !strings.Contains(view, "Tarjeta DIF") {
		t.Error("required label missing")
	}
	if !strings.Contains(view, "reactivación") {
		t.Error("reactivation section missing")
	}
}

func TestDocumentsUploadRoundTrip(t *testing.T) {
	ctx := newTestContext(t)
	src := filepath.Join(t.TempDir(), "acta.pdf")
	if err := os.WriteFile(src, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	d := NewDocuments(ctx, docs.ProfileSenior)
	cmd := d.uploadCmd("Acta de nacimiento", src)
	msg, ok := cmd().(UploadDoneMsg)
	if !ok {
		t.Fatalf("msg = %T", cmd())
	}
	if msg.Err != nil {
		t.Fatalf("upload failed: %v", msg.Err)
	}

	d.Update(msg)
	if !strings.Contains(d.View(), "acta.pdf") {
		t.Error("uploaded file not reflected in checklist")
	}
}

func TestFormatMXN(t *testing.T) {
	got := FormatMXN(70)
	if !strings.Contains(got, "70") {
		t.Errorf("FormatMXN(70) = %q", got)
	}
}
