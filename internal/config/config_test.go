// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestDefault_SaneValues(t *testing.T) {
	cfg := Default()

	if cfg.Store.Backend != "file" {
		t.Errorf("default backend = %q, want file", cfg.Store.Backend)
	}
	if cfg.Map.CenterLat == 0 || cfg.Map.CenterLon == 0 {
		t.Error("default map center missing")
	}
	if cfg.Session.WarningSecs >= cfg.Session.TimeoutSecs {
		t.Errorf("warning %ds not before timeout %ds",
			cfg.Session.WarningSecs, cfg.Session.TimeoutSecs)
	}
	if cfg.Data.UsersFile == "" || cfg.Data.RoutesFile == "" {
		t.Error("default data paths missing")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load on missing file errored: %v", err)
	}
	if cfg.Store.Backend != "file" {
		t.Errorf("expected defaults, got backend %q", cfg.Store.Backend)
	}
}

func TestLoad_Roundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := Default()
	cfg.Store.Backend = "sqlite"
	cfg.Session.TimeoutSecs = 300
	cfg.Session.WarningSecs = 60
	cfg.Data.RoutesFile = "/data/rutas.txt"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Store.Backend != "sqlite" {
		t.Errorf("backend = %q, want sqlite", loaded.Store.Backend)
	}
	if loaded.Session.TimeoutSecs != 300 {
		t.Errorf("timeout = %d, want 300", loaded.Session.TimeoutSecs)
	}
	if loaded.Data.RoutesFile != "/data/rutas.txt" {
		t.Errorf("routes file = %q", loaded.Data.RoutesFile)
	}
}

func TestLoad_NormalizesBadValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	raw := `
version = "1.0.0"
[session]
timeout_secs = -5
login_burst = 0
[store]
backend = "postgres"
[map]
zoom = 99
[log]
level = "loud"
`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Session.TimeoutSecs != 0 {
		t.Errorf("negative timeout not clamped: %d", cfg.Session.TimeoutSecs)
	}
	if cfg.Session.LoginBurst != 1 {
		t.Errorf("zero burst not clamped: %d", cfg.Session.LoginBurst)
	}
	if cfg.Store.Backend != "file" {
		t.Errorf("unknown backend not reset: %q", cfg.Store.Backend)
	}
	if cfg.Map.Zoom != 13 {
		t.Errorf("zoom not clamped: %d", cfg.Map.Zoom)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("level not reset: %q", cfg.Log.Level)
	}
	if cfg.UI.Locale != "es-MX" {
		t.Errorf("empty locale not defaulted: %q", cfg.UI.Locale)
	}
}

func TestHome_HonorsEnvOverride(t *testing.T) {
	t.Setenv("AYVOY_HOME", "/tmp/kiosk-test")
	if got := Home(); got != "/tmp/kiosk-test" {
		t.Errorf("Home() = %q, want /tmp/kiosk-test", got)
	}
}

// Global(), SetGlobal(), and ResetGlobalForTesting() must be safe under
// concurrent access. Run with: go test -race ./internal/config/
func TestGlobal_ConcurrentAccess(t *testing.T) {
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()
		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
}
