// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for the
// kiosk.
//
// Configuration is TOML with built-in defaults; the kiosk launches with
// no CLI flags, so the only overrides are the config file itself and the
// AYVOY_HOME environment variable, which relocates the data directory
// for development and test installs.
//
// Configuration file location:
//   - $AYVOY_HOME/config.toml (when AYVOY_HOME is set)
//   - ~/.ayvoy/config.toml
//   - Built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete kiosk configuration.
type Config struct {
	Version string `toml:"version"`

	Data    DataConfig    `toml:"data"`
	Map     MapConfig     `toml:"map"`
	Session SessionConfig `toml:"session"`
	Store   StoreConfig   `toml:"store"`
	Log     LogConfig     `toml:"log"`
	UI      UIConfig      `toml:"ui"`
}

// UIConfig tunes the rider-facing presentation.
type UIConfig struct {
	// Locale is the BCP 47 tag used for currency display.
	Locale string `toml:"locale"`
}

// DataConfig locates the operator-editable flat files.
type DataConfig struct {
	// UsersFile is the account store: one `folio,balance[,movement]*`
	// record per line.
	UsersFile string `toml:"users_file"`
	// RoutesFile lists one route identifier per line.
	RoutesFile string `toml:"routes_file"`
	// DestinationsFile maps `identifier:description`, one per line.
	DestinationsFile string `toml:"destinations_file"`
	// GeometryFile maps `identifier:lat,lon;lat,lon;...`, one per line.
	GeometryFile string `toml:"geometry_file"`
	// DocumentsDir receives uploaded discount-card documents.
	DocumentsDir string `toml:"documents_dir"`
}

// MapConfig sets the initial map viewport.
type MapConfig struct {
	CenterLat float64 `toml:"center_lat"`
	CenterLon float64 `toml:"center_lon"`
	Zoom      int     `toml:"zoom"`
}

// SessionConfig controls the kiosk session lifecycle.
type SessionConfig struct {
	// TimeoutSecs is the idle time before a signed-in folio is logged
	// out automatically. 0 disables the timeout.
	TimeoutSecs int `toml:"timeout_secs"`
	// WarningSecs is how long before the timeout the warning shows.
	WarningSecs int `toml:"warning_secs"`
	// LoginBurst is how many folio submissions are allowed back to back
	// before throttling kicks in.
	LoginBurst int `toml:"login_burst"`
	// LoginIntervalSecs is how often a throttled kiosk regains one
	// login attempt.
	LoginIntervalSecs int `toml:"login_interval_secs"`
}

// StoreConfig selects the account store backend.
type StoreConfig struct {
	// Backend is "file" (the flat account store) or "sqlite".
	Backend string `toml:"backend"`
	// SQLitePath is the database path when Backend is "sqlite".
	SQLitePath string `toml:"sqlite_path"`
}

// LogConfig controls the kiosk log.
type LogConfig struct {
	// Path is the rotating log file location.
	Path string `toml:"path"`
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// Console additionally mirrors the log to stderr.
	Console bool `toml:"console"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Home returns the kiosk data directory, honoring AYVOY_HOME.
func Home() string {
	if h := os.Getenv("AYVOY_HOME"); h != "" {
		return h
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ayvoy"
	}
	return filepath.Join(home, ".ayvoy")
}

// Default returns a Config with built-in defaults. The map viewport
// defaults to the Aguascalientes city center the route network is built
// around.
func Default() *Config {
	home := Home()
	return &Config{
		Version: "1.0.0",
		Data: DataConfig{
			UsersFile:        filepath.Join(home, "USERS", "usuarios.txt"),
			RoutesFile:       filepath.Join(home, "ROUTES", "rutas.txt"),
			DestinationsFile: filepath.Join(home, "ROUTES", "destinos.txt"),
			GeometryFile:     filepath.Join(home, "ROUTES", "rutas_geo.txt"),
			DocumentsDir:     filepath.Join(home, "TRAMITES"),
		},
		Map: MapConfig{
			CenterLat: 21.88234,
			CenterLon: -102.28259,
			Zoom:      13,
		},
		Session: SessionConfig{
			TimeoutSecs:       120,
			WarningSecs:       20,
			LoginBurst:        5,
			LoginIntervalSecs: 3,
		},
		Store: StoreConfig{
			Backend:    "file",
			SQLitePath: filepath.Join(home, "USERS", "usuarios.db"),
		},
		Log: LogConfig{
			Path:    filepath.Join(home, "logs", "kiosk.log"),
			Level:   "info",
			Console: false,
		},
		UI: UIConfig{
			Locale: "es-MX",
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Path returns the config file location.
func Path() string {
	return filepath.Join(Home(), "config.toml")
}

// Load reads the config file at path, layering it over defaults. A
// missing file is not an error: the kiosk must boot on a bare machine.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize clamps out-of-range values back to usable ones rather than
// refusing to start; a kiosk with a mangled config file still has to
// come up.
func (c *Config) normalize() {
	if c.Session.TimeoutSecs < 0 {
		c.Session.TimeoutSecs = 0
	}
	if c.Session.WarningSecs < 0 || c.Session.WarningSecs >= c.Session.TimeoutSecs {
		if c.Session.TimeoutSecs > 0 {
			c.Session.WarningSecs = c.Session.TimeoutSecs / 4
		} else {
			c.Session.WarningSecs = 0
		}
	}
	if c.Session.LoginBurst < 1 {
		c.Session.LoginBurst = 1
	}
	if c.Session.LoginIntervalSecs < 1 {
		c.Session.LoginIntervalSecs = 1
	}
	if c.Store.Backend != "file" && c.Store.Backend != "sqlite" {
		c.Store.Backend = "file"
	}
	if c.Map.Zoom < 1 || c.Map.Zoom > 19 {
		c.Map.Zoom = 13
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		c.Log.Level = "info"
	}
	if c.UI.Locale == "" {
		c.UI.Locale = "es-MX"
	}
}

// Save writes the config as TOML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalMu  sync.RWMutex
	globalCfg *Config
)

// Global returns the process-wide config, loading it on first use.
func Global() *Config {
	globalMu.RLock()
	if globalCfg != nil {
		defer globalMu.RUnlock()
		return globalCfg
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalCfg == nil {
		cfg, err := Load(Path())
		if err != nil {
			cfg = Default()
		}
		globalCfg = cfg
	}
	return globalCfg
}

// SetGlobal replaces the process-wide config.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = cfg
}

// ResetGlobalForTesting clears the global config so tests start clean.
func ResetGlobalForTesting() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = nil
}
