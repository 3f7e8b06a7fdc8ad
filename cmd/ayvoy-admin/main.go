// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package main provides ayvoy-admin, the operator tool for a kiosk
// installation: it lays down the data directory, writes the default
// configuration, and provisions fare accounts. Riders never see it.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ayvoy/kiosk-tui/internal/catalog"
	"github.com/ayvoy/kiosk-tui/internal/config"
	"github.com/ayvoy/kiosk-tui/internal/ledger"
	"github.com/ayvoy/kiosk-tui/internal/logging"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "init":
		if err := handleInit(); err != nil {
			fail(err)
		}
	case "add-account":
		if err := handleAddAccount(os.Args[2:]); err != nil {
			fail(err)
		}
	case "list-accounts":
		if err := handleListAccounts(); err != nil {
			fail(err)
		}
	case "show-config":
		handleShowConfig()
	case "--help", "-h", "help":
		printHelp()
	case "--version", "-v":
		fmt.Printf("ayvoy-admin v%s\n", version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printHelp() {
	fmt.Println(`ayvoy-admin v` + version + `

Operator tool for the AyVoy kiosk.

Usage:
  ayvoy-admin init                      Create the data directory and default config
  ayvoy-admin add-account FOLIO [BAL]   Provision a fare account (default balance 0)
  ayvoy-admin list-accounts             Print every account with its balance
  ayvoy-admin show-config               Print the effective configuration path and home

The data directory honors AYVOY_HOME (default ~/.ayvoy).`)
}

// handleInit creates the kiosk home with empty catalog files and the
// default config, refusing to clobber anything already there.
func handleInit() error {
	cfg := config.Default()

	for _, dir := range []string{config.Home(), cfg.Data.DocumentsDir} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	seeds := map[string][]byte{
		cfg.Data.UsersFile:        nil,
		cfg.Data.RoutesFile:       nil,
		cfg.Data.DestinationsFile: nil,
		cfg.Data.GeometryFile:     catalog.SeedGeometry,
	}
	for path, content := range seeds {
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.MkdirAll(dirOf(path), 0o700); err != nil {
			return fmt.Errorf("creating %s: %w", dirOf(path), err)
		}
		if err := os.WriteFile(path, content, 0o600); err != nil {
			return fmt.Errorf("seeding %s: %w", path, err)
		}
		fmt.Printf("created %s\n", path)
	}

	cfgPath := config.Path()
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		if err := cfg.Save(cfgPath); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		fmt.Printf("created %s\n", cfgPath)
	}

	fmt.Println("Kiosk home ready at", config.Home())
	return nil
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if os.IsPathSeparator(path[i]) {
			return path[:i]
		}
	}
	return "."
}

// handleAddAccount provisions a folio on whichever backend the config
// selects.
func handleAddAccount(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: ayvoy-admin add-account FOLIO [BALANCE]")
	}
	folio := args[0]
	balance := 0.0
	if len(args) > 1 {
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil || v < 0 {
			return fmt.Errorf("invalid balance %q", args[1])
		}
		balance = v
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logging.Nop()
	switch cfg.Store.Backend {
	case "sqlite":
		store, err := ledger.NewSQLiteStore(cfg.Store.SQLitePath, log)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.CreateAccount(folio, balance); err != nil {
			return err
		}
	default:
		if err := ledger.NewFlatFileStore(cfg.Data.UsersFile, log).CreateAccount(folio, balance); err != nil {
			return err
		}
	}

	fmt.Printf("account %s created with balance %.2f\n", folio, balance)
	return nil
}

// handleListAccounts prints every account on the configured backend.
func handleListAccounts() error {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var repo ledger.AccountRepository
	switch cfg.Store.Backend {
	case "sqlite":
		store, err := ledger.NewSQLiteStore(cfg.Store.SQLitePath, logging.Nop())
		if err != nil {
			return err
		}
		defer store.Close()
		repo = store
	default:
		repo = ledger.NewFlatFileStore(cfg.Data.UsersFile, logging.Nop())
	}

	accounts, err := repo.Accounts()
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		fmt.Println("no accounts")
		return nil
	}
	for _, acct := range accounts {
		fmt.Printf("%-16s %10.2f  (%d movements)\n", acct.Folio, acct.Balance, len(acct.Movements))
	}
	return nil
}

func handleShowConfig() {
	fmt.Println("home:  ", config.Home())
	fmt.Println("config:", config.Path())
}
