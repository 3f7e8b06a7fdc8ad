// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ledger

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ayvoy/kiosk-tui/internal/logging"
	"github.com/ayvoy/kiosk-tui/internal/util"
)

// =============================================================================
// FLAT-FILE STORE
// =============================================================================

// FlatFileStore keeps accounts in a single comma-separated text file,
// one account per line:
//
//	folio,balance[,movement]...
//
// Fields may carry surrounding whitespace; it is ignored on read. The
// file is rewritten in full on every update, atomically, with every
// non-matching line preserved byte for byte. Concurrent kiosks sharing
// one file can still lose an update between read and rewrite; the
// atomic rename only rules out torn files, not races.
type FlatFileStore struct {
	path string
	log  logging.Logger
}

// NewFlatFileStore builds a store over path. The file need not exist
// yet; reads against a missing file report ErrNotFound per folio.
func NewFlatFileStore(path string, log logging.Logger) *FlatFileStore {
	if log == nil {
		log = logging.Nop()
	}
	return &FlatFileStore{path: path, log: log}
}

// FindAccount scans the file top to bottom and returns the first
// record whose folio field matches. Lines that do not parse as an
// account are skipped, not fatal.
func (s *FlatFileStore) FindAccount(folio string) (Account, error) {
	lines, err := s.readLines()
	if os.IsNotExist(err) {
		return Account{}, ErrNotFound
	}
	if err != nil {
		return Account{}, err
	}
	for _, line := range lines {
		acct, ok := parseAccountLine(line)
		if !ok {
			continue
		}
		if acct.Folio == folio {
			return acct, nil
		}
	}
	return Account{}, ErrNotFound
}

// UpdateAccount rewrites the file with the first matching line rebuilt
// around the new balance. The rebuilt line re-emits the folio and any
// movements with their surrounding whitespace trimmed; all other lines
// pass through untouched.
func (s *FlatFileStore) UpdateAccount(folio string, newBalance float64) error {
	lines, err := s.readLines()
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	matched := false
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if !matched {
			if acct, ok := parseAccountLine(line); ok && acct.Folio == folio {
				out = append(out, formatAccountLine(acct.Folio, newBalance, acct.Movements))
				matched = true
				continue
			}
		}
		out = append(out, line)
	}
	if !matched {
		return ErrNotFound
	}

	data := []byte(strings.Join(out, "\n") + "\n")
	if err := util.AtomicWriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("rewriting account file: %w", err)
	}
	return nil
}

// Accounts returns every parseable record in file order. A missing
// file is an empty store.
func (s *FlatFileStore) Accounts() ([]Account, error) {
	lines, err := s.readLines()
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out []Account
	for _, line := range lines {
		if acct, ok := parseAccountLine(line); ok {
			out = append(out, acct)
		}
	}
	return out, nil
}

// CreateAccount appends a fresh record. It lives on the concrete type,
// not the repository seam: provisioning is an operator task, not a
// kiosk screen.
func (s *FlatFileStore) CreateAccount(folio string, balance float64) error {
	folio = strings.TrimSpace(folio)
	if folio == "" {
		return fmt.Errorf("empty folio")
	}
	if _, err := s.FindAccount(folio); err == nil {
		return fmt.Errorf("folio %s already exists", folio)
	}

	lines, err := s.readLines()
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	lines = append(lines, formatAccountLine(folio, util.Round2(balance), nil))
	data := []byte(strings.Join(lines, "\n") + "\n")
	return util.AtomicWriteFile(s.path, data, 0o600)
}

// readLines returns the file's lines without their terminators. A
// trailing newline does not produce a phantom empty line.
func (s *FlatFileStore) readLines() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("reading account file: %w", err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}

// parseAccountLine parses "folio,balance[,movement]..." with fields
// trimmed. Lines missing a folio or a numeric balance are rejected.
func parseAccountLine(line string) (Account, bool) {
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return Account{}, false
	}
	folio := strings.TrimSpace(fields[0])
	if folio == "" {
		return Account{}, false
	}
	balance, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return Account{}, false
	}
	var movements []string
	for _, f := range fields[2:] {
		movements = append(movements, strings.TrimSpace(f))
	}
	return Account{Folio: folio, Balance: balance, Movements: movements}, true
}

func formatAccountLine(folio string, balance float64, movements []string) string {
	parts := append([]string{folio, util.FormatAmount(balance)}, movements...)
	return strings.Join(parts, ",")
}
