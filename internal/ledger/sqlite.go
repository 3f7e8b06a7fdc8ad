// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ledger

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/ayvoy/kiosk-tui/internal/logging"
	"github.com/ayvoy/kiosk-tui/internal/util"
)

// =============================================================================
// SQLITE STORE
// =============================================================================

// SQLiteStore keeps accounts in an embedded SQLite database. It is the
// alternate backend for installations that outgrow the flat file:
// updates are transactional, so the lost-update window the flat file
// carries does not exist here.
type SQLiteStore struct {
	db  *sql.DB
	log logging.Logger
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS accounts (
	folio   TEXT PRIMARY KEY,
	balance REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS movements (
	folio TEXT NOT NULL,
	seq   INTEGER NOT NULL,
	text  TEXT NOT NULL,
	PRIMARY KEY (folio, seq),
	FOREIGN KEY (folio) REFERENCES accounts(folio)
);
`

// NewSQLiteStore opens (creating if needed) the database at path and
// ensures the schema exists.
func NewSQLiteStore(path string, log logging.Logger) (*SQLiteStore, error) {
	if log == nil {
		log = logging.Nop()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening account database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating account schema: %w", err)
	}
	return &SQLiteStore{db: db, log: log}, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// FindAccount looks up a folio. The primary key makes duplicates
// impossible here, so "first in store order" degenerates to the single
// row.
func (s *SQLiteStore) FindAccount(folio string) (Account, error) {
	var acct Account
	err := s.db.QueryRow(
		`SELECT folio, balance FROM accounts WHERE folio = ?`, folio,
	).Scan(&acct.Folio, &acct.Balance)
	if errors.Is(err, sql.ErrNoRows) {
		return Account{}, ErrNotFound
	}
	if err != nil {
		return Account{}, fmt.Errorf("querying account: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT text FROM movements WHERE folio = ? ORDER BY seq`, folio,
	)
	if err != nil {
		return Account{}, fmt.Errorf("querying movements: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return Account{}, fmt.Errorf("scanning movement: %w", err)
		}
		acct.Movements = append(acct.Movements, text)
	}
	if err := rows.Err(); err != nil {
		return Account{}, fmt.Errorf("reading movements: %w", err)
	}
	return acct, nil
}

// UpdateAccount sets the balance, returning ErrNotFound when the folio
// has no row.
func (s *SQLiteStore) UpdateAccount(folio string, newBalance float64) error {
	res, err := s.db.Exec(
		`UPDATE accounts SET balance = ? WHERE folio = ?`,
		util.Round2(newBalance), folio,
	)
	if err != nil {
		return fmt.Errorf("updating account: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating account: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Accounts returns every account ordered by folio. Movements are not
// loaded; listing is an operator overview, not a statement.
func (s *SQLiteStore) Accounts() ([]Account, error) {
	rows, err := s.db.Query(`SELECT folio, balance FROM accounts ORDER BY folio`)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var out []Account
	for rows.Next() {
		var acct Account
		if err := rows.Scan(&acct.Folio, &acct.Balance); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		out = append(out, acct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	return out, nil
}

// CreateAccount provisions a fresh record with an optional movement
// history. Like the flat-file counterpart it lives on the concrete
// type only.
func (s *SQLiteStore) CreateAccount(folio string, balance float64, movements ...string) error {
	folio = strings.TrimSpace(folio)
	if folio == "" {
		return fmt.Errorf("empty folio")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO accounts (folio, balance) VALUES (?, ?)`,
		folio, util.Round2(balance),
	); err != nil {
		return fmt.Errorf("creating account: %w", err)
	}
	for i, text := range movements {
		if _, err := tx.Exec(
			`INSERT INTO movements (folio, seq, text) VALUES (?, ?, ?)`,
			folio, i, text,
		); err != nil {
			return fmt.Errorf("recording movement: %w", err)
		}
	}
	return tx.Commit()
}
