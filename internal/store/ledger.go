package store

import (
	"database/sql"
	"fmt"

	"github.com/tmackenzie/chorekeeper/internal/model"
)

type LedgerStore struct {
	db *sql.DB
}

func NewLedgerStore(db *sql.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

func scanEntry(scanner interface{ Scan(...any) error }) (*model.LedgerEntry, error) {
	var e model.LedgerEntry
	err := scanner.Scan(&e.ID, &e.KidID, &e.Delta, &e.Reason, &e.Kind, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

const entryCols = `id, kid_id, delta, reason, kind, created_at`

// Append records a point delta and moves the kid's balance in the same
// transaction. The kid row is created on first reference so the ledger
// can never orphan a delta.
func (s *LedgerStore) Append(kidID string, delta int, reason string, kind model.LedgerKind) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO kids (id, name) VALUES (?, ?) ON CONFLICT(id) DO NOTHING`,
		kidID, kidID,
	); err != nil {
		return 0, fmt.Errorf("ensure kid: %w", err)
	}

	if _, err := tx.Exec(
		`INSERT INTO ledger_entries (kid_id, delta, reason, kind) VALUES (?, ?, ?, ?)`,
		kidID, delta, reason, string(kind),
	); err != nil {
		return 0, fmt.Errorf("insert ledger entry: %w", err)
	}

	var balance int
	if err := tx.QueryRow(
		`UPDATE kids SET points = points + ? WHERE id = ? RETURNING points`,
		delta, kidID,
	).Scan(&balance); err != nil {
		return 0, fmt.Errorf("update balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return balance, nil
}

// ListByKid returns the kid's ledger entries, newest first.
func (s *LedgerStore) ListByKid(kidID string) ([]model.LedgerEntry, error) {
	rows, err := s.db.Query(
		`SELECT `+entryCols+` FROM ledger_entries WHERE kid_id = ? ORDER BY id DESC`,
		kidID,
	)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []model.LedgerEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// SumDeltas returns the sum of all deltas recorded for the kid. It must
// always equal the kid's stored balance.
func (s *LedgerStore) SumDeltas(kidID string) (int, error) {
	var sum int
	err := s.db.QueryRow(
		`SELECT COALESCE(SUM(delta), 0) FROM ledger_entries WHERE kid_id = ?`,
		kidID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum ledger deltas: %w", err)
	}
	return sum, nil
}
