package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tmackenzie/chorekeeper/internal/model"
)

type ApprovalStore struct {
	db *sql.DB
}

func NewApprovalStore(db *sql.DB) *ApprovalStore {
	return &ApprovalStore{db: db}
}

func scanApproval(scanner interface{ Scan(...any) error }) (*model.PendingApproval, error) {
	var a model.PendingApproval
	err := scanner.Scan(
		&a.ID, &a.ChoreID, &a.KidID, &a.Title, &a.Points,
		&a.Status, &a.CompletedAt, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

const approvalCols = `id, chore_id, kid_id, title, points, status, completed_at, created_at`

// Create inserts a new approval in pending_approval status. The partial
// unique index on chore_id rejects a second live approval for the same
// chore instance.
func (s *ApprovalStore) Create(id, choreID, kidID, title string, points int, completedAt time.Time) (*model.PendingApproval, error) {
	_, err := s.db.Exec(
		`INSERT INTO pending_approvals (id, chore_id, kid_id, title, points, completed_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, choreID, kidID, title, points, completedAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert approval: %w", err)
	}
	return s.GetByID(id)
}

func (s *ApprovalStore) GetByID(id string) (*model.PendingApproval, error) {
	row := s.db.QueryRow(`SELECT `+approvalCols+` FROM pending_approvals WHERE id = ?`, id)
	a, err := scanApproval(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get approval: %w", err)
	}
	return a, nil
}

// ListPending returns approvals still awaiting a parent decision, oldest
// first so the queue reads top-down.
func (s *ApprovalStore) ListPending() ([]model.PendingApproval, error) {
	return s.list(
		`SELECT `+approvalCols+` FROM pending_approvals WHERE status = ? ORDER BY created_at ASC, id ASC`,
		string(model.ApprovalPending),
	)
}

func (s *ApprovalStore) ListByStatus(status model.ApprovalStatus) ([]model.PendingApproval, error) {
	return s.list(
		`SELECT `+approvalCols+` FROM pending_approvals WHERE status = ? ORDER BY created_at ASC, id ASC`,
		string(status),
	)
}

func (s *ApprovalStore) list(query string, args ...any) ([]model.PendingApproval, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list approvals: %w", err)
	}
	defer rows.Close()

	var approvals []model.PendingApproval
	for rows.Next() {
		a, err := scanApproval(rows)
		if err != nil {
			return nil, fmt.Errorf("scan approval: %w", err)
		}
		approvals = append(approvals, *a)
	}
	return approvals, rows.Err()
}

func (s *ApprovalStore) SetStatus(id string, status model.ApprovalStatus) error {
	_, err := s.db.Exec(
		`UPDATE pending_approvals SET status = ? WHERE id = ?`,
		string(status), id,
	)
	if err != nil {
		return fmt.Errorf("set approval status: %w", err)
	}
	return nil
}

func (s *ApprovalStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM pending_approvals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete approval: %w", err)
	}
	return nil
}
