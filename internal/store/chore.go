package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tmackenzie/chorekeeper/internal/model"
)

type ChoreStore struct {
	db *sql.DB
}

func NewChoreStore(db *sql.DB) *ChoreStore {
	return &ChoreStore{db: db}
}

// --- Pending chore instances ---

func scanPendingChore(scanner interface{ Scan(...any) error }) (*model.PendingChore, error) {
	var c model.PendingChore
	var completedAt, approvedAt sql.NullTime

	err := scanner.Scan(
		&c.ID, &c.KidID, &c.Title, &c.Points, &c.ChoreType,
		&c.Status, &c.CreatedAt, &completedAt, &approvedAt,
	)
	if err != nil {
		return nil, err
	}

	if completedAt.Valid {
		c.CompletedAt = &completedAt.Time
	}
	if approvedAt.Valid {
		c.ApprovedAt = &approvedAt.Time
	}
	return &c, nil
}

const pendingChoreCols = `id, kid_id, title, points, chore_type, status, created_at, completed_at, approved_at`

func (s *ChoreStore) Create(id, kidID, title string, points int, choreType string) (*model.PendingChore, error) {
	_, err := s.db.Exec(
		`INSERT INTO pending_chores (id, kid_id, title, points, chore_type) VALUES (?, ?, ?, ?, ?)`,
		id, kidID, title, points, choreType,
	)
	if err != nil {
		return nil, fmt.Errorf("insert pending chore: %w", err)
	}
	return s.GetByID(id)
}

func (s *ChoreStore) GetByID(id string) (*model.PendingChore, error) {
	row := s.db.QueryRow(`SELECT `+pendingChoreCols+` FROM pending_chores WHERE id = ?`, id)
	c, err := scanPendingChore(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get pending chore: %w", err)
	}
	return c, nil
}

func (s *ChoreStore) List() ([]model.PendingChore, error) {
	return s.list(`SELECT ` + pendingChoreCols + ` FROM pending_chores ORDER BY created_at DESC, id DESC`)
}

func (s *ChoreStore) ListByKid(kidID string) ([]model.PendingChore, error) {
	return s.list(
		`SELECT `+pendingChoreCols+` FROM pending_chores WHERE kid_id = ? ORDER BY created_at DESC, id DESC`,
		kidID,
	)
}

func (s *ChoreStore) ListByStatus(status model.ChoreStatus) ([]model.PendingChore, error) {
	return s.list(
		`SELECT `+pendingChoreCols+` FROM pending_chores WHERE status = ? ORDER BY created_at DESC, id DESC`,
		string(status),
	)
}

func (s *ChoreStore) list(query string, args ...any) ([]model.PendingChore, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pending chores: %w", err)
	}
	defer rows.Close()

	var chores []model.PendingChore
	for rows.Next() {
		c, err := scanPendingChore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pending chore: %w", err)
		}
		chores = append(chores, *c)
	}
	return chores, rows.Err()
}

// SetStatus moves a chore to the given status and stamps or clears the
// completed/approved timestamps to match. Transition validity is the
// caller's (service's) responsibility.
func (s *ChoreStore) SetStatus(id string, status model.ChoreStatus, at time.Time) error {
	var completedAt, approvedAt any
	switch status {
	case model.ChorePending:
		// Undo/reset: both timestamps cleared.
	case model.ChoreCompleted, model.ChoreRejected:
		completedAt = at.UTC()
	case model.ChoreApproved:
		approvedAt = at.UTC()
	}

	var err error
	if status == model.ChoreApproved {
		_, err = s.db.Exec(
			`UPDATE pending_chores SET status = ?, approved_at = ? WHERE id = ?`,
			string(status), approvedAt, id,
		)
	} else {
		_, err = s.db.Exec(
			`UPDATE pending_chores SET status = ?, completed_at = ?, approved_at = NULL WHERE id = ?`,
			string(status), completedAt, id,
		)
	}
	if err != nil {
		return fmt.Errorf("set chore status: %w", err)
	}
	return nil
}

func (s *ChoreStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM pending_chores WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete pending chore: %w", err)
	}
	return nil
}

// --- Recurring chore templates ---

func scanRecurring(scanner interface{ Scan(...any) error }) (*model.RecurringChore, error) {
	var c model.RecurringChore
	var day sql.NullInt64
	var enabled int

	err := scanner.Scan(
		&c.ID, &c.KidID, &c.Title, &c.Points, &c.ChoreType,
		&c.Schedule, &day, &enabled, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if day.Valid {
		d := int(day.Int64)
		c.DayOfWeek = &d
	}
	c.Enabled = enabled != 0
	return &c, nil
}

const recurringCols = `id, kid_id, title, points, chore_type, schedule, day_of_week, enabled, created_at`

func (s *ChoreStore) CreateRecurring(id, kidID, title string, points int, choreType string, schedule model.Schedule, dayOfWeek *int) (*model.RecurringChore, error) {
	var day sql.NullInt64
	if dayOfWeek != nil {
		day = sql.NullInt64{Int64: int64(*dayOfWeek), Valid: true}
	}

	_, err := s.db.Exec(
		`INSERT INTO recurring_chores (id, kid_id, title, points, chore_type, schedule, day_of_week) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, kidID, title, points, choreType, string(schedule), day,
	)
	if err != nil {
		return nil, fmt.Errorf("insert recurring chore: %w", err)
	}
	return s.GetRecurring(id)
}

func (s *ChoreStore) GetRecurring(id string) (*model.RecurringChore, error) {
	row := s.db.QueryRow(`SELECT `+recurringCols+` FROM recurring_chores WHERE id = ?`, id)
	c, err := scanRecurring(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get recurring chore: %w", err)
	}
	return c, nil
}

func (s *ChoreStore) ListRecurring() ([]model.RecurringChore, error) {
	rows, err := s.db.Query(`SELECT ` + recurringCols + ` FROM recurring_chores ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list recurring chores: %w", err)
	}
	defer rows.Close()

	var chores []model.RecurringChore
	for rows.Next() {
		c, err := scanRecurring(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recurring chore: %w", err)
		}
		chores = append(chores, *c)
	}
	return chores, rows.Err()
}

func (s *ChoreStore) SetRecurringEnabled(id string, enabled bool) error {
	var e int
	if enabled {
		e = 1
	}
	_, err := s.db.Exec(`UPDATE recurring_chores SET enabled = ? WHERE id = ?`, e, id)
	if err != nil {
		return fmt.Errorf("set recurring enabled: %w", err)
	}
	return nil
}

func (s *ChoreStore) DeleteRecurring(id string) error {
	_, err := s.db.Exec(`DELETE FROM recurring_chores WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete recurring chore: %w", err)
	}
	return nil
}
