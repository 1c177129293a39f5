package store

import (
	"database/sql"
	"fmt"

	"github.com/tmackenzie/chorekeeper/internal/model"
)

type KidStore struct {
	db *sql.DB
}

func NewKidStore(db *sql.DB) *KidStore {
	return &KidStore{db: db}
}

func scanKid(scanner interface{ Scan(...any) error }) (*model.Kid, error) {
	var k model.Kid
	err := scanner.Scan(&k.ID, &k.Name, &k.Points, &k.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

const kidCols = `id, name, points, created_at`

// Ensure creates the kid if absent. An existing kid is left untouched:
// neither name nor points are overwritten.
func (s *KidStore) Ensure(id, name string) error {
	if name == "" {
		name = id
	}
	_, err := s.db.Exec(
		`INSERT INTO kids (id, name) VALUES (?, ?) ON CONFLICT(id) DO NOTHING`,
		id, name,
	)
	if err != nil {
		return fmt.Errorf("ensure kid: %w", err)
	}
	return nil
}

func (s *KidStore) GetByID(id string) (*model.Kid, error) {
	row := s.db.QueryRow(`SELECT `+kidCols+` FROM kids WHERE id = ?`, id)
	k, err := scanKid(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get kid: %w", err)
	}
	return k, nil
}

func (s *KidStore) List() ([]model.Kid, error) {
	rows, err := s.db.Query(`SELECT ` + kidCols + ` FROM kids ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list kids: %w", err)
	}
	defer rows.Close()

	var kids []model.Kid
	for rows.Next() {
		k, err := scanKid(rows)
		if err != nil {
			return nil, fmt.Errorf("scan kid: %w", err)
		}
		kids = append(kids, *k)
	}
	return kids, rows.Err()
}

// Balance returns the kid's current point balance, or 0 for an unknown
// kid. Unknown kids are an expected condition, never an error.
func (s *KidStore) Balance(id string) (int, error) {
	var points int
	err := s.db.QueryRow(`SELECT points FROM kids WHERE id = ?`, id).Scan(&points)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return points, nil
}
