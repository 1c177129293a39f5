package store

import (
	"database/sql"
	"fmt"

	"github.com/tmackenzie/chorekeeper/internal/model"
)

type RewardStore struct {
	db *sql.DB
}

func NewRewardStore(db *sql.DB) *RewardStore {
	return &RewardStore{db: db}
}

// --- Rewards ---

func scanReward(scanner interface{ Scan(...any) error }) (*model.Reward, error) {
	var r model.Reward
	var calendarEvent int

	err := scanner.Scan(
		&r.ID, &r.Title, &r.Description, &r.Kind,
		&r.Cost, &r.RequiredCompletions, &r.RequiredStreakDays, &r.RequiredChoreType,
		&calendarEvent, &r.CalendarDurationHours, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	r.CreateCalendarEvent = calendarEvent != 0
	return &r, nil
}

const rewardCols = `id, title, description, kind, cost, required_completions, required_streak_days, required_chore_type, create_calendar_event, calendar_duration_hours, created_at`

func (s *RewardStore) Create(r *model.Reward) (*model.Reward, error) {
	var calendarEvent int
	if r.CreateCalendarEvent {
		calendarEvent = 1
	}

	_, err := s.db.Exec(
		`INSERT INTO rewards (id, title, description, kind, cost, required_completions, required_streak_days, required_chore_type, create_calendar_event, calendar_duration_hours)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Title, r.Description, string(r.Kind),
		r.Cost, r.RequiredCompletions, r.RequiredStreakDays, r.RequiredChoreType,
		calendarEvent, r.CalendarDurationHours,
	)
	if err != nil {
		return nil, fmt.Errorf("insert reward: %w", err)
	}
	return s.GetByID(r.ID)
}

func (s *RewardStore) GetByID(id string) (*model.Reward, error) {
	row := s.db.QueryRow(`SELECT `+rewardCols+` FROM rewards WHERE id = ?`, id)
	r, err := scanReward(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get reward: %w", err)
	}
	return r, nil
}

func (s *RewardStore) List() ([]model.Reward, error) {
	rows, err := s.db.Query(`SELECT ` + rewardCols + ` FROM rewards ORDER BY title ASC`)
	if err != nil {
		return nil, fmt.Errorf("list rewards: %w", err)
	}
	defer rows.Close()

	var rewards []model.Reward
	for rows.Next() {
		r, err := scanReward(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reward: %w", err)
		}
		rewards = append(rewards, *r)
	}
	return rewards, rows.Err()
}

// Count returns the number of rewards in the catalog. Used to decide
// whether to seed the defaults on first run.
func (s *RewardStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM rewards`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count rewards: %w", err)
	}
	return n, nil
}

func (s *RewardStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM rewards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete reward: %w", err)
	}
	return nil
}

// --- Reward progress ---

func scanProgress(scanner interface{ Scan(...any) error }) (*model.RewardProgress, error) {
	var p model.RewardProgress
	var completed int
	var completedAt sql.NullTime

	err := scanner.Scan(
		&p.KidID, &p.RewardID, &p.CurrentCompletions, &p.CurrentStreak,
		&p.LastCompletionDate, &completed, &completedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Completed = completed != 0
	if completedAt.Valid {
		p.CompletedAt = &completedAt.Time
	}
	return &p, nil
}

const progressCols = `kid_id, reward_id, current_completions, current_streak, last_completion_date, completed, completed_at`

// GetProgress returns the progress row for (kid, reward), or nil if the
// kid has never progressed toward that reward. Absence is distinct from
// a zeroed row.
func (s *RewardStore) GetProgress(kidID, rewardID string) (*model.RewardProgress, error) {
	row := s.db.QueryRow(
		`SELECT `+progressCols+` FROM reward_progress WHERE kid_id = ? AND reward_id = ?`,
		kidID, rewardID,
	)
	p, err := scanProgress(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get reward progress: %w", err)
	}
	return p, nil
}

func (s *RewardStore) ListProgressByKid(kidID string) ([]model.RewardProgress, error) {
	rows, err := s.db.Query(
		`SELECT `+progressCols+` FROM reward_progress WHERE kid_id = ? ORDER BY reward_id ASC`,
		kidID,
	)
	if err != nil {
		return nil, fmt.Errorf("list reward progress: %w", err)
	}
	defer rows.Close()

	var progress []model.RewardProgress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reward progress: %w", err)
		}
		progress = append(progress, *p)
	}
	return progress, rows.Err()
}

// SaveProgress upserts the progress row for (kid, reward).
func (s *RewardStore) SaveProgress(p *model.RewardProgress) error {
	var completed int
	if p.Completed {
		completed = 1
	}
	var completedAt any
	if p.CompletedAt != nil {
		completedAt = p.CompletedAt.UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO reward_progress (kid_id, reward_id, current_completions, current_streak, last_completion_date, completed, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(kid_id, reward_id) DO UPDATE SET
		   current_completions = excluded.current_completions,
		   current_streak = excluded.current_streak,
		   last_completion_date = excluded.last_completion_date,
		   completed = excluded.completed,
		   completed_at = excluded.completed_at`,
		p.KidID, p.RewardID, p.CurrentCompletions, p.CurrentStreak,
		p.LastCompletionDate, completed, completedAt,
	)
	if err != nil {
		return fmt.Errorf("save reward progress: %w", err)
	}
	return nil
}
