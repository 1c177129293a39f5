package model

import "time"

// ChoreStatus is the lifecycle state of a PendingChore instance.
// Transition validity lives in the chore package.
type ChoreStatus string

const (
	ChorePending   ChoreStatus = "pending"
	ChoreCompleted ChoreStatus = "completed"
	ChoreApproved  ChoreStatus = "approved"
	ChoreRejected  ChoreStatus = "rejected"
)

// PendingChore is one concrete claimable unit of work.
type PendingChore struct {
	ID          string      `json:"id"`
	KidID       string      `json:"kid_id"`
	Title       string      `json:"title"`
	Points      int         `json:"points"`
	ChoreType   string      `json:"chore_type,omitempty"`
	Status      ChoreStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	CompletedAt *time.Time  `json:"completed_at"`
	ApprovedAt  *time.Time  `json:"approved_at"`
}

// Schedule is how often a recurring chore template fires.
type Schedule string

const (
	ScheduleDaily  Schedule = "daily"
	ScheduleWeekly Schedule = "weekly"
)

// MondayIndex converts Go's Sunday-first weekday into the Monday-first
// 0..6 index used by weekly templates.
func MondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// RecurringChore is a template expanded into PendingChore instances by the
// generator; it is never claimable itself.
type RecurringChore struct {
	ID        string   `json:"id"`
	KidID     string   `json:"kid_id"`
	Title     string   `json:"title"`
	Points    int      `json:"points"`
	ChoreType string   `json:"chore_type,omitempty"`
	Schedule  Schedule `json:"schedule"`
	// DayOfWeek is 0=Monday..6=Sunday and only meaningful for weekly
	// templates.
	DayOfWeek *int      `json:"day_of_week"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}
