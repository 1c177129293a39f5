package model

import "time"

// RewardKind is the closed set of reward requirement modes. Exactly one
// mode applies per reward; the mode-specific fields below are only
// meaningful for their kind.
type RewardKind string

const (
	// RewardPoints is redeemed directly against a kid's balance.
	RewardPoints RewardKind = "points"
	// RewardCompletions unlocks after N matching chore completions.
	RewardCompletions RewardKind = "completions"
	// RewardStreak unlocks after N consecutive calendar days with a
	// matching completion.
	RewardStreak RewardKind = "streak"
)

func (k RewardKind) Valid() bool {
	switch k {
	case RewardPoints, RewardCompletions, RewardStreak:
		return true
	}
	return false
}

type Reward struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Kind        RewardKind `json:"kind"`

	// Points kind.
	Cost int `json:"cost,omitempty"`

	// Completions kind.
	RequiredCompletions int `json:"required_completions,omitempty"`

	// Streak kind.
	RequiredStreakDays int `json:"required_streak_days,omitempty"`

	// RequiredChoreType scopes completion/streak rewards to one chore
	// type tag. Empty means any completion counts.
	RequiredChoreType string `json:"required_chore_type,omitempty"`

	// Calendar metadata carried on achievement/claim events for the
	// host's calendar integration. Event creation itself is not ours.
	CreateCalendarEvent   bool `json:"create_calendar_event"`
	CalendarDurationHours int  `json:"calendar_duration_hours"`

	CreatedAt time.Time `json:"created_at"`
}

// RewardProgress tracks one kid's progress toward one non-point reward.
// Once Completed is set the row is terminal and never updated again.
type RewardProgress struct {
	KidID              string     `json:"kid_id"`
	RewardID           string     `json:"reward_id"`
	CurrentCompletions int        `json:"current_completions"`
	CurrentStreak      int        `json:"current_streak"`
	// LastCompletionDate is a calendar date in "2006-01-02" form, empty
	// until the first matching completion.
	LastCompletionDate string     `json:"last_completion_date,omitempty"`
	Completed          bool       `json:"completed"`
	CompletedAt        *time.Time `json:"completed_at"`
}
