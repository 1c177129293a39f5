// Package events broadcasts notification events to attached presentation
// clients over WebSocket. Delivery is best-effort: a slow or dead client
// never blocks or fails the mutation that produced the event.
package events

import "github.com/tmackenzie/chorekeeper/internal/model"

// Event types broadcast by the service.
const (
	TypeBalanceChanged   = "balance_changed"
	TypeChoreCreated     = "chore_created"
	TypeApprovalsChanged = "approvals_changed"
	TypeRewardAchieved   = "reward_achieved"
	TypeRewardClaimed    = "reward_claimed"
)

// Event is one notification broadcast to all connected clients.
type Event struct {
	Type    string         `json:"type"`
	KidID   string         `json:"kid_id,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
}

// BalanceChanged signals that a kid's point balance moved.
func BalanceChanged(kidID string, balance int) Event {
	return Event{
		Type:  TypeBalanceChanged,
		KidID: kidID,
		Payload: map[string]any{
			"balance": balance,
		},
	}
}

// ChoreCreated signals a new pending chore instance.
func ChoreCreated(c *model.PendingChore) Event {
	return Event{
		Type:  TypeChoreCreated,
		KidID: c.KidID,
		Payload: map[string]any{
			"chore_id": c.ID,
			"title":    c.Title,
			"points":   c.Points,
		},
	}
}

// ApprovalsChanged signals that the pending-approval queue changed.
func ApprovalsChanged() Event {
	return Event{Type: TypeApprovalsChanged}
}

// RewardAchieved signals a newly achieved completion/streak reward. The
// calendar fields let the host create an event; we never touch calendars
// ourselves.
func RewardAchieved(kidID string, r *model.Reward) Event {
	return Event{
		Type:  TypeRewardAchieved,
		KidID: kidID,
		Payload: map[string]any{
			"reward_id":               r.ID,
			"reward_title":            r.Title,
			"create_calendar_event":   r.CreateCalendarEvent,
			"calendar_duration_hours": r.CalendarDurationHours,
		},
	}
}

// RewardClaimed signals a point reward redemption.
func RewardClaimed(kidID string, r *model.Reward, balance int) Event {
	return Event{
		Type:  TypeRewardClaimed,
		KidID: kidID,
		Payload: map[string]any{
			"reward_id":               r.ID,
			"reward_title":            r.Title,
			"cost":                    r.Cost,
			"balance":                 balance,
			"create_calendar_event":   r.CreateCalendarEvent,
			"calendar_duration_hours": r.CalendarDurationHours,
		},
	}
}
