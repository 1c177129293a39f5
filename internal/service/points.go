package service

import (
	"fmt"

	"github.com/tmackenzie/chorekeeper/internal/events"
	"github.com/tmackenzie/chorekeeper/internal/model"
)

// EnsureKid creates the kid if absent. Calling it again, even with a
// different name, is a no-op: the first name and the accumulated points
// are never overwritten.
func (s *Service) EnsureKid(id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kids.Ensure(id, name)
}

func (s *Service) Kid(id string) (*model.Kid, error) {
	return s.kids.GetByID(id)
}

func (s *Service) Kids() ([]model.Kid, error) {
	return s.kids.List()
}

// Balance returns the kid's current balance; unknown kids have 0.
func (s *Service) Balance(id string) (int, error) {
	return s.kids.Balance(id)
}

// Ledger returns the kid's ledger entries, newest first.
func (s *Service) Ledger(id string) ([]model.LedgerEntry, error) {
	return s.ledger.ListByKid(id)
}

// AddPoints appends a ledger entry with the given signed delta, creating
// the kid if absent, and returns the new balance. Negative amounts are
// legal here; they are how spends and downward adjustments are recorded.
func (s *Service) AddPoints(kidID string, amount int, reason string, kind model.LedgerKind) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addPointsLocked(kidID, amount, reason, kind)
}

func (s *Service) addPointsLocked(kidID string, amount int, reason string, kind model.LedgerKind) (int, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: ledger kind %q", ErrInvalidAmount, kind)
	}

	balance, err := s.ledger.Append(kidID, amount, reason, kind)
	if err != nil {
		return 0, err
	}

	s.broadcast(events.BalanceChanged(kidID, balance))
	return balance, nil
}

// RemovePoints subtracts a positive magnitude from the kid's balance.
// Unlike the loose convention this replaces, the contract is enforced:
// amount must be > 0 or ErrInvalidAmount is returned.
func (s *Service) RemovePoints(kidID string, amount int, reason string, kind model.LedgerKind) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: remove amount must be positive, got %d", ErrInvalidAmount, amount)
	}
	return s.AddPoints(kidID, -amount, reason, kind)
}
