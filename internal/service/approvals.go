package service

import (
	"fmt"

	"github.com/tmackenzie/chorekeeper/internal/chore"
	"github.com/tmackenzie/chorekeeper/internal/events"
	"github.com/tmackenzie/chorekeeper/internal/model"
)

// RequestApproval claims a pending chore: the chore moves to completed
// and a PendingApproval is queued for a parent, snapshotting the title
// and points so later edits to the chore cannot change the award. Only a
// pending chore may be claimed; a second claim fails without touching
// the first claim's approval.
func (s *Service) RequestApproval(choreID string) (*model.PendingApproval, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.chores.GetByID(choreID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: chore %s", ErrNotFound, choreID)
	}
	if !chore.Claimable(c.Status) {
		return nil, fmt.Errorf("%w: chore %s is %s", ErrInvalidTransition, choreID, c.Status)
	}

	now := s.now()
	a, err := s.approvals.Create(newShortID(), c.ID, c.KidID, c.Title, c.Points, now)
	if err != nil {
		return nil, err
	}
	if err := s.chores.SetStatus(c.ID, model.ChoreCompleted, now); err != nil {
		return nil, err
	}

	s.broadcast(events.ApprovalsChanged())
	if s.notifier != nil {
		s.notifier.ApprovalRequested(a)
	}
	return a, nil
}

// Approve signs off a pending approval: the snapshotted points are
// awarded (kind earn, reason "Approved: {title}"), reward progress is
// updated with today's date and the chore's type tag, and both the
// approval and the chore move to approved.
func (s *Service) Approve(approvalID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.approvals.GetByID(approvalID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("%w: approval %s", ErrNotFound, approvalID)
	}
	if !chore.CanTransitionApproval(a.Status, model.ApprovalApproved) {
		return nil, fmt.Errorf("%w: approval %s is %s", ErrInvalidTransition, approvalID, a.Status)
	}

	if _, err := s.addPointsLocked(a.KidID, a.Points, "Approved: "+a.Title, model.KindEarn); err != nil {
		return nil, err
	}

	// Chore type comes from the live chore record; only title and
	// points are snapshotted on the approval.
	var choreType string
	c, err := s.chores.GetByID(a.ChoreID)
	if err != nil {
		return nil, err
	}
	if c != nil {
		choreType = c.ChoreType
	}

	achieved, err := s.updateProgressLocked(a.KidID, choreType, s.today())
	if err != nil {
		return nil, err
	}

	if err := s.approvals.SetStatus(a.ID, model.ApprovalApproved); err != nil {
		return nil, err
	}
	if c != nil {
		if err := s.chores.SetStatus(c.ID, model.ChoreApproved, s.now()); err != nil {
			return nil, err
		}
	}

	s.broadcast(events.ApprovalsChanged())
	return achieved, nil
}

// Reject declines a pending approval. No points are awarded and reward
// progress is untouched; the chore moves to rejected, where it sits
// until ResetRejected gives the kid another attempt.
func (s *Service) Reject(approvalID, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.approvals.GetByID(approvalID)
	if err != nil {
		return err
	}
	if a == nil {
		return fmt.Errorf("%w: approval %s", ErrNotFound, approvalID)
	}
	if !chore.CanTransitionApproval(a.Status, model.ApprovalRejected) {
		return fmt.Errorf("%w: approval %s is %s", ErrInvalidTransition, approvalID, a.Status)
	}

	if err := s.approvals.SetStatus(a.ID, model.ApprovalRejected); err != nil {
		return err
	}

	c, err := s.chores.GetByID(a.ChoreID)
	if err != nil {
		return err
	}
	if c != nil {
		if err := s.chores.SetStatus(c.ID, model.ChoreRejected, s.now()); err != nil {
			return err
		}
	}

	if s.logger != nil {
		s.logger.Info("chore rejected", "approval_id", approvalID, "kid_id", a.KidID, "title", a.Title, "reason", reason)
	}
	s.broadcast(events.ApprovalsChanged())
	return nil
}

// PendingApprovals returns the queue awaiting a parent decision.
func (s *Service) PendingApprovals() ([]model.PendingApproval, error) {
	return s.approvals.ListPending()
}

func (s *Service) Approval(id string) (*model.PendingApproval, error) {
	return s.approvals.GetByID(id)
}

// ResetRejected reverts every rejected chore to pending (clearing its
// completion timestamps) and discards the rejected approval records,
// giving the kid a second attempt. Returns the number of chores reverted.
func (s *Service) ResetRejected() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rejected, err := s.chores.ListByStatus(model.ChoreRejected)
	if err != nil {
		return 0, err
	}

	for i := range rejected {
		if err := s.chores.SetStatus(rejected[i].ID, model.ChorePending, s.now()); err != nil {
			return 0, err
		}
	}

	discarded, err := s.approvals.ListByStatus(model.ApprovalRejected)
	if err != nil {
		return 0, err
	}
	for i := range discarded {
		if err := s.approvals.Delete(discarded[i].ID); err != nil {
			return 0, err
		}
	}

	if len(rejected) > 0 || len(discarded) > 0 {
		s.broadcast(events.ApprovalsChanged())
	}
	return len(rejected), nil
}
