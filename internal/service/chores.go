package service

import (
	"fmt"

	"github.com/tmackenzie/chorekeeper/internal/chore"
	"github.com/tmackenzie/chorekeeper/internal/events"
	"github.com/tmackenzie/chorekeeper/internal/model"
)

// CreatePendingChore registers a new claimable chore instance for the
// kid, creating the kid if needed. The instance always starts pending.
func (s *Service) CreatePendingChore(kidID, title string, points int, choreType string) (*model.PendingChore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createPendingChoreLocked(kidID, title, points, choreType)
}

func (s *Service) createPendingChoreLocked(kidID, title string, points int, choreType string) (*model.PendingChore, error) {
	if err := s.kids.Ensure(kidID, ""); err != nil {
		return nil, err
	}

	c, err := s.chores.Create(newInstanceID(), kidID, title, points, choreType)
	if err != nil {
		return nil, err
	}

	s.broadcast(events.ChoreCreated(c))
	return c, nil
}

func (s *Service) PendingChore(id string) (*model.PendingChore, error) {
	return s.chores.GetByID(id)
}

// PendingChores lists chore instances, optionally filtered to one kid.
func (s *Service) PendingChores(kidID string) ([]model.PendingChore, error) {
	if kidID != "" {
		return s.chores.ListByKid(kidID)
	}
	return s.chores.List()
}

// CompleteChore is the direct path: mark done, award points, and retire
// the instance without going through the approval queue. Callers that
// require parental sign-off use RequestApproval instead.
func (s *Service) CompleteChore(choreID string) ([]string, error) {
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

	if _, err := s.addPointsLocked(c.KidID, c.Points, "Chore: "+c.Title, model.KindEarn); err != nil {
		return nil, err
	}

	achieved, err := s.updateProgressLocked(c.KidID, c.ChoreType, s.today())
	if err != nil {
		return nil, err
	}

	if err := s.chores.Delete(choreID); err != nil {
		return nil, err
	}

	return achieved, nil
}

// CreateRecurringChore registers a template. Weekly templates require a
// day of week (0=Monday..6=Sunday); daily templates must not carry one.
func (s *Service) CreateRecurringChore(kidID, title string, points int, choreType string, schedule model.Schedule, dayOfWeek *int) (*model.RecurringChore, error) {
	switch schedule {
	case model.ScheduleDaily:
		if dayOfWeek != nil {
			return nil, fmt.Errorf("%w: daily schedule takes no day of week", ErrInvalidTransition)
		}
	case model.ScheduleWeekly:
		if dayOfWeek == nil || *dayOfWeek < 0 || *dayOfWeek > 6 {
			return nil, fmt.Errorf("%w: weekly schedule requires day of week 0..6", ErrInvalidTransition)
		}
	default:
		return nil, fmt.Errorf("%w: schedule %q", ErrInvalidTransition, schedule)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kids.Ensure(kidID, ""); err != nil {
		return nil, err
	}
	return s.chores.CreateRecurring(newShortID(), kidID, title, points, choreType, schedule, dayOfWeek)
}

func (s *Service) RecurringChores() ([]model.RecurringChore, error) {
	return s.chores.ListRecurring()
}

func (s *Service) SetRecurringEnabled(id string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.chores.GetRecurring(id)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%w: recurring chore %s", ErrNotFound, id)
	}
	return s.chores.SetRecurringEnabled(id, enabled)
}

func (s *Service) DeleteRecurringChore(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.chores.GetRecurring(id)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%w: recurring chore %s", ErrNotFound, id)
	}
	return s.chores.DeleteRecurring(id)
}

// GenerateDaily expands every enabled daily template into a fresh
// pending instance. Generation is deliberately not deduplicated against
// instances already created today: the scheduler invokes it once per
// day, and a manual re-trigger intentionally hands out another round.
func (s *Service) GenerateDaily() ([]model.PendingChore, error) {
	return s.generate(func(c *model.RecurringChore) bool {
		return c.Schedule == model.ScheduleDaily
	})
}

// GenerateWeekly expands enabled weekly templates whose day matches
// targetDay (0=Monday..6=Sunday).
func (s *Service) GenerateWeekly(targetDay int) ([]model.PendingChore, error) {
	return s.generate(func(c *model.RecurringChore) bool {
		return c.Schedule == model.ScheduleWeekly && c.DayOfWeek != nil && *c.DayOfWeek == targetDay
	})
}

func (s *Service) generate(match func(*model.RecurringChore) bool) ([]model.PendingChore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	templates, err := s.chores.ListRecurring()
	if err != nil {
		return nil, err
	}

	var created []model.PendingChore
	for i := range templates {
		t := &templates[i]
		if !t.Enabled || !match(t) {
			continue
		}
		c, err := s.createPendingChoreLocked(t.KidID, t.Title, t.Points, t.ChoreType)
		if err != nil {
			return created, err
		}
		created = append(created, *c)
	}
	return created, nil
}
