package service

import (
	"fmt"

	"github.com/tmackenzie/chorekeeper/internal/events"
	"github.com/tmackenzie/chorekeeper/internal/model"
	"github.com/tmackenzie/chorekeeper/internal/reward"
)

func (s *Service) Rewards() ([]model.Reward, error) {
	return s.rewards.List()
}

func (s *Service) Reward(id string) (*model.Reward, error) {
	return s.rewards.GetByID(id)
}

// AddPointReward adds a reward redeemed directly against the balance.
func (s *Service) AddPointReward(title, description string, cost int, calendarEvent bool, calendarHours int) (*model.Reward, error) {
	if cost <= 0 {
		return nil, fmt.Errorf("%w: reward cost must be positive", ErrInvalidAmount)
	}
	return s.addReward(&model.Reward{
		Kind:                  model.RewardPoints,
		Title:                 title,
		Description:           description,
		Cost:                  cost,
		CreateCalendarEvent:   calendarEvent,
		CalendarDurationHours: calendarHours,
	})
}

// AddCompletionReward adds a reward unlocked after n matching completions.
func (s *Service) AddCompletionReward(title, description string, n int, choreType string, calendarEvent bool, calendarHours int) (*model.Reward, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: completion threshold must be positive", ErrInvalidAmount)
	}
	return s.addReward(&model.Reward{
		Kind:                  model.RewardCompletions,
		Title:                 title,
		Description:           description,
		RequiredCompletions:   n,
		RequiredChoreType:     choreType,
		CreateCalendarEvent:   calendarEvent,
		CalendarDurationHours: calendarHours,
	})
}

// AddStreakReward adds a reward unlocked after n consecutive days.
func (s *Service) AddStreakReward(title, description string, days int, choreType string, calendarEvent bool, calendarHours int) (*model.Reward, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: streak threshold must be positive", ErrInvalidAmount)
	}
	return s.addReward(&model.Reward{
		Kind:                  model.RewardStreak,
		Title:                 title,
		Description:           description,
		RequiredStreakDays:    days,
		RequiredChoreType:     choreType,
		CreateCalendarEvent:   calendarEvent,
		CalendarDurationHours: calendarHours,
	})
}

func (s *Service) addReward(r *model.Reward) (*model.Reward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = newShortID()
	if r.CalendarDurationHours == 0 {
		r.CalendarDurationHours = 2
	}
	return s.rewards.Create(r)
}

func (s *Service) DeleteReward(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.rewards.GetByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("%w: reward %s", ErrNotFound, id)
	}
	return s.rewards.Delete(id)
}

// ClaimReward redeems a point reward against the kid's balance. The
// claim fails for unknown rewards, for completion/streak rewards (those
// are earned, not bought), and when the balance cannot cover the cost.
func (s *Service) ClaimReward(kidID, rewardID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.rewards.GetByID(rewardID)
	if err != nil {
		return 0, err
	}
	if r == nil {
		return 0, fmt.Errorf("%w: reward %s", ErrNotFound, rewardID)
	}
	if r.Kind != model.RewardPoints {
		return 0, fmt.Errorf("%w: reward %s is %s-based", ErrNotRedeemable, rewardID, r.Kind)
	}

	balance, err := s.kids.Balance(kidID)
	if err != nil {
		return 0, err
	}
	if balance < r.Cost {
		return 0, fmt.Errorf("%w: have %d, need %d", ErrInsufficientPoints, balance, r.Cost)
	}

	newBalance, err := s.addPointsLocked(kidID, -r.Cost, "Reward: "+r.Title, model.KindSpend)
	if err != nil {
		return 0, err
	}

	s.broadcast(events.RewardClaimed(kidID, r, newBalance))
	return newBalance, nil
}

// Progress returns the kid's progress toward one reward, or nil if the
// kid has never progressed toward it.
func (s *Service) Progress(kidID, rewardID string) (*model.RewardProgress, error) {
	return s.rewards.GetProgress(kidID, rewardID)
}

func (s *Service) ProgressByKid(kidID string) ([]model.RewardProgress, error) {
	return s.rewards.ListProgressByKid(kidID)
}

// UpdateRewardProgress records one completion dated completedDate
// ("2006-01-02") against every matching non-point reward and returns the
// ids of rewards newly achieved. Completed progress rows are terminal
// and skipped.
func (s *Service) UpdateRewardProgress(kidID, choreType, completedDate string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateProgressLocked(kidID, choreType, completedDate)
}

func (s *Service) updateProgressLocked(kidID, choreType, completedDate string) ([]string, error) {
	rewards, err := s.rewards.List()
	if err != nil {
		return nil, err
	}

	var achieved []string
	for i := range rewards {
		r := &rewards[i]
		if !reward.Matches(r, choreType) {
			continue
		}

		p, err := s.rewards.GetProgress(kidID, r.ID)
		if err != nil {
			return achieved, err
		}
		if p == nil {
			p = &model.RewardProgress{KidID: kidID, RewardID: r.ID}
		}
		if p.Completed {
			continue
		}

		done, err := reward.Apply(r, p, completedDate, s.now())
		if err != nil {
			return achieved, err
		}
		if err := s.rewards.SaveProgress(p); err != nil {
			return achieved, err
		}

		if done {
			achieved = append(achieved, r.ID)
			if s.logger != nil {
				s.logger.Info("reward achieved", "kid_id", kidID, "reward_id", r.ID, "title", r.Title)
			}
			s.broadcast(events.RewardAchieved(kidID, r))
			if s.notifier != nil {
				s.notifier.RewardAchieved(kidID, r)
			}
		}
	}
	return achieved, nil
}

// SeedDefaultRewards installs the starter catalog when none exists yet.
func (s *Service) SeedDefaultRewards() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.rewards.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	defaults := []model.Reward{
		{ID: "movie_night", Title: "Family Movie Night", Description: "Pick tonight's movie", Kind: model.RewardPoints, Cost: 20, CreateCalendarEvent: true, CalendarDurationHours: 2},
		{ID: "extra_allowance", Title: "Extra $5 Allowance", Description: "Bonus money", Kind: model.RewardPoints, Cost: 25, CalendarDurationHours: 2},
		{ID: "trash_master", Title: "Trash Master Badge", Description: "Take out trash 10 times", Kind: model.RewardCompletions, RequiredCompletions: 10, RequiredChoreType: "trash", CalendarDurationHours: 2},
		{ID: "bed_streak", Title: "Perfect Week - Bed Made", Description: "Make bed every day for 1 week", Kind: model.RewardStreak, RequiredStreakDays: 7, RequiredChoreType: "bed", CreateCalendarEvent: true, CalendarDurationHours: 2},
		{ID: "dish_hero", Title: "Dish Washing Hero", Description: "Wash dishes 15 times", Kind: model.RewardCompletions, RequiredCompletions: 15, RequiredChoreType: "dishes", CalendarDurationHours: 2},
		{ID: "clean_streak", Title: "Super Clean Streak", Description: "Clean room every day for 2 weeks", Kind: model.RewardStreak, RequiredStreakDays: 14, RequiredChoreType: "room", CreateCalendarEvent: true, CalendarDurationHours: 3},
	}
	for i := range defaults {
		if _, err := s.rewards.Create(&defaults[i]); err != nil {
			return err
		}
	}
	return nil
}
