package service

import (
	"errors"
	"testing"
	"time"

	"github.com/tmackenzie/chorekeeper/internal/model"
)

func TestClaimRewardSpendsPoints(t *testing.T) {
	s := newTestService(t)

	r, err := s.AddPointReward("Movie Night", "Pick the movie", 20, false, 0)
	if err != nil {
		t.Fatalf("add reward: %v", err)
	}
	s.AddPoints("alice", 25, "chores", model.KindEarn)

	balance, err := s.ClaimReward("alice", r.ID)
	if err != nil {
		t.Fatalf("claim reward: %v", err)
	}
	if balance != 5 {
		t.Errorf("balance = %d, want 5", balance)
	}

	entries, _ := s.Ledger("alice")
	if entries[0].Reason != "Reward: Movie Night" {
		t.Errorf("reason = %q, want %q", entries[0].Reason, "Reward: Movie Night")
	}
	if entries[0].Kind != model.KindSpend {
		t.Errorf("kind = %q, want spend", entries[0].Kind)
	}
}

func TestClaimRewardInsufficientPoints(t *testing.T) {
	s := newTestService(t)

	r, _ := s.AddPointReward("Movie Night", "", 20, false, 0)
	s.AddPoints("alice", 10, "chores", model.KindEarn)

	if _, err := s.ClaimReward("alice", r.ID); !errors.Is(err, ErrInsufficientPoints) {
		t.Errorf("error = %v, want ErrInsufficientPoints", err)
	}

	balance, _ := s.Balance("alice")
	if balance != 10 {
		t.Errorf("balance = %d, want untouched 10", balance)
	}
}

func TestClaimRewardUnknown(t *testing.T) {
	s := newTestService(t)

	if _, err := s.ClaimReward("alice", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestClaimCompletionRewardNotRedeemable(t *testing.T) {
	s := newTestService(t)

	r, _ := s.AddCompletionReward("Trash Master", "", 10, "trash", false, 0)
	s.AddPoints("alice", 100, "chores", model.KindEarn)

	if _, err := s.ClaimReward("alice", r.ID); !errors.Is(err, ErrNotRedeemable) {
		t.Errorf("error = %v, want ErrNotRedeemable", err)
	}
}

func TestAddRewardValidatesThresholds(t *testing.T) {
	s := newTestService(t)

	if _, err := s.AddPointReward("Bad", "", 0, false, 0); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero cost error = %v, want ErrInvalidAmount", err)
	}
	if _, err := s.AddCompletionReward("Bad", "", 0, "", false, 0); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero completions error = %v, want ErrInvalidAmount", err)
	}
	if _, err := s.AddStreakReward("Bad", "", -1, "", false, 0); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative streak error = %v, want ErrInvalidAmount", err)
	}
}

func TestCompletionRewardAchievedOnThreshold(t *testing.T) {
	s := newTestService(t)

	r, _ := s.AddCompletionReward("Dish Duo", "", 2, "dishes", false, 0)

	achieved, err := s.UpdateRewardProgress("alice", "dishes", "2026-08-20")
	if err != nil {
		t.Fatalf("first completion: %v", err)
	}
	if len(achieved) != 0 {
		t.Errorf("achieved after 1 of 2 = %v, want none", achieved)
	}

	achieved, err = s.UpdateRewardProgress("alice", "dishes", "2026-08-21")
	if err != nil {
		t.Fatalf("second completion: %v", err)
	}
	if len(achieved) != 1 || achieved[0] != r.ID {
		t.Errorf("achieved = %v, want [%s]", achieved, r.ID)
	}

	p, _ := s.Progress("alice", r.ID)
	if !p.Completed {
		t.Error("expected progress marked completed")
	}
}

func TestCompletionRewardIgnoresOtherChoreTypes(t *testing.T) {
	s := newTestService(t)

	r, _ := s.AddCompletionReward("Trash Master", "", 2, "trash", false, 0)

	s.UpdateRewardProgress("alice", "dishes", "2026-08-20")
	p, _ := s.Progress("alice", r.ID)
	if p != nil {
		t.Errorf("progress = %+v, want nil for non-matching chore type", p)
	}
}

func TestStreakRewardConsecutiveDays(t *testing.T) {
	s := newTestService(t)

	r, _ := s.AddStreakReward("Bed Streak", "", 3, "bed", false, 0)

	s.UpdateRewardProgress("alice", "bed", "2026-08-20")
	s.UpdateRewardProgress("alice", "bed", "2026-08-21")
	achieved, err := s.UpdateRewardProgress("alice", "bed", "2026-08-22")
	if err != nil {
		t.Fatalf("third day: %v", err)
	}
	if len(achieved) != 1 || achieved[0] != r.ID {
		t.Errorf("achieved = %v, want [%s]", achieved, r.ID)
	}
}

func TestStreakRewardGapResets(t *testing.T) {
	s := newTestService(t)

	r, _ := s.AddStreakReward("Bed Streak", "", 3, "bed", false, 0)

	s.UpdateRewardProgress("alice", "bed", "2026-08-20")
	s.UpdateRewardProgress("alice", "bed", "2026-08-21")
	s.UpdateRewardProgress("alice", "bed", "2026-08-24")

	p, _ := s.Progress("alice", r.ID)
	if p.CurrentStreak != 1 {
		t.Errorf("streak = %d, want reset to 1 after gap", p.CurrentStreak)
	}
	if p.Completed {
		t.Error("expected streak not completed after reset")
	}
}

func TestStreakRewardSameDayNoDoubleCount(t *testing.T) {
	s := newTestService(t)

	r, _ := s.AddStreakReward("Bed Streak", "", 3, "bed", false, 0)

	s.UpdateRewardProgress("alice", "bed", "2026-08-20")
	s.UpdateRewardProgress("alice", "bed", "2026-08-20")

	p, _ := s.Progress("alice", r.ID)
	if p.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1 after same-day repeat", p.CurrentStreak)
	}
}

func TestCompletedProgressIsTerminal(t *testing.T) {
	s := newTestService(t)

	r, _ := s.AddCompletionReward("One Shot", "", 1, "dishes", false, 0)

	s.UpdateRewardProgress("alice", "dishes", "2026-08-20")
	achieved, _ := s.UpdateRewardProgress("alice", "dishes", "2026-08-21")
	if len(achieved) != 0 {
		t.Errorf("achieved = %v, want none for already-completed reward", achieved)
	}

	p, _ := s.Progress("alice", r.ID)
	if p.CurrentCompletions != 1 {
		t.Errorf("completions = %d, want frozen at 1", p.CurrentCompletions)
	}
}

func TestApproveAdvancesProgress(t *testing.T) {
	s := newTestService(t)
	fixed := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	r, _ := s.AddCompletionReward("Dish Starter", "", 1, "dishes", false, 0)
	c, _ := s.CreatePendingChore("alice", "Wash dishes", 10, "dishes")
	a, _ := s.RequestApproval(c.ID)

	achieved, err := s.Approve(a.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if len(achieved) != 1 || achieved[0] != r.ID {
		t.Errorf("achieved = %v, want [%s]", achieved, r.ID)
	}

	p, _ := s.Progress("alice", r.ID)
	if p.LastCompletionDate != "2026-08-25" {
		t.Errorf("last date = %q, want 2026-08-25", p.LastCompletionDate)
	}
}

func TestSeedDefaultRewards(t *testing.T) {
	s := newTestService(t)

	if err := s.SeedDefaultRewards(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	rewards, _ := s.Rewards()
	if len(rewards) != 6 {
		t.Errorf("len = %d, want 6 defaults", len(rewards))
	}

	// Seeding again, or after the catalog has been touched, is a no-op.
	if err := s.SeedDefaultRewards(); err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	rewards, _ = s.Rewards()
	if len(rewards) != 6 {
		t.Errorf("len = %d after re-seed, want 6", len(rewards))
	}
}
