package store

import (
	"testing"

	"github.com/tmackenzie/chorekeeper/internal/model"
)

func TestRewardCreate(t *testing.T) {
	s := NewRewardStore(setupTestDB(t))

	r, err := s.Create(&model.Reward{
		ID:                    "movie_night",
		Title:                 "Family Movie Night",
		Kind:                  model.RewardPoints,
		Cost:                  20,
		CreateCalendarEvent:   true,
		CalendarDurationHours: 2,
	})
	if err != nil {
		t.Fatalf("create reward: %v", err)
	}
	if r.Kind != model.RewardPoints || r.Cost != 20 {
		t.Errorf("kind/cost = %q/%d, want points/20", r.Kind, r.Cost)
	}
	if !r.CreateCalendarEvent {
		t.Error("expected calendar event flag set")
	}
}

func TestRewardCount(t *testing.T) {
	s := NewRewardStore(setupTestDB(t))

	n, err := s.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("count = %d, want 0", n)
	}

	s.Create(&model.Reward{ID: "r1", Title: "One", Kind: model.RewardPoints, Cost: 5})
	n, _ = s.Count()
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestRewardGetByIDNotFound(t *testing.T) {
	s := NewRewardStore(setupTestDB(t))

	r, err := s.GetByID("missing")
	if err != nil {
		t.Fatalf("get reward: %v", err)
	}
	if r != nil {
		t.Error("expected nil for unknown reward")
	}
}

func TestRewardProgressAbsentIsNil(t *testing.T) {
	s := NewRewardStore(setupTestDB(t))

	p, err := s.GetProgress("alice", "r1")
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if p != nil {
		t.Error("expected nil progress before first completion")
	}
}

func TestRewardProgressSaveAndUpdate(t *testing.T) {
	s := NewRewardStore(setupTestDB(t))
	s.Create(&model.Reward{ID: "r1", Title: "One", Kind: model.RewardCompletions, RequiredCompletions: 5})

	p := &model.RewardProgress{
		KidID:              "alice",
		RewardID:           "r1",
		CurrentCompletions: 1,
		LastCompletionDate: "2026-08-25",
	}
	if err := s.SaveProgress(p); err != nil {
		t.Fatalf("save progress: %v", err)
	}

	p.CurrentCompletions = 2
	p.LastCompletionDate = "2026-08-26"
	if err := s.SaveProgress(p); err != nil {
		t.Fatalf("update progress: %v", err)
	}

	got, _ := s.GetProgress("alice", "r1")
	if got == nil {
		t.Fatal("expected progress row")
	}
	if got.CurrentCompletions != 2 {
		t.Errorf("completions = %d, want 2", got.CurrentCompletions)
	}
	if got.LastCompletionDate != "2026-08-26" {
		t.Errorf("last date = %q, want 2026-08-26", got.LastCompletionDate)
	}
}

func TestRewardListProgressByKid(t *testing.T) {
	s := NewRewardStore(setupTestDB(t))
	s.Create(&model.Reward{ID: "r1", Title: "One", Kind: model.RewardStreak, RequiredStreakDays: 7})
	s.Create(&model.Reward{ID: "r2", Title: "Two", Kind: model.RewardCompletions, RequiredCompletions: 5})

	s.SaveProgress(&model.RewardProgress{KidID: "alice", RewardID: "r1", CurrentStreak: 3, LastCompletionDate: "2026-08-25"})
	s.SaveProgress(&model.RewardProgress{KidID: "alice", RewardID: "r2", CurrentCompletions: 1, LastCompletionDate: "2026-08-25"})
	s.SaveProgress(&model.RewardProgress{KidID: "bob", RewardID: "r1", CurrentStreak: 1, LastCompletionDate: "2026-08-25"})

	progress, err := s.ListProgressByKid("alice")
	if err != nil {
		t.Fatalf("list progress: %v", err)
	}
	if len(progress) != 2 {
		t.Errorf("len = %d, want 2", len(progress))
	}
}

func TestRewardDelete(t *testing.T) {
	s := NewRewardStore(setupTestDB(t))

	s.Create(&model.Reward{ID: "r1", Title: "One", Kind: model.RewardPoints, Cost: 5})
	if err := s.Delete("r1"); err != nil {
		t.Fatalf("delete reward: %v", err)
	}
	r, _ := s.GetByID("r1")
	if r != nil {
		t.Error("expected reward gone after delete")
	}
}
