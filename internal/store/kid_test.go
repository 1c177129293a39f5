package store

import "testing"

func TestKidEnsure(t *testing.T) {
	s := NewKidStore(setupTestDB(t))

	if err := s.Ensure("alice", "Alice"); err != nil {
		t.Fatalf("ensure kid: %v", err)
	}

	k, err := s.GetByID("alice")
	if err != nil {
		t.Fatalf("get kid: %v", err)
	}
	if k == nil {
		t.Fatal("expected kid, got nil")
	}
	if k.Name != "Alice" {
		t.Errorf("name = %q, want %q", k.Name, "Alice")
	}
	if k.Points != 0 {
		t.Errorf("points = %d, want 0", k.Points)
	}
}

func TestKidEnsureIdempotent(t *testing.T) {
	s := NewKidStore(setupTestDB(t))

	if err := s.Ensure("alice", "Alice"); err != nil {
		t.Fatalf("ensure kid: %v", err)
	}
	if err := s.Ensure("alice", "Someone Else"); err != nil {
		t.Fatalf("ensure kid again: %v", err)
	}

	k, _ := s.GetByID("alice")
	if k.Name != "Alice" {
		t.Errorf("name = %q, want original %q preserved", k.Name, "Alice")
	}
}

func TestKidEnsureDefaultsNameToID(t *testing.T) {
	s := NewKidStore(setupTestDB(t))

	if err := s.Ensure("bob", ""); err != nil {
		t.Fatalf("ensure kid: %v", err)
	}

	k, _ := s.GetByID("bob")
	if k.Name != "bob" {
		t.Errorf("name = %q, want %q", k.Name, "bob")
	}
}

func TestKidGetByIDNotFound(t *testing.T) {
	s := NewKidStore(setupTestDB(t))

	k, err := s.GetByID("nobody")
	if err != nil {
		t.Fatalf("get kid: %v", err)
	}
	if k != nil {
		t.Error("expected nil for unknown kid")
	}
}

func TestKidBalanceUnknownIsZero(t *testing.T) {
	s := NewKidStore(setupTestDB(t))

	balance, err := s.Balance("nobody")
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 0 {
		t.Errorf("balance = %d, want 0", balance)
	}
}

func TestKidList(t *testing.T) {
	s := NewKidStore(setupTestDB(t))

	s.Ensure("bob", "Bob")
	s.Ensure("alice", "Alice")

	kids, err := s.List()
	if err != nil {
		t.Fatalf("list kids: %v", err)
	}
	if len(kids) != 2 {
		t.Fatalf("len = %d, want 2", len(kids))
	}
	if kids[0].Name != "Alice" || kids[1].Name != "Bob" {
		t.Errorf("expected name order, got %q, %q", kids[0].Name, kids[1].Name)
	}
}
