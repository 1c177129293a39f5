package store

import (
	"testing"

	"github.com/tmackenzie/chorekeeper/internal/model"
)

func TestLedgerAppendCreatesKid(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewLedgerStore(db)
	kids := NewKidStore(db)

	balance, err := ledger.Append("alice", 10, "Chore: Dishes", model.KindEarn)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if balance != 10 {
		t.Errorf("balance = %d, want 10", balance)
	}

	k, _ := kids.GetByID("alice")
	if k == nil {
		t.Fatal("expected kid created on first append")
	}
	if k.Points != 10 {
		t.Errorf("points = %d, want 10", k.Points)
	}
}

func TestLedgerBalanceEqualsSumOfDeltas(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewLedgerStore(db)
	kids := NewKidStore(db)

	deltas := []int{10, 5, -3, 20, -12}
	for _, d := range deltas {
		if _, err := ledger.Append("alice", d, "test", model.KindAdjust); err != nil {
			t.Fatalf("append %d: %v", d, err)
		}
	}

	sum, err := ledger.SumDeltas("alice")
	if err != nil {
		t.Fatalf("sum deltas: %v", err)
	}
	balance, err := kids.Balance("alice")
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if sum != balance {
		t.Errorf("sum = %d, balance = %d, want equal", sum, balance)
	}
	if balance != 20 {
		t.Errorf("balance = %d, want 20", balance)
	}
}

func TestLedgerListByKidNewestFirst(t *testing.T) {
	ledger := NewLedgerStore(setupTestDB(t))

	ledger.Append("alice", 5, "first", model.KindEarn)
	ledger.Append("alice", 7, "second", model.KindEarn)
	ledger.Append("bob", 3, "other kid", model.KindEarn)

	entries, err := ledger.ListByKid("alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].Reason != "second" {
		t.Errorf("first entry reason = %q, want %q", entries[0].Reason, "second")
	}
	if entries[1].Reason != "first" {
		t.Errorf("second entry reason = %q, want %q", entries[1].Reason, "first")
	}
}

func TestLedgerNegativeBalanceAllowed(t *testing.T) {
	ledger := NewLedgerStore(setupTestDB(t))

	balance, err := ledger.Append("alice", -5, "manual adjustment", model.KindAdjust)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if balance != -5 {
		t.Errorf("balance = %d, want -5", balance)
	}
}
