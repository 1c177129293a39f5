package chore

import (
	"testing"

	"github.com/tmackenzie/chorekeeper/internal/model"
)

func TestChoreTransitions(t *testing.T) {
	cases := []struct {
		from, to model.ChoreStatus
		want     bool
	}{
		{model.ChorePending, model.ChoreCompleted, true},
		{model.ChorePending, model.ChoreApproved, false},
		{model.ChorePending, model.ChoreRejected, false},
		{model.ChoreCompleted, model.ChoreApproved, true},
		{model.ChoreCompleted, model.ChoreRejected, true},
		{model.ChoreCompleted, model.ChorePending, true}, // undo
		{model.ChoreApproved, model.ChorePending, false},
		{model.ChoreApproved, model.ChoreCompleted, false},
		{model.ChoreRejected, model.ChorePending, true}, // retry
		{model.ChoreRejected, model.ChoreApproved, false},
	}

	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestApprovalTransitions(t *testing.T) {
	if !CanTransitionApproval(model.ApprovalPending, model.ApprovalApproved) {
		t.Error("pending_approval should allow approve")
	}
	if !CanTransitionApproval(model.ApprovalPending, model.ApprovalRejected) {
		t.Error("pending_approval should allow reject")
	}
	if CanTransitionApproval(model.ApprovalApproved, model.ApprovalRejected) {
		t.Error("approved is terminal")
	}
	if CanTransitionApproval(model.ApprovalRejected, model.ApprovalApproved) {
		t.Error("rejected approval is terminal")
	}
}

func TestClaimable(t *testing.T) {
	if !Claimable(model.ChorePending) {
		t.Error("pending chore should be claimable")
	}
	for _, s := range []model.ChoreStatus{model.ChoreCompleted, model.ChoreApproved, model.ChoreRejected} {
		if Claimable(s) {
			t.Errorf("%s chore should not be claimable", s)
		}
	}
}

func TestTerminal(t *testing.T) {
	if !Terminal(model.ChoreApproved) {
		t.Error("approved should be terminal")
	}
	if Terminal(model.ChoreRejected) {
		t.Error("rejected is not terminal (reset returns it to pending)")
	}
}
