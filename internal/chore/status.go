package chore

import "github.com/tmackenzie/chorekeeper/internal/model"

// Transition tables for the chore lifecycle and the approval workflow.
// A chore only ever moves forward (pending → completed → approved or
// rejected) except for the explicit undo transitions back to pending.

var choreTransitions = map[model.ChoreStatus][]model.ChoreStatus{
	model.ChorePending:   {model.ChoreCompleted},
	model.ChoreCompleted: {model.ChoreApproved, model.ChoreRejected, model.ChorePending},
	model.ChoreApproved:  {},
	model.ChoreRejected:  {model.ChorePending},
}

var approvalTransitions = map[model.ApprovalStatus][]model.ApprovalStatus{
	model.ApprovalPending:  {model.ApprovalApproved, model.ApprovalRejected},
	model.ApprovalApproved: {},
	model.ApprovalRejected: {},
}

// CanTransition reports whether a chore may move from one status to
// another in a single step.
func CanTransition(from, to model.ChoreStatus) bool {
	for _, next := range choreTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanTransitionApproval reports whether an approval may move from one
// status to another.
func CanTransitionApproval(from, to model.ApprovalStatus) bool {
	for _, next := range approvalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Claimable reports whether a chore in the given status may be claimed
// (or completed directly). Only pending chores are claimable; claiming a
// completed, approved, or rejected chore would double-award points.
func Claimable(s model.ChoreStatus) bool {
	return s == model.ChorePending
}

// Terminal reports whether a chore status has no outgoing transitions.
func Terminal(s model.ChoreStatus) bool {
	return len(choreTransitions[s]) == 0
}
