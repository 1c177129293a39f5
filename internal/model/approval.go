package model

import "time"

// ApprovalStatus is the state of a parental approval record.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending_approval"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// PendingApproval gates the point award for a claimed chore on parental
// sign-off. Title and Points are snapshotted at claim time so later edits
// to the chore never change an in-flight approval.
type PendingApproval struct {
	ID          string         `json:"id"`
	ChoreID     string         `json:"chore_id"`
	KidID       string         `json:"kid_id"`
	Title       string         `json:"title"`
	Points      int            `json:"points"`
	Status      ApprovalStatus `json:"status"`
	CompletedAt time.Time      `json:"completed_at"`
	CreatedAt   time.Time      `json:"created_at"`
}
