// Package service implements the chore lifecycle, approval workflow, and
// points accounting for one household. All mutating operations are
// serialized by a single mutex: the deployment model is one process per
// household, so coarse single-writer locking is the simplest correct
// design. Every mutation persists before it returns; notification
// side effects (websocket events, web push) run after the mutation
// commits and can never fail it.
package service

import (
	"database/sql"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tmackenzie/chorekeeper/internal/events"
	"github.com/tmackenzie/chorekeeper/internal/push"
	"github.com/tmackenzie/chorekeeper/internal/reward"
	"github.com/tmackenzie/chorekeeper/internal/store"
)

var (
	// ErrNotFound covers unknown kid/chore/approval/reward ids. These
	// are expected conditions (a UI racing the backend), not faults.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is returned for state-machine violations,
	// e.g. claiming a chore that is not pending.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrInvalidAmount is returned when a point amount violates the
	// operation's contract (RemovePoints requires a positive magnitude).
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientPoints is returned when a kid cannot afford a
	// point reward.
	ErrInsufficientPoints = errors.New("insufficient points")

	// ErrNotRedeemable is returned when claiming a completion or streak
	// reward; those are earned through progress, never bought.
	ErrNotRedeemable = errors.New("reward is not redeemable for points")
)

type Service struct {
	mu sync.Mutex

	kids      *store.KidStore
	ledger    *store.LedgerStore
	chores    *store.ChoreStore
	approvals *store.ApprovalStore
	rewards   *store.RewardStore

	hub      *events.Hub
	notifier *push.Notifier
	logger   *slog.Logger

	now func() time.Time
}

// New wires a Service over the given database. hub and notifier may be
// nil (tests, headless mode); side effects are skipped silently.
func New(db *sql.DB, hub *events.Hub, notifier *push.Notifier, logger *slog.Logger) *Service {
	return &Service{
		kids:      store.NewKidStore(db),
		ledger:    store.NewLedgerStore(db),
		chores:    store.NewChoreStore(db),
		approvals: store.NewApprovalStore(db),
		rewards:   store.NewRewardStore(db),
		hub:       hub,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Service) broadcast(ev events.Event) {
	if s.hub != nil {
		s.hub.Broadcast(ev)
	}
}

// newInstanceID mints the uid for a pending chore instance.
func newInstanceID() string {
	return uuid.NewString()
}

// newShortID mints the compact ids used for approvals, rewards, and
// recurring templates.
func newShortID() string {
	return uuid.NewString()[:8]
}

func (s *Service) today() string {
	return s.now().Format(reward.DateLayout)
}
