package push

import (
	"errors"
	"log/slog"

	"github.com/tmackenzie/chorekeeper/internal/model"
	"github.com/tmackenzie/chorekeeper/internal/store"
)

// Notifier fans one payload out to every stored subscription. Send
// failures are logged and expired subscriptions pruned; nothing
// propagates to the caller, since push is strictly best-effort.
type Notifier struct {
	service *Service
	store   *store.PushStore
	logger  *slog.Logger
}

func NewNotifier(service *Service, st *store.PushStore, logger *slog.Logger) *Notifier {
	return &Notifier{service: service, store: st, logger: logger}
}

// NotifyAll sends the payload to all subscribed devices.
func (n *Notifier) NotifyAll(payload Payload) {
	subs, err := n.store.List()
	if err != nil {
		n.logger.Error("list push subscriptions", "error", err)
		return
	}

	for i := range subs {
		sub := subs[i]
		if err := n.service.Send(&sub, payload); err != nil {
			if errors.Is(err, ErrExpired) {
				n.logger.Info("pruning expired push subscription", "id", sub.ID)
				if derr := n.store.DeleteByEndpoint(sub.Endpoint); derr != nil {
					n.logger.Error("prune push subscription", "error", derr)
				}
				continue
			}
			n.logger.Warn("send push", "id", sub.ID, "error", err)
		}
	}
}

// ApprovalRequested notifies parents that a chore awaits sign-off.
func (n *Notifier) ApprovalRequested(a *model.PendingApproval) {
	n.NotifyAll(Payload{
		Title: "Chore waiting for approval",
		Body:  a.Title + " claimed by " + a.KidID,
		Tag:   "approval-" + a.ID,
	})
}

// RewardAchieved notifies parents that a kid earned a reward.
func (n *Notifier) RewardAchieved(kidID string, r *model.Reward) {
	n.NotifyAll(Payload{
		Title: "Reward achieved",
		Body:  kidID + " earned " + r.Title,
		Tag:   "reward-" + r.ID,
	})
}
