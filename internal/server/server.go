// Package server wires the stores, service, and handlers into one HTTP
// surface. Parent-only routes sit behind the PIN middleware; everything
// else is open on the household LAN.
package server

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/tmackenzie/chorekeeper/internal/events"
	"github.com/tmackenzie/chorekeeper/internal/handler"
	"github.com/tmackenzie/chorekeeper/internal/middleware"
	"github.com/tmackenzie/chorekeeper/internal/push"
	"github.com/tmackenzie/chorekeeper/internal/service"
	"github.com/tmackenzie/chorekeeper/internal/store"
)

type Config struct {
	VAPIDPublicKey  string
	VAPIDPrivateKey string
}

type Server struct {
	db          *sql.DB
	hub         *events.Hub
	svc         *service.Service
	kidH        *handler.KidHandler
	choreH      *handler.ChoreHandler
	approvalH   *handler.ApprovalHandler
	rewardH     *handler.RewardHandler
	settingsH   *handler.SettingsHandler
	pushH       *handler.PushHandler
	settings    *store.SettingsStore
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
}

func New(db *sql.DB, cfg Config, logger *slog.Logger) *Server {
	hub := events.NewHub(logger.With("component", "events"))
	settingsStore := store.NewSettingsStore(db)
	pushStore := store.NewPushStore(db)

	var notifier *push.Notifier
	var pushH *handler.PushHandler
	if cfg.VAPIDPublicKey != "" && cfg.VAPIDPrivateKey != "" {
		pushSvc := push.NewService(cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey)
		notifier = push.NewNotifier(pushSvc, pushStore, logger.With("component", "push"))
		pushH = handler.NewPushHandler(pushStore, pushSvc, logger.With("component", "push_handler"))
	}

	svc := service.New(db, hub, notifier, logger.With("component", "service"))

	return &Server{
		db:          db,
		hub:         hub,
		svc:         svc,
		kidH:        handler.NewKidHandler(svc, logger.With("component", "kid")),
		choreH:      handler.NewChoreHandler(svc, logger.With("component", "chore")),
		approvalH:   handler.NewApprovalHandler(svc, logger.With("component", "approval")),
		rewardH:     handler.NewRewardHandler(svc, logger.With("component", "reward")),
		settingsH:   handler.NewSettingsHandler(settingsStore, logger.With("component", "settings")),
		pushH:       pushH,
		settings:    settingsStore,
		rateLimiter: middleware.NewRateLimiter(),
		logger:      logger,
	}
}

// Service exposes the domain service for the scheduler and seeding.
func (s *Server) Service() *service.Service {
	return s.svc
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)

	// Kids and points
	mux.HandleFunc("POST /api/kids", s.kidH.Create)
	mux.HandleFunc("GET /api/kids", s.kidH.List)
	mux.HandleFunc("GET /api/kids/{id}", s.kidH.Get)
	mux.HandleFunc("GET /api/kids/{id}/points", s.kidH.Balance)
	mux.HandleFunc("GET /api/kids/{id}/ledger", s.kidH.Ledger)
	mux.HandleFunc("GET /api/kids/{id}/progress", s.rewardH.Progress)

	// Chore instances
	mux.HandleFunc("POST /api/chores", s.choreH.Create)
	mux.HandleFunc("GET /api/chores", s.choreH.List)
	mux.HandleFunc("GET /api/chores/{id}", s.choreH.Get)
	mux.HandleFunc("POST /api/chores/{id}/claim", s.choreH.Claim)
	mux.HandleFunc("POST /api/chores/{id}/complete", s.choreH.Complete)

	// Recurring templates
	mux.HandleFunc("POST /api/recurring-chores", s.choreH.CreateRecurring)
	mux.HandleFunc("GET /api/recurring-chores", s.choreH.ListRecurring)
	mux.HandleFunc("PUT /api/recurring-chores/{id}/enabled", s.choreH.SetRecurringEnabled)
	mux.HandleFunc("DELETE /api/recurring-chores/{id}", s.choreH.DeleteRecurring)
	mux.HandleFunc("POST /api/recurring-chores/generate/daily", s.choreH.GenerateDaily)
	mux.HandleFunc("POST /api/recurring-chores/generate/weekly", s.choreH.GenerateWeekly)

	// Approval queue
	mux.HandleFunc("GET /api/approvals", s.approvalH.List)
	mux.HandleFunc("GET /api/approvals/{id}", s.approvalH.Get)

	// Rewards
	mux.HandleFunc("GET /api/rewards", s.rewardH.List)
	mux.HandleFunc("GET /api/rewards/{id}", s.rewardH.Get)
	mux.HandleFunc("POST /api/rewards/{id}/claim", s.rewardH.Claim)

	// Settings
	mux.HandleFunc("GET /api/settings/pin", s.settingsH.PINStatus)

	// Push notifications
	if s.pushH != nil {
		mux.HandleFunc("POST /api/push/subscribe", s.pushH.Subscribe)
		mux.HandleFunc("DELETE /api/push/subscriptions/{id}", s.pushH.Unsubscribe)
		mux.HandleFunc("GET /api/push/subscriptions", s.pushH.ListSubscriptions)
		mux.HandleFunc("GET /api/push/vapid-key", s.pushH.GetVAPIDKey)
	}

	// WebSocket
	mux.HandleFunc("GET /ws", events.Handler(s.hub, s.logger.With("component", "ws")))

	// Parent-only routes behind the PIN gate
	parentMux := http.NewServeMux()
	parentMux.HandleFunc("POST /api/kids/{id}/points", s.kidH.AddPoints)
	parentMux.HandleFunc("POST /api/kids/{id}/points/remove", s.kidH.RemovePoints)
	parentMux.HandleFunc("POST /api/approvals/{id}/approve", s.approvalH.Approve)
	parentMux.HandleFunc("POST /api/approvals/{id}/reject", s.approvalH.Reject)
	parentMux.HandleFunc("POST /api/approvals/reset-rejected", s.approvalH.ResetRejected)
	parentMux.HandleFunc("POST /api/rewards", s.rewardH.Create)
	parentMux.HandleFunc("DELETE /api/rewards/{id}", s.rewardH.Delete)
	parentMux.HandleFunc("PUT /api/settings/pin", s.settingsH.SetPIN)
	parentMux.HandleFunc("DELETE /api/settings/pin", s.settingsH.ClearPIN)

	pinGate := middleware.RequireParentPIN(s.settings, s.rateLimiter)
	for _, route := range []string{
		"POST /api/kids/{id}/points",
		"POST /api/kids/{id}/points/remove",
		"POST /api/approvals/{id}/approve",
		"POST /api/approvals/{id}/reject",
		"POST /api/approvals/reset-rejected",
		"POST /api/rewards",
		"DELETE /api/rewards/{id}",
		"PUT /api/settings/pin",
		"DELETE /api/settings/pin",
	} {
		mux.Handle(route, pinGate(parentMux))
	}

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
