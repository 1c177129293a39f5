// Package scheduler drives the recurring chore generator. Daily
// templates fire every morning; weekly templates fire on their
// configured day.
package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/tmackenzie/chorekeeper/internal/model"
	"github.com/tmackenzie/chorekeeper/internal/service"
)

// GenerateHour is the local hour when instances are handed out.
const GenerateHour = 6

type Scheduler struct {
	svc    *service.Service
	sched  gocron.Scheduler
	logger *slog.Logger
}

func New(svc *service.Service, logger *slog.Logger) (*Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &Scheduler{svc: svc, sched: sched, logger: logger}, nil
}

// Start registers the generation job and begins running it. The single
// job handles both schedules: daily templates always fire, weekly
// templates only on their matching day.
func (s *Scheduler) Start() error {
	_, err := s.sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(GenerateHour, 0, 0))),
		gocron.NewTask(s.generate),
	)
	if err != nil {
		return fmt.Errorf("register generation job: %w", err)
	}

	s.sched.Start()
	s.logger.Info("chore generation scheduled", "hour", GenerateHour)
	return nil
}

func (s *Scheduler) generate() {
	daily, err := s.svc.GenerateDaily()
	if err != nil {
		s.logger.Error("generate daily chores", "error", err)
	} else if len(daily) > 0 {
		s.logger.Info("generated daily chores", "count", len(daily))
	}

	day := model.MondayIndex(time.Now().Weekday())
	weekly, err := s.svc.GenerateWeekly(day)
	if err != nil {
		s.logger.Error("generate weekly chores", "error", err)
	} else if len(weekly) > 0 {
		s.logger.Info("generated weekly chores", "count", len(weekly), "day", day)
	}
}

// Stop shuts the scheduler down, waiting for a running job to finish.
func (s *Scheduler) Stop() error {
	return s.sched.Shutdown()
}
