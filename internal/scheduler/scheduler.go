package scheduler

import (
	"context"
	"fmt"

	"GoldPulse/internal/usecase"
	applogger "GoldPulse/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler periodically refreshes cached market data so the first request
// after a quiet period does not pay the full upstream fetch cost.
type Scheduler struct {
	cron     *cron.Cron
	uc       *usecase.AnalysisUseCase
	logger   *applogger.Logger
	schedule string
}

// New creates a Scheduler with a cron expression (e.g. "0 * * * *").
func New(uc *usecase.AnalysisUseCase, l *applogger.Logger, schedule string) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		uc:       uc,
		logger:   l,
		schedule: schedule,
	}
}

// Start registers the refresh job and starts the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		s.logger.Info("scheduled refresh starting")
		s.uc.Refresh(context.Background())
	})
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", s.schedule, err)
	}

	s.cron.Start()
	s.logger.Info("scheduler started", applogger.String("schedule", s.schedule))
	return nil
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}
