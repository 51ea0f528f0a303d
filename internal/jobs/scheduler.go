package jobs

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/yungbote/skillup-backend/internal/pkg/logger"
)

// Scheduler runs periodic maintenance jobs. A zero interval disables it.
type Scheduler struct {
	log       *logger.Logger
	scheduler *gocron.Scheduler
	auditor   *OrphanAuditor
	interval  time.Duration
	timeout   time.Duration
}

func NewScheduler(baseLog *logger.Logger, auditor *OrphanAuditor, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		log:       baseLog.With("component", "Scheduler"),
		scheduler: s,
		auditor:   auditor,
		interval:  interval,
		timeout:   time.Minute,
	}
}

// Start schedules the audit and returns immediately. Jobs stop when ctx is
// cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.interval <= 0 || s.auditor == nil {
		s.log.Info("orphan audit disabled")
		return nil
	}
	_, err := s.scheduler.Every(s.interval).Do(func() {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("orphan audit panic", "panic", r)
			}
		}()
		runCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		_, _ = s.auditor.Run(runCtx)
	})
	if err != nil {
		return err
	}
	s.scheduler.StartAsync()
	s.log.Info("orphan audit scheduled", "interval", s.interval.String())
	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

func (s *Scheduler) Stop() {
	if s.scheduler.IsRunning() {
		s.scheduler.Stop()
	}
}
