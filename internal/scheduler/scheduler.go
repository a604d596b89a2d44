package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"agro-advisor/internal/services/agro"
	"agro-advisor/pkg/logger"
)

// Scheduler periodically regenerates the default-crop advisory report so the
// alert file stays fresh between requests.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *agro.AgroService
	crop      string
	interval  time.Duration
	l         *logger.Logger
}

func New(service *agro.AgroService, crop string, interval time.Duration, l *logger.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		crop:      crop,
		interval:  interval,
		l:         l,
	}
}

// Start schedules the periodic job. A zero or negative interval disables it.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		s.l.Info("scheduler disabled; no refresh interval configured")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		report, err := s.service.GenerateReport(ctx, s.crop)
		if err != nil {
			s.l.Error(err, map[string]any{"crop": s.crop})
			return
		}

		s.l.Info("refreshed advisory report", map[string]any{
			"report_id": report.ID,
			"crop":      report.Crop,
			"days":      len(report.Insights),
		})
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
