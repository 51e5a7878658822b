package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"LuxorLab/internal/notifier"
)

// Scheduler re-runs the pipeline on a cron schedule (watch mode) and pushes
// run summaries via Telegram.
type Scheduler struct {
	Cron     *cron.Cron
	Runner   *Runner
	Notifier *notifier.TelegramNotifier
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, runner *Runner, tn *notifier.TelegramNotifier) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Runner:   runner,
		Notifier: tn,
		Ctx:      ctx,
	}
}

// Register adds the periodic task.
func (s *Scheduler) Register(cronExpr string) error {
	if _, err := s.Cron.AddFunc(cronExpr, s.task); err != nil {
		return fmt.Errorf("register task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.task()
}

func (s *Scheduler) task() {
	log.Println("[INFO] running scheduled backtest")
	res, err := s.Runner.Run()
	if err != nil {
		// watch mode survives a failed fetch; the next tick retries
		log.Printf("[ERROR] scheduled run: %v", err)
		s.trySend(fmt.Sprintf("❌ LuxorLab run failed: %v", err))
		return
	}
	s.trySend(notifier.FormatRunSummary(s.Runner.Strategy.Name(), res))
}

func (s *Scheduler) trySend(text string) {
	if !s.Notifier.Enabled() {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
