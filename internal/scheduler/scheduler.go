package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/Yang0427/stocks/internal/analyzer"
	"github.com/Yang0427/stocks/internal/reporter"
)

// Scheduler re-runs the full scan on a cron schedule and serves commands
// received over Telegram.
type Scheduler struct {
	Cron     *cron.Cron
	Analyzer *analyzer.Analyzer
	Tickers  []string
	Notifier reporter.Notifier
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, a *analyzer.Analyzer, tickers []string, n reporter.Notifier) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Analyzer: a,
		Tickers:  tickers,
		Notifier: n,
		Ctx:      ctx,
	}
}

// Register adds the scan task on the given cron expression.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
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

// RunScanNow executes the scan immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	log.Printf("[INFO] running scan for %d tickers", len(s.Tickers))
	reports := s.Analyzer.AnalyzeAll(s.Tickers)
	log.Printf("[INFO] scan complete: %d/%d tickers reported", len(reports), len(s.Tickers))

	text := reporter.FormatReport(reports)
	if err := s.Notifier.Notify(s.Ctx, text); err != nil {
		log.Printf("[ERROR] deliver report: %v", err)
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/scan":
		s.scanTask()
		return ""
	case "/tickers":
		reply := "Watched tickers:\n"
		for _, t := range s.Tickers {
			reply += "• " + t + "\n"
		}
		return reply
	default:
		return "Available commands:\n• /scan — run a full analysis now\n• /tickers — list watched tickers"
	}
}
