package scheduler

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/robfig/cron/v3"

	"MarketWatch/internal/dashboard"
	"MarketWatch/internal/marketdata"
)

// Scheduler drives the periodic refresh cycle: invalidate the cache,
// rebuild the snapshot, write the report.
type Scheduler struct {
	Cron      *cron.Cron
	Dashboard *dashboard.Dashboard
	Market    *marketdata.Service
	Out       io.Writer
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler writing reports to out.
func NewScheduler(ctx context.Context, d *dashboard.Dashboard, market *marketdata.Service, out io.Writer) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Dashboard: d,
		Market:    market,
		Out:       out,
		Ctx:       ctx,
	}
}

// Register registers the refresh task on the given cron spec.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
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

// RunNow renders immediately without invalidating the cache (used for the
// start-up render; the cache is cold anyway).
func (s *Scheduler) RunNow() {
	s.render()
}

// Refresh invalidates the cache and re-renders, the manual refresh trigger.
func (s *Scheduler) Refresh() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running scheduled refresh")
	s.Market.Refresh()
	s.render()
}

func (s *Scheduler) render() {
	snap := s.Dashboard.Snapshot(s.Ctx)
	if !snap.Available {
		log.Println("[WARN] render cycle produced no data")
	}
	if _, err := fmt.Fprint(s.Out, dashboard.FormatSnapshot(snap)); err != nil {
		log.Printf("[ERROR] write report: %v", err)
	}
}
