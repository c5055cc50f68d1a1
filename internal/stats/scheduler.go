package stats

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/atelier-works/portfolio-backend/internal/store"
)

// Scheduler periodically logs per-collection document counts so
// operators can watch the store fill up without querying it by hand.
type Scheduler struct {
	gw   store.Gateway
	cron *cron.Cron
}

func NewScheduler(gw store.Gateway) *Scheduler {
	return &Scheduler{gw: gw, cron: cron.New()}
}

// Start registers the reporting job. Without a configured store there is
// nothing to report and the scheduler stays idle.
func (s *Scheduler) Start() {
	if s.gw == nil {
		return
	}

	_, err := s.cron.AddFunc("@every 15m", s.report)
	if err != nil {
		log.Printf("[warn] operation=stats message=failed to schedule report: %v", err)
		return
	}

	log.Println("[info] operation=stats message=collection stats reporter started (every 15m)")
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) report() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	names, err := s.gw.Collections(ctx)
	if err != nil {
		log.Printf("[warn] operation=stats message=list collections failed: %v", err)
		return
	}

	for _, name := range names {
		n, err := s.gw.Count(ctx, name)
		if err != nil {
			log.Printf("[warn] operation=stats collection=%s message=count failed: %v", name, err)
			continue
		}
		log.Printf("[info] operation=stats collection=%s documents=%d", name, n)
	}
}
