package workers

import (
	"context"
	"fmt"
	"log"
	"time"

	"pugorugh/services"

	"github.com/go-co-op/gocron/v2"
)

// LedgerPruneWorker periodically deletes decisions that point at dogs no
// longer in the catalog.
type LedgerPruneWorker struct {
	store    services.Store
	interval time.Duration
	sched    gocron.Scheduler
}

func NewLedgerPruneWorker(store services.Store, interval time.Duration) *LedgerPruneWorker {
	return &LedgerPruneWorker{store: store, interval: interval}
}

// RunOnce prunes orphaned rows a single time and returns how many were removed.
func (w *LedgerPruneWorker) RunOnce(ctx context.Context) (int64, error) {
	n, err := w.store.PruneOrphanDecisions(ctx)
	if err != nil {
		return 0, fmt.Errorf("prune orphan decisions: %w", err)
	}
	if n > 0 {
		services.PrunedDecisionsTotal.Add(float64(n))
		log.Printf("🧹 [PRUNE] Removed %d orphaned decision(s)", n)
	}
	return n, nil
}

// Start schedules RunOnce every interval. A zero interval disables the worker.
func (w *LedgerPruneWorker) Start(ctx context.Context) error {
	if w.interval <= 0 {
		log.Println("[PRUNE] Ledger pruning disabled")
		return nil
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}
	_, err = sched.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(func() {
			if _, err := w.RunOnce(ctx); err != nil {
				log.Printf("⚠️ [PRUNE] %v", err)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = sched.Shutdown()
		return fmt.Errorf("schedule prune job: %w", err)
	}

	w.sched = sched
	sched.Start()
	log.Printf("🔁 [PRUNE] Ledger prune worker running every %s", w.interval)
	return nil
}

func (w *LedgerPruneWorker) Stop() error {
	if w.sched == nil {
		return nil
	}
	return w.sched.Shutdown()
}
