package jobs

import (
	"context"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	refreshRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crm_status_refresh_runs_total",
		Help: "Number of attachment status refresh sweeps",
	})

	refreshUpdatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crm_status_refresh_updated_total",
		Help: "Number of attachments whose stored status changed during a sweep",
	})

	refreshFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crm_status_refresh_failures_total",
		Help: "Number of sweeps that ended with an error",
	})
)

type AttachmentRefresher interface {
	RefreshAll(ctx context.Context) (int, error)
}

// StatusRefresher periodically recomputes the signed/active flags of all
// attachments, so that "active" flips once the end date has passed.
type StatusRefresher struct {
	attachments AttachmentRefresher
	interval    time.Duration
}

func NewStatusRefresher(attachments AttachmentRefresher, interval time.Duration) *StatusRefresher {
	return &StatusRefresher{
		attachments: attachments,
		interval:    interval,
	}
}

// Start sweeps once right away, then on every tick until ctx is done.
func (r *StatusRefresher) Start(ctx context.Context) {
	if r.interval <= 0 {
		log.Info("Status refresher disabled")
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	log.Infof("Status refresher cron started (every %s)", r.interval)
	r.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping status refresher...")
			return
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single sweep and returns the number of updated rows.
func (r *StatusRefresher) RunOnce(ctx context.Context) int {
	refreshRunsTotal.Inc()

	updated, err := r.attachments.RefreshAll(ctx)
	refreshUpdatedTotal.Add(float64(updated))
	if err != nil {
		refreshFailuresTotal.Inc()
		log.Errorf("Refresher: sweep finished with errors: %v", err)
	}

	if updated > 0 {
		log.Infof("Refresher: updated status of %d attachments", updated)
	} else {
		log.Debugf("Refresher: all attachment statuses up to date")
	}
	return updated
}
