package main

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplecrm/cmd/internal/service/jobs"
)

// slowSweep blocks every sweep until its context is cancelled, then takes a
// little longer to wind down, like a query finishing against the store.
type slowSweep struct {
	started  chan struct{}
	finished atomic.Bool
}

func (s *slowSweep) RefreshAll(ctx context.Context) (int, error) {
	close(s.started)
	<-ctx.Done()
	time.Sleep(20 * time.Millisecond)
	s.finished.Store(true)
	return 0, ctx.Err()
}

func TestStopRefresherWaitsForSweep(t *testing.T) {
	sweep := &slowSweep{started: make(chan struct{})}
	a := &app{refresher: jobs.NewStatusRefresher(sweep, time.Hour)}

	stop := startRefresher(context.Background(), a)

	select {
	case <-sweep.started:
	case <-time.After(5 * time.Second):
		require.FailNow(t, "sweep did not start")
	}

	stop()
	assert.True(t, sweep.finished.Load(), "stop returns only after the sweep is done")
}
