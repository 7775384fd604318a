package usecase

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inboxdomain "rfphub-backend/internal/inbox/domain"
)

// countingSyncer counts cycles and signals each one on a channel.
type countingSyncer struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{} // when non-nil, cycles block until it is closed
}

func newCountingSyncer() *countingSyncer {
	return &countingSyncer{started: make(chan struct{}, 16)}
}

func (s *countingSyncer) ReconcileOnce(ctx context.Context) (*inboxdomain.PollResult, error) {
	s.calls.Add(1)
	select {
	case s.started <- struct{}{}:
	default:
	}
	if s.release != nil {
		<-s.release
	}
	return &inboxdomain.PollResult{Errors: []string{}}, nil
}

func waitForCycle(t *testing.T, s *countingSyncer) {
	t.Helper()
	select {
	case <-s.started:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a poll cycle")
	}
}

func TestPoller_StartTriggersImmediateCycle(t *testing.T) {
	syncer := newCountingSyncer()
	poller := NewPoller(syncer, time.Hour)
	defer poller.Stop()

	assert.False(t, poller.IsRunning())
	poller.Start()
	assert.True(t, poller.IsRunning())

	// The first cycle fires right away, not after the first interval.
	waitForCycle(t, syncer)
	assert.Equal(t, int32(1), syncer.calls.Load())
}

func TestPoller_StopIsIdempotent(t *testing.T) {
	syncer := newCountingSyncer()
	poller := NewPoller(syncer, time.Hour)

	poller.Start()
	waitForCycle(t, syncer)

	poller.Stop()
	assert.False(t, poller.IsRunning())
	poller.Stop() // logged no-op, must not panic
	assert.False(t, poller.IsRunning())
}

func TestPoller_DoubleStartKeepsOneTimer(t *testing.T) {
	syncer := newCountingSyncer()
	poller := NewPoller(syncer, time.Hour)
	defer poller.Stop()

	poller.Start()
	waitForCycle(t, syncer)
	poller.Start() // no-op: no second immediate cycle, no second timer

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), syncer.calls.Load())
	assert.True(t, poller.IsRunning())
}

func TestPoller_RestartAfterStop(t *testing.T) {
	syncer := newCountingSyncer()
	poller := NewPoller(syncer, time.Hour)
	defer poller.Stop()

	poller.Start()
	waitForCycle(t, syncer)
	poller.Stop()

	poller.Start()
	assert.True(t, poller.IsRunning())
	waitForCycle(t, syncer)
	assert.Equal(t, int32(2), syncer.calls.Load())
}

func TestPoller_TicksRecur(t *testing.T) {
	syncer := newCountingSyncer()
	poller := NewPoller(syncer, 20*time.Millisecond)
	defer poller.Stop()

	poller.Start()
	waitForCycle(t, syncer) // immediate
	waitForCycle(t, syncer) // first tick
	waitForCycle(t, syncer) // second tick
	assert.GreaterOrEqual(t, syncer.calls.Load(), int32(3))
}

func TestPoller_DefaultInterval(t *testing.T) {
	poller := NewPoller(newCountingSyncer(), 0)
	assert.Equal(t, 2*time.Minute, poller.interval)
}

func TestPoller_OverlappingTriggerSkipped(t *testing.T) {
	syncer := newCountingSyncer()
	syncer.release = make(chan struct{})
	poller := NewPoller(syncer, time.Hour)

	poller.Start()
	waitForCycle(t, syncer) // first cycle is now blocked inside ReconcileOnce

	// A trigger landing while a cycle is in flight must be dropped, not queued.
	poller.poll()
	assert.Equal(t, int32(1), syncer.calls.Load())

	close(syncer.release)
	poller.Stop()

	// With the first cycle finished the guard is clear again.
	poller.poll()
	require.Equal(t, int32(2), syncer.calls.Load())
}
