package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	inboxdomain "rfphub-backend/internal/inbox/domain"
)

// InboxSyncer is the reconciliation entry point the poller drives.
type InboxSyncer interface {
	ReconcileOnce(ctx context.Context) (*inboxdomain.PollResult, error)
}

// Poller triggers reconciliation cycles on a fixed interval. It is a plain
// object owned by the composition root; tests construct their own instances.
type Poller struct {
	syncer   InboxSyncer
	interval time.Duration

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}

	// inFlight skips a trigger while the previous cycle is still running,
	// so two cycles never hold mailbox connections at the same time.
	inFlight atomic.Bool
}

func NewPoller(syncer InboxSyncer, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 2 * time.Minute
	}
	return &Poller{
		syncer:   syncer,
		interval: interval,
	}
}

// Start transitions to Running and triggers an immediate cycle, then arms the
// recurring timer. Calling Start while running is a logged no-op.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		logrus.Info("[Poller] Email polling service is already running")
		return
	}

	logrus.Infof("[Poller] Starting email polling service (checking every %s)", p.interval)
	p.running = true
	p.stopChan = make(chan struct{})
	go p.run(p.stopChan)
}

// Stop cancels the recurring timer. An in-flight cycle finishes on its own.
// Calling Stop while stopped is a logged no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		logrus.Info("[Poller] Email polling service is not running")
		return
	}

	logrus.Info("[Poller] Stopping email polling service")
	close(p.stopChan)
	p.running = false
}

// IsRunning reports the scheduler state without side effects.
func (p *Poller) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

func (p *Poller) run(stop chan struct{}) {
	// Run immediately on start
	go p.poll()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			go p.poll()
		case <-stop:
			logrus.Info("[Poller] Email polling service stopped")
			return
		}
	}
}

// poll runs one cycle. Errors are logged, never propagated: a failed cycle
// must not stop the timer or crash the process.
func (p *Poller) poll() {
	if !p.inFlight.CompareAndSwap(false, true) {
		logrus.Warn("[Poller] Previous cycle still in flight, skipping this trigger")
		return
	}
	defer p.inFlight.Store(false)

	logrus.Info("[Poller] Polling inbox for RFP replies...")
	result, err := p.syncer.ReconcileOnce(context.Background())
	if err != nil {
		logrus.Errorf("[Poller] Error during email polling: %v", err)
		return
	}
	logrus.Infof("[Poller] Polling complete. Processed %d message(s), %d error(s)", result.Processed, len(result.Errors))
}
