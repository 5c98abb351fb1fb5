package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/peermint/peermint/pkg/logger"
)

// Manager handles graceful shutdown. Its context is cancelled on SIGINT or
// SIGTERM, which is how an in-flight proof-of-work search gets abandoned:
// the search is side-effect free, so cancelling it needs no cleanup beyond
// the registered callbacks.
type Manager struct {
	ctx       context.Context
	cancel    context.CancelFunc
	logger    logger.Logger
	wg        sync.WaitGroup
	signals   []os.Signal
	once      sync.Once
	callbacks []func()
	mu        sync.Mutex
}

// NewManager creates a Manager. It accepts a parent context, a logger, and
// optional OS signals to listen for; SIGINT and SIGTERM are the default.
func NewManager(ctx context.Context, logger logger.Logger, signals ...os.Signal) *Manager {
	ctx, cancel := context.WithCancel(ctx)
	if len(signals) == 0 {
		signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}
	return &Manager{
		ctx:     ctx,
		cancel:  cancel,
		logger:  logger,
		signals: signals,
	}
}

// Context returns the context cancelled when shutdown begins.
func (sm *Manager) Context() context.Context {
	return sm.ctx
}

// AddCallback registers a callback function to be called during shutdown.
func (sm *Manager) AddCallback(callback func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.callbacks = append(sm.callbacks, callback)
}

// Start begins listening for OS signals to initiate shutdown.
func (sm *Manager) Start() {
	sm.wg.Add(1)
	go sm.handleSignals()
}

// handleSignals listens for OS signals and initiates shutdown when received.
func (sm *Manager) handleSignals() {
	defer sm.wg.Done()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, sm.signals...)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		sm.logger.Info("Received shutdown signal", "signal", sig.String())
		sm.shutdown()
	case <-sm.ctx.Done():
		sm.shutdown()
	}
}

// Shutdown triggers the shutdown sequence without an OS signal.
func (sm *Manager) Shutdown() {
	sm.shutdown()
}

// shutdown runs the callbacks and cancels the context, exactly once.
func (sm *Manager) shutdown() {
	sm.once.Do(func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		for _, callback := range sm.callbacks {
			callback()
		}
		sm.cancel()
	})
}

// Wait blocks until the signal handler has finished.
func (sm *Manager) Wait() {
	sm.wg.Wait()
}
