package shutdown

import (
	"context"
	"sync"
)

type Option func(*Options)

type Options struct {
	Observer Observer
}

func defaultOptions() Options { return Options{} }

func WithObserver(obs Observer) Option { return func(o *Options) { o.Observer = obs } }

// Manager coordinates graceful shutdown across goroutines.
//
// T is the shutdown-reason type. It is handed out by value to every waiter,
// so it should be cheap to copy (a string, an error, a small struct).
//
// A Manager is safe for concurrent use. Share the same *Manager with every
// goroutine that needs shutdown awareness; there is no per-goroutine handle
// to create.
type Manager[T any] struct {
	mu         sync.Mutex
	triggered  bool
	completed  bool
	reason     T
	delayCount int

	// Closed when the corresponding condition becomes true. Closing a
	// channel wakes every waiter, so no waiter registry is needed and a
	// late waiter observes the condition immediately.
	triggeredCh chan struct{}
	completedCh chan struct{}

	obs Observer
}

// New creates a Manager with no shutdown triggered and no delay tokens held.
func New[T any](optFns ...Option) *Manager[T] {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Manager[T]{
		triggeredCh: make(chan struct{}),
		completedCh: make(chan struct{}),
		obs:         opts.Observer,
	}
}

// Trigger starts the shutdown with the given reason and wakes everything
// blocked in WaitTriggered. If no delay tokens are held the shutdown also
// completes immediately.
//
// Only the first call succeeds. Later calls return an *AlreadyTriggeredError
// carrying the reason that actually won.
func (m *Manager[T]) Trigger(reason T) error {
	m.mu.Lock()
	if m.triggered {
		existing := m.reason
		m.mu.Unlock()
		return &AlreadyTriggeredError[T]{Reason: existing}
	}
	m.triggered = true
	m.reason = reason
	close(m.triggeredCh)
	completedNow := false
	if m.delayCount == 0 {
		m.completed = true
		close(m.completedCh)
		completedNow = true
	}
	obs := m.obs
	m.mu.Unlock()

	if obs != nil {
		obs.ShutdownTriggered()
		if completedNow {
			obs.ShutdownCompleted()
		}
	}
	return nil
}

// IsTriggered reports whether a shutdown has been triggered.
func (m *Manager[T]) IsTriggered() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.triggered
}

// IsCompleted reports whether the shutdown has completed, i.e. it was
// triggered and every delay token has been released.
func (m *Manager[T]) IsCompleted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.completed
}

// Reason returns the shutdown reason and whether one has been recorded yet.
func (m *Manager[T]) Reason() (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reason, m.triggered
}

// Triggered returns a channel that is closed when a shutdown is triggered.
// Use it in select statements, like a context's Done channel.
func (m *Manager[T]) Triggered() <-chan struct{} { return m.triggeredCh }

// Completed returns a channel that is closed when the shutdown completes.
func (m *Manager[T]) Completed() <-chan struct{} { return m.completedCh }

// WaitTriggered blocks until a shutdown is triggered and returns its reason.
// It returns immediately if one was already triggered, and ctx.Err() if ctx
// is done first.
func (m *Manager[T]) WaitTriggered(ctx context.Context) (T, error) {
	return m.waitReason(ctx, m.triggeredCh)
}

// WaitCompleted blocks until the shutdown completes and returns its reason.
// Absent a trigger this blocks until ctx is done, even with zero delay
// tokens held: completion is only ever declared after a trigger.
func (m *Manager[T]) WaitCompleted(ctx context.Context) (T, error) {
	return m.waitReason(ctx, m.completedCh)
}

func (m *Manager[T]) waitReason(ctx context.Context, ch <-chan struct{}) (T, error) {
	// Prefer an already-satisfied condition over a done context.
	select {
	case <-ch:
		reason, _ := m.Reason()
		return reason, nil
	default:
	}
	select {
	case <-ch:
		reason, _ := m.Reason()
		return reason, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// DelayToken registers one unit of cleanup work that must finish before the
// shutdown may complete. It fails with an *AlreadyCompletedError once the
// shutdown has completed; a merely triggered shutdown can still be delayed.
func (m *Manager[T]) DelayToken() (*DelayToken[T], error) {
	m.mu.Lock()
	if m.completed {
		reason := m.reason
		m.mu.Unlock()
		return nil, &AlreadyCompletedError[T]{Reason: reason}
	}
	m.delayCount++
	obs := m.obs
	m.mu.Unlock()

	if obs != nil {
		obs.DelayAcquired()
	}
	return &DelayToken[T]{m: m}, nil
}

// TriggerToken returns a token that triggers a shutdown with the given
// reason when released. It never fails.
func (m *Manager[T]) TriggerToken(reason T) *TriggerToken[T] {
	return &TriggerToken[T]{m: m, reason: reason}
}

func (m *Manager[T]) releaseDelay() {
	m.mu.Lock()
	m.delayCount--
	completedNow := false
	if m.delayCount == 0 && m.triggered && !m.completed {
		m.completed = true
		close(m.completedCh)
		completedNow = true
	}
	obs := m.obs
	m.mu.Unlock()

	if obs != nil {
		obs.DelayReleased()
		if completedNow {
			obs.ShutdownCompleted()
		}
	}
}
