package shutdown

import "sync"

// DelayToken delays shutdown completion for as long as it is held.
//
// A token represents exactly one unit of the manager's delay count. It must
// not be copied; hand the pointer over instead. Release it on every exit
// path, typically with defer.
type DelayToken[T any] struct {
	m    *Manager[T]
	once sync.Once
}

// Release gives the token back. If it was the last one held and a shutdown
// has been triggered, the shutdown completes and everything blocked in
// WaitCompleted is woken. Release is idempotent.
func (t *DelayToken[T]) Release() {
	t.once.Do(t.m.releaseDelay)
}

// TriggerToken triggers a shutdown when released.
//
// Use it to tie the shutdown to the lifetime of vital work: give the token
// to the goroutine doing the work and release it (or defer the release) when
// the work ends, however it ends. Must not be copied.
type TriggerToken[T any] struct {
	m      *Manager[T]
	reason T
	once   sync.Once
}

// Release triggers the shutdown with the token's reason. It is a no-op if a
// shutdown was already triggered, and idempotent.
func (t *TriggerToken[T]) Release() {
	t.once.Do(func() {
		// First trigger wins; a loss here is expected and fine.
		_ = t.m.Trigger(t.reason)
	})
}
