package shutdown

import "fmt"

// AlreadyTriggeredError is returned by Trigger when a shutdown was already
// triggered. Reason is the reason that actually won, not the caller's.
type AlreadyTriggeredError[T any] struct {
	Reason T
}

func (e *AlreadyTriggeredError[T]) Error() string {
	return fmt.Sprintf("shutdown already triggered: %v", e.Reason)
}

// AlreadyCompletedError is returned by DelayToken and WrapDelay when the
// shutdown has already completed and can no longer be delayed.
type AlreadyCompletedError[T any] struct {
	Reason T
}

func (e *AlreadyCompletedError[T]) Error() string {
	return fmt.Sprintf("shutdown already completed: %v", e.Reason)
}

// CanceledError is returned by WrapCancel when a shutdown preempts the
// wrapped operation before it produced a result.
type CanceledError[T any] struct {
	Reason T
}

func (e *CanceledError[T]) Error() string {
	return fmt.Sprintf("operation canceled by shutdown: %v", e.Reason)
}
