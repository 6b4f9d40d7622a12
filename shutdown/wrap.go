package shutdown

import "context"

// These are functions rather than Manager methods because methods cannot
// introduce the result type parameter R.

// WrapCancel runs op until it returns or a shutdown is triggered, whichever
// happens first. The context passed to op is canceled when the shutdown
// triggers (or when ctx is canceled), so a cooperative op can unwind; the
// adapter does not wait for it to do so. If the shutdown wins, WrapCancel
// returns a *CanceledError carrying the reason. If op's result is already
// available when the trigger is observed, the result wins.
func WrapCancel[T, R any](ctx context.Context, m *Manager[T], op func(context.Context) (R, error)) (R, error) {
	opCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		value R
		err   error
	}
	done := make(chan result, 1)
	go func() {
		value, err := op(opCtx)
		done <- result{value, err}
	}()

	select {
	case res := <-done:
		return res.value, res.err
	case <-m.Triggered():
		select {
		case res := <-done:
			return res.value, res.err
		default:
		}
		reason, _ := m.Reason()
		var zero R
		return zero, &CanceledError[T]{Reason: reason}
	}
}

// WrapDelay runs op while holding a delay token, so the shutdown cannot
// complete before op returns. It fails with an *AlreadyCompletedError if
// the shutdown has already completed.
func WrapDelay[T, R any](ctx context.Context, m *Manager[T], op func(context.Context) (R, error)) (R, error) {
	token, err := m.DelayToken()
	if err != nil {
		var zero R
		return zero, err
	}
	return WrapDelayToken(ctx, token, op)
}

// WrapDelayToken is WrapDelay with an already-acquired token. It cannot
// fail to start: holding the token proves the shutdown has not completed.
// The token is released on every exit path, including a panicking op.
func WrapDelayToken[T, R any](ctx context.Context, token *DelayToken[T], op func(context.Context) (R, error)) (R, error) {
	defer token.Release()
	return op(ctx)
}

// WrapTrigger runs op and triggers a shutdown with the given reason when op
// returns, however it returns. The result is passed through unchanged.
func WrapTrigger[T, R any](ctx context.Context, m *Manager[T], reason T, op func(context.Context) (R, error)) (R, error) {
	return WrapTriggerToken(ctx, m.TriggerToken(reason), op)
}

// WrapTriggerToken is WrapTrigger with an already-created token. The token
// is released on every exit path, including a panicking op, so vital work
// that dies still brings the rest of the program down with it.
func WrapTriggerToken[T, R any](ctx context.Context, token *TriggerToken[T], op func(context.Context) (R, error)) (R, error) {
	defer token.Release()
	return op(ctx)
}
