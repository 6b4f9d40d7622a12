package otel

// Nop is a no-op implementation of the shutdown.Observer interface.
// It serves as a placeholder for an OpenTelemetry-backed observer without adding dependencies.
type Nop struct{}

// NewNop returns a no-op observer.
func NewNop() *Nop { return &Nop{} }

func (*Nop) ShutdownTriggered() {}
func (*Nop) ShutdownCompleted() {}
func (*Nop) DelayAcquired()     {}
func (*Nop) DelayReleased()     {}
