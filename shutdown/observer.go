package shutdown

// Observer receives lifecycle notifications from a Manager. Implementations
// must be safe for concurrent use and must not call back into the Manager.
type Observer interface {
	ShutdownTriggered()
	ShutdownCompleted()
	DelayAcquired()
	DelayReleased()
}
