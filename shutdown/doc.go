// Package shutdown coordinates graceful shutdown across goroutines.
// A Manager broadcasts a typed shutdown reason, delay tokens postpone
// shutdown completion until cleanup work has finished, and trigger
// tokens start a shutdown when vital work completes or is abandoned.
package shutdown
