// Package dispatch delivers a notification to an ordered snapshot of observers.
//
// Delivery is synchronous and fail-fast: observers run in slice order on the
// caller's goroutine, and the first observer that returns an error ends the
// pass. Observers after it in the snapshot are not notified.
//
// # Panics
//
// By default a panicking observer is not recovered; the panic unwinds to
// whoever sent the notification. With WithPanicRecovery the executor recovers
// it and returns a *PanicError instead, which ends the pass the same way an
// error does.
//
// # Usage
//
//	exec := dispatch.NewExecutor("appA", dispatch.WithRecorder(rec))
//	if err := exec.Deliver(n, snapshot); err != nil {
//	    var oe *dispatch.ObserverError
//	    if errors.As(err, &oe) {
//	        log.Printf("observer %d failed: %v", oe.Index, oe.Err)
//	    }
//	}
package dispatch
