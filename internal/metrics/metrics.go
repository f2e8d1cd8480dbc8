// Package metrics records dispatch statistics for mvcore cores.
//
// Components report through the Recorder interface. Nop discards everything
// and is the default; Prometheus keeps counters and a latency histogram on a
// private prometheus.Registry that callers can gather or dump as text.
package metrics

import "time"

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Recorder receives dispatch events from the core registries.
type Recorder interface {
	// NotificationSent is called once per NotifyObservers call.
	NotificationSent(core, name string)

	// ObserverNotified is called after each observer delivery.
	ObserverNotified(core, name string, d time.Duration, err error)

	// CommandExecuted is called after each command execution.
	CommandExecuted(core, name string, err error)

	// CoreCreated is called when a new core is constructed.
	CoreCreated(core string)

	// CoreRemoved is called when a core is torn down.
	CoreRemoved(core string)
}

// Nop is a Recorder that does nothing.
type Nop struct{}

func (Nop) NotificationSent(string, string)                        {}
func (Nop) ObserverNotified(string, string, time.Duration, error) {}
func (Nop) CommandExecuted(string, string, error)                  {}
func (Nop) CoreCreated(string)                                     {}
func (Nop) CoreRemoved(string)                                     {}

// OutcomeOf maps an error to an outcome label.
func OutcomeOf(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}
