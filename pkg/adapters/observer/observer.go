// Package observer provides PhaseObserver implementations.
package observer

import (
	"sync"
	"time"

	"github.com/user/rastermill/pkg/ports"
)

// LogObserver reports phase durations through a Logger at debug level.
type LogObserver struct {
	logger ports.Logger
}

// NewLog creates an observer that logs phase completions.
func NewLog(logger ports.Logger) *LogObserver {
	return &LogObserver{logger: logger.WithComponent("timing")}
}

// PhaseStarted does nothing; only completions are logged.
func (o *LogObserver) PhaseStarted(name string) {}

// PhaseCompleted logs the phase duration.
func (o *LogObserver) PhaseCompleted(name string, elapsed time.Duration) {
	o.logger.Debug("Phase %s completed in %s", name, elapsed.Round(time.Millisecond))
}

// NoopObserver discards all phase events.
type NoopObserver struct{}

// NewNoop creates a no-op observer.
func NewNoop() *NoopObserver {
	return &NoopObserver{}
}

// PhaseStarted does nothing.
func (o *NoopObserver) PhaseStarted(name string) {}

// PhaseCompleted does nothing.
func (o *NoopObserver) PhaseCompleted(name string, elapsed time.Duration) {}

// Recorder collects phase durations for later reporting, e.g. the run
// summary. Safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	inner    ports.PhaseObserver
	duration map[string]time.Duration
}

// NewRecorder creates a Recorder that also forwards events to inner.
func NewRecorder(inner ports.PhaseObserver) *Recorder {
	return &Recorder{
		inner:    inner,
		duration: make(map[string]time.Duration),
	}
}

// PhaseStarted forwards the event.
func (r *Recorder) PhaseStarted(name string) {
	r.inner.PhaseStarted(name)
}

// PhaseCompleted records the duration and forwards the event.
func (r *Recorder) PhaseCompleted(name string, elapsed time.Duration) {
	r.mu.Lock()
	r.duration[name] = elapsed
	r.mu.Unlock()
	r.inner.PhaseCompleted(name, elapsed)
}

// Duration returns the recorded duration for a phase, or zero.
func (r *Recorder) Duration(name string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.duration[name]
}

var (
	_ ports.PhaseObserver = (*LogObserver)(nil)
	_ ports.PhaseObserver = (*NoopObserver)(nil)
	_ ports.PhaseObserver = (*Recorder)(nil)
)
