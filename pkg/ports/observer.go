package ports

import "time"

// PhaseObserver receives wall-clock timing for the phases of a run
// (decode, process, encode, write). Implementations are diagnostic
// only and must not affect pipeline behavior.
type PhaseObserver interface {
	// PhaseStarted is called when a phase begins.
	PhaseStarted(name string)

	// PhaseCompleted is called when a phase ends, with its duration.
	PhaseCompleted(name string, elapsed time.Duration)
}
