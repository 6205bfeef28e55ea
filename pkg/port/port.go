// Package port holds the definition of a physical input line event.
package port

import "time"

// EventType indicates the type of change to the line active state.
//
// Note that for active low lines a low line level results in a high active
// state.
type EventType int

const (
	_ EventType = iota
	// RisingEdge indicates an inactive to active event (low to high).
	RisingEdge
	// FallingEdge indicates an active to inactive event (high to low).
	FallingEdge
)

// String returns the edge name used in logs and in the configuration file.
func (e EventType) String() string {
	switch e {
	case RisingEdge:
		return "rising"
	case FallingEdge:
		return "falling"
	default:
		return "unknown"
	}
}

// Event is an edge detected on a line.
type Event struct {
	// Timestamp indicates the time the event was detected.
	// It is read from the monotonic clock, see raspberry.Now.
	Timestamp time.Duration
	// The type of state change event this structure represents.
	Type EventType
}
