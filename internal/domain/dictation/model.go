// Package dictation holds the domain types shared by the session coordinators.
package dictation

import (
	"time"

	"dictate/internal/session"
)

// RecordResult describes a completed recording session.
type RecordResult struct {
	AudioPath string
	Device    string
	StartedAt time.Time
	Duration  time.Duration
	Samples   int
}

// StopResult describes the outcome of stopping a session.
type StopResult struct {
	// Marker is the session that was (or had already been) stopped.
	Marker *session.Marker
	// AlreadyStopped means the owner was already dead and only the stale
	// marker needed cleanup.
	AlreadyStopped bool
	// Forced means the recorder ignored the graceful request and had to be
	// killed; its audio file is most likely unflushed.
	Forced bool
}
