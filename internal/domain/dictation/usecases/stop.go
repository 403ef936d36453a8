package usecases

import (
	"errors"
	"fmt"
	"time"

	"dictate/internal/domain/dictation"
	"dictate/internal/notify"
)

// ErrNotRecording is returned when stop finds no session to stop.
var ErrNotRecording = errors.New("no recording in progress")

// ErrStopTimeout means the recorder survived both the graceful request
// and the forced kill. The marker's disposition is ambiguous; callers
// must re-read it rather than assume it is gone.
var ErrStopTimeout = errors.New("recorder did not terminate")

// StopSession locates the recorder via the marker, requests graceful
// termination and escalates to a forced kill after a bounded wait.
type StopSession struct {
	Store    MarkerStore
	Notifier Notifier

	Alive     func(pid int) bool
	Terminate func(pid int) error
	ForceKill func(pid int) error

	PollInterval time.Duration // liveness poll granularity
	WaitBudget   time.Duration // total graceful wait
	KillGrace    time.Duration // wait after forced kill

	// OnSignal is called just before the graceful request, for terminal feedback.
	OnSignal func(pid int)
}

const (
	defaultPollInterval = 100 * time.Millisecond
	defaultWaitBudget   = 5 * time.Second
	defaultKillGrace    = 500 * time.Millisecond
)

// Execute stops the current session. Stopping an already-stopped session
// is a no-op success, since toggle may race with an external stop.
func (s *StopSession) Execute() (*dictation.StopResult, error) {
	m := s.Store.Read()
	if m == nil {
		s.Notifier.Notify("Dictation", "No recording in progress", notify.UrgencyNormal)
		return nil, ErrNotRecording
	}

	if !s.Alive(m.OwnerPID) {
		s.Store.Clear()
		return &dictation.StopResult{Marker: m, AlreadyStopped: true}, nil
	}

	if s.OnSignal != nil {
		s.OnSignal(m.OwnerPID)
	}

	if err := s.Terminate(m.OwnerPID); err != nil {
		if !s.Alive(m.OwnerPID) {
			// Died between the liveness probe and the signal.
			s.Store.Clear()
			return &dictation.StopResult{Marker: m, AlreadyStopped: true}, nil
		}
		return nil, fmt.Errorf("signaling recorder (PID %d): %w", m.OwnerPID, err)
	}

	deadline := time.Now().Add(s.waitBudget())
	for time.Now().Before(deadline) {
		if !s.Alive(m.OwnerPID) {
			// Graceful exit; the recorder cleared its own marker.
			return &dictation.StopResult{Marker: m}, nil
		}
		time.Sleep(s.pollInterval())
	}

	_ = s.ForceKill(m.OwnerPID)
	time.Sleep(s.killGrace())

	if s.Alive(m.OwnerPID) {
		s.Notifier.Notify("Error", "Failed to stop recording", notify.UrgencyCritical)
		return nil, fmt.Errorf("%w (PID %d)", ErrStopTimeout, m.OwnerPID)
	}

	// The killed owner cannot clean up after itself.
	s.Store.Clear()
	return &dictation.StopResult{Marker: m, Forced: true}, nil
}

func (s *StopSession) pollInterval() time.Duration {
	if s.PollInterval > 0 {
		return s.PollInterval
	}
	return defaultPollInterval
}

func (s *StopSession) waitBudget() time.Duration {
	if s.WaitBudget > 0 {
		return s.WaitBudget
	}
	return defaultWaitBudget
}

func (s *StopSession) killGrace() time.Duration {
	if s.KillGrace > 0 {
		return s.KillGrace
	}
	return defaultKillGrace
}
