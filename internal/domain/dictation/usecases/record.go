package usecases

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dictate/internal/audio"
	"dictate/internal/domain/dictation"
	"dictate/internal/notify"
	"dictate/internal/session"
)

// ErrAlreadyRecording is returned when a live session already exists.
var ErrAlreadyRecording = errors.New("a recording is already in progress")

// ErrNoAudio is returned when a session terminates without having
// captured any audio. Recoverable: the marker is still cleaned up.
var ErrNoAudio = errors.New("no audio captured")

// StartSession runs the recorder process: preflight, marker creation,
// capture, and the flush-on-signal shutdown path. Execute blocks until
// the context is cancelled by a termination signal.
type StartSession struct {
	Store    MarkerStore
	Backend  CaptureBackend
	Notifier Notifier
	TempDir  string

	Alive    func(pid int) bool
	WriteWAV func(path string, chunks [][]int16, sampleRate, channels int) error

	// OnStarted is called once capture is running, for terminal feedback.
	OnStarted func(pid int, device, audioPath string)
}

func (s *StartSession) Execute(ctx context.Context) (*dictation.RecordResult, error) {
	// An existing marker either belongs to a live recorder (mutual
	// exclusion: abort, leave it untouched) or is stale and must be
	// cleaned up before a new session may begin.
	if m := s.Store.Read(); m != nil {
		if s.Alive(m.OwnerPID) {
			s.Notifier.Notify("Error", "Recording already in progress", notify.UrgencyCritical)
			return nil, fmt.Errorf("%w (PID: %d); run 'dictate stop' first", ErrAlreadyRecording, m.OwnerPID)
		}
		fmt.Fprintln(os.Stderr, "removing stale session marker")
		s.Store.Clear()
	}

	device, err := s.Backend.Probe()
	if err != nil {
		s.Notifier.Notify("Error", "Audio device error: "+err.Error(), notify.UrgencyCritical)
		return nil, err
	}

	if err := os.MkdirAll(s.TempDir, 0o755); err != nil {
		s.Notifier.Notify("Error", "Cannot create recording directory: "+err.Error(), notify.UrgencyCritical)
		return nil, fmt.Errorf("creating recording directory: %w", err)
	}

	pid := os.Getpid()
	startedAt := time.Now()
	audioPath := filepath.Join(s.TempDir, fmt.Sprintf("recording-%d-%d.wav", pid, startedAt.Unix()))

	marker := &session.Marker{
		OwnerPID:   pid,
		StartedAt:  startedAt.Unix(),
		AudioPath:  audioPath,
		Device:     device,
		SampleRate: audio.SampleRate,
		Channels:   audio.Channels,
	}
	if err := s.Store.Write(marker); err != nil {
		s.Notifier.Notify("Error", "Cannot create session marker: "+err.Error(), notify.UrgencyCritical)
		return nil, err
	}
	// Every path past this point clears the marker, including a failed
	// flush: a dangling marker must never block future sessions.
	defer s.Store.Clear()

	var buf audio.Buffer
	stream, err := s.Backend.Start(buf.Append)
	if err != nil {
		s.Notifier.Notify("Error", "Recording error: "+err.Error(), notify.UrgencyCritical)
		return nil, err
	}

	s.Notifier.Notify("Dictation", "Recording started...", notify.UrgencyNormal)
	if s.OnStarted != nil {
		s.OnStarted(pid, device, audioPath)
	}

	// Recording: capture happens in the backend callback; the main
	// goroutine just waits for the termination request.
	<-ctx.Done()

	// Stop the stream before draining so no callback races the flush.
	if err := stream.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: stopping audio stream: %v\n", err)
	}

	chunks := buf.Drain()
	if len(chunks) == 0 {
		s.Notifier.Notify("Dictation", "No audio captured", notify.UrgencyNormal)
		return nil, ErrNoAudio
	}

	samples := 0
	for _, c := range chunks {
		samples += len(c)
	}

	if err := s.WriteWAV(audioPath, chunks, audio.SampleRate, audio.Channels); err != nil {
		s.Notifier.Notify("Error", "Failed to save audio: "+err.Error(), notify.UrgencyCritical)
		return nil, err
	}

	duration := time.Since(startedAt)
	s.Notifier.Notify("Dictation",
		fmt.Sprintf("Recording stopped (%ds)", int(duration.Seconds())),
		notify.UrgencyNormal)

	return &dictation.RecordResult{
		AudioPath: audioPath,
		Device:    device,
		StartedAt: startedAt,
		Duration:  duration,
		Samples:   samples,
	}, nil
}
