// Package audio provides microphone capture and WAV serialization for
// recording sessions.
package audio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// Backend captures from the system default input device via PortAudio.
type Backend struct {
	// DeviceOverride replaces the probed device descriptor in session
	// metadata. Capture always uses the system default input.
	DeviceOverride string
}

func NewBackend(deviceOverride string) *Backend {
	return &Backend{DeviceOverride: deviceOverride}
}

// Probe verifies an input-capable device exists and returns its
// human-readable descriptor.
func (b *Backend) Probe() (string, error) {
	if err := portaudio.Initialize(); err != nil {
		return "", fmt.Errorf("initializing audio subsystem: %w", err)
	}
	defer portaudio.Terminate()

	dev, err := portaudio.DefaultInputDevice()
	if err != nil {
		return "", fmt.Errorf("no default audio input device: %w", err)
	}
	if dev.MaxInputChannels < 1 {
		return "", fmt.Errorf("device %q has no input channels", dev.Name)
	}

	if b.DeviceOverride != "" {
		return b.DeviceOverride, nil
	}
	return dev.Name, nil
}

// Start opens the default input stream and begins delivering chunks to
// onChunk from the PortAudio callback goroutine. onChunk must not block.
func (b *Backend) Start(onChunk func([]int16)) (*Stream, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initializing audio subsystem: %w", err)
	}
	stream, err := portaudio.OpenDefaultStream(
		Channels, 0, float64(SampleRate), FramesPerBuffer,
		func(in []int16) { onChunk(in) },
	)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("opening audio stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		_ = stream.Close()
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("starting audio stream: %w", err)
	}
	return &Stream{stream: stream}, nil
}

// Stream is a running capture stream.
type Stream struct {
	stream *portaudio.Stream
}

// Stop halts and closes the stream. After Stop returns no further
// callback invocations occur, which is what makes the subsequent
// buffer drain race-free.
func (s *Stream) Stop() error {
	err := s.stream.Stop()
	if cerr := s.stream.Close(); err == nil {
		err = cerr
	}
	_ = portaudio.Terminate()
	return err
}
