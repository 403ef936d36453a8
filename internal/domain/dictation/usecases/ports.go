package usecases

import (
	"context"

	"dictate/internal/notify"
	"dictate/internal/session"
)

// MarkerStore is the session marker persistence used by all coordinators.
// Backed by session.FileStore in production; faked in tests.
type MarkerStore interface {
	Read() *session.Marker
	Write(*session.Marker) error
	Clear()
	Path() string
}

// Notifier sends fire-and-forget desktop notifications.
type Notifier interface {
	Notify(title, body string, urgency notify.Urgency)
}

// CaptureBackend is the audio capture collaborator. Probe performs the
// device preflight; Start begins asynchronous chunk delivery.
type CaptureBackend interface {
	Probe() (device string, err error)
	Start(onChunk func([]int16)) (CaptureStream, error)
}

// CaptureStream is a running capture. Stop must guarantee that no
// further chunks are delivered once it returns.
type CaptureStream interface {
	Stop() error
}

// Transcriber converts a sound file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
