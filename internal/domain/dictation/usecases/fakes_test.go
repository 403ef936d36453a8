package usecases

import (
	"context"
	"sync"

	"dictate/internal/notify"
	"dictate/internal/session"
)

type fakeStore struct {
	mu     sync.Mutex
	m      *session.Marker
	writes int
	clears int

	failWrite error
}

func (s *fakeStore) Read() *session.Marker {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m
}

func (s *fakeStore) Write(m *session.Marker) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrite != nil {
		return s.failWrite
	}
	s.m = m
	s.writes++
	return nil
}

func (s *fakeStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = nil
	s.clears++
}

func (s *fakeStore) Path() string { return "/tmp/test-dictation.lock" }

type notification struct {
	title   string
	body    string
	urgency notify.Urgency
}

type fakeNotifier struct {
	mu    sync.Mutex
	notes []notification
}

func (n *fakeNotifier) Notify(title, body string, urgency notify.Urgency) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notes = append(n.notes, notification{title: title, body: body, urgency: urgency})
}

func (n *fakeNotifier) bodies() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.notes))
	for i, note := range n.notes {
		out[i] = note.body
	}
	return out
}

func (n *fakeNotifier) hasCritical() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, note := range n.notes {
		if note.urgency == notify.UrgencyCritical {
			return true
		}
	}
	return false
}

type fakeStream struct {
	stopped bool
	onStop  func()
}

func (s *fakeStream) Stop() error {
	s.stopped = true
	if s.onStop != nil {
		s.onStop()
	}
	return nil
}

// fakeBackend delivers its chunks synchronously from Start, standing in
// for the asynchronous capture callback.
type fakeBackend struct {
	device   string
	chunks   [][]int16
	probeErr error
	startErr error

	probed bool
	stream *fakeStream
}

func (b *fakeBackend) Probe() (string, error) {
	b.probed = true
	if b.probeErr != nil {
		return "", b.probeErr
	}
	if b.device == "" {
		return "fake mic", nil
	}
	return b.device, nil
}

func (b *fakeBackend) Start(onChunk func([]int16)) (CaptureStream, error) {
	if b.startErr != nil {
		return nil, b.startErr
	}
	for _, c := range b.chunks {
		onChunk(c)
	}
	b.stream = &fakeStream{}
	return b.stream, nil
}

type fakeTranscriber struct {
	text     string
	err      error
	calls    int
	lastPath string
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	f.calls++
	f.lastPath = audioPath
	return f.text, f.err
}

type fakeTyper struct {
	err   error
	calls int
	last  string
}

func (f *fakeTyper) Type(text string) error {
	f.calls++
	f.last = text
	return f.err
}

type fakeClipboard struct {
	err   error
	calls int
	last  string
}

func (f *fakeClipboard) Copy(text string) error {
	f.calls++
	f.last = text
	return f.err
}

// procState models the recorder process as seen through the liveness and
// signal ports.
type procState struct {
	mu    sync.Mutex
	alive bool
}

func (p *procState) isAlive(pid int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.alive
}

func (p *procState) die() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alive = false
}

func cancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}
