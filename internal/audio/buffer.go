package audio

import "sync"

const (
	// SampleRate is fixed at 16 kHz for the lifetime of a session (whisper input format).
	SampleRate = 16000
	// Channels is fixed mono.
	Channels = 1
	// FramesPerBuffer is the capture chunk size.
	FramesPerBuffer = 1024
)

// Buffer accumulates PCM chunks delivered by the capture callback.
// Appends are concurrent with the main goroutine; the drain happens
// exactly once, after the stream has been fully stopped, so no
// concurrent read/write window exists.
type Buffer struct {
	mu     sync.Mutex
	chunks [][]int16
}

// Append copies chunk into the buffer. The callback owns the slice it
// passes in only for the duration of the call, so the copy is required.
func (b *Buffer) Append(chunk []int16) {
	if len(chunk) == 0 {
		return
	}
	c := make([]int16, len(chunk))
	copy(c, chunk)

	b.mu.Lock()
	b.chunks = append(b.chunks, c)
	b.mu.Unlock()
}

// Drain returns all accumulated chunks in arrival order and empties the buffer.
func (b *Buffer) Drain() [][]int16 {
	b.mu.Lock()
	defer b.mu.Unlock()
	chunks := b.chunks
	b.chunks = nil
	return chunks
}

// Samples returns the total number of buffered samples.
func (b *Buffer) Samples() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.chunks {
		n += len(c)
	}
	return n
}
