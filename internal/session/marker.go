// Package session implements the on-disk marker protocol that coordinates
// the recorder process with the stop and toggle invocations. The marker
// file is the only shared state between them: the owning recorder is the
// single writer, any process may delete it once the owner is dead.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// Marker identifies the currently active recording session.
// Readers ignore unknown fields so older binaries keep working
// against markers written by newer ones.
type Marker struct {
	OwnerPID   int    `json:"pid"`
	StartedAt  int64  `json:"started_at"`
	AudioPath  string `json:"audio_file"`
	Device     string `json:"device"`
	SampleRate int    `json:"sample_rate"`
	Channels   int    `json:"channels"`
}

// FileStore persists the marker at a fixed well-known path.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Read returns the current marker, or nil when no session is active.
// An unparseable marker must never block future sessions, so corrupt
// files are deleted best-effort and reported as absent.
func (s *FileStore) Read() *Marker {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var m Marker
	if err := json.Unmarshal(data, &m); err != nil || m.OwnerPID <= 0 {
		fmt.Fprintf(os.Stderr, "warning: removing invalid session marker %s\n", s.path)
		_ = os.Remove(s.path)
		return nil
	}
	return &m
}

// Write atomically creates the marker file. A write failure is fatal to
// the caller: a recorder that cannot publish its session must not record.
func (s *FileStore) Write(m *Marker) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session marker: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".marker-*")
	if err != nil {
		return fmt.Errorf("creating session marker: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing session marker: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing session marker: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("creating session marker: %w", err)
	}
	return nil
}

// Clear deletes the marker if present. Idempotent.
func (s *FileStore) Clear() {
	_ = os.Remove(s.path)
}

// Alive reports whether pid denotes a live process, using signal-0
// semantics. Inaccessible pids count as dead: a session we cannot
// signal is a session we cannot stop, so it must not block new ones.
func Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return proc.Signal(syscall.Signal(0)) == nil
}

// Terminate requests graceful shutdown of the recorder process.
func Terminate(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return proc.Signal(syscall.SIGTERM)
}

// ForceKill forcibly terminates the recorder process.
func ForceKill(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return proc.Kill()
}
