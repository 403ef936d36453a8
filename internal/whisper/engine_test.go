package whisper

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeTempWAV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audio.wav")
	if err := os.WriteFile(path, []byte("RIFF"), 0o644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestTranscribeMissingInput(t *testing.T) {
	eng := New("true", t.TempDir(), Params{Model: "base.en", Language: "en", BeamSize: 5})

	_, err := eng.Transcribe(context.Background(), filepath.Join(t.TempDir(), "nope.wav"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestTranscribeEngineUnavailable(t *testing.T) {
	eng := New("definitely-not-a-real-binary-xyz", t.TempDir(), Params{Model: "base.en", Language: "en", BeamSize: 5})

	_, err := eng.Transcribe(context.Background(), writeTempWAV(t))
	if !errors.Is(err, ErrEngineUnavailable) {
		t.Fatalf("expected ErrEngineUnavailable, got %v", err)
	}
}

func TestTranscribeRuntimeFailure(t *testing.T) {
	// "false" exists on any POSIX system and always exits non-zero.
	eng := New("false", t.TempDir(), Params{Model: "base.en", Language: "en", BeamSize: 5})

	_, err := eng.Transcribe(context.Background(), writeTempWAV(t))
	var runErr *RunError
	if !errors.As(err, &runErr) {
		t.Fatalf("expected RunError, got %T: %v", err, err)
	}
}

func TestTranscribeReturnsStdout(t *testing.T) {
	eng := New("echo", t.TempDir(), Params{Model: "base.en", Language: "en", BeamSize: 5})

	out, err := eng.Transcribe(context.Background(), writeTempWAV(t))
	if err != nil {
		t.Fatalf("transcribe failed: %v", err)
	}
	if out == "" {
		t.Fatal("expected engine stdout to be returned")
	}
}

func TestModelPath(t *testing.T) {
	if got := ModelPath("/models", "base.en"); got != filepath.Join("/models", "ggml-base.en.bin") {
		t.Fatalf("name resolution: got %q", got)
	}
	if got := ModelPath("/models", "/opt/ggml-custom.bin"); got != "/opt/ggml-custom.bin" {
		t.Fatalf("absolute path should pass through, got %q", got)
	}
	if got := ModelPath("/models", "custom.bin"); got != "custom.bin" {
		t.Fatalf(".bin name should pass through, got %q", got)
	}
}
