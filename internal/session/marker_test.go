package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "dictation.lock"))

	if m := store.Read(); m != nil {
		t.Fatalf("expected no marker, got %+v", m)
	}

	want := &Marker{
		OwnerPID:   1234,
		StartedAt:  1700000000,
		AudioPath:  "/tmp/dictation/recording-1234-1700000000.wav",
		Device:     "USB Microphone",
		SampleRate: 16000,
		Channels:   1,
	}
	if err := store.Write(want); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got := store.Read()
	if got == nil {
		t.Fatal("expected marker after write")
	}
	if *got != *want {
		t.Fatalf("marker mismatch: got %+v want %+v", got, want)
	}
}

func TestFileStoreReadIgnoresUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictation.lock")
	data := `{"pid": 42, "started_at": 100, "audio_file": "/tmp/a.wav", "device": "mic", "sample_rate": 16000, "channels": 1, "future_field": "ignored"}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing marker: %v", err)
	}

	m := NewFileStore(path).Read()
	if m == nil {
		t.Fatal("expected marker despite unknown fields")
	}
	if m.OwnerPID != 42 || m.AudioPath != "/tmp/a.wav" {
		t.Fatalf("unexpected marker: %+v", m)
	}
}

func TestFileStoreReadCorruptMarkerSelfHeals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictation.lock")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("writing marker: %v", err)
	}

	store := NewFileStore(path)
	if m := store.Read(); m != nil {
		t.Fatalf("corrupt marker should read as absent, got %+v", m)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("corrupt marker file should have been deleted")
	}
}

func TestFileStoreReadRejectsMissingPID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictation.lock")
	if err := os.WriteFile(path, []byte(`{"audio_file": "/tmp/a.wav"}`), 0o644); err != nil {
		t.Fatalf("writing marker: %v", err)
	}

	if m := NewFileStore(path).Read(); m != nil {
		t.Fatalf("marker without pid should read as absent, got %+v", m)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("invalid marker file should have been deleted")
	}
}

func TestFileStoreClearIdempotent(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "dictation.lock"))

	store.Clear()
	store.Clear()

	if err := store.Write(&Marker{OwnerPID: 1}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	store.Clear()
	if m := store.Read(); m != nil {
		t.Fatalf("expected no marker after clear, got %+v", m)
	}
	store.Clear()
}

func TestFileStoreWriteUnwritableDirFails(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing", "sub", "dictation.lock"))
	if err := store.Write(&Marker{OwnerPID: 1}); err == nil {
		t.Fatal("expected error writing marker into missing directory")
	}
}

func TestAlive(t *testing.T) {
	if !Alive(os.Getpid()) {
		t.Fatal("own process should be alive")
	}
	if Alive(0) {
		t.Fatal("pid 0 should not count as alive")
	}
	if Alive(-1) {
		t.Fatal("negative pid should not count as alive")
	}
	// Max pid on Linux is bounded well below this.
	if Alive(1 << 30) {
		t.Fatal("implausible pid should not be alive")
	}
}
