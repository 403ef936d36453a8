package usecases

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"dictate/internal/input"
	"dictate/internal/notify"
)

// ToggleSession is the central dispatcher: start a session when idle,
// otherwise stop the live one and run the transcribe-and-deliver pipeline.
type ToggleSession struct {
	Store      MarkerStore
	Start      *StartSession
	Stop       *StopSession
	Transcribe *Transcribe
	Typer      input.Typer
	Clipboard  input.Clipboard
	Notifier   Notifier

	Alive func(pid int) bool

	PasteMethod string // "xdotool", "clipboard" or "both"
	KeepAudio   bool
	SettleDelay time.Duration // filesystem settle wait after stop
}

const defaultSettleDelay = 200 * time.Millisecond

func (t *ToggleSession) Execute(ctx context.Context) error {
	m := t.Store.Read()

	// A stale marker is treated as absent: clean it up, then fall
	// through to starting a fresh session.
	if m != nil && !t.Alive(m.OwnerPID) {
		t.Notifier.Notify("Dictation", "Cleaning up stale recording session...", notify.UrgencyNormal)
		t.Store.Clear()
		m = nil
	}

	if m == nil {
		_, err := t.Start.Execute(ctx)
		return err
	}

	audioPath := m.AudioPath

	if _, err := t.Stop.Execute(); err != nil {
		return fmt.Errorf("stopping session: %w", err)
	}

	// Let the recorder's WAV write settle before looking for the file.
	time.Sleep(t.settleDelay())

	if _, err := os.Stat(audioPath); err != nil {
		t.Notifier.Notify("Error", "Audio file not found after stop", notify.UrgencyCritical)
		t.Store.Clear()
		return fmt.Errorf("audio file missing after stop: %s", audioPath)
	}

	cleanup := func() {
		t.Store.Clear()
		if !t.KeepAudio {
			_ = os.Remove(audioPath)
		}
	}

	text, err := t.Transcribe.Execute(ctx, audioPath)
	if err != nil {
		cleanup()
		return fmt.Errorf("transcribing session audio: %w", err)
	}

	if strings.TrimSpace(text) == "" {
		t.Notifier.Notify("Dictation", "No speech detected", notify.UrgencyNormal)
		cleanup()
		return nil
	}

	t.deliver(text)
	cleanup()
	return nil
}

// deliver hands the text to the user: primary method, clipboard fallback,
// and finally a preview notification. The text is never lost silently.
func (t *ToggleSession) deliver(text string) {
	words := len(strings.Fields(text))

	switch t.PasteMethod {
	case "clipboard":
		if t.Clipboard.Copy(text) == nil {
			t.Notifier.Notify("Dictation",
				fmt.Sprintf("Copied %d words to clipboard", words), notify.UrgencyNormal)
			return
		}
	case "both":
		typed := t.Typer.Type(text) == nil
		copied := t.Clipboard.Copy(text) == nil
		if typed {
			t.Notifier.Notify("Dictation",
				fmt.Sprintf("Done! Pasted %d words", words), notify.UrgencyNormal)
			return
		}
		if copied {
			t.Notifier.Notify("Dictation",
				fmt.Sprintf("Text copied to clipboard (%d words)\nPaste manually with Ctrl+V", words),
				notify.UrgencyNormal)
			return
		}
	default: // xdotool
		if t.Typer.Type(text) == nil {
			t.Notifier.Notify("Dictation",
				fmt.Sprintf("Done! Pasted %d words", words), notify.UrgencyNormal)
			return
		}
		if t.Clipboard.Copy(text) == nil {
			t.Notifier.Notify("Dictation",
				fmt.Sprintf("Text copied to clipboard (%d words)\nPaste manually with Ctrl+V", words),
				notify.UrgencyNormal)
			return
		}
	}

	t.Notifier.Notify("Dictation",
		"Could not paste or copy to clipboard.\nText: "+notify.Truncate(text),
		notify.UrgencyCritical)
}

func (t *ToggleSession) settleDelay() time.Duration {
	if t.SettleDelay > 0 {
		return t.SettleDelay
	}
	return defaultSettleDelay
}
