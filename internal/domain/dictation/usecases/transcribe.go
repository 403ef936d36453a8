package usecases

import (
	"context"

	"dictate/internal/notify"
	"dictate/internal/textproc"
)

// Transcribe runs the engine on a sound file and post-processes the output.
type Transcribe struct {
	Engine   Transcriber
	Notifier Notifier
	Post     textproc.Options
}

func (t *Transcribe) Execute(ctx context.Context, audioPath string) (string, error) {
	t.Notifier.Notify("Transcribing...", "Processing your audio", notify.UrgencyNormal)

	raw, err := t.Engine.Transcribe(ctx, audioPath)
	if err != nil {
		t.Notifier.Notify("Transcription Error", err.Error(), notify.UrgencyCritical)
		return "", err
	}

	text := textproc.Process(raw, t.Post)
	if text != "" {
		t.Notifier.Notify("Transcription Complete", notify.Truncate(text), notify.UrgencyNormal)
	}
	return text, nil
}
