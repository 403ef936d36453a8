package app

import (
	"fmt"

	"dictate/config"
	"dictate/internal/audio"
	"dictate/internal/domain/dictation/usecases"
	"dictate/internal/input"
	"dictate/internal/notify"
	"dictate/internal/session"
	"dictate/internal/textproc"
	"dictate/internal/whisper"
)

type App struct {
	Start      *usecases.StartSession
	Stop       *usecases.StopSession
	Toggle     *usecases.ToggleSession
	Transcribe *usecases.Transcribe
	Notifier   *notify.Notifier
}

func New(cfg *config.Config) (*App, error) {
	store := session.NewFileStore(cfg.Files.LockFile)
	notifier := notify.New(cfg.Notifications.Enable)

	typer, err := input.NewTyper(input.Options{
		TypingDelay:    cfg.Text.TypingDelay,
		ClearModifiers: true,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing text injection: %w", err)
	}

	engine := whisper.New(cfg.Whisper.Binary, cfg.Whisper.ModelDir, whisper.Params{
		Model:         cfg.Whisper.Model,
		Language:      cfg.Whisper.Language,
		BeamSize:      cfg.Whisper.BeamSize,
		Temperature:   cfg.Whisper.Temperature,
		VADFilter:     cfg.Whisper.VADFilter,
		InitialPrompt: cfg.Whisper.InitialPrompt,
	})

	transcribe := &usecases.Transcribe{
		Engine:   engine,
		Notifier: notifier,
		Post: textproc.Options{
			StripSpaces:    cfg.Text.StripSpaces,
			AutoCapitalize: cfg.Text.AutoCapitalize,
			Replacements:   cfg.Text.Replacements,
		},
	}

	start := &usecases.StartSession{
		Store:    store,
		Backend:  backendAdapter{audio.NewBackend(cfg.Audio.Device)},
		Notifier: notifier,
		TempDir:  cfg.Files.TempDir,
		Alive:    session.Alive,
		WriteWAV: audio.WriteWAV,
	}

	stop := &usecases.StopSession{
		Store:     store,
		Notifier:  notifier,
		Alive:     session.Alive,
		Terminate: session.Terminate,
		ForceKill: session.ForceKill,
	}

	toggle := &usecases.ToggleSession{
		Store:       store,
		Start:       start,
		Stop:        stop,
		Transcribe:  transcribe,
		Typer:       typer,
		Clipboard:   input.SystemClipboard{},
		Notifier:    notifier,
		Alive:       session.Alive,
		PasteMethod: cfg.Text.PasteMethod,
		KeepAudio:   cfg.Files.KeepTempFiles,
	}

	return &App{
		Start:      start,
		Stop:       stop,
		Toggle:     toggle,
		Transcribe: transcribe,
		Notifier:   notifier,
	}, nil
}

// backendAdapter narrows *audio.Stream to the usecases.CaptureStream port.
type backendAdapter struct {
	backend *audio.Backend
}

func (a backendAdapter) Probe() (string, error) {
	return a.backend.Probe()
}

func (a backendAdapter) Start(onChunk func([]int16)) (usecases.CaptureStream, error) {
	return a.backend.Start(onChunk)
}
