package cli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"dictate/internal/domain/dictation/usecases"
	"dictate/internal/output"
)

func NewStartCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start recording (blocks until stopped)",
		Long: "Start recording audio from the default microphone. The process stays in\n" +
			"the foreground and records until it receives SIGTERM or SIGINT, typically\n" +
			"from 'dictate stop' or Ctrl+C.",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, os.Interrupt)
			defer cancel()

			deps.App.Start.OnStarted = f.RecordingStarted

			res, err := deps.App.Start.Execute(ctx)
			if err != nil {
				if errors.Is(err, usecases.ErrNoAudio) {
					f.Warning("Recording stopped with no audio captured")
				}
				return err
			}

			f.RecordingStopped(res.Duration)
			f.RecordingSaved(res.AudioPath, res.Samples)
			return nil
		},
	}
}
