package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"dictate/internal/output"
)

func NewToggleCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Start recording if idle; stop, transcribe and deliver if active",
		Long: "The one-key dictation mode, intended to be bound to a hotkey: starts a\n" +
			"recording when no session is active, and on the next invocation stops it,\n" +
			"transcribes the audio and types the text into the focused window.",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, os.Interrupt)
			defer cancel()

			deps.App.Start.OnStarted = f.RecordingStarted
			deps.App.Stop.OnSignal = f.Stopping

			return deps.App.Toggle.Execute(ctx)
		},
	}
}
