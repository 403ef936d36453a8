package cli

import (
	"github.com/spf13/cobra"

	"dictate/config"
	"dictate/internal/app"
	"dictate/internal/version"
)

type Dependencies struct {
	App    *app.App
	Config *config.Config
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dictate",
		Short: "Voice dictation: record, transcribe, and type the result",
		Long: "A CLI tool for push-to-talk voice dictation. 'start' records from the\n" +
			"microphone until stopped, 'stop' ends the recording, and 'toggle' does\n" +
			"both plus transcription and typing the text into the focused window.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.AddCommand(NewStartCmd(deps))
	rootCmd.AddCommand(NewStopCmd(deps))
	rootCmd.AddCommand(NewToggleCmd(deps))
	rootCmd.AddCommand(NewTranscribeCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}
