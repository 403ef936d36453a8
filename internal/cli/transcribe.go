package cli

import (
	"os"

	"github.com/spf13/cobra"

	"dictate/internal/domain/dictation/usecases"
	"dictate/internal/output"
	"dictate/internal/textproc"
	"dictate/internal/whisper"
)

func NewTranscribeCmd(deps *Dependencies) *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "transcribe <audio-file>",
		Short: "Transcribe an existing audio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			cfg := deps.Config

			params := whisper.Params{
				Model:         cfg.Whisper.Model,
				Language:      cfg.Whisper.Language,
				BeamSize:      cfg.Whisper.BeamSize,
				Temperature:   cfg.Whisper.Temperature,
				VADFilter:     cfg.Whisper.VADFilter,
				InitialPrompt: cfg.Whisper.InitialPrompt,
			}
			if model != "" {
				params.Model = model
			}

			uc := &usecases.Transcribe{
				Engine:   whisper.New(cfg.Whisper.Binary, cfg.Whisper.ModelDir, params),
				Notifier: deps.App.Notifier,
				Post: textproc.Options{
					StripSpaces:    cfg.Text.StripSpaces,
					AutoCapitalize: cfg.Text.AutoCapitalize,
					Replacements:   cfg.Text.Replacements,
				},
			}

			text, err := uc.Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			f.Transcript(text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Whisper model override (e.g. tiny.en)")

	return cmd
}
