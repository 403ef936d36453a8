package cli

import (
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"dictate/internal/output"
	"dictate/internal/whisper"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			cfg := deps.Config
			ok := true

			if _, err := exec.LookPath(cfg.Whisper.Binary); err != nil {
				f.DoctorCheck("Whisper engine", false, cfg.Whisper.Binary+" not found in PATH")
				ok = false
			} else {
				f.DoctorCheck("Whisper engine", true, cfg.Whisper.Binary)
			}

			modelPath := whisper.ModelPath(cfg.Whisper.ModelDir, cfg.Whisper.Model)
			if _, err := os.Stat(modelPath); err != nil {
				f.DoctorCheck("Whisper model", false, modelPath+" not found")
				ok = false
			} else {
				f.DoctorCheck("Whisper model", true, modelPath)
			}

			if os.Getenv("WAYLAND_DISPLAY") != "" {
				if _, err := exec.LookPath("wtype"); err != nil {
					f.DoctorCheck("Text injection", false, "wtype not found. Install it for Wayland typing")
					ok = false
				} else {
					f.DoctorCheck("Text injection", true, "wtype")
				}
			} else {
				if _, err := exec.LookPath("xdotool"); err != nil {
					f.DoctorCheck("Text injection", false, "xdotool not found. Install with your package manager")
					ok = false
				} else {
					f.DoctorCheck("Text injection", true, "xdotool")
				}
			}

			if hasAnyTool("xclip", "xsel", "wl-copy") {
				f.DoctorCheck("Clipboard", true, "available")
			} else {
				f.DoctorCheck("Clipboard", false, "no xclip, xsel or wl-copy found (fallback delivery unavailable)")
				ok = false
			}

			if err := os.MkdirAll(cfg.Files.TempDir, 0o755); err != nil {
				f.DoctorCheck("Recording directory", false, err.Error())
				ok = false
			} else {
				f.DoctorCheck("Recording directory", true, cfg.Files.TempDir)
			}

			f.DoctorCheck("Session marker path", true, cfg.Files.LockFile)

			if ok {
				f.Success("\nAll prerequisites met. Ready to dictate!")
			} else {
				f.Warning("\nSome prerequisites are missing.")
			}
			return nil
		},
	}
}

func hasAnyTool(names ...string) bool {
	for _, name := range names {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}
