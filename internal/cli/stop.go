package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dictate/internal/output"
)

func NewStopCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running recording",
		Long: "Signal the background recording process to stop and flush its audio.\n" +
			"Escalates to a forced kill if the recorder does not respond within the\n" +
			"wait budget.",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)

			deps.App.Stop.OnSignal = f.Stopping

			res, err := deps.App.Stop.Execute()
			if err != nil {
				return err
			}

			if res.AlreadyStopped {
				f.Info("Recording process already terminated; cleaned up session marker")
				return nil
			}
			if res.Forced {
				f.Warning(fmt.Sprintf("Recorder (PID %d) did not respond; forced termination", res.Marker.OwnerPID))
				return nil
			}

			f.Success("Recording stopped")
			return nil
		},
	}
}
