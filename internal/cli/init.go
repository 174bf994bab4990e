package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskpath/internal/app"
	"taskpath/internal/usecase"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the task store",
		Long: `Initialize the taskpath data directory.

This command creates the data directory with:
- tasks.json: empty task store
- logs/: directory for log files

The data directory is resolved from $TASKPATH_DIR, falling back to
$XDG_DATA_HOME/taskpath and then ~/.local/share/taskpath.

Running init on an already initialized store is safe; it only repairs
missing directories.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.InitStoreUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitStoreInput{
				DataDir: c.DataDir,
			})
			if err != nil {
				return err
			}

			if out.AlreadyInitialized {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "taskpath already initialized in %s\n", out.DataDir)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized taskpath in %s\n", out.DataDir)
			}
			return nil
		},
	}
}
