package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskpath/internal/app"
	"taskpath/internal/usecase"
)

// newImageCommand creates the image command for attaching illustrations.
func newImageCommand(c *app.Container) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "image <id>",
		Short: "Attach an illustration to a task",
		Long: `Search the configured image service for an illustration and store
its URL on the task.

The task title is used as the search query unless --query is given.
Requires an image service configured via the [imagery] section of the
configuration file.

Examples:
  # Search using the task title
  taskpath image 1

  # Search with a custom query
  taskpath image 1 --query "mountain sunrise"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			uc := c.AttachImageUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AttachImageInput{
				ID:    taskID,
				Query: query,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Attached image to task #%d: %s\n", taskID, out.URL)
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Search query (default: task title)")

	return cmd
}
