package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"taskpath/internal/app"
	"taskpath/internal/usecase"
)

// newDepsCommand creates the deps command group for managing dependencies.
func newDepsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Manage task dependencies",
		Long: `Manage the dependency lists of tasks.

A task's dependencies are the tasks that must finish before it can
start. The dependency graph must stay acyclic; updates that would let
a task reach itself are rejected.`,
	}

	cmd.AddCommand(
		newDepsSetCommand(c),
		newDepsCandidatesCommand(c),
	)

	return cmd
}

// newDepsSetCommand creates the deps set command.
func newDepsSetCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "set <id> [dep-id...]",
		Short: "Replace a task's dependency list",
		Long: `Replace a task's dependency list wholesale.

The given IDs become the task's complete dependency list; previous
dependencies not listed are removed. Passing no dependency IDs clears
the list. The task's own ID is ignored. Every proposed dependency must
exist and must not create a cycle.

Examples:
  # Make task #3 depend on tasks #1 and #2
  taskpath deps set 3 1 2

  # Clear all dependencies of task #3
  taskpath deps set 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			depIDs := make([]int, 0, len(args)-1)
			for _, arg := range args[1:] {
				id, err := parseTaskID(arg)
				if err != nil {
					return fmt.Errorf("invalid dependency ID %q: %w", arg, err)
				}
				depIDs = append(depIDs, id)
			}

			uc := c.SetDependenciesUseCase()
			if err := uc.Execute(cmd.Context(), usecase.SetDependenciesInput{
				ID:            taskID,
				DependencyIDs: depIDs,
			}); err != nil {
				return err
			}

			if len(depIDs) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cleared dependencies of task #%d\n", taskID)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set dependencies of task #%d\n", taskID)
			}
			return nil
		},
	}
}

// newDepsCandidatesCommand creates the deps candidates command.
func newDepsCandidatesCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "candidates <id>",
		Short: "List valid dependency candidates for a task",
		Long: `List every task the given task could additionally depend on.

A candidate is any other task that is not already a dependency and
whose addition would not create a cycle. Tasks that already depend on
the given task, directly or transitively, are excluded.

Examples:
  taskpath deps candidates 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			uc := c.DependencyCandidatesUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DependencyCandidatesInput{
				ID: taskID,
			})
			if err != nil {
				return err
			}

			printCandidates(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// printCandidates prints dependency candidates in TSV format.
func printCandidates(w io.Writer, out *usecase.DependencyCandidatesOutput) {
	if len(out.Candidates) == 0 {
		_, _ = fmt.Fprintln(w, "No dependency candidates")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tLABELS\tTITLE")
	for _, task := range out.Candidates {
		labelsStr := "-"
		if len(task.Labels) > 0 {
			labelsStr = "[" + strings.Join(task.Labels, ",") + "]"
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", task.ID, labelsStr, task.Title)
	}
}
