package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"taskpath/internal/app"
	"taskpath/internal/domain"
	"taskpath/internal/usecase"
)

// newNewCommand creates the new command for creating tasks.
func newNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Due         string
		From        string
		Labels      []string
		Deps        []int
		DryRun      bool
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new task",
		Long: `Create a new task.

Dependencies are validated when the task is created: every referenced
task must exist. A new task cannot introduce a dependency cycle because
nothing depends on it yet.

Examples:
  # Create a task with a due date
  taskpath new --title "Write report" --due 2026-09-15

  # Create a task that depends on tasks #1 and #2
  taskpath new --title "Publish" --dep 1 --dep 2

  # Create a task with labels
  taskpath new --title "Fix login" --label bug --label urgent

  # Create tasks from a YAML file (multiple tasks supported)
  taskpath new --from tasks.yaml

  # Preview tasks from a file without creating
  taskpath new --from tasks.yaml --dry-run

File format for --from:
  tasks:
    - title: Design schema
      due: 2026-09-10
    - title: Implement API
      labels: [backend]
      depends_on: [1]       # Relative: first task in this file
    - title: Ship it
      depends_on: ["#7", 2] # "#7" is the existing task #7`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Check if --from is specified
			if opts.From != "" {
				return createTasksFromFile(cmd, c, opts.From, opts.DryRun)
			}

			// Require --title when not using --from
			if opts.Title == "" {
				return fmt.Errorf("required flag(s) \"title\" not set")
			}

			input := usecase.NewTaskInput{
				Title:         opts.Title,
				Description:   opts.Description,
				Labels:        opts.Labels,
				DependencyIDs: opts.Deps,
			}

			if opts.Due != "" {
				due, err := domain.ParseDueDate(opts.Due)
				if err != nil {
					return err
				}
				input.DueDate = &due
			}

			uc := c.NewTaskUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d\n", out.TaskID)
			return nil
		},
	}

	// Flags (--title is conditionally required based on --from)
	cmd.Flags().StringVar(&opts.Title, "title", "", "Task title (required unless --from is used)")
	cmd.Flags().StringVar(&opts.Description, "body", "", "Task description")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&opts.Labels, "label", nil, "Labels (can specify multiple)")
	cmd.Flags().IntSliceVar(&opts.Deps, "dep", nil, "IDs of tasks this task depends on (can specify multiple)")
	cmd.Flags().StringVar(&opts.From, "from", "", "Create tasks from a YAML file")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Preview tasks without creating (requires --from)")

	return cmd
}

// createTasksFromFile creates tasks from a YAML file.
func createTasksFromFile(cmd *cobra.Command, c *app.Container, filePath string, dryRun bool) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	uc := c.CreateTasksFromFileUseCase()
	out, err := uc.Execute(cmd.Context(), usecase.CreateTasksFromFileInput{
		Content: string(content),
		DryRun:  dryRun,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if dryRun {
		_, _ = fmt.Fprintln(w, "Dry run - tasks that would be created:")
	}

	for i, task := range out.Tasks {
		if dryRun {
			_, _ = fmt.Fprintf(w, "Task %d: %s", i+1, task.Title)
		} else {
			_, _ = fmt.Fprintf(w, "Created task #%d: %s", task.ID, task.Title)
		}
		if len(task.DependencyIDs) > 0 {
			deps := make([]string, len(task.DependencyIDs))
			for j, id := range task.DependencyIDs {
				deps[j] = fmt.Sprintf("#%d", id)
			}
			_, _ = fmt.Fprintf(w, " (depends on %s)", strings.Join(deps, ", "))
		}
		_, _ = fmt.Fprintln(w)
	}

	if !dryRun {
		_, _ = fmt.Fprintf(w, "\nCreated %d task(s)\n", len(out.Tasks))
	}

	return nil
}

// newListCommand creates the list command for listing tasks.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Labels []string
		All    bool
		JSON   bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display a list of tasks.

By default, completed tasks are hidden. Use --all to include them.

Output format is tab-separated with columns:
  ID, DUE, DEPS, LABELS, TITLE

DEPS shows the IDs of the tasks each task depends on.

Examples:
  # List open tasks
  taskpath list

  # List all tasks including completed
  taskpath list --all

  # List tasks with specific labels
  taskpath list --label bug --label urgent

  # Output in JSON format
  taskpath list --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{
				Labels:          opts.Labels,
				IncludeComplete: opts.All,
			})
			if err != nil {
				return err
			}

			if opts.JSON {
				return printTaskListJSON(cmd.OutOrStdout(), out.Tasks)
			}
			printTaskList(cmd.OutOrStdout(), out.Tasks)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&opts.Labels, "label", nil, "Filter by labels (AND condition)")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Show all tasks including completed")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// printTaskList prints tasks in TSV format.
func printTaskList(w io.Writer, tasks []domain.TaskWithLinks) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "ID\tDUE\tDEPS\tLABELS\tTITLE")

	// Rows
	for _, item := range tasks {
		task := item.Task

		dueStr := "-"
		if task.DueDate != nil {
			dueStr = task.DueDate.Format(time.DateOnly)
		}

		depsStr := "-"
		if len(item.Dependencies) > 0 {
			ids := make([]string, len(item.Dependencies))
			for i, dep := range item.Dependencies {
				ids[i] = fmt.Sprintf("#%d", dep.ID)
			}
			depsStr = strings.Join(ids, ",")
		}

		labelsStr := "-"
		if len(task.Labels) > 0 {
			labelsStr = "[" + strings.Join(task.Labels, ",") + "]"
		}

		title := task.Title
		if task.Completed {
			title += " (done)"
		}

		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			task.ID,
			dueStr,
			depsStr,
			labelsStr,
			title,
		)
	}
}

// printTaskListJSON prints tasks in JSON format.
func printTaskListJSON(w io.Writer, tasks []domain.TaskWithLinks) error {
	type jsonTask struct {
		Created      time.Time  `json:"created"`
		DueDate      *time.Time `json:"due_date,omitempty"`
		Title        string     `json:"title"`
		Description  string     `json:"description,omitempty"`
		ImageURL     string     `json:"image_url,omitempty"`
		Labels       []string   `json:"labels"`
		Dependencies []int      `json:"dependencies"`
		Dependents   []int      `json:"dependents"`
		ID           int        `json:"id"`
		Completed    bool       `json:"completed"`
	}

	items := make([]jsonTask, len(tasks))
	for i, item := range tasks {
		task := item.Task
		jt := jsonTask{
			Created:      task.Created,
			DueDate:      task.DueDate,
			Title:        task.Title,
			Description:  task.Description,
			ImageURL:     task.ImageURL,
			Labels:       task.Labels,
			Dependencies: make([]int, len(item.Dependencies)),
			Dependents:   make([]int, len(item.Dependents)),
			ID:           task.ID,
			Completed:    task.Completed,
		}
		if jt.Labels == nil {
			jt.Labels = []string{}
		}
		for j, dep := range item.Dependencies {
			jt.Dependencies[j] = dep.ID
		}
		for j, dep := range item.Dependents {
			jt.Dependents[j] = dep.ID
		}
		items[i] = jt
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// parseTaskID parses a task ID string to int.
func parseTaskID(s string) (int, error) {
	// Remove leading # if present
	s = strings.TrimPrefix(s, "#")
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("task ID must be positive")
	}
	return id, nil
}

// newEditCommand creates the edit command for editing task information.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Due         string
		Labels      string
		ClearDue    bool
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit task information",
		Long: `Edit an existing task's title, description, due date, or labels.

At least one flag must be provided.

Examples:
  # Change task title
  taskpath edit 1 --title "New task title"

  # Update description
  taskpath edit 1 --body "Updated description text"

  # Change due date
  taskpath edit 1 --due 2026-10-01

  # Remove due date (duration falls back to one day)
  taskpath edit 1 --clear-due

  # Replace all labels (comma-separated)
  taskpath edit 1 --labels bug,urgent`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			input := usecase.EditTaskInput{
				ID:           taskID,
				ClearDueDate: opts.ClearDue,
			}

			// Set optional fields only if provided
			if cmd.Flags().Changed("title") {
				input.Title = &opts.Title
			}
			if cmd.Flags().Changed("body") {
				input.Description = &opts.Description
			}
			if cmd.Flags().Changed("due") {
				due, err := domain.ParseDueDate(opts.Due)
				if err != nil {
					return err
				}
				input.DueDate = &due
			}
			if cmd.Flags().Changed("labels") {
				if opts.Labels == "" {
					input.Labels = []string{}
				} else {
					input.Labels = strings.Split(opts.Labels, ",")
				}
			}

			uc := c.EditTaskUseCase()
			if err := uc.Execute(cmd.Context(), input); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d\n", taskID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New task title")
	cmd.Flags().StringVar(&opts.Description, "body", "", "New task description")
	cmd.Flags().StringVar(&opts.Due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&opts.ClearDue, "clear-due", false, "Remove the due date")
	cmd.MarkFlagsMutuallyExclusive("due", "clear-due")
	cmd.Flags().StringVar(&opts.Labels, "labels", "", "Replace all labels (comma-separated, empty string clears all)")

	return cmd
}

// newDoneCommand creates the done command for completing tasks.
func newDoneCommand(c *app.Container) *cobra.Command {
	var reopen bool

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as completed",
		Long: `Mark a task as completed, or reopen it with --reopen.

Completed tasks are hidden from the default list and can be excluded
from scheduling with 'taskpath schedule --open'.

Examples:
  # Complete task #1
  taskpath done 1

  # Reopen task #1
  taskpath done 1 --reopen`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			uc := c.CompleteTaskUseCase()
			if err := uc.Execute(cmd.Context(), usecase.CompleteTaskInput{
				ID:     taskID,
				Reopen: reopen,
			}); err != nil {
				return err
			}

			if reopen {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reopened task #%d\n", taskID)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed task #%d\n", taskID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reopen, "reopen", false, "Reopen a completed task")

	return cmd
}

// newRmCommand creates the rm command for deleting tasks.
func newRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long: `Delete a task.

The deleted task is also removed from every other task's dependency
list, so no dangling references are left behind.

Examples:
  # Delete task by ID
  taskpath rm 1

  # Delete task using # prefix
  taskpath rm "#1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			uc := c.DeleteTaskUseCase()
			if err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{
				ID: taskID,
			}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", taskID)
			return nil
		},
	}
}
