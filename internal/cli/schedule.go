package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"taskpath/internal/app"
	"taskpath/internal/cpm"
	"taskpath/internal/usecase"
)

// newScheduleCommand creates the schedule command.
func newScheduleCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Open bool
		JSON bool
	}

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Compute the task schedule",
		Long: `Compute the schedule for all tasks with the critical path method.

Each task's duration is derived from its due date (days from today,
at least one); tasks without a due date take one day. A forward pass
assigns earliest start and finish dates, a backward pass latest dates
and slack. Tasks with zero slack are critical; one representative
zero-slack chain is reported as the critical path.

Tasks on a dependency cycle cannot be scheduled and are listed
separately; everything else is still scheduled.

Output columns:
  ID, TITLE, DAYS, START, FINISH, LATEST START, LATEST FINISH, SLACK, CRIT

Examples:
  # Schedule all tasks
  taskpath schedule

  # Schedule only open tasks (dependencies on completed tasks
  # count as already satisfied)
  taskpath schedule --open

  # Output in JSON format
  taskpath schedule --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ScheduleTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ScheduleTasksInput{
				ExcludeCompleted: opts.Open,
			})
			if err != nil {
				return err
			}

			if opts.JSON {
				return printScheduleJSON(cmd.OutOrStdout(), out)
			}
			printSchedule(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Open, "open", false, "Exclude completed tasks from the schedule")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

// printSchedule prints the schedule in TSV format with a critical path summary.
func printSchedule(w io.Writer, out *usecase.ScheduleTasksOutput) {
	res := out.Result
	if len(out.Order) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks to schedule")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tTITLE\tDAYS\tSTART\tFINISH\tLATEST START\tLATEST FINISH\tSLACK\tCRIT")

	var unscheduled []*cpm.ScheduledTask
	for _, id := range out.Order {
		task := res.Tasks[id]
		if !task.Scheduled() {
			unscheduled = append(unscheduled, task)
			continue
		}

		critStr := ""
		if task.IsCritical {
			critStr = "*"
		}

		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\t%s\t%.0f\t%s\n",
			task.ID,
			task.Title,
			task.Duration,
			formatDate(task.EarliestStart),
			formatDate(task.EarliestFinish),
			formatDate(task.LatestStart),
			formatDate(task.LatestFinish),
			task.Slack,
			critStr,
		)
	}
	_ = tw.Flush()

	_, _ = fmt.Fprintf(w, "\nProject end: %s\n", res.ProjectEnd.Format(time.DateOnly))

	if len(res.CriticalPath) > 0 {
		ids := make([]string, len(res.CriticalPath))
		for i, id := range res.CriticalPath {
			ids[i] = fmt.Sprintf("#%d", id)
		}
		_, _ = fmt.Fprintf(w, "Critical path: %s\n", strings.Join(ids, " -> "))
	}

	if len(unscheduled) > 0 {
		_, _ = fmt.Fprintln(w, "\nNot scheduled (dependency cycle):")
		for _, task := range unscheduled {
			_, _ = fmt.Fprintf(w, "  #%d %s\n", task.ID, task.Title)
		}
	}
}

// formatDate formats an optional date, using "-" for unset.
func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.DateOnly)
}

// printScheduleJSON prints the schedule in JSON format.
func printScheduleJSON(w io.Writer, out *usecase.ScheduleTasksOutput) error {
	type jsonTask struct {
		EarliestStart  *time.Time `json:"earliest_start"`
		EarliestFinish *time.Time `json:"earliest_finish"`
		LatestStart    *time.Time `json:"latest_start"`
		LatestFinish   *time.Time `json:"latest_finish"`
		Title          string     `json:"title"`
		Slack          float64    `json:"slack"`
		Duration       int        `json:"duration_days"`
		ID             int        `json:"id"`
		IsCritical     bool       `json:"is_critical"`
		Scheduled      bool       `json:"scheduled"`
	}
	type jsonSchedule struct {
		ProjectEnd   time.Time  `json:"project_end"`
		Tasks        []jsonTask `json:"tasks"`
		CriticalPath []int      `json:"critical_path"`
	}

	res := out.Result
	js := jsonSchedule{
		ProjectEnd:   res.ProjectEnd,
		Tasks:        make([]jsonTask, 0, len(out.Order)),
		CriticalPath: res.CriticalPath,
	}
	if js.CriticalPath == nil {
		js.CriticalPath = []int{}
	}
	for _, id := range out.Order {
		task := res.Tasks[id]
		js.Tasks = append(js.Tasks, jsonTask{
			EarliestStart:  task.EarliestStart,
			EarliestFinish: task.EarliestFinish,
			LatestStart:    task.LatestStart,
			LatestFinish:   task.LatestFinish,
			Title:          task.Title,
			Slack:          task.Slack,
			Duration:       task.Duration,
			ID:             task.ID,
			IsCritical:     task.IsCritical,
			Scheduled:      task.Scheduled(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(js)
}
