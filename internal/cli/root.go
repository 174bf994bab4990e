// Package cli provides the command-line interface for taskpath.
package cli

import (
	"github.com/spf13/cobra"

	"taskpath/internal/app"
)

// Command group IDs.
const (
	groupSetup    = "setup"
	groupTask     = "task"
	groupSchedule = "schedule"
)

// NewRootCommand creates the root command for taskpath.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskpath",
		Short: "Dependency-aware task scheduling CLI",
		Long: `taskpath is a CLI for managing tasks with dependencies and
computing their schedule with the critical path method.

Each task gets a duration from its due date, and the scheduler derives
earliest/latest start and finish dates, slack, and the critical path
through the dependency graph.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupSchedule, Title: "Scheduling:"},
	)

	// Setup commands
	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	// Task management commands
	newCmd := newNewCommand(c)
	newCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	editCmd := newEditCommand(c)
	editCmd.GroupID = groupTask

	doneCmd := newDoneCommand(c)
	doneCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	depsCmd := newDepsCommand(c)
	depsCmd.GroupID = groupTask

	imageCmd := newImageCommand(c)
	imageCmd.GroupID = groupTask

	// Scheduling commands
	scheduleCmd := newScheduleCommand(c)
	scheduleCmd.GroupID = groupSchedule

	// Add subcommands
	root.AddCommand(
		initCmd,
		newCmd,
		listCmd,
		editCmd,
		doneCmd,
		rmCmd,
		depsCmd,
		imageCmd,
		scheduleCmd,
	)

	return root
}
