package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"task-tracker/internal/cli/output"
	"task-tracker/pkg/datemath"
	"task-tracker/pkg/taskclient"
)

// taskFlags are the fields of a full task record.
type taskFlags struct {
	id          int64
	title       string
	description string
	due         string
	status      string
}

func (f *taskFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "task title")
	cmd.Flags().StringVar(&f.description, "description", "", "task description")
	cmd.Flags().StringVar(&f.due, "due", "", `due date: YYYY-MM-DD or relative ("tomorrow", "in 3 days", "next friday")`)
	cmd.Flags().StringVar(&f.status, "status", "started", "task status")
}

func (f *taskFlags) toTask(opts *options) (taskclient.Task, error) {
	t := taskclient.Task{
		ID:          f.id,
		Title:       f.title,
		Description: f.description,
		Status:      f.status,
	}
	if f.due == "" {
		return t, nil
	}

	dates, err := opts.dates()
	if err != nil {
		return t, err
	}
	due, err := dates.Parse(f.due, opts.now())
	if err != nil {
		return t, fmt.Errorf("--due: %w", err)
	}
	t.DueDate = due.Format(datemath.ISODate)
	return t, nil
}

func newCreateCmd(opts *options) *cobra.Command {
	f := &taskFlags{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := f.toTask(opts)
			if err != nil {
				return err
			}
			created, err := opts.client().Create(cmd.Context(), t)
			if err != nil {
				return err
			}
			return printTasks(cmd, opts, created)
		},
	}
	f.register(cmd)
	cmd.Flags().Int64Var(&f.id, "id", 0, "explicit task id (0 lets the server choose)")
	return cmd
}

func newGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			t, err := opts.client().Get(cmd.Context(), id)
			if taskclient.IsNotFound(err) {
				return fmt.Errorf("task %d not found", id)
			}
			if err != nil {
				return err
			}
			return printTasks(cmd, opts, t)
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := opts.client().List(cmd.Context(), status)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				if format, _ := opts.outputFormat(); format == output.FormatTable {
					output.Info(cmd.OutOrStdout(), "No tasks")
					return nil
				}
			}
			return printTasks(cmd, opts, tasks...)
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "only tasks with this status")
	return cmd
}

func newUpdateCmd(opts *options) *cobra.Command {
	f := &taskFlags{}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace every field of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			t, err := f.toTask(opts)
			if err != nil {
				return err
			}
			updated, err := opts.client().Update(cmd.Context(), id, t)
			if err != nil {
				return err
			}
			return printTasks(cmd, opts, updated)
		},
	}
	f.register(cmd)
	return cmd
}

func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change only the status of a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			t, err := opts.client().UpdateStatus(cmd.Context(), id, args[1])
			if taskclient.IsNotFound(err) {
				return fmt.Errorf("task %d not found", id)
			}
			if err != nil {
				return err
			}
			return printTasks(cmd, opts, t)
		},
	}
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			deleted, err := opts.client().Delete(cmd.Context(), id)
			if err != nil {
				return err
			}

			format, err := opts.outputFormat()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch {
			case format == output.FormatJSON:
				return output.PrintJSON(w, deleted)
			case format == output.FormatYAML:
				return output.PrintYAML(w, deleted)
			case deleted:
				output.Success(w, "Deleted task %d", id)
			default:
				output.Warning(w, "Task %d did not exist", id)
			}
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q: must be a positive integer", s)
	}
	return id, nil
}

// printTasks renders one task as an object and several as a list.
func printTasks(cmd *cobra.Command, opts *options, tasks ...taskclient.Task) error {
	format, err := opts.outputFormat()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	var data any = tasks
	if len(tasks) == 1 && cmd.Name() != "list" {
		data = tasks[0]
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(w, data)
	case output.FormatYAML:
		return output.PrintYAML(w, data)
	}

	table := output.NewTable([]string{"ID", "TITLE", "DUE", "STATUS", "DESCRIPTION"})
	for _, t := range tasks {
		due := t.DueDate
		if due == "" {
			due = "-"
		}
		table.AddRow([]string{
			strconv.FormatInt(t.ID, 10),
			t.Title,
			due,
			t.Status,
			t.Description,
		})
	}
	table.Render(w)
	return nil
}
