package cmd

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"task-tracker/internal/cli/output"
	"task-tracker/pkg/datemath"
	"task-tracker/pkg/gcalendar"
	"task-tracker/pkg/taskclient"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	serverURL string
	format    string
	timezone  string
	now       func() time.Time

	newCalendar func(ctx context.Context, credentialsPath, tokenPath string) (eventLister, error)
}

func (o *options) client() *taskclient.Client {
	return taskclient.New(o.serverURL)
}

func (o *options) outputFormat() (output.Format, error) {
	return output.ParseFormat(o.format)
}

func (o *options) dates() (*datemath.Parser, error) {
	return datemath.NewParser(o.timezone)
}

// NewRootCmd builds the taskctl command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&options{
		now: time.Now,
		newCalendar: func(ctx context.Context, credentialsPath, tokenPath string) (eventLister, error) {
			return gcalendar.NewClientFromCredentialsFile(ctx, credentialsPath, tokenPath)
		},
	})
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskctl",
		Short: "Command line client for the task tracker",
		Long: `taskctl manages tasks on a task-tracker server.

Examples:
  # Create a task due next friday
  taskctl create --title Writing --description ABCD --due "next friday"

  # Mark it completed
  taskctl status 1 completed

  # List open work as YAML
  taskctl list --status started -o yaml`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.serverURL, "server", "s", envOr("TASKCTL_SERVER", "http://localhost:8080"), "task-tracker server URL")
	root.PersistentFlags().StringVarP(&opts.format, "output", "o", string(output.FormatTable), "output format: table, json or yaml")
	root.PersistentFlags().StringVar(&opts.timezone, "timezone", "Local", "timezone used to resolve relative --due values")

	root.AddCommand(
		newCreateCmd(opts),
		newGetCmd(opts),
		newListCmd(opts),
		newUpdateCmd(opts),
		newStatusCmd(opts),
		newDeleteCmd(opts),
		newCalendarCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
