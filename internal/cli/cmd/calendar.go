package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"task-tracker/internal/cli/output"
	"task-tracker/pkg/datemath"
	"task-tracker/pkg/gcalendar"
)

// eventLister is the part of *gcalendar.Client that calendar list needs.
type eventLister interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// syncedEvent is a calendar event created by task sync.
type syncedEvent struct {
	TaskID  int64  `json:"taskId"  yaml:"taskId"`
	Date    string `json:"date"    yaml:"date"`
	Summary string `json:"summary" yaml:"summary"`
	Link    string `json:"link"    yaml:"link"`
}

func newCalendarCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Google Calendar integration",
	}
	cmd.AddCommand(newCalendarAuthCmd(), newCalendarListCmd(opts))
	return cmd
}

// newCalendarAuthCmd runs the OAuth desktop flow once and stores the token
// the server needs when configured with installed-app credentials.
func newCalendarAuthCmd() *cobra.Command {
	var credsPath, tokenPath string
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize calendar access and save the OAuth token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials file %q: %w", credsPath, err)
			}

			cfg, err := gcalendar.OAuthConfigFromJSON(data)
			if err != nil {
				return fmt.Errorf("%w (is %q an OAuth Desktop App credentials file?)", err, credsPath)
			}

			w := cmd.OutOrStdout()
			output.Info(w, "1. Open this URL in a browser and sign in with the Google account that owns the calendar:")
			fmt.Fprintf(w, "\n%s\n\n", cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
			output.Info(w, "2. Paste the authorization code here and press Enter:")

			code, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			code = strings.TrimSpace(code)
			if code == "" {
				return errors.New("no authorization code entered")
			}

			tok, err := cfg.Exchange(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("exchange authorization code: %w", err)
			}
			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}

			output.Success(w, "Token saved to %s. Restart the server to enable calendar sync.", tokenPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&credsPath, "credentials", "google-credentials.json", "OAuth Desktop App credentials file")
	cmd.Flags().StringVar(&tokenPath, "token", gcalendar.DefaultTokenFile, "where to write the token")
	return cmd
}

func newCalendarListCmd(opts *options) *cobra.Command {
	var credsPath, tokenPath, calendarID string
	var days int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the due-date events task sync created",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return fmt.Errorf("--days must be positive, got %d", days)
			}
			format, err := opts.outputFormat()
			if err != nil {
				return err
			}
			dates, err := opts.dates()
			if err != nil {
				return err
			}

			client, err := opts.newCalendar(cmd.Context(), credsPath, tokenPath)
			if err != nil {
				return err
			}

			from := dates.Today(opts.now())
			events, err := client.ListEvents(cmd.Context(), gcalendar.ListEventsRequest{
				CalendarID: calendarID,
				TimeMin:    from,
				TimeMax:    from.AddDate(0, 0, days),
			})
			if err != nil {
				return err
			}

			synced := make([]syncedEvent, 0, len(events))
			for _, e := range events {
				taskID, ok := gcalendar.ParseTaskEventID(e.ID)
				if !ok {
					continue
				}
				synced = append(synced, syncedEvent{
					TaskID:  taskID,
					Date:    e.StartTime.Format(datemath.ISODate),
					Summary: e.Summary,
					Link:    e.HtmlLink,
				})
			}

			w := cmd.OutOrStdout()
			switch format {
			case output.FormatJSON:
				return output.PrintJSON(w, synced)
			case output.FormatYAML:
				return output.PrintYAML(w, synced)
			}
			if len(synced) == 0 {
				output.Info(w, "No synced events in the next %d days", days)
				return nil
			}
			table := output.NewTable([]string{"TASK", "DATE", "SUMMARY", "LINK"})
			for _, e := range synced {
				table.AddRow([]string{strconv.FormatInt(e.TaskID, 10), e.Date, e.Summary, e.Link})
			}
			table.Render(w)
			return nil
		},
	}
	cmd.Flags().StringVar(&credsPath, "credentials", "google-credentials.json", "service account or OAuth Desktop App credentials file")
	cmd.Flags().StringVar(&tokenPath, "token", gcalendar.DefaultTokenFile, "OAuth token written by calendar auth")
	cmd.Flags().StringVar(&calendarID, "calendar", gcalendar.DefaultCalendarID, "calendar id")
	cmd.Flags().IntVar(&days, "days", 30, "how many days ahead to look")
	return cmd
}
