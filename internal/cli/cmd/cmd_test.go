package cmd

import (
	"bytes"
	"context"
	"errors"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/pkg/gcalendar"
)

func init() {
	color.NoColor = true
}

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, stdin string, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// newTestRoot pins the clock to Wednesday, May 1, 2024.
func newTestRoot() *cobra.Command {
	return newRootCmd(&options{now: func() time.Time {
		return time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	}})
}

// fakeServer records the last request and answers with reply.
type fakeServer struct {
	*httptest.Server
	method, path, query, body string
}

func newFakeServer(t *testing.T, status int, reply string) *fakeServer {
	fs := &fakeServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		fs.method, fs.path, fs.query, fs.body = r.Method, r.URL.Path, r.URL.RawQuery, string(body)
		w.WriteHeader(status)
		w.Write([]byte(reply))
	}))
	t.Cleanup(fs.Close)
	return fs
}

const writingJSON = `{"id":1,"title":"Writing","description":"ABCD","dueDate":"2023-09-20","status":"started"}`

func TestRootCommand(t *testing.T) {
	root := NewRootCmd()
	assert.Equal(t, "taskctl", root.Use)

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, expected := range []string{"create", "get", "list", "update", "status", "delete", "calendar", "version"} {
		assert.True(t, names[expected], "missing subcommand %q", expected)
	}
}

func TestCreate(t *testing.T) {
	t.Run("ISO due date", func(t *testing.T) {
		srv := newFakeServer(t, http.StatusOK, writingJSON)

		out, err := executeCommand(newTestRoot(), "", "create", "-s", srv.URL, "-o", "json",
			"--id", "1", "--title", "Writing", "--description", "ABCD", "--due", "2023-09-20")
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, srv.method)
		assert.Equal(t, "/task", srv.path)
		assert.JSONEq(t, writingJSON, srv.body)
		assert.JSONEq(t, writingJSON, out)
	})

	t.Run("Relative due date", func(t *testing.T) {
		srv := newFakeServer(t, http.StatusOK, writingJSON)

		_, err := executeCommand(newTestRoot(), "", "create", "-s", srv.URL, "--timezone", "UTC",
			"--title", "Writing", "--due", "next friday")
		require.NoError(t, err)

		var sent map[string]any
		require.NoError(t, json.Unmarshal([]byte(srv.body), &sent))
		assert.Equal(t, "2024-05-03", sent["dueDate"])
		assert.Equal(t, float64(0), sent["id"])
	})

	t.Run("Bad due date", func(t *testing.T) {
		_, err := executeCommand(newTestRoot(), "", "create", "--title", "x", "--due", "someday")
		assert.ErrorContains(t, err, "--due")
	})
}

func TestGet(t *testing.T) {
	t.Run("Table", func(t *testing.T) {
		srv := newFakeServer(t, http.StatusOK, writingJSON)

		out, err := executeCommand(newTestRoot(), "", "get", "1", "-s", srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "/task/1", srv.path)
		assert.Contains(t, out, "Writing")
		assert.Contains(t, out, "2023-09-20")
	})

	t.Run("YAML", func(t *testing.T) {
		srv := newFakeServer(t, http.StatusOK, writingJSON)

		out, err := executeCommand(newTestRoot(), "", "get", "1", "-s", srv.URL, "-o", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "title: Writing\n")
		assert.Contains(t, out, "dueDate:")
		assert.Contains(t, out, "2023-09-20")
	})

	t.Run("Not found", func(t *testing.T) {
		srv := newFakeServer(t, http.StatusNotFound, `{"error_code":404,"message":"task not found"}`)

		_, err := executeCommand(newTestRoot(), "", "get", "42", "-s", srv.URL)
		assert.EqualError(t, err, "task 42 not found")
	})

	t.Run("Invalid id", func(t *testing.T) {
		_, err := executeCommand(newTestRoot(), "", "get", "abc")
		assert.ErrorContains(t, err, "invalid task id")
	})

	t.Run("Unknown output format", func(t *testing.T) {
		srv := newFakeServer(t, http.StatusOK, writingJSON)

		_, err := executeCommand(newTestRoot(), "", "get", "1", "-s", srv.URL, "-o", "xml")
		assert.ErrorContains(t, err, "unknown output format")
	})
}

func TestList(t *testing.T) {
	t.Run("Filtered", func(t *testing.T) {
		srv := newFakeServer(t, http.StatusOK, "["+writingJSON+"]")

		out, err := executeCommand(newTestRoot(), "", "list", "--status", "started", "-s", srv.URL, "-o", "json")
		require.NoError(t, err)
		assert.Equal(t, "status=started", srv.query)
		assert.JSONEq(t, "["+writingJSON+"]", out)
	})

	t.Run("Empty", func(t *testing.T) {
		srv := newFakeServer(t, http.StatusOK, "[]")

		out, err := executeCommand(newTestRoot(), "", "list", "-s", srv.URL)
		require.NoError(t, err)
		assert.Contains(t, out, "No tasks")
	})
}

func TestUpdateStatusDelete(t *testing.T) {
	t.Run("Update", func(t *testing.T) {
		srv := newFakeServer(t, http.StatusOK, writingJSON)

		_, err := executeCommand(newTestRoot(), "", "update", "1", "-s", srv.URL, "--title", "Writing", "--status", "started")
		require.NoError(t, err)
		assert.Equal(t, http.MethodPut, srv.method)
		assert.Equal(t, "/task/1", srv.path)
	})

	t.Run("Status", func(t *testing.T) {
		srv := newFakeServer(t, http.StatusOK, strings.Replace(writingJSON, "started", "completed", 1))

		out, err := executeCommand(newTestRoot(), "", "status", "1", "completed", "-s", srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "/task/1/status", srv.path)
		assert.Equal(t, "status=completed", srv.query)
		assert.Contains(t, out, "completed")
	})

	t.Run("Delete", func(t *testing.T) {
		srv := newFakeServer(t, http.StatusOK, "true")

		out, err := executeCommand(newTestRoot(), "", "delete", "1", "-s", srv.URL)
		require.NoError(t, err)
		assert.Equal(t, http.MethodDelete, srv.method)
		assert.Contains(t, out, "Deleted task 1")
	})

	t.Run("Delete missing as JSON", func(t *testing.T) {
		srv := newFakeServer(t, http.StatusOK, "false")

		out, err := executeCommand(newTestRoot(), "", "delete", "9", "-s", srv.URL, "-o", "json")
		require.NoError(t, err)
		assert.Equal(t, "false\n", out)
	})
}

func TestVersion(t *testing.T) {
	out, err := executeCommand(newTestRoot(), "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:")
}

func TestCalendarAuth(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		assert.Equal(t, "the-code", r.Form.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"abc","token_type":"Bearer","refresh_token":"def","expires_in":3600}`))
	}))
	defer tokenSrv.Close()

	dir := t.TempDir()
	credsPath := filepath.Join(dir, "creds.json")
	tokenPath := filepath.Join(dir, "token.json")
	creds := fmt.Sprintf(`{"installed":{"client_id":"id","client_secret":"secret","auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":%q,"redirect_uris":["http://localhost"]}}`, tokenSrv.URL)
	require.NoError(t, os.WriteFile(credsPath, []byte(creds), 0o600))

	t.Run("Saves token", func(t *testing.T) {
		out, err := executeCommand(newTestRoot(), "the-code\n", "calendar", "auth", "--credentials", credsPath, "--token", tokenPath)
		require.NoError(t, err)
		assert.Contains(t, out, "accounts.google.com")

		tok, err := gcalendar.LoadToken(tokenPath)
		require.NoError(t, err)
		assert.Equal(t, "abc", tok.AccessToken)
		assert.Equal(t, "def", tok.RefreshToken)
	})

	t.Run("Empty code", func(t *testing.T) {
		_, err := executeCommand(newTestRoot(), "\n", "calendar", "auth", "--credentials", credsPath, "--token", tokenPath)
		assert.ErrorContains(t, err, "no authorization code")
	})

	t.Run("Missing credentials", func(t *testing.T) {
		_, err := executeCommand(newTestRoot(), "", "calendar", "auth", "--credentials", filepath.Join(dir, "missing.json"))
		assert.ErrorContains(t, err, "read credentials file")
	})
}

type fakeLister struct {
	req    gcalendar.ListEventsRequest
	events []gcalendar.Event
	err    error
}

func (f *fakeLister) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	f.req = req
	return f.events, f.err
}

func newCalendarTestRoot(lister *fakeLister, openErr error) (*cobra.Command, *[2]string) {
	var paths [2]string
	root := newRootCmd(&options{
		now: func() time.Time { return time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) },
		newCalendar: func(ctx context.Context, credentialsPath, tokenPath string) (eventLister, error) {
			paths = [2]string{credentialsPath, tokenPath}
			if openErr != nil {
				return nil, openErr
			}
			return lister, nil
		},
	})
	return root, &paths
}

func TestCalendarList(t *testing.T) {
	synced := gcalendar.Event{
		ID:        gcalendar.TaskEventID(1),
		Summary:   "[started] Writing",
		HtmlLink:  "https://calendar.google.com/event?eid=task1",
		StartTime: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
		AllDay:    true,
	}
	foreign := gcalendar.Event{ID: "dentist", Summary: "Dentist", StartTime: time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)}

	t.Run("Only synced events", func(t *testing.T) {
		lister := &fakeLister{events: []gcalendar.Event{foreign, synced}}
		root, paths := newCalendarTestRoot(lister, nil)

		out, err := executeCommand(root, "", "calendar", "list", "--timezone", "UTC", "--days", "7",
			"--calendar", "team", "--credentials", "creds.json", "--token", "tok.json", "-o", "json")
		require.NoError(t, err)

		assert.Equal(t, [2]string{"creds.json", "tok.json"}, *paths)
		assert.Equal(t, "team", lister.req.CalendarID)
		assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), lister.req.TimeMin.UTC())
		assert.Equal(t, time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC), lister.req.TimeMax.UTC())
		assert.JSONEq(t, `[{"taskId":1,"date":"2024-05-03","summary":"[started] Writing","link":"https://calendar.google.com/event?eid=task1"}]`, out)
	})

	t.Run("Table", func(t *testing.T) {
		root, _ := newCalendarTestRoot(&fakeLister{events: []gcalendar.Event{synced}}, nil)

		out, err := executeCommand(root, "", "calendar", "list", "--timezone", "UTC")
		require.NoError(t, err)
		assert.Contains(t, out, "TASK")
		assert.Contains(t, out, "[started] Writing")
		assert.NotContains(t, out, "Dentist")
	})

	t.Run("Nothing synced", func(t *testing.T) {
		root, _ := newCalendarTestRoot(&fakeLister{events: []gcalendar.Event{foreign}}, nil)

		out, err := executeCommand(root, "", "calendar", "list", "--timezone", "UTC")
		require.NoError(t, err)
		assert.Contains(t, out, "No synced events")
	})

	t.Run("Client errors", func(t *testing.T) {
		root, _ := newCalendarTestRoot(nil, gcalendar.ErrTokenNotFound)
		_, err := executeCommand(root, "", "calendar", "list")
		assert.ErrorIs(t, err, gcalendar.ErrTokenNotFound)

		root, _ = newCalendarTestRoot(&fakeLister{err: errors.New("quota exceeded")}, nil)
		_, err = executeCommand(root, "", "calendar", "list")
		assert.ErrorContains(t, err, "quota exceeded")
	})

	t.Run("Bad window", func(t *testing.T) {
		root, _ := newCalendarTestRoot(&fakeLister{}, nil)
		_, err := executeCommand(root, "", "calendar", "list", "--days", "0")
		assert.ErrorContains(t, err, "--days")
	})
}
