package taskclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client talks to the task REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the server at baseURL, e.g. http://localhost:8080.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Create stores t. An ID of 0 lets the server pick one.
func (c *Client) Create(ctx context.Context, t Task) (Task, error) {
	var out Task
	err := c.do(ctx, http.MethodPost, "/task", t, &out)
	return out, err
}

// Update replaces the task stored under id.
func (c *Client) Update(ctx context.Context, id int64, t Task) (Task, error) {
	var out Task
	err := c.do(ctx, http.MethodPut, taskPath(id), t, &out)
	return out, err
}

// Get fetches one task. A missing task yields an *APIError with status 404.
func (c *Client) Get(ctx context.Context, id int64) (Task, error) {
	var out Task
	err := c.do(ctx, http.MethodGet, taskPath(id), nil, &out)
	return out, err
}

// List fetches all tasks, optionally only those with status.
func (c *Client) List(ctx context.Context, status string) ([]Task, error) {
	path := "/task"
	if status != "" {
		path += "?" + url.Values{"status": {status}}.Encode()
	}

	out := make([]Task, 0)
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// UpdateStatus overwrites only the status of task id.
func (c *Client) UpdateStatus(ctx context.Context, id int64, status string) (Task, error) {
	path := taskPath(id) + "/status?" + url.Values{"status": {status}}.Encode()

	var out Task
	err := c.do(ctx, http.MethodPut, path, nil, &out)
	return out, err
}

// Delete removes task id and reports whether it existed.
func (c *Client) Delete(ctx context.Context, id int64) (bool, error) {
	var out bool
	err := c.do(ctx, http.MethodDelete, taskPath(id), nil, &out)
	return out, err
}

func taskPath(id int64) string {
	return "/task/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	return parseResponse(resp, result)
}

func parseResponse(resp *http.Response, result any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if json.Unmarshal(data, apiErr) != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(data))
		}
		return apiErr
	}

	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
