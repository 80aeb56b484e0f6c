package httpserver_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"task-tracker/internal/httpserver"
	"task-tracker/internal/middleware"
	"task-tracker/internal/task"
	pkgLog "task-tracker/pkg/log"
)

type stubUseCase struct{}

func (stubUseCase) CreateOrUpdate(ctx context.Context, input task.CreateOrUpdateInput) (task.CreateOrUpdateOutput, error) {
	return task.CreateOrUpdateOutput{}, nil
}
func (stubUseCase) Detail(ctx context.Context, id int64) (task.DetailOutput, error) {
	return task.DetailOutput{}, task.ErrTaskNotFound
}
func (stubUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	return task.ListOutput{}, nil
}
func (stubUseCase) UpdateStatus(ctx context.Context, input task.UpdateStatusInput) (task.UpdateStatusOutput, error) {
	return task.UpdateStatusOutput{}, nil
}
func (stubUseCase) Delete(ctx context.Context, id int64) (task.DeleteOutput, error) {
	return task.DeleteOutput{}, nil
}
func (stubUseCase) ListOverdue(ctx context.Context, input task.ListOverdueInput) (task.ListOutput, error) {
	return task.ListOutput{}, nil
}

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(ctx context.Context) error { return p.err }

func newServer(t *testing.T, cfg httpserver.Config) *httpserver.HTTPServer {
	t.Helper()
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	cfg.Mode = "test"
	cfg.TaskUseCase = stubUseCase{}
	srv, err := httpserver.New(pkgLog.NewNop(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return srv
}

func get(srv *httpserver.HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNew(t *testing.T) {
	tcs := map[string]httpserver.Config{
		"Missing mode":     {Port: 8080, TaskUseCase: stubUseCase{}},
		"Missing port":     {Mode: "test", TaskUseCase: stubUseCase{}},
		"Missing use case": {Port: 8080, Mode: "test"},
	}
	for name, cfg := range tcs {
		t.Run(name, func(t *testing.T) {
			if _, err := httpserver.New(pkgLog.NewNop(), cfg); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	t.Run("Health and live", func(t *testing.T) {
		srv := newServer(t, httpserver.Config{})
		for _, path := range []string{"/health", "/live"} {
			if w := get(srv, path); w.Code != http.StatusOK {
				t.Errorf("%s: expected 200, got %d", path, w.Code)
			}
		}
	})

	t.Run("Ready", func(t *testing.T) {
		srv := newServer(t, httpserver.Config{DB: fakePinger{}})
		if w := get(srv, "/ready"); w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("Not ready", func(t *testing.T) {
		srv := newServer(t, httpserver.Config{DB: fakePinger{err: errors.New("connection refused")}})
		if w := get(srv, "/ready"); w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", w.Code)
		}
	})

	t.Run("Task routes and request id", func(t *testing.T) {
		srv := newServer(t, httpserver.Config{})
		w := get(srv, "/task/1")
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404 from task domain, got %d", w.Code)
		}
		if w.Header().Get(middleware.HeaderRequestID) == "" {
			t.Errorf("expected request id header")
		}
	})
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestRun(t *testing.T) {
	port := freePort(t)
	srv := newServer(t, httpserver.Config{Port: port, ShutdownTimeout: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/live", port)
	var lastErr error
	for i := 0; i < 50; i++ {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			lastErr = nil
			break
		}
		lastErr = err
		time.Sleep(20 * time.Millisecond)
	}
	if lastErr != nil {
		t.Fatalf("server never became reachable: %v", lastErr)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop")
	}
}
