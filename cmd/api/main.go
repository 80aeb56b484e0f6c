package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-tracker/config"
	_ "task-tracker/docs" // Swagger docs
	"task-tracker/internal/httpserver"
	"task-tracker/internal/overdue"
	"task-tracker/internal/task/repository"
	"task-tracker/internal/task/repository/cache"
	"task-tracker/internal/task/repository/sqlstore"
	"task-tracker/internal/task/usecase"
	"task-tracker/pkg/gcalendar"
	"task-tracker/pkg/log"
	"task-tracker/pkg/sqldb"
)

// @title       Task Tracker API
// @description Create, read, update and delete tasks with a title, description, due date and status.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// run wires the service and serves until ctx is cancelled. Resources opened
// here are released before it returns, whatever the outcome.
func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	logger.Info(ctx, "Starting Task Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, dialect, err := sqldb.Open(ctx, sqldb.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return err
	}
	defer db.Close()

	if err := sqlstore.Migrate(ctx, db, dialect); err != nil {
		logger.Error(ctx, "Failed to migrate database: ", err)
		return err
	}
	logger.Infof(ctx, "Database ready (%s)", dialect.Name())

	var taskRepo repository.Repository = sqlstore.New(db, dialect, logger)
	if cfg.Cache.Enabled {
		taskRepo = cache.New(taskRepo, cache.Config{Size: cfg.Cache.Size, TTL: cfg.Cache.TTL}, logger)
		logger.Infof(ctx, "Task cache enabled (size=%d ttl=%s)", cfg.Cache.Size, cfg.Cache.TTL)
	}

	// 4. Task domain
	taskUC := usecase.New(taskRepo, logger)

	// Google Calendar client (optional)
	if cfg.GoogleCalendar.Enabled() {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `taskctl calendar auth` to generate ", cfg.GoogleCalendar.TokenPath)
		} else {
			taskUC.WithCalendar(calendarClient, usecase.CalendarConfig{
				CalendarID: cfg.GoogleCalendar.CalendarID,
				Timezone:   cfg.GoogleCalendar.Timezone,
				Timeout:    cfg.GoogleCalendar.Timeout,
			})
			logger.Infof(ctx, "Google Calendar sync enabled (calendar=%s)", cfg.GoogleCalendar.CalendarID)
		}
	}

	// 5. Overdue report (optional)
	if cfg.Overdue.Enabled {
		job, jobErr := overdue.New(taskUC, logger, overdue.Config{
			Schedule: cfg.Overdue.Schedule,
			Timezone: cfg.Overdue.Timezone,
		})
		if jobErr != nil {
			logger.Error(ctx, "Failed to configure overdue job: ", jobErr)
			return jobErr
		}
		if err := job.Start(ctx); err != nil {
			logger.Error(ctx, "Failed to start overdue job: ", err)
			return err
		}
		defer job.Stop()
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		RequestsPerMin:  cfg.RateLimit.RequestsPerMin,
		DB:              db,
		TaskUseCase:     taskUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return err
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return err
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}
