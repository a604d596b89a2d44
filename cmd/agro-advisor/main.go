package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agro-advisor/config"
	v1 "agro-advisor/internal/controllers/http/v1"
	"agro-advisor/internal/notify"
	"agro-advisor/internal/repositories"
	"agro-advisor/internal/scheduler"
	"agro-advisor/internal/services/agro"
	"agro-advisor/pkg/httpserver"
	"agro-advisor/pkg/logger"
	"agro-advisor/pkg/observe"
)

// @title Agro Advisor API
// @version 1.0.0
// @description Crop advisory service for smallholder farmers: fetches the multi-day weather
// @description forecast for a fixed region, aggregates it into daily summaries, and converts
// @description them into crop-specific agricultural advisories.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Advisories
// @tag.description Crop advisory operations
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	writers := []io.Writer{os.Stdout}
	var hook *observe.SentryHook
	if cnf.SentryDSN != "" {
		hook = observe.NewSentryHook(cnf.AppEnv, cnf.AppName, cnf.SentryDSN)
		writers = append(writers, hook)
	}

	l := logger.NewZapLogger(cnf.AppName, writers...)
	if hook != nil {
		hook.SetLogger(l)
	}

	loc, err := cnf.Region.Location()
	if err != nil {
		l.Fatal("cannot load region timezone", map[string]any{"err": err})
	}

	app := httpserver.InitFiberServer(cnf.AppName)

	repo, err := repositories.InitForecastRepository(cnf, l)
	if err != nil {
		l.Fatal("cannot init forecast repository", map[string]any{"err": err})
	}

	notifier := notify.NewFileSender(cnf.AlertFile, l)

	service := agro.NewAgroService(
		repo,
		notifier,
		cnf.CropProfiles(),
		cnf.DefaultCrop,
		cnf.Region.Name,
		loc,
		l,
	)

	v1.NewRouter(
		app,
		service,
		l,
	)

	sched := scheduler.New(service, cnf.DefaultCrop, cnf.RefreshEvery(), l)
	if err := sched.Start(); err != nil {
		l.Fatal("cannot start scheduler", map[string]any{"err": err})
	}

	go func() {
		if err := app.Listen(":" + cnf.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":   cnf.Port,
		"region": cnf.Region.Name,
		"crop":   cnf.DefaultCrop,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		sched.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
