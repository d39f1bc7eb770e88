package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MrJamesThe3rd/buxfer/internal/app"
	"github.com/MrJamesThe3rd/buxfer/internal/auth"
	"github.com/MrJamesThe3rd/buxfer/internal/config"
	buxferHttp "github.com/MrJamesThe3rd/buxfer/internal/http"
	analyticsHandler "github.com/MrJamesThe3rd/buxfer/internal/http/analytics"
	authHandler "github.com/MrJamesThe3rd/buxfer/internal/http/auth"
	categoryHandler "github.com/MrJamesThe3rd/buxfer/internal/http/category"
	debtHandler "github.com/MrJamesThe3rd/buxfer/internal/http/debt"
	deviceHandler "github.com/MrJamesThe3rd/buxfer/internal/http/device"
	expenseHandler "github.com/MrJamesThe3rd/buxfer/internal/http/expense"
	exportHandler "github.com/MrJamesThe3rd/buxfer/internal/http/export"
	goalHandler "github.com/MrJamesThe3rd/buxfer/internal/http/goal"
	incomeHandler "github.com/MrJamesThe3rd/buxfer/internal/http/income"
	recurringHandler "github.com/MrJamesThe3rd/buxfer/internal/http/recurring"
	"github.com/MrJamesThe3rd/buxfer/internal/http/respond"
	todoHandler "github.com/MrJamesThe3rd/buxfer/internal/http/todo"
	"github.com/MrJamesThe3rd/buxfer/internal/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	handlers := buxferHttp.Handlers{
		Auth:       authHandler.NewHandler(a.Auth),
		Expenses:   expenseHandler.NewHandler(a.Expenses),
		Recurring:  recurringHandler.NewHandler(a.Recurring),
		Goals:      goalHandler.NewHandler(a.Goals),
		Todos:      todoHandler.NewHandler(a.Todos),
		Debts:      debtHandler.NewHandler(a.Debts),
		Income:     incomeHandler.NewHandler(a.Income),
		Categories: categoryHandler.NewHandler(a.Categories),
		Analytics:  analyticsHandler.NewHandler(a.Analytics),
		Export:     exportHandler.NewHandler(a.Export),
		Device:     deviceHandler.NewHandler(a.Device, a.Migrator),
	}

	router := buxferHttp.New(handlers, buxferHttp.Options{
		CORSOrigins:  cfg.Server.CORSOrigins,
		Authenticate: auth.Middleware(a.Auth, respond.Error),
		Publisher:    a.Publisher,
		Metrics:      buxferHttp.NewMetrics(reg),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shut down server", "error", err)
		}
	}()

	slog.Info("starting server", "port", srv.Addr, "members", a.Household.Members())

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
