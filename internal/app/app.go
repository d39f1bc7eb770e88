// Package app wires stores and services from configuration for the buxfer binaries.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MrJamesThe3rd/buxfer/internal/analytics"
	"github.com/MrJamesThe3rd/buxfer/internal/auth"
	authStore "github.com/MrJamesThe3rd/buxfer/internal/auth/store"
	"github.com/MrJamesThe3rd/buxfer/internal/category"
	categoryStore "github.com/MrJamesThe3rd/buxfer/internal/category/store"
	"github.com/MrJamesThe3rd/buxfer/internal/config"
	"github.com/MrJamesThe3rd/buxfer/internal/database"
	"github.com/MrJamesThe3rd/buxfer/internal/debt"
	debtStore "github.com/MrJamesThe3rd/buxfer/internal/debt/store"
	"github.com/MrJamesThe3rd/buxfer/internal/events"
	"github.com/MrJamesThe3rd/buxfer/internal/expense"
	expenseStore "github.com/MrJamesThe3rd/buxfer/internal/expense/store"
	"github.com/MrJamesThe3rd/buxfer/internal/export"
	"github.com/MrJamesThe3rd/buxfer/internal/goal"
	goalStore "github.com/MrJamesThe3rd/buxfer/internal/goal/store"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/income"
	incomeStore "github.com/MrJamesThe3rd/buxfer/internal/income/store"
	"github.com/MrJamesThe3rd/buxfer/internal/localstate"
	"github.com/MrJamesThe3rd/buxfer/internal/recurring"
	recurringStore "github.com/MrJamesThe3rd/buxfer/internal/recurring/store"
	"github.com/MrJamesThe3rd/buxfer/internal/todo"
	todoStore "github.com/MrJamesThe3rd/buxfer/internal/todo/store"
)

// App holds every service of a running process and the resources behind them.
type App struct {
	Household *household.Household

	Categories *category.Service
	Goals      *goal.Service
	Expenses   *expense.Service
	Recurring  *recurring.Service
	Debts      *debt.Service
	Income     *income.Service
	Todos      *todo.Service
	Analytics  *analytics.Service
	Export     *export.Service
	Auth       *auth.Service

	Local     localstate.Store
	Device    *localstate.Device
	Migrator  *localstate.Migrator
	Publisher events.Publisher

	db *sql.DB
}

// New connects to the database, applies migrations, seeds the default categories and builds the services.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := database.Open(ctx, cfg.ConnectionString(), database.Pool{
		MaxOpen:     cfg.DB.MaxOpenConns,
		MaxIdle:     cfg.DB.MaxIdleConns,
		MaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	local, err := localstate.Open(ctx, localstate.Options{
		Backend:    localstate.Backend(cfg.LocalState.Backend),
		SQLitePath: cfg.LocalState.SQLitePath,
		RedisAddr:  cfg.LocalState.RedisAddr,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("opening local state: %w", err)
	}

	a := &App{
		Household: household.New(cfg.Household.Members, cfg.Household.DebtViewers),
		Local:     local,
		Publisher: events.Noop{},
		db:        db,
	}

	if cfg.AMQP.URL != "" {
		pub, err := events.DialAMQP(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			a.Close()
			return nil, err
		}

		a.Publisher = pub
	}

	a.Categories = category.NewService(categoryStore.New(db),
		category.WithPolicy(category.MatchPolicy(cfg.Categories.Match)),
		category.WithDefault(cfg.Categories.Default),
	)
	a.Goals = goal.NewService(goalStore.New(db), a.Categories)
	a.Expenses = expense.NewService(expenseStore.New(db), a.Categories, a.Goals, a.Household)
	a.Recurring = recurring.NewService(recurringStore.New(db), a.Expenses)
	a.Debts = debt.NewService(debtStore.New(db), a.Expenses, a.Household)
	a.Income = income.NewService(incomeStore.New(db))
	a.Todos = todo.NewService(todoStore.New(db))
	a.Analytics = analytics.NewService(a.Expenses, a.Recurring, a.Income, a.Goals)
	a.Export = export.NewService(a.Expenses, a.Recurring, a.Todos)
	a.Auth = auth.NewService(authStore.New(db), auth.NewTokens(cfg.Auth.Secret, cfg.Auth.TokenTTL), local, a.Household)
	a.Device = localstate.NewDevice(local, a.Household)
	a.Migrator = localstate.NewMigrator(local, a.Expenses, a.Recurring, a.Goals, a.Todos)

	if err := a.Categories.SeedDefaults(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("seeding categories: %w", err)
	}

	return a, nil
}

func (a *App) Close() error {
	var errList []error

	if err := a.Publisher.Close(); err != nil {
		errList = append(errList, err)
	}

	if err := a.Local.Close(); err != nil {
		errList = append(errList, err)
	}

	if err := a.db.Close(); err != nil {
		errList = append(errList, err)
	}

	err := errors.Join(errList...)
	if err != nil {
		slog.Error("failed to close resources", "error", err)
	}

	return err
}
