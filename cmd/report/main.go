package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/buxfer/cmd/report/internal/output"
	"github.com/MrJamesThe3rd/buxfer/internal/analytics"
	"github.com/MrJamesThe3rd/buxfer/internal/app"
	"github.com/MrJamesThe3rd/buxfer/internal/config"
	"github.com/MrJamesThe3rd/buxfer/internal/dates"
	"github.com/MrJamesThe3rd/buxfer/internal/expense"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/logging"
)

type Params struct {
	Window  string `descr:"Reporting window" alts:"today,week,month,all" strict:"true" default:"month"`
	Start   string `descr:"Start date (YYYY-MM-DD), overrides --window" optional:"true"`
	End     string `descr:"End date (YYYY-MM-DD), overrides --window" optional:"true"`
	Owner   string `descr:"Only count this member's expenses" optional:"true"`
	Balance bool   `descr:"Project the owner's running balance instead of a spending report" optional:"true"`
	Opening int64  `descr:"Opening balance in cents for --balance" default:"0"`
	XLSX    string `descr:"Also write the window's expenses to this workbook" optional:"true"`
}

func main() {
	boa.NewCmdT[Params]("buxfer-report").
		WithShort("Print household spending reports").
		WithLong("Summarizes spending by category over a window and compares it with the period before, or projects a member's daily balance.").
		WithRunFunc(func(params *Params) {
			if err := run(params); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}).
		Run()
}

func run(params *Params) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logging.Setup(cfg.Log.Level)

	ctx := context.Background()

	w, err := window(params, time.Now())
	if err != nil {
		return err
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	var owner *household.Member

	if params.Owner != "" {
		m := household.Member(params.Owner)
		if !a.Household.Contains(m) {
			return fmt.Errorf("%q is not a household member", m)
		}

		owner = &m
	}

	if params.Balance {
		if owner == nil {
			return fmt.Errorf("--balance needs --owner")
		}

		days, err := a.Analytics.Balance(ctx, *owner, w, params.Opening)
		if err != nil {
			return err
		}

		output.PrintBalance(os.Stdout, days)

		return nil
	}

	r, err := a.Analytics.Report(ctx, owner, w)
	if err != nil {
		return err
	}

	output.PrintReport(os.Stdout, r)

	if params.XLSX != "" {
		if err := writeWorkbook(ctx, a, params.XLSX, owner, w); err != nil {
			return err
		}

		slog.Info("wrote workbook", "path", params.XLSX)
	}

	return nil
}

func window(params *Params, now time.Time) (analytics.Window, error) {
	if params.Start == "" && params.End == "" {
		return analytics.ParseWindow(params.Window, now)
	}

	if params.Start == "" || params.End == "" {
		return analytics.Window{}, fmt.Errorf("--start and --end must be given together")
	}

	start, err := dates.Parse(params.Start)
	if err != nil {
		return analytics.Window{}, fmt.Errorf("--start: %w", err)
	}

	end, err := dates.Parse(params.End)
	if err != nil {
		return analytics.Window{}, fmt.Errorf("--end: %w", err)
	}

	if end.Before(start) {
		return analytics.Window{}, fmt.Errorf("--end is before --start")
	}

	return analytics.Range(start, end), nil
}

func writeWorkbook(ctx context.Context, a *app.App, path string, owner *household.Member, w analytics.Window) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	filter := expense.ListFilter{Owner: owner}
	if !w.IsAllTime() {
		filter.StartDate, filter.EndDate = &w.Start, &w.End
	}

	if err := a.Export.ExpensesXLSX(ctx, f, filter); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return f.Close()
}
