// Package output renders analytics results as terminal tables.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/MrJamesThe3rd/buxfer/internal/analytics"
	"github.com/MrJamesThe3rd/buxfer/internal/dates"
	"github.com/MrJamesThe3rd/buxfer/internal/money"
)

const barWidth = 20

func WindowLabel(w analytics.Window) string {
	if w.IsAllTime() {
		return "all time"
	}

	return fmt.Sprintf("%s to %s", dates.Format(w.Start), dates.Format(w.End))
}

// PrintReport writes the category breakdown of r followed by the comparison with the previous period.
func PrintReport(w io.Writer, r *analytics.Report) {
	fmt.Fprintf(w, "Spending %s\n\n", WindowLabel(r.Window))

	if len(r.Breakdown.Categories) == 0 {
		fmt.Fprintln(w, "No expenses in this window.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Category", "Count", "Average", "Total", "Share", ""})

	for _, c := range r.Breakdown.Categories {
		t.AppendRow(table.Row{
			c.Category,
			c.Count,
			money.Format(c.Average),
			money.Format(c.Total),
			fmt.Sprintf("%.1f%%", c.Percentage),
			text.FgCyan.Sprint(bar(c.Percentage)),
		})
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{"", "", text.Bold.Sprint("Total"), text.Bold.Sprint(money.Format(r.Total)), "", ""})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	t.Render()

	if r.Comparison != nil {
		fmt.Fprintln(w)
		printComparison(w, *r.Comparison)
	}
}

func printComparison(w io.Writer, c analytics.Comparison) {
	change := fmt.Sprintf("%+.1f%%", c.Change)

	switch {
	case c.Change > 0:
		change = text.FgRed.Sprint(change)
	case c.Change < 0:
		change = text.FgGreen.Sprint(change)
	}

	fmt.Fprintf(w, "Previous period: %s (%s/day)\n", money.Format(c.Previous), money.Format(c.PreviousDailyAverage))
	fmt.Fprintf(w, "This period:     %s (%s/day)  %s\n", money.Format(c.Current), money.Format(c.CurrentDailyAverage), change)
}

// PrintBalance writes one row per day of a projected running balance. Days where the balance goes
// negative are highlighted.
func PrintBalance(w io.Writer, days []analytics.DayBalance) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Date", "Income", "Outgoing", "Balance"})

	for _, d := range days {
		balance := money.Format(d.Balance)
		if d.Balance < 0 {
			balance = text.FgRed.Sprint(balance)
		}

		t.AppendRow(table.Row{dates.Format(d.Date), money.Format(d.Income), money.Format(d.Outgoing), balance})
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	t.Render()
}

func bar(percentage float64) string {
	n := int(percentage / 100 * barWidth)
	n = min(max(n, 0), barWidth)

	return strings.Repeat("█", n)
}
