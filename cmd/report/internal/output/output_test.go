package output_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/buxfer/cmd/report/internal/output"
	"github.com/MrJamesThe3rd/buxfer/internal/analytics"
)

func day(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

func TestMain(m *testing.M) {
	text.DisableColors()
	m.Run()
}

func TestWindowLabel(t *testing.T) {
	assert.Equal(t, "all time", output.WindowLabel(analytics.AllTime()))
	assert.Equal(t, "2024-03-01 to 2024-03-31", output.WindowLabel(analytics.ThisMonth(day("2024-03-15"))))
}

func TestPrintReport(t *testing.T) {
	r := &analytics.Report{
		Window: analytics.ThisMonth(day("2024-03-15")),
		Total:  15000,
		Breakdown: analytics.CategoryBreakdown{
			GrandTotal: 15000,
			Categories: []analytics.CategoryTotal{
				{Category: "Groceries", Total: 10000, Count: 4, Average: 2500, Percentage: 66.7},
				{Category: "Transport", Total: 5000, Count: 1, Average: 5000, Percentage: 33.3},
			},
		},
		Comparison: &analytics.Comparison{Current: 15000, Previous: 10000, Change: 50},
	}

	var buf bytes.Buffer
	output.PrintReport(&buf, r)

	out := buf.String()
	assert.Contains(t, out, "Spending 2024-03-01 to 2024-03-31")
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "100.00")
	assert.Contains(t, out, "66.7%")
	assert.Contains(t, out, "150.00")
	assert.Contains(t, out, "+50.0%")
}

func TestPrintReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	output.PrintReport(&buf, &analytics.Report{Window: analytics.AllTime()})

	assert.Contains(t, buf.String(), "No expenses in this window.")
	assert.NotContains(t, buf.String(), "Previous period")
}

func TestPrintBalance(t *testing.T) {
	days := []analytics.DayBalance{
		{Date: day("2024-03-01"), Income: 200000, Balance: 200000},
		{Date: day("2024-03-02"), Outgoing: 250000, Balance: -50000},
	}

	var buf bytes.Buffer
	output.PrintBalance(&buf, days)

	out := buf.String()
	assert.Contains(t, out, "2024-03-01")
	assert.Contains(t, out, "2000.00")
	assert.Contains(t, out, "-500.00")
}
