package view_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/buxfer/cmd/tui/internal/view"
)

func TestTimeframe_Window(t *testing.T) {
	now := time.Date(2024, time.March, 13, 15, 30, 0, 0, time.UTC)

	type testCase struct {
		name      string
		frame     view.Timeframe
		wantStart string
		wantEnd   string
		wantAll   bool
	}

	tests := []testCase{
		{name: "today", frame: view.TimeframeToday, wantStart: "2024-03-13", wantEnd: "2024-03-13"},
		{name: "this week starts monday", frame: view.TimeframeThisWeek, wantStart: "2024-03-11", wantEnd: "2024-03-17"},
		{name: "this month", frame: view.TimeframeThisMonth, wantStart: "2024-03-01", wantEnd: "2024-03-31"},
		{name: "last month", frame: view.TimeframeLastMonth, wantStart: "2024-02-01", wantEnd: "2024-02-29"},
		{name: "custom falls back to this month", frame: view.TimeframeCustom, wantStart: "2024-03-01", wantEnd: "2024-03-31"},
		{name: "all time", frame: view.TimeframeAll, wantAll: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tt.frame.Window(now)

			if tt.wantAll {
				assert.True(t, w.IsAllTime())
				return
			}

			assert.False(t, w.IsAllTime())
			assert.Equal(t, tt.wantStart, view.FormatDate(w.Start))
			assert.Equal(t, tt.wantEnd, view.FormatDate(w.End))
		})
	}
}

func TestTimeframe_String(t *testing.T) {
	assert.Equal(t, "Last Month", view.TimeframeLastMonth.String())
	assert.Equal(t, "Unknown", view.Timeframe(42).String())
}
