package analytics

import (
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/analytics"
	"github.com/MrJamesThe3rd/buxfer/internal/http/respond"
)

type windowResponse struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
	All   bool   `json:"all"`
}

type categoryTotalResponse struct {
	Category   string  `json:"category"`
	Total      int64   `json:"total"`
	Count      int     `json:"count"`
	Average    int64   `json:"average"`
	Percentage float64 `json:"percentage"`
}

type breakdownResponse struct {
	Categories []categoryTotalResponse `json:"categories"`
	GrandTotal int64                   `json:"grand_total"`
}

type comparisonResponse struct {
	Current              int64   `json:"current"`
	Previous             int64   `json:"previous"`
	CurrentDailyAverage  int64   `json:"current_daily_average"`
	PreviousDailyAverage int64   `json:"previous_daily_average"`
	Change               float64 `json:"change"`
}

type dayTotalResponse struct {
	Date  string `json:"date"`
	Total int64  `json:"total"`
}

type seriesResponse struct {
	Days         []dayTotalResponse `json:"days"`
	Total        int64              `json:"total"`
	DailyAverage int64              `json:"daily_average"`
}

type upcomingResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
	NextDue     string    `json:"next_due"`
	DaysUntil   int       `json:"days_until"`
	Overdue     bool      `json:"overdue"`
}

type dayBalanceResponse struct {
	Date     string `json:"date"`
	Income   int64  `json:"income"`
	Outgoing int64  `json:"outgoing"`
	Balance  int64  `json:"balance"`
}

type goalStatusResponse struct {
	Name     string             `json:"name"`
	Kind     analytics.GoalKind `json:"kind"`
	Current  int64              `json:"current"`
	Target   int64              `json:"target"`
	Percent  float64            `json:"percent"`
	Achieved bool               `json:"achieved"`
	Exceeded bool               `json:"exceeded"`
}

type incomeTotalsResponse struct {
	Primary int64 `json:"primary"`
	Other   int64 `json:"other"`
	Total   int64 `json:"total"`
}

type dashboardResponse struct {
	Member     string               `json:"member"`
	AsOf       string               `json:"as_of"`
	Today      int64                `json:"today"`
	Week       int64                `json:"week"`
	Month      int64                `json:"month"`
	Comparison comparisonResponse   `json:"comparison"`
	Breakdown  breakdownResponse    `json:"breakdown"`
	Series     seriesResponse       `json:"series"`
	Upcoming   []upcomingResponse   `json:"upcoming"`
	Income     incomeTotalsResponse `json:"income"`
	Net        int64                `json:"net"`
	Balance    []dayBalanceResponse `json:"balance"`
	Goals      []goalStatusResponse `json:"goals"`
}

type reportResponse struct {
	Window     windowResponse      `json:"window"`
	Total      int64               `json:"total"`
	Breakdown  breakdownResponse   `json:"breakdown"`
	Comparison *comparisonResponse `json:"comparison,omitempty"`
}

func toWindowResponse(w analytics.Window) windowResponse {
	if w.IsAllTime() {
		return windowResponse{All: true}
	}

	return windowResponse{Start: respond.DateString(w.Start), End: respond.DateString(w.End)}
}

func toBreakdownResponse(b analytics.CategoryBreakdown) breakdownResponse {
	resp := breakdownResponse{Categories: make([]categoryTotalResponse, len(b.Categories)), GrandTotal: b.GrandTotal}
	for i, c := range b.Categories {
		resp.Categories[i] = categoryTotalResponse(c)
	}

	return resp
}

func toComparisonResponse(c analytics.Comparison) comparisonResponse {
	return comparisonResponse(c)
}

func toBalanceResponse(days []analytics.DayBalance) []dayBalanceResponse {
	resp := make([]dayBalanceResponse, len(days))
	for i, d := range days {
		resp[i] = dayBalanceResponse{
			Date:     respond.DateString(d.Date),
			Income:   d.Income,
			Outgoing: d.Outgoing,
			Balance:  d.Balance,
		}
	}

	return resp
}

func toDashboardResponse(d *analytics.Dashboard) dashboardResponse {
	series := seriesResponse{
		Days:         make([]dayTotalResponse, len(d.Series.Days)),
		Total:        d.Series.Total,
		DailyAverage: d.Series.DailyAverage,
	}
	for i, day := range d.Series.Days {
		series.Days[i] = dayTotalResponse{Date: respond.DateString(day.Date), Total: day.Total}
	}

	upcoming := make([]upcomingResponse, len(d.Upcoming))
	for i, u := range d.Upcoming {
		upcoming[i] = upcomingResponse{
			ID:          u.Payment.ID,
			Description: u.Payment.Description,
			Amount:      u.Payment.Amount,
			NextDue:     respond.DateString(u.Payment.NextDue),
			DaysUntil:   u.DaysUntil,
			Overdue:     u.Overdue,
		}
	}

	goals := make([]goalStatusResponse, len(d.Goals))
	for i, g := range d.Goals {
		goals[i] = goalStatusResponse(g)
	}

	return dashboardResponse{
		Member:     string(d.Member),
		AsOf:       respond.DateString(d.AsOf),
		Today:      d.Today,
		Week:       d.Week,
		Month:      d.Month,
		Comparison: toComparisonResponse(d.Comparison),
		Breakdown:  toBreakdownResponse(d.Breakdown),
		Series:     series,
		Upcoming:   upcoming,
		Income:     incomeTotalsResponse(d.Income),
		Net:        d.Net,
		Balance:    toBalanceResponse(d.Balance),
		Goals:      goals,
	}
}
