package export_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/buxfer/internal/export"
	"github.com/MrJamesThe3rd/buxfer/internal/recurring"
	"github.com/MrJamesThe3rd/buxfer/internal/todo"
)

// unfold joins continuation lines back onto the line they continue.
func unfold(s string) string {
	return strings.ReplaceAll(s, "\r\n ", "")
}

func TestWriteCalendar(t *testing.T) {
	rentID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	taskID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	due := date(2024, 3, 10)

	payments := []*recurring.Payment{
		{ID: rentID, Description: "Rent; flat 2", Frequency: recurring.Monthly, NextDue: date(2024, 3, 1)},
	}
	todos := []*todo.Todo{
		{ID: taskID, Text: "Renew insurance", Due: &due},
		{ID: uuid.New(), Text: "No due date"},
	}
	now := time.Date(2024, 2, 20, 15, 4, 5, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, export.WriteCalendar(&buf, payments, todos, now))

	got := unfold(buf.String())

	assert.True(t, strings.HasPrefix(got, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(got, "END:VCALENDAR\r\n"))

	for _, line := range []string{
		"VERSION:2.0",
		"PRODID:-//Buxfer//EN",
		"UID:11111111-1111-1111-1111-111111111111@buxfer",
		"DTSTAMP:20240220T150405Z",
		`SUMMARY:Recurring: Rent\; flat 2`,
		"DTSTART;VALUE=DATE:20240301",
		"RRULE:FREQ=MONTHLY",
		"UID:22222222-2222-2222-2222-222222222222@buxfer",
		"SUMMARY:Task: Renew insurance",
		"DTSTART;VALUE=DATE:20240310",
	} {
		assert.Contains(t, got, line+"\r\n")
	}

	assert.Equal(t, 2, strings.Count(got, "BEGIN:VEVENT\r\n"))
	assert.Equal(t, 1, strings.Count(got, "RRULE:"), "todos do not repeat")
	assert.NotContains(t, got, "No due date")
}

func TestWriteCalendar_FoldsLongLines(t *testing.T) {
	due := date(2024, 3, 10)
	text := strings.Repeat("Sort out the loft insulation quote before winter ", 4) + "ends ünïcödé"

	var buf bytes.Buffer
	require.NoError(t, export.WriteCalendar(&buf, nil, []*todo.Todo{{ID: uuid.New(), Text: text, Due: &due}}, time.Now()))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n") {
		assert.LessOrEqual(t, len(line), 75, line)
	}

	assert.Contains(t, unfold(buf.String()), "SUMMARY:Task: "+text+"\r\n")
}

func TestWriteCalendar_Frequencies(t *testing.T) {
	for _, f := range []recurring.Frequency{recurring.Weekly, recurring.Monthly, recurring.Yearly} {
		t.Run(string(f), func(t *testing.T) {
			p := &recurring.Payment{ID: uuid.New(), Description: "x", Frequency: f, NextDue: date(2024, 1, 1)}

			var buf bytes.Buffer
			require.NoError(t, export.WriteCalendar(&buf, []*recurring.Payment{p}, nil, time.Now()))
			assert.Contains(t, unfold(buf.String()), "RRULE:FREQ="+strings.ToUpper(string(f))+"\r\n")
		})
	}
}
