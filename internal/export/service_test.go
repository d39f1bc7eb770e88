package export_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/buxfer/internal/encoding"
	"github.com/MrJamesThe3rd/buxfer/internal/expense"
	"github.com/MrJamesThe3rd/buxfer/internal/export"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/recurring"
	"github.com/MrJamesThe3rd/buxfer/internal/todo"
)

const ray = household.Member("ray")

type mocks struct {
	expenses   *export.MockExpenseStore
	recurrings *export.MockRecurringLister
	todos      *export.MockTodoLister
}

func newService(t *testing.T) (*export.Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		expenses:   export.NewMockExpenseStore(ctrl),
		recurrings: export.NewMockRecurringLister(ctrl),
		todos:      export.NewMockTodoLister(ctrl),
	}

	return export.NewService(m.expenses, m.recurrings, m.todos), m
}

func TestService_ExpensesCSV(t *testing.T) {
	svc, m := newService(t)
	owner := ray
	filter := expense.ListFilter{Owner: &owner}

	m.expenses.EXPECT().List(gomock.Any(), filter).Return([]*expense.Expense{
		{Description: "Coffee", Category: "Food", Amount: 240, Date: date(2024, 3, 1)},
	}, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.ExpensesCSV(context.Background(), &buf, filter))
	assert.Contains(t, buf.String(), `2024-03-01,"Coffee",Food,2.40`)
}

func TestService_ExpensesCSV_ListError(t *testing.T) {
	svc, m := newService(t)
	m.expenses.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	var buf bytes.Buffer
	err := svc.ExpensesCSV(context.Background(), &buf, expense.ListFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing expenses")
	assert.Empty(t, buf.String())
}

func TestService_Calendar(t *testing.T) {
	svc, m := newService(t)
	due := date(2024, 3, 5)

	m.recurrings.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, owner *household.Member) ([]*recurring.Payment, error) {
			require.NotNil(t, owner)
			assert.Equal(t, ray, *owner)
			return []*recurring.Payment{
				{ID: uuid.New(), Description: "Gym", Frequency: recurring.Weekly, NextDue: date(2024, 3, 4)},
			}, nil
		})
	m.todos.EXPECT().List(gomock.Any(), ray).Return([]*todo.Todo{
		{ID: uuid.New(), Text: "Pay council tax", Due: &due},
	}, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.Calendar(context.Background(), &buf, ray, time.Now()))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "RRULE:FREQ=WEEKLY")
	assert.Contains(t, out, "SUMMARY:Task: Pay council tax")
}

func TestService_ImportCSV(t *testing.T) {
	type testCase struct {
		name        string
		input       string
		setupMock   func(m mocks)
		wantCount   int
		wantCharset encoding.Charset
		wantErr     bool
	}

	tests := []testCase{
		{
			name: "Success",
			input: "Date,Description,Category,Amount\n" +
				"2024-03-01,\"Tesco\",,12.50\n" +
				"2024-03-02,\"Bus\",Transport,3\n",
			setupMock: func(m mocks) {
				m.expenses.EXPECT().CreateBatch(gomock.Any(), []expense.CreateParams{
					{Owner: ray, Description: "Tesco", Amount: 1250, Date: date(2024, 3, 1)},
					{Owner: ray, Description: "Bus", Amount: 300, Category: "Transport", Date: date(2024, 3, 2)},
				}).Return([]*expense.Expense{{}, {}}, nil)
			},
			wantCount: 2,
		},
		{
			name:  "ReportsByteOrderMark",
			input: "\xEF\xBB\xBFDate,Description,Category,Amount\n2024-03-01,\"Café\",Food,2.40\n",
			setupMock: func(m mocks) {
				m.expenses.EXPECT().CreateBatch(gomock.Any(), []expense.CreateParams{
					{Owner: ray, Description: "Café", Amount: 240, Category: "Food", Date: date(2024, 3, 1)},
				}).Return([]*expense.Expense{{}}, nil)
			},
			wantCount:   1,
			wantCharset: encoding.UTF8BOM,
		},
		{
			name:    "ParseErrorStoresNothing",
			input:   "Date,Description,Category,Amount\nnot-a-date,\"x\",,1\n",
			wantErr: true,
		},
		{
			name:  "PartialFailure",
			input: "Date,Description,Category,Amount\n2024-03-01,\"a\",,1\n2024-03-01,\"b\",,1\n",
			setupMock: func(m mocks) {
				m.expenses.EXPECT().CreateBatch(gomock.Any(), gomock.Len(2)).
					Return([]*expense.Expense{{}}, errors.New("creating expense 1: boom"))
			},
			wantCount: 1,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			got, err := svc.ImportCSV(context.Background(), strings.NewReader(tt.input), ray)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			assert.Len(t, got.Expenses, tt.wantCount)
			wantCharset := tt.wantCharset
			if wantCharset == "" {
				wantCharset = encoding.UTF8
			}

			assert.Equal(t, wantCharset, got.Charset)
		})
	}
}
