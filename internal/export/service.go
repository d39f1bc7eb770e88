// Package export writes household data to CSV, iCalendar and Excel files and imports expenses from CSV.
package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MrJamesThe3rd/buxfer/internal/encoding"
	"github.com/MrJamesThe3rd/buxfer/internal/expense"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/recurring"
	"github.com/MrJamesThe3rd/buxfer/internal/todo"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=export
type ExpenseStore interface {
	List(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error)
	CreateBatch(ctx context.Context, params []expense.CreateParams) ([]*expense.Expense, error)
}

type RecurringLister interface {
	List(ctx context.Context, owner *household.Member) ([]*recurring.Payment, error)
}

type TodoLister interface {
	List(ctx context.Context, owner household.Member) ([]*todo.Todo, error)
}

// Service loads the data behind each export.
type Service struct {
	expenses   ExpenseStore
	recurrings RecurringLister
	todos      TodoLister
}

func NewService(expenses ExpenseStore, recurrings RecurringLister, todos TodoLister) *Service {
	return &Service{expenses: expenses, recurrings: recurrings, todos: todos}
}

// ExpensesCSV writes the expenses matching filter as CSV.
func (s *Service) ExpensesCSV(ctx context.Context, w io.Writer, filter expense.ListFilter) error {
	expenses, err := s.expenses.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("listing expenses: %w", err)
	}

	return WriteExpensesCSV(w, expenses)
}

// ExpensesXLSX writes the expenses matching filter as an Excel workbook.
func (s *Service) ExpensesXLSX(ctx context.Context, w io.Writer, filter expense.ListFilter) error {
	expenses, err := s.expenses.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("listing expenses: %w", err)
	}

	return WriteExpensesXLSX(w, expenses)
}

// Calendar writes member's recurring payments and dated todos as an iCalendar file.
func (s *Service) Calendar(ctx context.Context, w io.Writer, member household.Member, now time.Time) error {
	payments, err := s.recurrings.List(ctx, &member)
	if err != nil {
		return fmt.Errorf("listing recurring payments: %w", err)
	}

	todos, err := s.todos.List(ctx, member)
	if err != nil {
		return fmt.Errorf("listing todos: %w", err)
	}

	return WriteCalendar(w, payments, todos, now)
}

// ImportResult lists the expenses ImportCSV stored and the charset the file was read as.
type ImportResult struct {
	Expenses []*expense.Expense
	Charset  encoding.Charset
}

// ImportCSV records every row of a CSV export as an expense owned by owner.
// Rows without a category are auto-categorized. Nothing is stored if the file fails to parse.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader, owner household.Member) (ImportResult, error) {
	records, charset, err := ReadExpensesCSV(r)
	if err != nil {
		return ImportResult{Charset: charset}, fmt.Errorf("parsing csv: %w", err)
	}

	params := make([]expense.CreateParams, 0, len(records))

	for _, rec := range records {
		params = append(params, expense.CreateParams{
			Owner:       owner,
			Description: rec.Description,
			Amount:      rec.Amount,
			Category:    rec.Category,
			Date:        rec.Date,
		})
	}

	created, err := s.expenses.CreateBatch(ctx, params)
	if err != nil {
		return ImportResult{Expenses: created, Charset: charset}, fmt.Errorf("importing expenses: %w", err)
	}

	return ImportResult{Expenses: created, Charset: charset}, nil
}
