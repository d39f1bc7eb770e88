package localstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/dates"
	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/expense"
	"github.com/MrJamesThe3rd/buxfer/internal/goal"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/money"
	"github.com/MrJamesThe3rd/buxfer/internal/recurring"
	"github.com/MrJamesThe3rd/buxfer/internal/todo"
)

// Entity names a kind of record kept in a device snapshot.
type Entity string

const (
	EntityExpenses     Entity = "expenses"
	EntityRecurrings   Entity = "recurrings"
	EntityBudgetGoals  Entity = "budgetGoals"
	EntitySavingsGoals Entity = "savingsGoals"
	EntityTodos        Entity = "todos"
)

// Entities in import order.
var Entities = []Entity{EntityExpenses, EntityRecurrings, EntityBudgetGoals, EntitySavingsGoals, EntityTodos}

//go:generate mockgen -source=migrate.go -destination=migrate_mock.go -package=localstate
type ExpenseCreator interface {
	Create(ctx context.Context, params expense.CreateParams) (*expense.Expense, error)
}

type RecurringCreator interface {
	Create(ctx context.Context, params recurring.CreateParams) (*recurring.Payment, error)
}

type GoalCreator interface {
	CreateBudget(ctx context.Context, params goal.CreateBudgetParams) (*goal.BudgetGoal, error)
	UpdateBudgetCurrent(ctx context.Context, member household.Member, id uuid.UUID, current int64) (*goal.BudgetGoal, error)
	CreateSavings(ctx context.Context, params goal.CreateSavingsParams) (*goal.SavingsGoal, error)
}

type TodoCreator interface {
	Create(ctx context.Context, owner household.Member, text string, due *time.Time) (*todo.Todo, error)
	Toggle(ctx context.Context, member household.Member, id uuid.UUID) (*todo.Todo, error)
}

// Migrator moves snapshots recorded on a device into the domain store.
type Migrator struct {
	store      Store
	expenses   ExpenseCreator
	recurrings RecurringCreator
	goals      GoalCreator
	todos      TodoCreator
}

func NewMigrator(store Store, expenses ExpenseCreator, recurrings RecurringCreator, goals GoalCreator, todos TodoCreator) *Migrator {
	return &Migrator{store: store, expenses: expenses, recurrings: recurrings, goals: goals, todos: todos}
}

// MigrateResult counts the records imported per entity.
type MigrateResult map[Entity]int

// Pending reports whether m has any snapshot left to import.
func (mg *Migrator) Pending(ctx context.Context, m household.Member) (bool, error) {
	keys, err := mg.store.Keys(ctx, SnapshotPrefix(m))
	if err != nil {
		return false, err
	}

	return len(keys) > 0, nil
}

// Migrate imports every snapshot of m. After each stored record the snapshot is rewritten with the
// records still to import, and it is deleted once empty, so a retry resumes where a failed run stopped.
func (mg *Migrator) Migrate(ctx context.Context, m household.Member) (MigrateResult, error) {
	result := MigrateResult{}

	for _, entity := range Entities {
		key := SnapshotKey(m, entity)

		raw, err := mg.store.Get(ctx, key)
		if errors.Is(err, errs.ErrNotFound) {
			continue
		}

		if err != nil {
			return result, err
		}

		n, err := mg.importEntity(ctx, m, entity, key, []byte(raw))
		if err != nil {
			if n > 0 {
				result[entity] = n
			}

			return result, fmt.Errorf("migrating %s: %w", entity, err)
		}

		if err := mg.store.Delete(ctx, key); err != nil {
			return result, fmt.Errorf("clearing %s snapshot: %w", entity, err)
		}

		slog.Info("migrated local snapshot", "member", m, "entity", entity, "count", n)
		result[entity] = n
	}

	return result, nil
}

// SaveSnapshot stores records of entity for m as JSON, replacing any previous snapshot.
func SaveSnapshot(ctx context.Context, store Store, m household.Member, entity Entity, records any) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding %s snapshot: %w", entity, err)
	}

	return store.Set(ctx, SnapshotKey(m, entity), string(raw), 0)
}

type snapshotExpense struct {
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	Category    string   `json:"category"`
	Date        string   `json:"date"`
	SplitWith   string   `json:"splitWith,omitempty"`
	SplitAmount *float64 `json:"splitAmount,omitempty"`
}

type snapshotRecurring struct {
	Description    string  `json:"description"`
	Amount         float64 `json:"amount"`
	Frequency      string  `json:"frequency"`
	NextDue        string  `json:"nextDue"`
	Category       string  `json:"category,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	VariableAmount bool    `json:"variableAmount,omitempty"`
	ReminderDays   int     `json:"reminderDays,omitempty"`
}

type snapshotBudgetGoal struct {
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Deadline      string  `json:"deadline"`
	Category      string  `json:"category"`
}

type snapshotSavingsGoal struct {
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Deadline      string  `json:"deadline"`
	Color         string  `json:"color"`
}

type snapshotTodo struct {
	Text string  `json:"text"`
	Done bool    `json:"done"`
	Due  *string `json:"due"`
}

func (mg *Migrator) importEntity(ctx context.Context, m household.Member, entity Entity, key string, raw []byte) (int, error) {
	switch entity {
	case EntityExpenses:
		return importEach(ctx, mg.store, key, raw, func(s snapshotExpense) error { return mg.importExpense(ctx, m, s) })
	case EntityRecurrings:
		return importEach(ctx, mg.store, key, raw, func(s snapshotRecurring) error { return mg.importRecurring(ctx, m, s) })
	case EntityBudgetGoals:
		return importEach(ctx, mg.store, key, raw, func(s snapshotBudgetGoal) error { return mg.importBudgetGoal(ctx, m, s) })
	case EntitySavingsGoals:
		return importEach(ctx, mg.store, key, raw, func(s snapshotSavingsGoal) error { return mg.importSavingsGoal(ctx, m, s) })
	case EntityTodos:
		return importEach(ctx, mg.store, key, raw, func(s snapshotTodo) error { return mg.importTodo(ctx, m, s) })
	}

	return 0, fmt.Errorf("unknown entity %q", entity)
}

// importEach stores the records of one snapshot in order. The snapshot under key is shortened after
// every stored record, so it only ever holds records that have not been imported.
func importEach[T any](ctx context.Context, store Store, key string, raw []byte, fn func(T) error) (int, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return 0, fmt.Errorf("decoding snapshot: %w", err)
	}

	for i, rec := range records {
		var r T
		if err := json.Unmarshal(rec, &r); err != nil {
			return i, fmt.Errorf("record %d: decoding: %w", i, err)
		}

		if err := fn(r); err != nil {
			return i, fmt.Errorf("record %d: %w", i, err)
		}

		rest, err := json.Marshal(records[i+1:])
		if err != nil {
			return i + 1, fmt.Errorf("encoding remaining records: %w", err)
		}

		if err := store.Set(ctx, key, string(rest), 0); err != nil {
			return i + 1, fmt.Errorf("saving migration progress: %w", err)
		}
	}

	return len(records), nil
}

func (mg *Migrator) importExpense(ctx context.Context, m household.Member, s snapshotExpense) error {
	date, err := dates.Parse(s.Date)
	if err != nil {
		return err
	}

	params := expense.CreateParams{
		Owner:       m,
		Description: s.Description,
		Amount:      money.FromFloat(s.Amount),
		Category:    s.Category,
		Date:        date,
	}

	if s.SplitWith != "" {
		params.SplitWith = new(household.Member(s.SplitWith))
	}

	if s.SplitAmount != nil {
		params.SplitAmount = new(money.FromFloat(*s.SplitAmount))
	}

	_, err = mg.expenses.Create(ctx, params)

	return err
}

func (mg *Migrator) importRecurring(ctx context.Context, m household.Member, s snapshotRecurring) error {
	due, err := recurring.ParseDue(s.NextDue)
	if err != nil {
		return err
	}

	_, err = mg.recurrings.Create(ctx, recurring.CreateParams{
		Owner:          m,
		Description:    s.Description,
		Amount:         money.FromFloat(s.Amount),
		Frequency:      recurring.Frequency(strings.ToLower(s.Frequency)),
		NextDue:        due,
		Category:       s.Category,
		Notes:          s.Notes,
		VariableAmount: s.VariableAmount,
		ReminderDays:   s.ReminderDays,
	})

	return err
}

func (mg *Migrator) importBudgetGoal(ctx context.Context, m household.Member, s snapshotBudgetGoal) error {
	deadline, err := optionalDate(s.Deadline)
	if err != nil {
		return err
	}

	g, err := mg.goals.CreateBudget(ctx, goal.CreateBudgetParams{
		Owner:        m,
		Name:         s.Name,
		TargetAmount: money.FromFloat(s.TargetAmount),
		Category:     s.Category,
		Deadline:     deadline,
	})
	if err != nil {
		return err
	}

	if current := money.FromFloat(s.CurrentAmount); current > 0 {
		if _, err := mg.goals.UpdateBudgetCurrent(ctx, m, g.ID, current); err != nil {
			return err
		}
	}

	return nil
}

func (mg *Migrator) importSavingsGoal(ctx context.Context, m household.Member, s snapshotSavingsGoal) error {
	deadline, err := optionalDate(s.Deadline)
	if err != nil {
		return err
	}

	_, err = mg.goals.CreateSavings(ctx, goal.CreateSavingsParams{
		Owner:         m,
		Name:          s.Name,
		TargetAmount:  money.FromFloat(s.TargetAmount),
		CurrentAmount: money.FromFloat(s.CurrentAmount),
		Deadline:      deadline,
		Color:         s.Color,
	})

	return err
}

func (mg *Migrator) importTodo(ctx context.Context, m household.Member, s snapshotTodo) error {
	var due *time.Time

	if s.Due != nil {
		d, err := optionalDate(*s.Due)
		if err != nil {
			return err
		}

		due = d
	}

	t, err := mg.todos.Create(ctx, m, s.Text, due)
	if err != nil {
		return err
	}

	if s.Done {
		if _, err := mg.todos.Toggle(ctx, m, t.ID); err != nil {
			return err
		}
	}

	return nil
}

func optionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	d, err := dates.Parse(s)
	if err != nil {
		return nil, err
	}

	return &d, nil
}
