package debt_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/buxfer/internal/debt"
	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/expense"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

var (
	ray   = household.Member("ray")
	amber = household.Member("amber")
	today = time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
)

func newService(t *testing.T) (*debt.Service, *debt.MockRepository, *debt.MockExpenseRecorder) {
	ctrl := gomock.NewController(t)

	repo := debt.NewMockRepository(ctrl)
	expenses := debt.NewMockExpenseRecorder(ctrl)
	hh := household.New([]string{"ray", "amber"}, []string{"ray"})

	return debt.NewService(repo, expenses, hh), repo, expenses
}

func TestService_Create(t *testing.T) {
	t.Run("SharedDebtRecordsSplitExpense", func(t *testing.T) {
		svc, repo, expenses := newService(t)

		repo.EXPECT().CreateDebt(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *debt.Debt) error {
				assert.Equal(t, debt.KindHousehold, d.Kind)
				assert.Equal(t, d.TotalAmount, d.RemainingAmount)
				d.ID = uuid.New()
				return nil
			})
		expenses.EXPECT().
			Create(gomock.Any(), expense.CreateParams{
				Owner: ray, Description: "Sofa", Amount: 80001, Category: "Debts", Date: today,
				SplitWith: &amber, SplitAmount: new(int64(40000)),
			}).
			Return(&expense.Expense{ID: uuid.New()}, nil)

		d, e, err := svc.Create(context.Background(), debt.CreateParams{
			Owner: ray, Description: "Sofa", TotalAmount: 80001, Shared: true, Date: today,
		})
		require.NoError(t, err)
		assert.NotNil(t, d)
		assert.NotNil(t, e)
	})

	t.Run("UnsharedDebtRecordsFullExpense", func(t *testing.T) {
		svc, repo, expenses := newService(t)

		repo.EXPECT().CreateDebt(gomock.Any(), gomock.Any()).Return(nil)
		expenses.EXPECT().
			Create(gomock.Any(), expense.CreateParams{
				Owner: amber, Description: "Laptop", Amount: 120000, Category: "Debts", Date: today,
			}).
			Return(&expense.Expense{ID: uuid.New()}, nil)

		_, _, err := svc.Create(context.Background(), debt.CreateParams{
			Owner: amber, Description: "Laptop", TotalAmount: 120000, Date: today,
		})
		require.NoError(t, err)
	})

	t.Run("Validation", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, _, err := svc.Create(context.Background(), debt.CreateParams{Owner: ray, Description: "x", TotalAmount: 0, Date: today})
		assert.True(t, errs.IsValidation(err))

		_, _, err = svc.Create(context.Background(), debt.CreateParams{Owner: "mallory", Description: "x", TotalAmount: 1, Date: today})
		assert.True(t, errs.IsValidation(err))
	})
}

func TestService_CreatePersonal(t *testing.T) {
	t.Run("OnlyViewers", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.CreatePersonal(context.Background(), debt.CreatePersonalParams{
			Owner: amber, Description: "Card", TotalAmount: 100, PaymentAmount: 30, Date: today,
		})
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("RequiresInstalment", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.CreatePersonal(context.Background(), debt.CreatePersonalParams{
			Owner: ray, Description: "Card", TotalAmount: 100, Date: today,
		})

		var v *errs.ValidationError
		require.ErrorAs(t, err, &v)
		assert.Equal(t, "payment_amount", v.Field)
	})

	t.Run("Success", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().CreateDebt(gomock.Any(), gomock.Any()).Return(nil)

		d, err := svc.CreatePersonal(context.Background(), debt.CreatePersonalParams{
			Owner: ray, Description: "Card", TotalAmount: 100, PaymentAmount: 30, Date: today,
		})
		require.NoError(t, err)
		assert.Equal(t, debt.KindPersonal, d.Kind)
		assert.False(t, d.Shared)
	})
}

func TestService_Pay(t *testing.T) {
	id := uuid.New()

	t.Run("SharedHouseholdDebt", func(t *testing.T) {
		svc, repo, expenses := newService(t)

		repo.EXPECT().GetDebt(gomock.Any(), id).Return(&debt.Debt{
			ID: id, Owner: ray, Kind: debt.KindHousehold, Description: "Sofa",
			TotalAmount: 50000, RemainingAmount: 50000, Shared: true,
		}, nil)
		repo.EXPECT().RecordPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *debt.Debt, p *debt.Payment) error {
				assert.Equal(t, int64(0), d.RemainingAmount)
				p.ID = uuid.New()
				return nil
			})
		expenses.EXPECT().
			Create(gomock.Any(), expense.CreateParams{
				Owner: amber, Description: "Payment for: Sofa", Amount: 50000, Category: "Debt Payments", Date: today,
				SplitWith: &ray, SplitAmount: new(int64(25000)),
			}).
			Return(&expense.Expense{ID: uuid.New()}, nil)

		res, err := svc.Pay(context.Background(), amber, id, today)
		require.NoError(t, err)
		assert.True(t, res.Debt.Paid())
		assert.NotEqual(t, uuid.Nil, res.Payment.ID)
		assert.Equal(t, res.Payment.ID, res.Debt.Payments[0].ID)
	})

	t.Run("PersonalInstalment", func(t *testing.T) {
		svc, repo, expenses := newService(t)

		repo.EXPECT().GetDebt(gomock.Any(), id).Return(&debt.Debt{
			ID: id, Owner: ray, Kind: debt.KindPersonal, Description: "Card",
			TotalAmount: 10000, RemainingAmount: 4000, PaymentAmount: 3000,
		}, nil)
		repo.EXPECT().RecordPayment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		expenses.EXPECT().
			Create(gomock.Any(), expense.CreateParams{
				Owner: ray, Description: "Payment for: Card", Amount: 3000, Category: "Debt Payments", Date: today,
			}).
			Return(&expense.Expense{ID: uuid.New()}, nil)

		res, err := svc.Pay(context.Background(), ray, id, today)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), res.Debt.RemainingAmount)
	})

	t.Run("AlreadyPaid", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().GetDebt(gomock.Any(), id).Return(&debt.Debt{
			ID: id, Kind: debt.KindHousehold, TotalAmount: 100, RemainingAmount: 0,
		}, nil)

		_, err := svc.Pay(context.Background(), ray, id, today)
		assert.ErrorIs(t, err, errs.ErrAlreadyPaid)
	})

	t.Run("PersonalHiddenFromNonViewer", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().GetDebt(gomock.Any(), id).Return(&debt.Debt{
			ID: id, Kind: debt.KindPersonal, TotalAmount: 100, RemainingAmount: 100, PaymentAmount: 10,
		}, nil)

		_, err := svc.Pay(context.Background(), amber, id, today)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("StoreFailureRecordsNoExpense", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().GetDebt(gomock.Any(), id).Return(&debt.Debt{
			ID: id, Kind: debt.KindHousehold, Description: "Sofa", TotalAmount: 100, RemainingAmount: 100,
		}, nil)
		repo.EXPECT().RecordPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errs.Store("recording payment", errors.New("db error")))

		_, err := svc.Pay(context.Background(), ray, id, today)
		assert.True(t, errs.IsStore(err))
	})
}

func TestService_Visible(t *testing.T) {
	shared := []*debt.Debt{{ID: uuid.New(), Kind: debt.KindHousehold}}
	personal := []*debt.Debt{{ID: uuid.New(), Kind: debt.KindPersonal}}

	t.Run("Viewer", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().ListDebts(gomock.Any(), debt.KindHousehold).Return(shared, nil)
		repo.EXPECT().ListDebts(gomock.Any(), debt.KindPersonal).Return(personal, nil)

		list, err := svc.Visible(context.Background(), ray)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("NonViewer", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().ListDebts(gomock.Any(), debt.KindHousehold).Return(shared, nil)

		list, err := svc.Visible(context.Background(), amber)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func TestService_UpdatePaymentAmount(t *testing.T) {
	id := uuid.New()

	t.Run("HouseholdRejected", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().GetDebt(gomock.Any(), id).Return(&debt.Debt{ID: id, Kind: debt.KindHousehold}, nil)

		_, err := svc.UpdatePaymentAmount(context.Background(), ray, id, 100)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("Success", func(t *testing.T) {
		svc, repo, _ := newService(t)
		repo.EXPECT().GetDebt(gomock.Any(), id).Return(&debt.Debt{ID: id, Kind: debt.KindPersonal, PaymentAmount: 10}, nil)
		repo.EXPECT().UpdateDebt(gomock.Any(), gomock.Any()).Return(nil)

		d, err := svc.UpdatePaymentAmount(context.Background(), ray, id, 250)
		require.NoError(t, err)
		assert.Equal(t, int64(250), d.PaymentAmount)
	})
}
