package todo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/todo"
)

const ray = household.Member("ray")

func list3() []*todo.Todo {
	return []*todo.Todo{
		{ID: uuid.New(), Owner: ray, Text: "a", Position: 0},
		{ID: uuid.New(), Owner: ray, Text: "b", Position: 1},
		{ID: uuid.New(), Owner: ray, Text: "c", Position: 2},
	}
}

func TestService_Create(t *testing.T) {
	t.Run("AppendsAtEnd", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := todo.NewMockRepository(ctrl)

		due := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

		repo.EXPECT().ListTodos(gomock.Any(), ray).Return(list3(), nil)
		repo.EXPECT().CreateTodo(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, td *todo.Todo) error {
				td.ID = uuid.New()
				return nil
			})

		got, err := todo.NewService(repo).Create(context.Background(), ray, " Pay council tax ", &due)
		require.NoError(t, err)
		assert.Equal(t, "Pay council tax", got.Text)
		assert.Equal(t, 3, got.Position)
		assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), *got.Due)
	})

	t.Run("EmptyText", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		_, err := todo.NewService(todo.NewMockRepository(ctrl)).Create(context.Background(), ray, "  ", nil)
		assert.True(t, errs.IsValidation(err))
	})
}

func TestService_Toggle(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := todo.NewMockRepository(ctrl)
	id := uuid.New()

	repo.EXPECT().GetTodo(gomock.Any(), id).Return(&todo.Todo{ID: id, Owner: ray, Done: false}, nil)
	repo.EXPECT().UpdateTodo(gomock.Any(), &todo.Todo{ID: id, Owner: ray, Done: true}).Return(nil)

	got, err := todo.NewService(repo).Toggle(context.Background(), ray, id)
	require.NoError(t, err)
	assert.True(t, got.Done)
}

func TestService_Move(t *testing.T) {
	type testCase struct {
		name      string
		index     int
		delta     int
		wantSwap  bool
		wantOrder []string
	}

	tests := []testCase{
		{name: "Down", index: 0, delta: 1, wantSwap: true, wantOrder: []string{"b", "a", "c"}},
		{name: "Up", index: 2, delta: -1, wantSwap: true, wantOrder: []string{"a", "c", "b"}},
		{name: "TopStays", index: 0, delta: -1, wantOrder: []string{"a", "b", "c"}},
		{name: "BottomStays", index: 2, delta: 1, wantOrder: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := todo.NewMockRepository(ctrl)

			list := list3()
			target := list[tt.index]

			repo.EXPECT().GetTodo(gomock.Any(), target.ID).Return(target, nil)
			repo.EXPECT().ListTodos(gomock.Any(), ray).Return(list, nil)

			if tt.wantSwap {
				repo.EXPECT().SwapPositions(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			}

			got, err := todo.NewService(repo).Move(context.Background(), ray, target.ID, tt.delta)
			require.NoError(t, err)

			var order []string
			for i, td := range got {
				order = append(order, td.Text)
				assert.Equal(t, i, td.Position)
			}

			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestService_Move_InvalidDelta(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := todo.NewService(todo.NewMockRepository(ctrl)).Move(context.Background(), ray, uuid.New(), 2)
	assert.True(t, errs.IsValidation(err))
}

func TestService_OtherMembersTodo(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := todo.NewMockRepository(ctrl)
	svc := todo.NewService(repo)

	amber := household.Member("amber")
	id := uuid.New()

	repo.EXPECT().GetTodo(gomock.Any(), id).Return(&todo.Todo{ID: id, Owner: ray, Text: "bins"}, nil).Times(3)

	_, err := svc.Toggle(context.Background(), amber, id)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = svc.Move(context.Background(), amber, id, 1)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), amber, id), errs.ErrNotFound)
}
