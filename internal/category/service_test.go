package category_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/buxfer/internal/category"
	"github.com/MrJamesThe3rd/buxfer/internal/errs"
)

func storedCategories() []*category.Category {
	return []*category.Category{
		{Name: "Food", Position: 0},
		{Name: "Transport", Position: 1},
		{Name: "Other", Position: 2},
	}
}

func TestService_Categorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := category.NewMockRepository(ctrl)

	repo.EXPECT().ListRules(gomock.Any()).Return([]*category.Rule{
		{Keyword: "tesco", Category: "Food"},
	}, nil).Times(2)

	svc := category.NewService(repo)

	got, err := svc.Categorize(context.Background(), "Tesco Extra")
	require.NoError(t, err)
	assert.Equal(t, "Food", got)

	got, err = svc.Categorize(context.Background(), "corner shop")
	require.NoError(t, err)
	assert.Equal(t, "Other", got)
}

func TestService_Categorize_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := category.NewMockRepository(ctrl)

	repo.EXPECT().ListRules(gomock.Any()).Return(nil, errs.Store("listing rules", errors.New("db down")))

	_, err := category.NewService(repo).Categorize(context.Background(), "anything")
	assert.True(t, errs.IsStore(err))
}

func TestService_AddRule(t *testing.T) {
	type args struct {
		keyword  string
		category string
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *category.MockRepository)
		want      *category.Rule
		wantErr   func(t *testing.T, err error)
	}

	existing := []*category.Rule{{ID: uuid.New(), Keyword: "tesco", Category: "Food", Position: 0}}

	tests := []testCase{
		{
			name: "Success",
			args: args{keyword: "  Uber ", category: "Transport"},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().ListRules(gomock.Any()).Return(existing, nil)
				m.EXPECT().ListCategories(gomock.Any()).Return(storedCategories(), nil)
				m.EXPECT().
					CreateRule(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *category.Rule) error {
						r.ID = uuid.New()
						return nil
					})
			},
			want: &category.Rule{Keyword: "uber", Category: "Transport", Position: 1},
		},
		{
			name: "AppendsAfterHighestPositionWhenRulesWereDeleted",
			args: args{keyword: "shell", category: "Transport"},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().ListRules(gomock.Any()).Return([]*category.Rule{
					{ID: uuid.New(), Keyword: "tesco", Category: "Food", Position: 0},
					{ID: uuid.New(), Keyword: "uber", Category: "Transport", Position: 2},
				}, nil)
				m.EXPECT().ListCategories(gomock.Any()).Return(storedCategories(), nil)
				m.EXPECT().
					CreateRule(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *category.Rule) error {
						r.ID = uuid.New()
						return nil
					})
			},
			want: &category.Rule{Keyword: "shell", Category: "Transport", Position: 3},
		},
		{
			name: "EmptyKeyword",
			args: args{keyword: "   ", category: "Food"},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().ListRules(gomock.Any()).Return(existing, nil)
			},
			wantErr: func(t *testing.T, err error) {
				assert.True(t, errs.IsValidation(err))
			},
		},
		{
			name: "DuplicateKeyword",
			args: args{keyword: "TESCO", category: "Food"},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().ListRules(gomock.Any()).Return(existing, nil)
			},
			wantErr: func(t *testing.T, err error) {
				var v *errs.ValidationError
				require.ErrorAs(t, err, &v)
				assert.Equal(t, "keyword", v.Field)
			},
		},
		{
			name: "UnknownCategory",
			args: args{keyword: "gym", category: "Fitness"},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().ListRules(gomock.Any()).Return(existing, nil)
				m.EXPECT().ListCategories(gomock.Any()).Return(storedCategories(), nil)
			},
			wantErr: func(t *testing.T, err error) {
				var v *errs.ValidationError
				require.ErrorAs(t, err, &v)
				assert.Equal(t, "category", v.Field)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := category.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := category.NewService(repo)
			got, err := svc.AddRule(context.Background(), tt.args.keyword, tt.args.category)

			if tt.wantErr != nil {
				require.Error(t, err)
				tt.wantErr(t, err)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.Equal(t, tt.want.Keyword, got.Keyword)
			assert.Equal(t, tt.want.Category, got.Category)
			assert.Equal(t, tt.want.Position, got.Position)
		})
	}
}

func TestService_UpdateRule(t *testing.T) {
	id := uuid.New()
	other := uuid.New()

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().ListRules(gomock.Any()).Return(nil, nil)

		_, err := category.NewService(repo).UpdateRule(context.Background(), id, "x", "Food")
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("KeepsOwnKeyword", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().ListRules(gomock.Any()).Return([]*category.Rule{
			{ID: id, Keyword: "tesco", Category: "Food"},
			{ID: other, Keyword: "uber", Category: "Transport"},
		}, nil)
		repo.EXPECT().ListCategories(gomock.Any()).Return(storedCategories(), nil)
		repo.EXPECT().UpdateRule(gomock.Any(), gomock.Any()).Return(nil)

		got, err := category.NewService(repo).UpdateRule(context.Background(), id, "Tesco", "Other")
		require.NoError(t, err)
		assert.Equal(t, "tesco", got.Keyword)
		assert.Equal(t, "Other", got.Category)
	})

	t.Run("CollidesWithAnotherRule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().ListRules(gomock.Any()).Return([]*category.Rule{
			{ID: id, Keyword: "tesco", Category: "Food"},
			{ID: other, Keyword: "uber", Category: "Transport"},
		}, nil)

		_, err := category.NewService(repo).UpdateRule(context.Background(), id, "uber", "Food")
		assert.True(t, errs.IsValidation(err))
	})
}

func TestService_Categories(t *testing.T) {
	t.Run("AddDuplicateIsCaseInsensitive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().ListCategories(gomock.Any()).Return(storedCategories(), nil)

		_, err := category.NewService(repo).AddCategory(context.Background(), "food")
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("AddAppends", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().ListCategories(gomock.Any()).Return(storedCategories(), nil)
		repo.EXPECT().CreateCategory(gomock.Any(), &category.Category{Name: "Pets", Position: 3}).Return(nil)

		got, err := category.NewService(repo).AddCategory(context.Background(), " Pets ")
		require.NoError(t, err)
		assert.Equal(t, "Pets", got.Name)
	})

	t.Run("RenameToExisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().ListCategories(gomock.Any()).Return(storedCategories(), nil)

		err := category.NewService(repo).RenameCategory(context.Background(), "Food", "Transport")
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("Rename", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().ListCategories(gomock.Any()).Return(storedCategories(), nil)
		repo.EXPECT().RenameCategory(gomock.Any(), "Food", "Groceries").Return(nil)

		require.NoError(t, category.NewService(repo).RenameCategory(context.Background(), "Food", "Groceries"))
	})

	t.Run("DeleteDefaultRefused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := category.NewMockRepository(ctrl)

		err := category.NewService(repo).DeleteCategory(context.Background(), "Other")
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("Exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().ListCategories(gomock.Any()).Return(storedCategories(), nil).Times(2)

		svc := category.NewService(repo)

		ok, err := svc.Exists(context.Background(), "Food")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = svc.Exists(context.Background(), "Pets")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestService_SeedDefaults(t *testing.T) {
	t.Run("SkipsWhenPopulated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().ListCategories(gomock.Any()).Return(storedCategories(), nil)

		require.NoError(t, category.NewService(repo).SeedDefaults(context.Background()))
	})

	t.Run("SeedsEmptyTable", func(t *testing.T) {
		cats, rs, err := category.Defaults()
		require.NoError(t, err)

		ctrl := gomock.NewController(t)
		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().ListCategories(gomock.Any()).Return(nil, nil)
		repo.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).Return(nil).Times(len(cats))
		repo.EXPECT().CreateRule(gomock.Any(), gomock.Any()).Return(nil).Times(len(rs))

		require.NoError(t, category.NewService(repo).SeedDefaults(context.Background()))
	})
	t.Run("CreatesMissingConfiguredDefault", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().ListCategories(gomock.Any()).Return(storedCategories(), nil)
		repo.EXPECT().CreateCategory(gomock.Any(), &category.Category{Name: "Misc", Position: 3}).Return(nil)

		svc := category.NewService(repo, category.WithDefault("Misc"))
		require.NoError(t, svc.SeedDefaults(context.Background()))
	})

	t.Run("SeedsConfiguredDefaultMissingFromBuiltIns", func(t *testing.T) {
		cats, rs, err := category.Defaults()
		require.NoError(t, err)

		ctrl := gomock.NewController(t)
		repo := category.NewMockRepository(ctrl)
		repo.EXPECT().ListCategories(gomock.Any()).Return(nil, nil)
		repo.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).Return(nil).Times(len(cats))
		repo.EXPECT().CreateRule(gomock.Any(), gomock.Any()).Return(nil).Times(len(rs))
		repo.EXPECT().
			CreateCategory(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *category.Category) error {
				assert.Equal(t, "Misc", c.Name)
				assert.Equal(t, len(cats), c.Position)
				return nil
			})

		require.NoError(t, category.NewService(repo, category.WithDefault("Misc")).SeedDefaults(context.Background()))
	})
}
