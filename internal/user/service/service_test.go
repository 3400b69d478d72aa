package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	userModel "github.com/fivekicks/football/internal/user/model"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, user *userModel.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, id uint) (*userModel.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModel.User), args.Error(1)
}

func (m *mockRepository) GetByEmail(ctx context.Context, email string) (*userModel.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModel.User), args.Error(1)
}

func (m *mockRepository) UpdateRole(ctx context.Context, id uint, role userModel.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop().Sugar()

	t.Run("success assigns USER role", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, logger)

		repo.On("Create", ctx, mock.MatchedBy(func(u *userModel.User) bool {
			return u.Email == "ahmed@fivekicks.com" && u.Role == userModel.RoleUser
		})).Return(nil)

		resp, err := svc.Register(ctx, &userModel.RegisterRequest{
			Email:    "ahmed@fivekicks.com",
			FullName: "Ahmed Hassan",
			Password: "secret",
		})

		require.NoError(t, err)
		assert.Equal(t, "ahmed@fivekicks.com", resp.Email)
		assert.Equal(t, "USER", resp.Role)
		repo.AssertExpectations(t)
	})

	t.Run("invalid email", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, logger)

		for _, email := range []string{"", "not-an-email"} {
			resp, err := svc.Register(ctx, &userModel.RegisterRequest{
				Email:    email,
				FullName: "Ahmed Hassan",
				Password: "secret",
			})

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, userModel.ErrInvalidEmail)
		}
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("missing full name", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, logger)

		resp, err := svc.Register(ctx, &userModel.RegisterRequest{
			Email:    "ahmed@fivekicks.com",
			Password: "secret",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, userModel.ErrInvalidFullName)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, logger)

		repo.On("Create", ctx, mock.Anything).Return(userModel.ErrEmailTaken)

		resp, err := svc.Register(ctx, &userModel.RegisterRequest{
			Email:    "ahmed@fivekicks.com",
			FullName: "Ahmed Hassan",
			Password: "secret",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, userModel.ErrEmailTaken)
	})
}

func TestService_GetByEmail(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop().Sugar()

	t.Run("success", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, logger)

		repo.On("GetByEmail", ctx, "sara@fivekicks.com").Return(&userModel.User{
			ID:       2,
			Email:    "sara@fivekicks.com",
			FullName: "Sara Mahmoud",
			Role:     userModel.RoleAdmin,
		}, nil)

		resp, err := svc.GetByEmail(ctx, "sara@fivekicks.com")

		require.NoError(t, err)
		assert.Equal(t, uint(2), resp.ID)
		assert.Equal(t, "ADMIN", resp.Role)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, logger)

		repo.On("GetByEmail", ctx, "nobody@fivekicks.com").Return(nil, userModel.ErrUserNotFound)

		resp, err := svc.GetByEmail(ctx, "nobody@fivekicks.com")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, userModel.ErrUserNotFound)
	})

	t.Run("empty email", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, logger)

		resp, err := svc.GetByEmail(ctx, "")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, userModel.ErrInvalidEmail)
	})
}
