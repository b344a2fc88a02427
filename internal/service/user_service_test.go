package service

import (
	"context"
	"testing"

	"blogsphere/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("updates bio and avatar without uniqueness checks", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := NewUserService(users)

		users.On("GetByID", ctx, uint(7)).
			Return(&models.User{ID: 7, Username: "alice", Email: "alice@example.com"}, nil)
		users.On("Update", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Bio == "New bio" && u.Avatar == "/uploads/a.png"
		})).Return(nil)

		bio := "New bio"
		avatar := "/uploads/a.png"
		user, err := svc.UpdateProfile(ctx, 7, ProfilePatch{Bio: &bio, Avatar: &avatar})
		require.NoError(t, err)
		assert.Equal(t, "New bio", user.Bio)
		users.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
		users.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})

	t.Run("taken username conflicts", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := NewUserService(users)

		users.On("GetByID", ctx, uint(7)).
			Return(&models.User{ID: 7, Username: "alice", Email: "alice@example.com"}, nil)
		users.On("GetByUsername", ctx, "bob").
			Return(&models.User{ID: 8, Username: "bob"}, nil)

		name := "bob"
		_, err := svc.UpdateProfile(ctx, 7, ProfilePatch{Username: &name})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "CONFLICT", appErr.Code)
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("taken email conflicts", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := NewUserService(users)

		users.On("GetByID", ctx, uint(7)).
			Return(&models.User{ID: 7, Username: "alice", Email: "alice@example.com"}, nil)
		users.On("GetByEmail", ctx, "bob@example.com").
			Return(&models.User{ID: 8, Email: "bob@example.com"}, nil)

		email := "bob@example.com"
		_, err := svc.UpdateProfile(ctx, 7, ProfilePatch{Email: &email})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "CONFLICT", appErr.Code)
	})

	t.Run("resubmitting the current username is a no-op check", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := NewUserService(users)

		users.On("GetByID", ctx, uint(7)).
			Return(&models.User{ID: 7, Username: "alice", Email: "alice@example.com"}, nil)
		users.On("Update", ctx, mock.Anything).Return(nil)

		name := "alice"
		_, err := svc.UpdateProfile(ctx, 7, ProfilePatch{Username: &name})
		require.NoError(t, err)
		users.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := NewUserService(users)

		users.On("GetByID", ctx, uint(7)).
			Return(&models.User{ID: 7, Username: "alice", Email: "alice@example.com"}, nil)

		email := "not-an-email"
		_, err := svc.UpdateProfile(ctx, 7, ProfilePatch{Email: &email})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})
}
