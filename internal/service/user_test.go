package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/domain"
	"github.com/keeeellymu/SHUNBO-AI-RESERVATION-PARKING/internal/service/ports/mocks"
)

func TestUserService_Create_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, u *domain.User) {
		u.ID = 7
	}).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: "alice",
		Phone:    "+79990001122",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestUserService_Create_MissingUsername(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_DuplicateUsername(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}
