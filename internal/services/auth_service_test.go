package services

import (
	"context"
	"testing"

	"parkwise/internal/models"
	"parkwise/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func TestLoginSuccess(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2secret"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := &fakeUserRepo{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{
				ID:           primitive.NewObjectID(),
				Email:        email,
				PasswordHash: string(hash),
				Role:         models.UserRoleOperator,
				Status:       utils.StatusActive,
			}, nil
		},
	}
	svc := NewAuthService(userRepo, "test-secret", testLogger())

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "op@parkwise.local",
		Password: "hunter2secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)

	claims, err := utils.ValidateToken(resp.Tokens.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, string(models.UserRoleOperator), claims.UserType)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2secret"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := &fakeUserRepo{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{Email: email, PasswordHash: string(hash), Status: utils.StatusActive}, nil
		},
	}
	svc := NewAuthService(userRepo, "test-secret", testLogger())

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "op@parkwise.local",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, "test-secret", testLogger())

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "ghost@parkwise.local",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	userRepo := &fakeUserRepo{
		GetByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{Email: email, Status: "suspended"}, nil
		},
	}
	svc := NewAuthService(userRepo, "test-secret", testLogger())

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "op@parkwise.local",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterHashesPassword(t *testing.T) {
	var created *models.User
	userRepo := &fakeUserRepo{
		CreateFn: func(ctx context.Context, user *models.User) error {
			created = user
			return nil
		},
	}
	svc := NewAuthService(userRepo, "test-secret", testLogger())

	user, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "op@parkwise.local",
		Password: "hunter2secret",
		Role:     models.UserRoleOperator,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, "hunter2secret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2secret")))
}
