package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mrftrack/internal/config"
	"mrftrack/internal/domain"
	"mrftrack/internal/service"
	"mrftrack/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
		Issuer:             "mrftrack-test",
	}
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           uuid.New(),
		Email:        "operator@mrf.test",
		PasswordHash: string(hash),
		FullName:     "Test Operator",
		Role:         domain.RoleOperator,
		MRFID:        "MRF-001",
		IsActive:     true,
	}
}

func TestLogin_Success(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	user := activeUser(t, "correct-password")
	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleOperator, claims.Role)
	assert.Equal(t, "MRF-001", claims.MRFID)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	user := activeUser(t, "correct-password")
	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "wrong-password",
	})

	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailMapsToInvalidCredentials(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	repo.On("GetByEmail", mock.Anything, "nobody@mrf.test").Return(nil, domain.ErrNotFound)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "nobody@mrf.test",
		Password: "whatever-password",
	})

	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_InactiveUserRejected(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	user := activeUser(t, "correct-password")
	user.IsActive = false
	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})

	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestRegister_InvalidRoleRejected(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	user, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "new@mrf.test",
		Password: "some-password",
		FullName: "New User",
		Role:     "superadmin",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_CreatesActiveUserWithHashedPassword(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "new@mrf.test",
		Password: "some-password",
		FullName: "New User",
		Role:     domain.RoleOperator,
		MRFID:    "MRF-002",
	})

	require.NoError(t, err)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "some-password", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("some-password")))
}

func TestRefreshToken_AccessTokenRejected(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	user := activeUser(t, "correct-password")
	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})
	require.NoError(t, err)

	// An access token must not pass for a refresh token.
	refreshed, err := svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.Nil(t, refreshed)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRefreshToken_Success(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	user := activeUser(t, "correct-password")
	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
	repo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestValidateToken_RefreshTokenRejectedAsAccess(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	user := activeUser(t, "correct-password")
	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct-password",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(pair.RefreshToken)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestValidateToken_Garbage(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	claims, err := svc.ValidateToken("not-a-token")
	assert.Nil(t, claims)
	assert.Error(t, err)
}
