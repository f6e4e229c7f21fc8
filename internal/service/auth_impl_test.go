package service_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"lorewright/internal/config"
	"lorewright/internal/mocks"
	"lorewright/internal/model"
	"lorewright/internal/service"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "unit-test-secret",
		PasswordPepper: "unit-test-pepper",
		AccessTokenTTL: time.Hour,
	}
}

func newTestService(t *testing.T, cfg *config.Config) (service.AuthService, *mocks.MockUserRepository, *mocks.MockTokenRepository) {
	userRepo := mocks.NewMockUserRepository(t)
	tokenRepo := mocks.NewMockTokenRepository(t)
	svc := service.NewAuthService(userRepo, tokenRepo, cfg, zap.NewNop())
	return svc, userRepo, tokenRepo
}

func TestRegisterSuccess(t *testing.T) {
	svc, userRepo, _ := newTestService(t, testConfig())

	newID := uuid.New()
	userRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*model.User)
			assert.Equal(t, "frodo", user.Username)
			assert.Equal(t, "frodo@shire.me", user.Email)
			assert.NotEmpty(t, user.PasswordHash)
			assert.NotEqual(t, "precious", user.PasswordHash)
			user.ID = newID
			user.IsActive = true
		}).
		Return(nil).Once()

	user, err := svc.Register(context.Background(), model.UserCreation{
		Username: "frodo",
		Email:    "Frodo@Shire.me",
		Password: "precious",
	})
	require.NoError(t, err)
	assert.Equal(t, newID, user.ID)
	assert.Equal(t, "frodo@shire.me", user.Email)
	assert.True(t, user.IsActive)
	userRepo.AssertExpectations(t)
}

func TestRegisterInvalidEmail(t *testing.T) {
	svc, userRepo, _ := newTestService(t, testConfig())

	_, err := svc.Register(context.Background(), model.UserCreation{
		Username: "frodo",
		Email:    "not-an-email",
		Password: "precious",
	})
	require.ErrorIs(t, err, model.ErrInvalidInput)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, userRepo, _ := newTestService(t, testConfig())

	userRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*model.User")).
		Return(model.ErrUserAlreadyExists).Once()

	_, err := svc.Register(context.Background(), model.UserCreation{
		Username: "frodo",
		Email:    "frodo@shire.me",
		Password: "precious",
	})
	require.ErrorIs(t, err, model.ErrUserAlreadyExists)
	userRepo.AssertExpectations(t)
}

func TestLoginSuccessAndVerify(t *testing.T) {
	cfg := testConfig()
	svc, userRepo, tokenRepo := newTestService(t, cfg)

	userID := uuid.New()
	userRepo.On("GetUserByUsername", mock.Anything, "frodo").
		Return(activeUser(t, userID, cfg.PasswordPepper, "precious"), nil).Once()

	var storedAccessUUID string
	tokenRepo.On("SetToken", mock.Anything, userID, mock.AnythingOfType("string"), cfg.AccessTokenTTL).
		Run(func(args mock.Arguments) {
			storedAccessUUID = args.Get(2).(string)
		}).
		Return(nil).Once()

	token, err := svc.Login(context.Background(), "frodo", "precious")
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)
	assert.Greater(t, token.ExpiresAt, time.Now().Unix())

	tokenRepo.On("GetUserIDByAccessUUID", mock.Anything, storedAccessUUID).
		Return(userID, nil).Once()

	claims, err := svc.VerifyAccessToken(context.Background(), token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "frodo", claims.Username)
	assert.Equal(t, storedAccessUUID, claims.ID)

	userRepo.AssertExpectations(t)
	tokenRepo.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	cfg := testConfig()
	svc, userRepo, tokenRepo := newTestService(t, cfg)

	userRepo.On("GetUserByUsername", mock.Anything, "frodo").
		Return(activeUser(t, uuid.New(), cfg.PasswordPepper, "precious"), nil).Once()

	_, err := svc.Login(context.Background(), "frodo", "wrong")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
	tokenRepo.AssertNotCalled(t, "SetToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, userRepo, _ := newTestService(t, testConfig())

	userRepo.On("GetUserByUsername", mock.Anything, "nobody").
		Return(nil, model.ErrUserNotFound).Once()

	_, err := svc.Login(context.Background(), "nobody", "whatever")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	cfg := testConfig()
	svc, userRepo, _ := newTestService(t, cfg)

	user := activeUser(t, uuid.New(), cfg.PasswordPepper, "precious")
	user.IsActive = false
	userRepo.On("GetUserByUsername", mock.Anything, "frodo").Return(user, nil).Once()

	_, err := svc.Login(context.Background(), "frodo", "precious")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestVerifyAccessTokenRevoked(t *testing.T) {
	cfg := testConfig()
	svc, userRepo, tokenRepo := newTestService(t, cfg)

	userID := uuid.New()
	userRepo.On("GetUserByUsername", mock.Anything, "frodo").
		Return(activeUser(t, userID, cfg.PasswordPepper, "precious"), nil).Once()
	tokenRepo.On("SetToken", mock.Anything, userID, mock.AnythingOfType("string"), cfg.AccessTokenTTL).
		Return(nil).Once()

	token, err := svc.Login(context.Background(), "frodo", "precious")
	require.NoError(t, err)

	tokenRepo.On("GetUserIDByAccessUUID", mock.Anything, mock.AnythingOfType("string")).
		Return(uuid.Nil, model.ErrTokenNotFound).Once()

	_, err = svc.VerifyAccessToken(context.Background(), token.AccessToken)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestSignoutRevokesToken(t *testing.T) {
	cfg := testConfig()
	svc, userRepo, tokenRepo := newTestService(t, cfg)

	userID := uuid.New()
	userRepo.On("GetUserByUsername", mock.Anything, "frodo").
		Return(activeUser(t, userID, cfg.PasswordPepper, "precious"), nil).Once()

	var storedAccessUUID string
	tokenRepo.On("SetToken", mock.Anything, userID, mock.AnythingOfType("string"), cfg.AccessTokenTTL).
		Run(func(args mock.Arguments) {
			storedAccessUUID = args.Get(2).(string)
		}).
		Return(nil).Once()

	token, err := svc.Login(context.Background(), "frodo", "precious")
	require.NoError(t, err)

	tokenRepo.On("DeleteToken", mock.Anything, storedAccessUUID).Return(nil).Once()
	require.NoError(t, svc.Signout(context.Background(), storedAccessUUID))

	tokenRepo.On("GetUserIDByAccessUUID", mock.Anything, storedAccessUUID).
		Return(uuid.Nil, model.ErrTokenNotFound).Once()

	_, err = svc.VerifyAccessToken(context.Background(), token.AccessToken)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
	tokenRepo.AssertExpectations(t)
}

func TestSignoutStoreFailure(t *testing.T) {
	svc, _, tokenRepo := newTestService(t, testConfig())

	tokenRepo.On("DeleteToken", mock.Anything, "some-access-uuid").
		Return(assert.AnError).Once()

	err := svc.Signout(context.Background(), "some-access-uuid")
	require.ErrorIs(t, err, assert.AnError)
}

func TestVerifyAccessTokenMalformed(t *testing.T) {
	svc, _, _ := newTestService(t, testConfig())

	_, err := svc.VerifyAccessToken(context.Background(), "not.a.jwt")
	require.ErrorIs(t, err, model.ErrTokenMalformed)
}

func TestVerifyAccessTokenExpired(t *testing.T) {
	cfg := testConfig()
	cfg.AccessTokenTTL = -time.Minute
	svc, userRepo, tokenRepo := newTestService(t, cfg)

	userID := uuid.New()
	userRepo.On("GetUserByUsername", mock.Anything, "frodo").
		Return(activeUser(t, userID, cfg.PasswordPepper, "precious"), nil).Once()
	tokenRepo.On("SetToken", mock.Anything, userID, mock.AnythingOfType("string"), cfg.AccessTokenTTL).
		Return(nil).Once()

	token, err := svc.Login(context.Background(), "frodo", "precious")
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(context.Background(), token.AccessToken)
	require.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestMe(t *testing.T) {
	svc, userRepo, _ := newTestService(t, testConfig())

	userID := uuid.New()
	want := &model.User{ID: userID, Username: "frodo", Email: "frodo@shire.me", IsActive: true}
	userRepo.On("GetUserByID", mock.Anything, userID).Return(want, nil).Once()

	got, err := svc.Me(context.Background(), &service.Claims{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	missing := uuid.New()
	userRepo.On("GetUserByID", mock.Anything, missing).Return(nil, model.ErrUserNotFound).Once()

	_, err = svc.Me(context.Background(), &service.Claims{UserID: missing})
	require.ErrorIs(t, err, model.ErrUserNotFound)
}

func activeUser(t *testing.T, id uuid.UUID, pepper, password string) *model.User {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(pepper))
	mac.Write([]byte(password))
	hashed, err := bcrypt.GenerateFromPassword(mac.Sum(nil), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.User{
		ID:           id,
		Username:     "frodo",
		Email:        "frodo@shire.me",
		PasswordHash: string(hashed),
		IsActive:     true,
	}
}
