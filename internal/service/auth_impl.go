package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lorewright/internal/config"
	"lorewright/internal/model"
	"lorewright/internal/repository"
)

const tokenIssuer = "lorewright"

// Compile-time check to ensure authServiceImpl implements AuthService
var _ AuthService = (*authServiceImpl)(nil)

type authServiceImpl struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	cfg       *config.Config
	logger    *zap.Logger
}

// NewAuthService creates a new instance of authServiceImpl.
func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, cfg *config.Config, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		cfg:       cfg,
		logger:    logger.Named("AuthService"),
	}
}

// Register creates a new user.
func (s *authServiceImpl) Register(ctx context.Context, creation model.UserCreation) (*model.User, error) {
	username := strings.TrimSpace(creation.Username)
	email := strings.ToLower(strings.TrimSpace(creation.Email))

	logFields := []zap.Field{zap.String("username", username), zap.String("email", email)}
	s.logger.Info("Registering new user", logFields...)

	if _, err := mail.ParseAddress(email); err != nil {
		s.logger.Warn("Registration attempt with invalid email format", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("invalid email format: %w", model.ErrInvalidInput)
	}
	if username == "" || creation.Password == "" {
		s.logger.Warn("Registration attempt with empty username or password", logFields...)
		return nil, model.ErrInvalidInput
	}

	hashedPassword, err := hashPassword(creation.Password, s.cfg.PasswordPepper)
	if err != nil {
		s.logger.Error("Failed to hash password during registration", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	// The repository maps unique violations onto ErrUserAlreadyExists /
	// ErrEmailAlreadyExists; no pre-check needed.
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if !errors.Is(err, model.ErrUserAlreadyExists) && !errors.Is(err, model.ErrEmailAlreadyExists) {
			s.logger.Error("Failed to create user via repository", append(logFields, zap.Error(err))...)
		}
		return nil, err
	}

	s.logger.Info("User registered", zap.String("userID", user.ID.String()), zap.String("username", user.Username))
	return user, nil
}

// Login authenticates a user and issues an access token.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*model.UserToken, error) {
	s.logger.Info("Login attempt", zap.String("username", username))

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			s.logger.Warn("Login failed: user not found", zap.String("username", username))
			return nil, model.ErrInvalidCredentials
		}
		s.logger.Error("Login failed: error getting user from repository", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !checkPasswordHash(password, user.PasswordHash, s.cfg.PasswordPepper) {
		s.logger.Warn("Login failed: invalid password", zap.String("username", username))
		return nil, model.ErrInvalidCredentials
	}
	if !user.IsActive {
		s.logger.Warn("Login failed: user is inactive", zap.String("username", username))
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.createToken(ctx, user)
	if err != nil {
		s.logger.Error("Failed to create token during login", zap.Error(err), zap.String("userID", user.ID.String()))
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	s.logger.Info("User logged in", zap.String("userID", user.ID.String()))
	return token, nil
}

// VerifyAccessToken parses and validates an access token string.
func (s *authServiceImpl) VerifyAccessToken(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			s.logger.Debug("Access token verification failed: expired")
			return nil, model.ErrTokenExpired
		}
		if errors.Is(err, jwt.ErrTokenMalformed) {
			s.logger.Warn("Access token verification failed: malformed")
			return nil, model.ErrTokenMalformed
		}
		s.logger.Error("Failed to parse access token", zap.Error(err))
		return nil, model.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		s.logger.Warn("Access token verification failed (invalid claims type or signature)")
		return nil, model.ErrTokenInvalid
	}

	// Presence in the store is what makes a signed token live; revocation
	// deletes the key.
	if _, err := s.tokenRepo.GetUserIDByAccessUUID(ctx, claims.ID); err != nil {
		if errors.Is(err, model.ErrTokenNotFound) {
			s.logger.Debug("Access token not found in store (revoked or expired)", zap.String("accessUUID", claims.ID))
			return nil, model.ErrTokenInvalid
		}
		s.logger.Error("Error checking access token existence via repository", zap.Error(err))
		return nil, fmt.Errorf("error checking access token existence: %w", err)
	}
	return claims, nil
}

// Signout revokes an access token. Once the key is gone, VerifyAccessToken
// rejects the token even while its signature is still valid.
func (s *authServiceImpl) Signout(ctx context.Context, accessUUID string) error {
	if err := s.tokenRepo.DeleteToken(ctx, accessUUID); err != nil {
		s.logger.Error("Failed to delete access token from store", zap.Error(err), zap.String("accessUUID", accessUUID))
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	s.logger.Info("User signed out", zap.String("accessUUID", accessUUID))
	return nil
}

// Me resolves the user behind a verified token.
func (s *authServiceImpl) Me(ctx context.Context, claims *Claims) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			s.logger.Warn("User from valid token not found in DB", zap.String("userID", claims.UserID.String()))
			return nil, model.ErrUserNotFound
		}
		s.logger.Error("Failed to get user by ID", zap.Error(err), zap.String("userID", claims.UserID.String()))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// createToken signs a new access token and records its id in the store.
func (s *authServiceImpl) createToken(ctx context.Context, user *model.User) (*model.UserToken, error) {
	now := time.Now()
	expiresAt := now.Add(s.cfg.AccessTokenTTL)
	accessUUID := uuid.NewString()

	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        accessUUID,
			Subject:   user.ID.String(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	if err := s.tokenRepo.SetToken(ctx, user.ID, accessUUID, s.cfg.AccessTokenTTL); err != nil {
		return nil, fmt.Errorf("failed to save token details: %w", err)
	}

	return &model.UserToken{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt.Unix(),
	}, nil
}
