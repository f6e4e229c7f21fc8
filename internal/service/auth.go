// Package service implements user registration and token-based
// authentication on top of the user and token repositories.
package service

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"lorewright/internal/model"
)

// Claims are the JWT claims carried by access tokens.
type Claims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	jwt.RegisteredClaims
}

// AuthService defines the authentication operations used by the HTTP layer.
type AuthService interface {
	// Register creates a new user from the signup payload.
	Register(ctx context.Context, creation model.UserCreation) (*model.User, error)
	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, username, password string) (*model.UserToken, error)
	// VerifyAccessToken validates the signature, expiry, and store presence
	// of an access token.
	VerifyAccessToken(ctx context.Context, tokenString string) (*Claims, error)
	// Signout revokes an access token by deleting its id from the store.
	Signout(ctx context.Context, accessUUID string) error
	// Me resolves the user behind a verified token.
	Me(ctx context.Context, claims *Claims) (*model.User, error)
}
