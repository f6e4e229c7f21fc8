package model

import "errors"

// Application-wide standard errors
var (
	// Configuration
	ErrNoProviderCredential = errors.New("no model provider credential configured")

	// Generation & retrieval
	ErrGenerationFailed = errors.New("content generation failed")
	ErrNotFound         = errors.New("resource not found")

	// User & authentication
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this username already exists")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Tokens
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenNotFound  = errors.New("token not found in storage")

	// General request errors
	ErrInvalidInput = errors.New("invalid input data")
)
