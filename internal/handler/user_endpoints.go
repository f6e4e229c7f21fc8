package handler

import (
	"fmt"
	"net/http"
	"regexp"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lorewright/internal/model"
	"lorewright/internal/service"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 30
	minPasswordLength = 8
	maxPasswordLength = 100
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type signinRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) signup(c *gin.Context) {
	var req model.UserCreation
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}

	if len(req.Username) < minUsernameLength || len(req.Username) > maxUsernameLength {
		badRequest(c, fmt.Sprintf("Username length must be between %d and %d characters", minUsernameLength, maxUsernameLength))
		return
	}
	if !usernameRegex.MatchString(req.Username) {
		badRequest(c, "Username can only contain letters, numbers, underscores, and hyphens")
		return
	}
	if len(req.Password) < minPasswordLength || len(req.Password) > maxPasswordLength {
		badRequest(c, fmt.Sprintf("Password length must be between %d and %d characters", minPasswordLength, maxPasswordLength))
		return
	}
	if !passwordHasLetterAndDigit(req.Password) {
		badRequest(c, "Password must contain at least one letter and one digit")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	registrationsTotal.Inc()
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	maxAge := int(time.Until(time.Unix(token.ExpiresAt, 0)).Seconds())
	c.SetCookie(accessTokenCookie, token.AccessToken, maxAge, "/", "", false, true)
	c.JSON(http.StatusOK, token)
}

func (h *Handler) signout(c *gin.Context) {
	accessUUIDRaw, exists := c.Get("access_uuid")
	if !exists {
		zap.L().Error("Access uuid missing in context on /signout")
		handleServiceError(c, model.ErrTokenInvalid)
		return
	}
	accessUUID, ok := accessUUIDRaw.(string)
	if !ok {
		zap.L().Error("Invalid access uuid type in context on /signout", zap.Any("access_uuid_raw", accessUUIDRaw))
		handleServiceError(c, model.ErrTokenInvalid)
		return
	}

	if err := h.authService.Signout(c.Request.Context(), accessUUID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.SetCookie(accessTokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Successfully signed out"})
}

func (h *Handler) getMe(c *gin.Context) {
	userIDRaw, exists := c.Get("user_id")
	if !exists {
		zap.L().Error("User id missing in context on /me")
		handleServiceError(c, model.ErrTokenInvalid)
		return
	}
	userID, ok := userIDRaw.(uuid.UUID)
	if !ok {
		zap.L().Error("Invalid user id type in context on /me", zap.Any("user_id_raw", userIDRaw))
		handleServiceError(c, model.ErrTokenInvalid)
		return
	}

	user, err := h.authService.Me(c.Request.Context(), &service.Claims{UserID: userID})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func passwordHasLetterAndDigit(password string) bool {
	var hasLetter, hasDigit bool
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
		if hasLetter && hasDigit {
			return true
		}
	}
	return false
}
