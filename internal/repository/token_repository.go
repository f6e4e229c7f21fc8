package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"lorewright/internal/model"
)

// TokenRepository stores issued access tokens so they can be revoked before
// their JWT expiry.
type TokenRepository interface {
	SetToken(ctx context.Context, userID uuid.UUID, accessUUID string, ttl time.Duration) error
	GetUserIDByAccessUUID(ctx context.Context, accessUUID string) (uuid.UUID, error)
	DeleteToken(ctx context.Context, accessUUID string) error
}

// Compile-time check to ensure redisTokenRepository implements TokenRepository
var _ TokenRepository = (*redisTokenRepository)(nil)

type redisTokenRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisTokenRepository creates a new Redis-backed TokenRepository.
func NewRedisTokenRepository(client *redis.Client, logger *zap.Logger) TokenRepository {
	return &redisTokenRepository{
		client: client,
		logger: logger.Named("RedisTokenRepo"),
	}
}

func accessKey(accessUUID string) string {
	return fmt.Sprintf("access_uuid:%s", accessUUID)
}

// SetToken records the access token id with the token's remaining lifetime;
// Redis expiry keeps the store in sync with the JWT expiry.
func (r *redisTokenRepository) SetToken(ctx context.Context, userID uuid.UUID, accessUUID string, ttl time.Duration) error {
	r.logger.Debug("Setting token in Redis",
		zap.String("userID", userID.String()),
		zap.String("accessUUID", accessUUID),
		zap.Duration("ttl", ttl))

	if err := r.client.Set(ctx, accessKey(accessUUID), userID.String(), ttl).Err(); err != nil {
		r.logger.Error("Failed to set token in redis", zap.Error(err), zap.String("userID", userID.String()))
		return fmt.Errorf("failed to set token in redis: %w", err)
	}
	return nil
}

// GetUserIDByAccessUUID resolves the user owning an access token. A missing
// key means the token was revoked or expired.
func (r *redisTokenRepository) GetUserIDByAccessUUID(ctx context.Context, accessUUID string) (uuid.UUID, error) {
	val, err := r.client.Get(ctx, accessKey(accessUUID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, model.ErrTokenNotFound
		}
		r.logger.Error("Failed to get token from redis", zap.Error(err), zap.String("accessUUID", accessUUID))
		return uuid.Nil, fmt.Errorf("failed to get token from redis: %w", err)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		r.logger.Error("Corrupt user id stored for token", zap.String("accessUUID", accessUUID), zap.String("value", val))
		return uuid.Nil, model.ErrTokenInvalid
	}
	return userID, nil
}

// DeleteToken revokes an access token. Deleting a missing token is not an
// error.
func (r *redisTokenRepository) DeleteToken(ctx context.Context, accessUUID string) error {
	deleted, err := r.client.Del(ctx, accessKey(accessUUID)).Result()
	if err != nil {
		r.logger.Error("Failed to delete token from redis", zap.Error(err), zap.String("accessUUID", accessUUID))
		return fmt.Errorf("failed to delete token from redis: %w", err)
	}
	r.logger.Debug("Token deletion processed", zap.String("accessUUID", accessUUID), zap.Int64("deleted", deleted))
	return nil
}
