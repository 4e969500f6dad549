package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-PlacementCell/src/database"
)

var Ctx = context.Background()

const refreshPrefix = "refresh:"

// StoreRefreshToken keeps a refresh token in Redis with an expiration.
// Returns nil if Redis is not available (development mode).
func StoreRefreshToken(userID, refreshToken string, expiresIn time.Duration) error {
	if DB.RedisClient == nil {
		return nil
	}
	return DB.RedisClient.Set(Ctx, refreshPrefix+refreshToken, userID, expiresIn).Err()
}

// ValidateRefreshToken resolves a refresh token back to its user id.
func ValidateRefreshToken(refreshToken string) (string, error) {
	if DB.RedisClient == nil {
		return "", fmt.Errorf("refresh tokens unavailable without Redis")
	}
	userID, err := DB.RedisClient.Get(Ctx, refreshPrefix+refreshToken).Result()
	if err != nil {
		return "", fmt.Errorf("invalid or expired refresh token")
	}
	return userID, nil
}

// DeleteRefreshToken revokes a refresh token.
func DeleteRefreshToken(refreshToken string) error {
	if DB.RedisClient == nil {
		return nil
	}
	return DB.RedisClient.Del(Ctx, refreshPrefix+refreshToken).Err()
}
