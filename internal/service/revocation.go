package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"template-vault/internal/apperr"
	"template-vault/internal/cache"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked:"

// Revocations 記錄已登出的 token (jti)，保存到 token 原本的到期時間
type Revocations struct {
	cache cache.Cache
}

func NewRevocations(c cache.Cache) *Revocations {
	return &Revocations{cache: c}
}

// Revoke 已過期的 token 不需要記錄
func (r *Revocations) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(timeNow())
	if jti == "" || ttl <= 0 {
		return nil
	}
	if err := r.cache.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("RevokeToken: %w: %w", apperr.ErrInternal, err)
	}
	return nil
}

func (r *Revocations) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	err := r.cache.Get(ctx, revokedKeyPrefix+jti).Err()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("IsRevoked: %w: %w", apperr.ErrInternal, err)
	default:
		return true, nil
	}
}
