package service

import (
	"context"
	"fmt"
	"sync"

	"template-vault/internal/apperr"
	"template-vault/internal/worker"

	"golang.org/x/crypto/bcrypt"
)

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// PasswordHasher 以 bcrypt 雜湊密碼，運算交由工作池執行以限制併發量
type PasswordHasher struct {
	cost int
	pool worker.Pool

	dummyOnce sync.Once
	dummy     []byte
}

// NewPasswordHasher cost 為 0 時使用 bcrypt.DefaultCost；pool 為 nil 時直接在呼叫端執行
func NewPasswordHasher(cost int, pool worker.Pool) *PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost, pool: pool}
}

type hashResult struct {
	hash []byte
	err  error
}

func run[T any](ctx context.Context, pool worker.Pool, fn func() T) (T, error) {
	if pool == nil {
		return fn(), nil
	}
	return worker.Do(ctx, pool, fn)
}

// Hash 每次產生新的 salt，同一密碼兩次呼叫結果不同
func (h *PasswordHasher) Hash(ctx context.Context, password string) (string, error) {
	res, err := run(ctx, h.pool, func() hashResult {
		b, err := bcryptGenerateFromPassword([]byte(password), h.cost)
		return hashResult{hash: b, err: err}
	})
	if err != nil {
		return "", fmt.Errorf("HashPassword: %w: %w", apperr.ErrInternal, err)
	}
	if res.err != nil {
		return "", fmt.Errorf("HashPassword: %w: %w", apperr.ErrInternal, res.err)
	}
	return string(res.hash), nil
}

// Verify 密碼不符、雜湊格式錯誤或等不到 worker 時皆回傳 false
func (h *PasswordHasher) Verify(ctx context.Context, password, hash string) bool {
	ok, err := run(ctx, h.pool, func() bool {
		return bcryptCompareHashAndPassword([]byte(hash), []byte(password)) == nil
	})
	return err == nil && ok
}

// VerifyDummy 對固定雜湊做一次比對，讓查無帳號與密碼錯誤花費相近的時間
func (h *PasswordHasher) VerifyDummy(ctx context.Context, password string) {
	h.dummyOnce.Do(func() {
		h.dummy, _ = bcrypt.GenerateFromPassword([]byte("template-vault-dummy"), h.cost)
	})
	_ = h.Verify(ctx, password, string(h.dummy))
}
