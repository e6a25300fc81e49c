package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"template-vault/internal/apperr"
	"template-vault/internal/worker"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()
	pool := worker.NewPool(2)
	t.Cleanup(pool.Stop)

	for name, h := range map[string]*PasswordHasher{
		"inline": NewPasswordHasher(bcrypt.MinCost, nil),
		"pool":   NewPasswordHasher(bcrypt.MinCost, pool),
	} {
		t.Run(name, func(t *testing.T) {
			first, err := h.Hash(ctx, "Aa1!aaaa")
			require.NoError(t, err)
			second, err := h.Hash(ctx, "Aa1!aaaa")
			require.NoError(t, err)

			require.NotEqual(t, first, second)
			require.True(t, h.Verify(ctx, "Aa1!aaaa", first))
			require.True(t, h.Verify(ctx, "Aa1!aaaa", second))
			require.False(t, h.Verify(ctx, "Aa1!aaab", first))
			require.False(t, h.Verify(ctx, "Aa1!aaaa", "not-a-bcrypt-hash"))
		})
	}
}

func TestPasswordHasherDefaultCost(t *testing.T) {
	require.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(0, nil).cost)
}

func TestPasswordHasherGenerateError(t *testing.T) {
	t.Cleanup(restoreGlobals)
	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err := NewPasswordHasher(bcrypt.MinCost, nil).Hash(context.Background(), "pw")
	require.ErrorIs(t, err, apperr.ErrInternal)
}

func TestPasswordHasherStoppedPool(t *testing.T) {
	pool := worker.NewPool(1)
	pool.Stop()
	h := NewPasswordHasher(bcrypt.MinCost, pool)

	_, err := h.Hash(context.Background(), "pw")
	require.ErrorIs(t, err, worker.ErrPoolStopped)
	require.False(t, h.Verify(context.Background(), "pw", "hash"))
}

func TestPasswordHasherCancelledContext(t *testing.T) {
	pool := worker.NewPool(1)
	t.Cleanup(pool.Stop)

	// 佔住唯一的 worker
	release := make(chan struct{})
	require.NoError(t, pool.Submit(context.Background(), func() { <-release }))
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := NewPasswordHasher(bcrypt.MinCost, pool).Hash(ctx, "pw")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestVerifyDummy(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost, nil)
	h.VerifyDummy(context.Background(), "whatever")
	require.NotEmpty(t, h.dummy)
}
