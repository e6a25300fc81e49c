package service

import (
	"context"
	"testing"

	"template-vault/internal/apperr"

	"github.com/stretchr/testify/require"
)

var ann = RegisterInput{FirstName: "Ann", LastName: "Lee", Email: "a@b.com", Password: "Aa1!aaaa"}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	u, err := env.users.Register(ctx, ann)
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.True(t, u.Active)
	require.Empty(t, u.PasswordHash)

	stored, err := env.users.GetByEmail(ctx, ann.Email)
	require.NoError(t, err)
	require.NotEqual(t, ann.Password, stored.PasswordHash)
	require.NotEmpty(t, stored.PasswordHash)

	_, err = env.users.Register(ctx, ann)
	require.ErrorIs(t, err, apperr.ErrConflict)
	msg, ok := apperr.Message(err)
	require.True(t, ok)
	require.Equal(t, "email already registered", msg)

	// email 比對區分大小寫
	upper := ann
	upper.Email = "A@b.com"
	_, err = env.users.Register(ctx, upper)
	require.NoError(t, err)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	u, err := env.users.Register(ctx, ann)
	require.NoError(t, err)

	got, err := env.users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, ann.Email, got.Email)
	require.Empty(t, got.PasswordHash)

	_, err = env.users.GetByID(ctx, "not-an-id")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	u, err := env.users.Register(ctx, ann)
	require.NoError(t, err)

	last := "Smith"
	got, err := env.users.Update(ctx, u.ID, UpdateInput{LastName: &last})
	require.NoError(t, err)
	require.Equal(t, "Ann", got.FirstName)
	require.Equal(t, "Smith", got.LastName)

	first := "Anna"
	got, err = env.users.Update(ctx, u.ID, UpdateInput{FirstName: &first})
	require.NoError(t, err)
	require.Equal(t, "Anna", got.FirstName)
	require.Equal(t, "Smith", got.LastName)

	_, err = env.users.Update(ctx, u.ID, UpdateInput{})
	require.ErrorIs(t, err, apperr.ErrValidation)
	require.Contains(t, apperr.Fields(err), "first_name")
}

func TestDisable(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	u, err := env.users.Register(ctx, ann)
	require.NoError(t, err)
	_, err = env.templates.Create(ctx, u.ID, TemplateInput{Name: "welcome"})
	require.NoError(t, err)

	require.NoError(t, env.users.Disable(ctx, u.ID))
	_, err = env.users.GetByID(ctx, u.ID)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.ErrorIs(t, env.users.Disable(ctx, u.ID), apperr.ErrNotFound)

	// 停用的帳號不能登入
	_, err = env.users.Login(ctx, ann.Email, ann.Password)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	list, err := env.templates.ListByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestDeleteCascades(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	u, err := env.users.Register(ctx, ann)
	require.NoError(t, err)
	for _, name := range []string{"welcome", "reset"} {
		_, err := env.templates.Create(ctx, u.ID, TemplateInput{Name: name, Subject: "s", Body: "b"})
		require.NoError(t, err)
	}

	require.NoError(t, env.users.Delete(ctx, u.ID))
	require.Zero(t, env.userStore.Len())

	list, err := env.templates.ListByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, list)

	require.ErrorIs(t, env.users.Delete(ctx, u.ID), apperr.ErrNotFound)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	u, err := env.users.Register(ctx, ann)
	require.NoError(t, err)

	res, err := env.users.Login(ctx, ann.Email, ann.Password)
	require.NoError(t, err)
	require.Equal(t, u.ID, res.User.ID)
	require.Empty(t, res.User.PasswordHash)
	require.False(t, res.ExpiresAt.IsZero())

	id, err := env.tokens.Verify(res.Token)
	require.NoError(t, err)
	require.Equal(t, u.ID, id)

	_, wrongPassword := env.users.Login(ctx, ann.Email, "Bb2@bbbb")
	_, unknownEmail := env.users.Login(ctx, "nobody@b.com", ann.Password)
	require.ErrorIs(t, wrongPassword, apperr.ErrNotFound)
	require.ErrorIs(t, unknownEmail, apperr.ErrNotFound)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	_, err := env.users.Register(ctx, ann)
	require.NoError(t, err)
	res, err := env.users.Login(ctx, ann.Email, ann.Password)
	require.NoError(t, err)

	claims, err := env.tokens.Parse(res.Token)
	require.NoError(t, err)
	revoked, err := env.users.revocations.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, env.users.Logout(ctx, claims))
	revoked, err = env.users.revocations.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	require.True(t, revoked)

	require.NoError(t, env.users.Logout(ctx, nil))
}
