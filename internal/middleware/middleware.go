package middleware

import (
	"context"
	"errors"
	"strings"

	"template-vault/internal/apperr"
	"template-vault/internal/handler"
	"template-vault/internal/model"
	"template-vault/internal/service"

	"github.com/labstack/echo/v4"
)

const (
	ContextUserKey   = "user"
	ContextClaimsKey = "claims"
)

var (
	errMissingToken = apperr.New(apperr.ErrUnauthorized, "missing token")
	errBadHeader    = apperr.New(apperr.ErrUnauthorized, "invalid authorization header format")
	errBadToken     = apperr.New(apperr.ErrUnauthorized, "invalid or expired token")
)

type TokenParser interface {
	Parse(token string) (*service.Claims, error)
}

type UserLookup interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}

type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

func extractBearer(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", errMissingToken
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errBadHeader
	}
	return strings.TrimSpace(parts[1]), nil
}

// RequireAuth 驗證 bearer token、撤銷狀態與使用者是否仍為 active
// 任一步失敗即回應錯誤，不會執行 next
func RequireAuth(tokens TokenParser, users UserLookup, revocations RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := extractBearer(c)
			if err != nil {
				return handler.WriteError(c, err)
			}
			claims, err := tokens.Parse(raw)
			if err != nil {
				return handler.WriteError(c, errBadToken)
			}

			ctx := c.Request().Context()
			revoked, err := revocations.IsRevoked(ctx, claims.ID)
			if err != nil {
				return handler.WriteError(c, err)
			}
			if revoked {
				return handler.WriteError(c, errBadToken)
			}

			// 停用或已刪除的帳號，未過期的 token 也不再有效
			user, err := users.GetByID(ctx, claims.Subject)
			if errors.Is(err, apperr.ErrNotFound) {
				return handler.WriteError(c, errBadToken)
			}
			if err != nil {
				return handler.WriteError(c, err)
			}

			c.Set(ContextUserKey, user)
			c.Set(ContextClaimsKey, claims)
			return next(c)
		}
	}
}

// CurrentUser 取得 RequireAuth 解析出的使用者
func CurrentUser(c echo.Context) (*model.User, bool) {
	u, ok := c.Get(ContextUserKey).(*model.User)
	return u, ok && u != nil
}

func CurrentClaims(c echo.Context) (*service.Claims, bool) {
	cl, ok := c.Get(ContextClaimsKey).(*service.Claims)
	return cl, ok && cl != nil
}
