package auth

import (
	"net/http"

	"template-vault/internal/apperr"
	"template-vault/internal/handler"
	"template-vault/internal/middleware"
	"template-vault/internal/service"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 撤銷目前使用的 token
// @Summary     登出
// @Tags        auth
// @Success     204
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /users/logout [post]
func LogoutHandler(svc *service.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.CurrentClaims(c)
		if !ok {
			return handler.WriteError(c, apperr.ErrUnauthorized)
		}
		if err := svc.Logout(c.Request().Context(), claims); err != nil {
			return handler.WriteError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
