package users

import (
	"net/http"

	"template-vault/internal/apperr"
	"template-vault/internal/handler"
	"template-vault/internal/middleware"
	"template-vault/internal/service"

	"github.com/labstack/echo/v4"
)

// DisableMeHandler 停用當前使用者帳號 (軟刪除，範本保留)
// @Summary     Disable current user
// @Tags        users
// @Success     204
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /users [delete]
func DisableMeHandler(svc *service.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return handler.WriteError(c, apperr.ErrUnauthorized)
		}
		if err := svc.Disable(c.Request().Context(), user.ID); err != nil {
			return handler.WriteError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// DeleteAccountHandler 永久刪除當前使用者與其所有範本
// @Summary     Delete current user permanently
// @Tags        users
// @Success     204
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /users/account [delete]
func DeleteAccountHandler(svc *service.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return handler.WriteError(c, apperr.ErrUnauthorized)
		}
		if err := svc.Delete(c.Request().Context(), user.ID); err != nil {
			return handler.WriteError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
