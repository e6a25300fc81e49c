package users

import (
	"net/http"

	"template-vault/internal/apperr"
	"template-vault/internal/dto"
	"template-vault/internal/handler"
	"template-vault/internal/middleware"

	"github.com/labstack/echo/v4"
)

// GetMeHandler 取得當前使用者資料
// @Summary     Get current user
// @Tags        users
// @Produce     json
// @Success     200 {object} dto.UserResponse
// @Failure     401 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /users [get]
func GetMeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return handler.WriteError(c, apperr.ErrUnauthorized)
		}
		return c.JSON(http.StatusOK, dto.NewUserResponse(user))
	}
}
