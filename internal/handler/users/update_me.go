package users

import (
	"net/http"

	"template-vault/internal/apperr"
	"template-vault/internal/dto"
	"template-vault/internal/handler"
	"template-vault/internal/middleware"
	"template-vault/internal/service"

	"github.com/labstack/echo/v4"
)

// UpdateMeHandler 更新當前使用者姓名
// @Summary     Update current user
// @Description 只能修改 first_name / last_name，兩者皆可省略但至少需提供一個
// @Tags        users
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       body body     dto.UpdateUserRequest true "要更新的欄位"
// @Success     200  {object} dto.UserResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /users [put]
func UpdateMeHandler(svc *service.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return handler.WriteError(c, apperr.ErrUnauthorized)
		}
		var req dto.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return handler.BindError(c)
		}
		if err := c.Validate(&req); err != nil {
			return handler.WriteError(c, err)
		}

		updated, err := svc.Update(c.Request().Context(), user.ID, service.UpdateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
		})
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewUserResponse(updated))
	}
}
