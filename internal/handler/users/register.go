package users

import (
	"net/http"

	"template-vault/internal/dto"
	"template-vault/internal/handler"
	"template-vault/internal/service"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 建立新使用者
// @Summary     Register a new user
// @Description 建立帳號；email 已被使用時回傳 409。Email 區分大小寫
// @Tags        users
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       body body     dto.RegisterRequest true "使用者資料"
// @Success     201  {object} dto.UserResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     409  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /users [post]
func RegisterHandler(svc *service.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return handler.BindError(c)
		}
		if err := c.Validate(&req); err != nil {
			return handler.WriteError(c, err)
		}

		user, err := svc.Register(c.Request().Context(), service.RegisterInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.Password,
		})
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusCreated, dto.NewUserResponse(user))
	}
}
