package auth

import (
	"net/http"

	"template-vault/internal/dto"
	"template-vault/internal/handler"
	"template-vault/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description Email 或密碼錯誤皆回傳 404 與相同訊息；停用的帳號無法登入
// @Tags        auth
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       body body     dto.LoginRequest true "登入資料"
// @Success     200  {object} dto.LoginResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     404  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /users/login [post]
func LoginHandler(svc *service.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return handler.BindError(c)
		}
		if err := c.Validate(&req); err != nil {
			return handler.WriteError(c, err)
		}

		res, err := svc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, dto.LoginResponse{
			AccessToken: res.Token,
			TokenType:   "Bearer",
			ExpiresAt:   res.ExpiresAt,
			User:        dto.NewUserResponse(res.User),
		})
	}
}
