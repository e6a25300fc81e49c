package templates

import (
	"net/http"

	"template-vault/internal/apperr"
	"template-vault/internal/dto"
	"template-vault/internal/handler"
	"template-vault/internal/middleware"
	"template-vault/internal/service"

	"github.com/labstack/echo/v4"
)

// CreateTemplateHandler 為當前使用者建立範本
// @Summary     Create template
// @Description 同一使用者底下名稱不可重複 (409)，不同使用者可使用相同名稱
// @Tags        templates
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       body body     dto.CreateTemplateRequest true "範本內容"
// @Success     201  {object} dto.TemplateResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     409  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /templates [post]
func CreateTemplateHandler(svc *service.TemplateService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return handler.WriteError(c, apperr.ErrUnauthorized)
		}
		var req dto.CreateTemplateRequest
		if err := c.Bind(&req); err != nil {
			return handler.BindError(c)
		}
		if err := c.Validate(&req); err != nil {
			return handler.WriteError(c, err)
		}

		tpl, err := svc.Create(c.Request().Context(), user.ID, service.TemplateInput{
			Name:    req.Name,
			Subject: req.Subject,
			Body:    req.Body,
		})
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusCreated, dto.NewTemplateResponse(tpl))
	}
}
