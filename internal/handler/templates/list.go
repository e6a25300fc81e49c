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

// ListTemplatesHandler 列出當前使用者的所有範本
// @Summary     List templates
// @Tags        templates
// @Produce     json
// @Success     200 {array}  dto.TemplateResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /templates [get]
func ListTemplatesHandler(svc *service.TemplateService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return handler.WriteError(c, apperr.ErrUnauthorized)
		}
		list, err := svc.ListByOwner(c.Request().Context(), user.ID)
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewTemplateList(list))
	}
}
