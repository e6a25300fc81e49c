package templates

import (
	"net/http"

	"template-vault/internal/apperr"
	"template-vault/internal/dto"
	"template-vault/internal/handler"
	"template-vault/internal/middleware"
	"template-vault/internal/model"
	"template-vault/internal/service"

	"github.com/labstack/echo/v4"
)

// ownedTemplate 以路徑參數 id 讀取範本並確認為當前使用者所有
func ownedTemplate(c echo.Context, svc *service.TemplateService) (*model.Template, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, apperr.ErrUnauthorized
	}
	return svc.GetOwned(c.Request().Context(), c.Param("id"), user)
}

// GetTemplateHandler 取得單一範本
// @Summary     Get template
// @Description 範本不存在或不屬於當前使用者時皆回傳 404
// @Tags        templates
// @Produce     json
// @Param       id  path     string true "範本 ID"
// @Success     200 {object} dto.TemplateResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /templates/{id} [get]
func GetTemplateHandler(svc *service.TemplateService) echo.HandlerFunc {
	return func(c echo.Context) error {
		tpl, err := ownedTemplate(c, svc)
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewTemplateResponse(tpl))
	}
}

// UpdateTemplateHandler 部分更新範本
// @Summary     Update template
// @Description 省略或空字串的欄位保持原值；改名與既有範本衝突時回傳 409
// @Tags        templates
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       id   path     string                    true "範本 ID"
// @Param       body body     dto.UpdateTemplateRequest true "要更新的欄位"
// @Success     200  {object} dto.TemplateResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     404  {object} dto.HTTPError
// @Failure     409  {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /templates/{id} [put]
func UpdateTemplateHandler(svc *service.TemplateService) echo.HandlerFunc {
	return func(c echo.Context) error {
		tpl, err := ownedTemplate(c, svc)
		if err != nil {
			return handler.WriteError(c, err)
		}
		var req dto.UpdateTemplateRequest
		if err := c.Bind(&req); err != nil {
			return handler.BindError(c)
		}
		if err := c.Validate(&req); err != nil {
			return handler.WriteError(c, err)
		}

		updated, err := svc.Update(c.Request().Context(), tpl.ID, model.TemplatePatch{
			Name:    nonEmpty(req.Name),
			Subject: nonEmpty(req.Subject),
			Body:    nonEmpty(req.Body),
		})
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewTemplateResponse(updated))
	}
}

// DeleteTemplateHandler 刪除範本
// @Summary     Delete template
// @Tags        templates
// @Param       id  path string true "範本 ID"
// @Success     204
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /templates/{id} [delete]
func DeleteTemplateHandler(svc *service.TemplateService) echo.HandlerFunc {
	return func(c echo.Context) error {
		tpl, err := ownedTemplate(c, svc)
		if err != nil {
			return handler.WriteError(c, err)
		}
		if err := svc.Delete(c.Request().Context(), tpl.ID); err != nil {
			return handler.WriteError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
