package router

import (
	"template-vault/internal/cache"
	"template-vault/internal/database"
	"template-vault/internal/handler"
	"template-vault/internal/handler/auth"
	"template-vault/internal/handler/templates"
	"template-vault/internal/handler/users"
	"template-vault/internal/middleware"
	"template-vault/internal/service"

	"github.com/labstack/echo/v4"
)

// Deps 路由需要的元件，由 cmd/service 建立後注入
type Deps struct {
	DB          database.DB
	Cache       cache.Cache
	Users       *service.UserService
	Templates   *service.TemplateService
	Tokens      *service.TokenService
	Revocations *service.Revocations
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	api := e.Group("/api")
	requireAuth := middleware.RequireAuth(d.Tokens, d.Users, d.Revocations)

	// 健康檢查
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	// 註冊與登入
	api.POST("/users", users.RegisterHandler(d.Users))
	api.POST("/users/login", auth.LoginHandler(d.Users))
	api.POST("/users/logout", auth.LogoutHandler(d.Users), requireAuth)

	// 當前使用者
	api.GET("/users", users.GetMeHandler(), requireAuth)
	api.PUT("/users", users.UpdateMeHandler(d.Users), requireAuth)
	api.DELETE("/users", users.DisableMeHandler(d.Users), requireAuth)
	api.DELETE("/users/account", users.DeleteAccountHandler(d.Users), requireAuth)

	// 當前使用者的範本
	apiTemplates := api.Group("/templates", requireAuth)
	apiTemplates.POST("", templates.CreateTemplateHandler(d.Templates))
	apiTemplates.GET("", templates.ListTemplatesHandler(d.Templates))
	apiTemplates.GET("/:id", templates.GetTemplateHandler(d.Templates))
	apiTemplates.PUT("/:id", templates.UpdateTemplateHandler(d.Templates))
	apiTemplates.DELETE("/:id", templates.DeleteTemplateHandler(d.Templates))
}
