package handler

import (
	"log/slog"
	"net/http"
	"time"

	"template-vault/internal/cache"
	"template-vault/internal/database"
	"template-vault/internal/dto"

	"github.com/labstack/echo/v4"
)

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與 Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /ping [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			slog.ErrorContext(ctx, "database ping failed", "error", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Code: CodeInternal, Message: "database unhealthy"})
		}
		if err := cch.Set(ctx, "ping", "pong", time.Minute).Err(); err != nil {
			slog.ErrorContext(ctx, "cache ping failed", "error", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Code: CodeInternal, Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
