// @title        Template Vault API
// @version      1.0
// @description  使用者與其文字範本的 CRUD API
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 格式：Bearer {token}
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"template-vault/internal/cache"
	"template-vault/internal/config"
	"template-vault/internal/database"
	"template-vault/internal/handler"
	"template-vault/internal/logging"
	"template-vault/internal/router"
	"template-vault/internal/service"
	"template-vault/internal/store"
	"template-vault/internal/validation"
	"template-vault/internal/worker"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "template-vault/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

var (
	loadDotenv      = func() error { return godotenv.Load() }
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

func run() error {
	// .env 不存在時直接使用環境變數
	_ = loadDotenv()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	logger := logging.New(cfg.Env)
	slog.SetDefault(logger)

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	rdb, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer rdb.Close()

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	tokens := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenTTL)
	revocations := service.NewRevocations(rdb)
	templates := service.NewTemplateService(store.NewTemplateStore(db), logger)
	users := service.NewUserService(
		store.NewUserStore(db),
		templates,
		service.NewPasswordHasher(cfg.BcryptCost, wp),
		tokens,
		revocations,
		logger,
	)

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.IsDevelopment()
	e.Validator = validation.EchoValidator{}
	e.HTTPErrorHandler = handler.ErrorHandler
	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig(logger)))
	e.Use(middleware.Recover())

	router.Setup(e, router.Deps{
		DB:          db,
		Cache:       rdb,
		Users:       users,
		Templates:   templates,
		Tokens:      tokens,
		Revocations: revocations,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	logger.Info("server starting", "addr", cfg.HTTPAddr, "env", cfg.Env)
	return startServer(e, cfg.HTTPAddr)
}

// requestLoggerConfig 將每個請求記錄到 slog
func requestLoggerConfig(logger *slog.Logger) middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}
}

func main() {
	if err := run(); err != nil {
		slog.Error("service stopped", "error", err)
		exitFunc(1)
	}
}
