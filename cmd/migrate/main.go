// migrate 手動執行資料庫 schema 遷移：up 套用全部，down 全部回滾
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"template-vault/internal/config"
	"template-vault/internal/database"
	"template-vault/internal/logging"

	"github.com/joho/godotenv"
)

var (
	loadDotenv  = func() error { return godotenv.Load() }
	loadConfig  = config.Load
	migrateUp   = database.RunMigrations
	migrateDown = database.RollbackAll
	exitFunc    = os.Exit
)

var errUsage = errors.New("usage: migrate up|down")

func run(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	_ = loadDotenv()
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	logger := logging.New(cfg.Env)

	switch args[0] {
	case "up":
		if err := migrateUp(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Migration 執行失敗: %w", err)
		}
	case "down":
		if err := migrateDown(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Migration 回滾失敗: %w", err)
		}
	default:
		return errUsage
	}
	logger.Info("migration finished", "direction", args[0])
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("migrate failed", "error", err)
		exitFunc(1)
	}
}
