// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config 服務啟動時載入一次，之後唯讀
type Config struct {
	Env         string
	HTTPAddr    string
	DatabaseURL string
	Redis       RedisConfig
	JWT         JWTConfig
	BcryptCost  int
	WorkerCount int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
}

func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// Load 由環境變數 (與 .env) 讀取設定並檢查必要欄位
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	v.SetDefault("WORKER_COUNT", 4)

	for _, key := range []string{"DATABASE_URL", "REDIS_ADDR", "REDIS_PASSWORD", "JWT_SECRET"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}
	v.AutomaticEnv()

	ttl, err := time.ParseDuration(v.GetString("TOKEN_TTL"))
	if err != nil {
		return nil, fmt.Errorf("無效的 TOKEN_TTL: %w", err)
	}

	cfg := &Config{
		Env:         v.GetString("APP_ENV"),
		HTTPAddr:    v.GetString("HTTP_ADDR"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:   v.GetString("JWT_SECRET"),
			TokenTTL: ttl,
		},
		BcryptCost:  v.GetInt("BCRYPT_COST"),
		WorkerCount: v.GetInt("WORKER_COUNT"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 檢查必要設定與數值範圍
func (c *Config) Validate() error {
	var errs []error
	if c.Env != EnvDevelopment && c.Env != EnvProduction {
		errs = append(errs, fmt.Errorf("無效的 APP_ENV: %q", c.Env))
	}
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("環境變數 DATABASE_URL 未設定"))
	}
	if c.Redis.Addr == "" {
		errs = append(errs, errors.New("環境變數 REDIS_ADDR 未設定"))
	}
	if c.Redis.DB < 0 {
		errs = append(errs, fmt.Errorf("無效的 REDIS_DB: %d", c.Redis.DB))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("環境變數 JWT_SECRET 未設定"))
	}
	if c.JWT.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("無效的 TOKEN_TTL: %s", c.JWT.TokenTTL))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("無效的 BCRYPT_COST: %d", c.BcryptCost))
	}
	if c.WorkerCount <= 0 {
		errs = append(errs, fmt.Errorf("無效的 WORKER_COUNT: %d", c.WorkerCount))
	}
	return errors.Join(errs...)
}
