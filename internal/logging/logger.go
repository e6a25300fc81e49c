// Package logging 建立全服務共用的 slog.Logger
package logging

import (
	"io"
	"log/slog"
	"os"
)

var output io.Writer = os.Stdout

// New development 使用文字格式與 Debug 等級，其餘環境輸出 JSON
func New(env string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	if env == "development" {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(output, opts)
	} else {
		handler = slog.NewJSONHandler(output, opts)
	}
	return slog.New(handler)
}

// Discard 測試用，不輸出任何內容
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
