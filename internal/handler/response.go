package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"template-vault/internal/apperr"
	"template-vault/internal/dto"

	"github.com/labstack/echo/v4"
)

const (
	CodeValidationFailed = "validation_failed"
	CodeUnauthorized     = "unauthorized"
	CodeNotFound         = "not_found"
	CodeConflict         = "conflict"
	CodeInternal         = "internal"
)

var errInvalidBody = apperr.New(apperr.ErrValidation, "invalid request body")

type errorKind struct {
	target  error
	status  int
	code    string
	message string
}

var errorKinds = []errorKind{
	{apperr.ErrValidation, http.StatusBadRequest, CodeValidationFailed, "validation failed"},
	{apperr.ErrUnauthorized, http.StatusUnauthorized, CodeUnauthorized, "unauthorized"},
	{apperr.ErrNotFound, http.StatusNotFound, CodeNotFound, "not found"},
	{apperr.ErrConflict, http.StatusConflict, CodeConflict, "conflict"},
}

// WriteError 依 apperr 分類寫出 dto.HTTPError
// 未分類的錯誤一律視為 500，只有 echo Debug 模式才回傳原始訊息
func WriteError(c echo.Context, err error) error {
	for _, k := range errorKinds {
		if !errors.Is(err, k.target) {
			continue
		}
		body := dto.HTTPError{Code: k.code, Message: k.message}
		if msg, ok := apperr.Message(err); ok {
			body.Message = msg
		}
		if k.target == apperr.ErrValidation {
			body.Fields = apperr.Fields(err)
		}
		return c.JSON(k.status, body)
	}

	req := c.Request()
	slog.ErrorContext(req.Context(), "request failed",
		"method", req.Method,
		"path", c.Path(),
		"error", err,
	)
	body := dto.HTTPError{Code: CodeInternal, Message: "internal server error"}
	if c.Echo().Debug {
		body.Message = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, body)
}

// BindError 請求內容無法解析
func BindError(c echo.Context) error {
	return WriteError(c, errInvalidBody)
}

// ErrorHandler 取代 echo 預設的錯誤處理，讓 404/405 等也使用 dto.HTTPError
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code := CodeInternal
		switch he.Code {
		case http.StatusBadRequest:
			code = CodeValidationFailed
		case http.StatusUnauthorized:
			code = CodeUnauthorized
		case http.StatusNotFound:
			code = CodeNotFound
		case http.StatusConflict:
			code = CodeConflict
		default:
			if he.Code < http.StatusInternalServerError {
				code = http.StatusText(he.Code)
			}
		}
		_ = c.JSON(he.Code, dto.HTTPError{Code: code, Message: fmt.Sprint(he.Message)})
		return
	}
	_ = WriteError(c, err)
}
