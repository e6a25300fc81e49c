// Package apperr 定義服務層共用的錯誤分類
// 呼叫端以 errors.Is 比對，HTTP 層再轉為狀態碼
package apperr

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal error")
)

// ValidationError 帶有逐欄位的錯誤訊息
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Invalid 建立單一欄位的 ValidationError
func Invalid(field, message string) error {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Fields 取出錯誤鏈中的欄位訊息，沒有則回傳 nil
func Fields(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}

// Public 帶有可直接回給呼叫端的訊息，分類由 Kind 決定
type Public struct {
	Kind error
	Msg  string
}

func (e *Public) Error() string { return e.Kind.Error() + ": " + e.Msg }

func (e *Public) Unwrap() error { return e.Kind }

// New 以分類 kind 建立帶公開訊息的錯誤
func New(kind error, msg string) error {
	return &Public{Kind: kind, Msg: msg}
}

// Message 取出錯誤鏈中的公開訊息
func Message(err error) (string, bool) {
	var pe *Public
	if errors.As(err, &pe) {
		return pe.Msg, true
	}
	return "", false
}
