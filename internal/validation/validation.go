// Package validation 以 go-playground/validator 實作純函式的欄位驗證
// 不依賴 HTTP 層，回傳逐欄位的錯誤訊息
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"template-vault/internal/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const passwordSpecials = "@$!%*#?&"

var (
	emailRegex    = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	passwordChars = regexp.MustCompile(`^[A-Za-z\d@$!%*#?&]{8,20}$`)

	validate = newValidate()
)

// Violations 欄位名稱 (JSON) → 錯誤訊息
type Violations map[string]string

// Err 無違規時回傳 nil，否則回傳 *apperr.ValidationError
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return &apperr.ValidationError{Fields: map[string]string(v)}
}

func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	mustRegister(v, "email_address", func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
	mustRegister(v, "password", func(fl validator.FieldLevel) bool {
		return IsPassword(fl.Field().String())
	})
	mustRegister(v, "id", func(fl validator.FieldLevel) bool {
		return IsID(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s: %v", tag, err))
	}
}

// IsEmail 檢查 Email 格式
func IsEmail(s string) bool {
	return len(s) <= 254 && emailRegex.MatchString(s)
}

// IsPassword 8–20 字元，需含大小寫字母、數字與特殊字元 (@$!%*#?&)
func IsPassword(s string) bool {
	if !passwordChars.MatchString(s) {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return lower && upper && digit && special
}

// IsID 檢查是否為合法的儲存層識別碼 (UUID)
func IsID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// Struct 依 `validate` tag 驗證結構，回傳所有違規欄位
func Struct(s any) Violations {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Violations{"_": err.Error()}
	}
	out := Violations{}
	for _, fe := range verrs {
		if _, exists := out[fe.Field()]; exists {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	label := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email_address":
		return label + " is invalid"
	case "password":
		return "Password is invalid, should be 8-20 characters with upper and lower case letters, numbers and special characters"
	case "id":
		return label + " must be a valid id"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	default:
		return label + " is invalid"
	}
}

// humanize first_name → First name
func humanize(field string) string {
	s := strings.ReplaceAll(field, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// EchoValidator 讓 echo 的 c.Validate 使用相同規則
type EchoValidator struct{}

// Validate implements echo.Validator
func (EchoValidator) Validate(i interface{}) error {
	return Struct(i).Err()
}
