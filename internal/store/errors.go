package store

import (
	"errors"
	"fmt"

	"template-vault/internal/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// wrapErr 將 pgx 錯誤轉為 apperr 分類並附上操作名稱
func wrapErr(op string, err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	case errors.As(err, &pgErr) && pgErr.Code == uniqueViolation:
		return fmt.Errorf("%s: %w (%s)", op, apperr.ErrConflict, pgErr.ConstraintName)
	default:
		return fmt.Errorf("%s: %w: %w", op, apperr.ErrInternal, err)
	}
}

// parseID 無法解析的識別碼視為不存在
func parseID(op, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}
	return parsed, nil
}
