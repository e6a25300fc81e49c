// File: internal/store/user.go
package store

import (
	"context"
	"fmt"

	"template-vault/internal/apperr"
	"template-vault/internal/database"
	"template-vault/internal/model"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id::text, email, password_hash, first_name, last_name, active, created_at, updated_at`

// UserStore 存取 users collection
type UserStore struct {
	db database.DB
}

func NewUserStore(db database.DB) *UserStore {
	return &UserStore{db: db}
}

// Create 寫入新使用者並回填 id、active 與時間欄位
func (s *UserStore) Create(ctx context.Context, u *model.User) error {
	row := s.db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, first_name, last_name)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id::text, active, created_at, updated_at`,
		u.Email,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
	)
	if err := row.Scan(&u.ID, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return wrapErr("CreateUser", err)
	}
	return nil
}

// FindByID 只回傳 active 的使用者
func (s *UserStore) FindByID(ctx context.Context, id string) (*model.User, error) {
	uid, err := parseID("FindUserByID", id)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1 AND active`,
		uid,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, wrapErr("FindUserByID", err)
	}
	return u, nil
}

// FindByEmail 只回傳 active 的使用者，包含密碼雜湊
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1 AND active`,
		email,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, wrapErr("FindUserByEmail", err)
	}
	return u, nil
}

// UpdateNames nil 的欄位保持原值
func (s *UserStore) UpdateNames(ctx context.Context, id string, firstName, lastName *string) (*model.User, error) {
	uid, err := parseID("UpdateUserNames", id)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRow(ctx,
		`UPDATE users SET
		     first_name = COALESCE($2, first_name),
		     last_name = COALESCE($3, last_name),
		     updated_at = now()
		 WHERE id = $1 AND active
		 RETURNING `+userColumns,
		uid,
		firstName,
		lastName,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, wrapErr("UpdateUserNames", err)
	}
	return u, nil
}

// Deactivate 軟刪除：active=false，資料列保留
func (s *UserStore) Deactivate(ctx context.Context, id string) error {
	uid, err := parseID("DeactivateUser", id)
	if err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx,
		`UPDATE users SET active = FALSE, updated_at = now()
		 WHERE id = $1 AND active`,
		uid,
	)
	if err != nil {
		return wrapErr("DeactivateUser", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeactivateUser: %w", apperr.ErrNotFound)
	}
	return nil
}

// Delete 硬刪除使用者資料列，不處理其範本
func (s *UserStore) Delete(ctx context.Context, id string) error {
	uid, err := parseID("DeleteUser", id)
	if err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, uid)
	if err != nil {
		return wrapErr("DeleteUser", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteUser: %w", apperr.ErrNotFound)
	}
	return nil
}

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Active,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
}
