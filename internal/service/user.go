package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"template-vault/internal/apperr"
	"template-vault/internal/model"
)

// UserStore 使用者儲存層；*store.UserStore 與 *store.MemoryUsers 皆實作
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateNames(ctx context.Context, id string, firstName, lastName *string) (*model.User, error)
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// TemplateRemover 硬刪除使用者時連帶移除其範本
type TemplateRemover interface {
	DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error)
}

var errLoginFailed = apperr.New(apperr.ErrNotFound, "invalid email or password")

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// UpdateInput nil 欄位保持原值
type UpdateInput struct {
	FirstName *string
	LastName  *string
}

type LoginResult struct {
	User      *model.User
	Token     string
	ExpiresAt time.Time
}

type UserService struct {
	users       UserStore
	templates   TemplateRemover
	hasher      *PasswordHasher
	tokens      *TokenService
	revocations *Revocations
	log         *slog.Logger
}

func NewUserService(
	users UserStore,
	templates TemplateRemover,
	hasher *PasswordHasher,
	tokens *TokenService,
	revocations *Revocations,
	log *slog.Logger,
) *UserService {
	if log == nil {
		log = slog.Default()
	}
	return &UserService{
		users:       users,
		templates:   templates,
		hasher:      hasher,
		tokens:      tokens,
		revocations: revocations,
		log:         log.With("component", "users"),
	}
}

// Register email 已被 active 使用者使用時回傳 Conflict；回傳值不含密碼雜湊
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	_, err := s.users.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("Register: %w", apperr.New(apperr.ErrConflict, "email already registered"))
	case !errors.Is(err, apperr.ErrNotFound):
		return nil, fmt.Errorf("Register: %w", err)
	}

	hash, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, fmt.Errorf("Register: %w", err)
	}
	u := &model.User{
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	}
	if err := s.users.Create(ctx, u); err != nil {
		// 兩個請求同時通過前面的檢查時由唯一索引擋下
		if errors.Is(err, apperr.ErrConflict) {
			return nil, fmt.Errorf("Register: %w", apperr.New(apperr.ErrConflict, "email already registered"))
		}
		return nil, fmt.Errorf("Register: %w", err)
	}
	s.log.InfoContext(ctx, "user registered", "user_id", u.ID)
	return u.WithoutPassword(), nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.WithoutPassword(), nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.users.FindByEmail(ctx, email)
}

func (s *UserService) Update(ctx context.Context, id string, in UpdateInput) (*model.User, error) {
	if in.FirstName == nil && in.LastName == nil {
		return nil, &apperr.ValidationError{Fields: map[string]string{
			"first_name": "First name or last name is required",
			"last_name":  "First name or last name is required",
		}}
	}
	u, err := s.users.UpdateNames(ctx, id, in.FirstName, in.LastName)
	if err != nil {
		return nil, err
	}
	return u.WithoutPassword(), nil
}

// Disable 軟刪除，範本保留
func (s *UserService) Disable(ctx context.Context, id string) error {
	if err := s.users.Deactivate(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "user deactivated", "user_id", id)
	return nil
}

// Delete 先刪除範本再刪除使用者；兩步驟之間沒有交易
func (s *UserService) Delete(ctx context.Context, id string) error {
	n, err := s.templates.DeleteAllByOwner(ctx, id)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "user deleted", "user_id", id, "templates_deleted", n)
	return nil
}

// Login 只接受 active 使用者；帳號不存在與密碼錯誤回傳相同的錯誤
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) {
		s.hasher.VerifyDummy(ctx, password)
		s.log.WarnContext(ctx, "login failed")
		return nil, errLoginFailed
	}
	if err != nil {
		return nil, fmt.Errorf("Login: %w", err)
	}
	if !s.hasher.Verify(ctx, password, u.PasswordHash) {
		s.log.WarnContext(ctx, "login failed")
		return nil, errLoginFailed
	}

	token, expiresAt, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, fmt.Errorf("Login: %w", err)
	}
	return &LoginResult{User: u.WithoutPassword(), Token: token, ExpiresAt: expiresAt}, nil
}

// Logout 將 token 的 jti 列入撤銷清單直到其原本的到期時間
func (s *UserService) Logout(ctx context.Context, claims *Claims) error {
	if claims == nil || claims.ExpiresAt == nil {
		return nil
	}
	return s.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}
