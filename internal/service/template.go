package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"template-vault/internal/apperr"
	"template-vault/internal/model"
	"template-vault/internal/validation"
)

// TemplateStore 範本儲存層；*store.TemplateStore 與 *store.MemoryTemplates 皆實作
type TemplateStore interface {
	Create(ctx context.Context, t *model.Template) error
	FindByID(ctx context.Context, id string) (*model.Template, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Template, error)
	Update(ctx context.Context, id string, p model.TemplatePatch) (*model.Template, error)
	Delete(ctx context.Context, id string) error
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
}

var (
	errTemplateNotFound = apperr.New(apperr.ErrNotFound, "template not found")
	errTemplateExists   = apperr.New(apperr.ErrConflict, "template name already exists")
)

type TemplateInput struct {
	Name    string
	Subject string
	Body    string
}

type TemplateService struct {
	templates TemplateStore
	log       *slog.Logger
}

func NewTemplateService(templates TemplateStore, log *slog.Logger) *TemplateService {
	if log == nil {
		log = slog.Default()
	}
	return &TemplateService{templates: templates, log: log.With("component", "templates")}
}

// RequireOwner caller 不是擁有者時回傳 NotFound，不透露範本是否存在
func RequireOwner(t *model.Template, caller *model.User) error {
	if t == nil || caller == nil || t.OwnerID != caller.ID {
		return errTemplateNotFound
	}
	return nil
}

// Create 同一擁有者底下名稱不可重複
func (s *TemplateService) Create(ctx context.Context, ownerID string, in TemplateInput) (*model.Template, error) {
	if !validation.IsID(ownerID) {
		return nil, apperr.Invalid("owner_id", "Owner id must be a valid id")
	}
	t := &model.Template{
		OwnerID: ownerID,
		Name:    in.Name,
		Subject: in.Subject,
		Body:    in.Body,
	}
	if err := s.templates.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("CreateTemplate: %w", s.classify(err))
	}
	s.log.DebugContext(ctx, "template created", "template_id", t.ID, "owner_id", ownerID)
	return t, nil
}

func (s *TemplateService) Get(ctx context.Context, id string) (*model.Template, error) {
	t, err := s.templates.FindByID(ctx, id)
	if err != nil {
		return nil, s.classify(err)
	}
	return t, nil
}

// GetOwned 讀取範本並確認 caller 為擁有者
func (s *TemplateService) GetOwned(ctx context.Context, id string, caller *model.User) (*model.Template, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := RequireOwner(t, caller); err != nil {
		return nil, err
	}
	return t, nil
}

// ListByOwner 沒有範本時回傳空 slice
func (s *TemplateService) ListByOwner(ctx context.Context, ownerID string) ([]model.Template, error) {
	return s.templates.ListByOwner(ctx, ownerID)
}

// Update 不再檢查擁有者，呼叫端需先 GetOwned
func (s *TemplateService) Update(ctx context.Context, id string, p model.TemplatePatch) (*model.Template, error) {
	if p.Empty() {
		return nil, apperr.Invalid("name", "Name, subject or body is required")
	}
	t, err := s.templates.Update(ctx, id, p)
	if err != nil {
		return nil, fmt.Errorf("UpdateTemplate: %w", s.classify(err))
	}
	return t, nil
}

func (s *TemplateService) Delete(ctx context.Context, id string) error {
	if err := s.templates.Delete(ctx, id); err != nil {
		return s.classify(err)
	}
	return nil
}

func (s *TemplateService) DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error) {
	n, err := s.templates.DeleteByOwner(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.InfoContext(ctx, "templates deleted", "owner_id", ownerID, "count", n)
	}
	return n, nil
}

// classify 將儲存層的 NotFound / Conflict 換成帶公開訊息的錯誤
func (s *TemplateService) classify(err error) error {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return errTemplateNotFound
	case errors.Is(err, apperr.ErrConflict):
		return errTemplateExists
	default:
		return err
	}
}
