package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"template-vault/internal/apperr"
	"template-vault/internal/model"

	"github.com/google/uuid"
)

// MemoryUsers 以記憶體實作 UserStore 的行為（含 active email 唯一），供測試使用
type MemoryUsers struct {
	mu    sync.Mutex
	users map[string]model.User
	now   func() time.Time
}

func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{users: map[string]model.User{}, now: time.Now}
}

func (m *MemoryUsers) Create(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Active && existing.Email == u.Email {
			return fmt.Errorf("CreateUser: %w (users_active_email_key)", apperr.ErrConflict)
		}
	}
	u.ID = uuid.NewString()
	u.Active = true
	u.CreatedAt = m.now()
	u.UpdatedAt = u.CreatedAt
	m.users[u.ID] = *u
	return nil
}

func (m *MemoryUsers) FindByID(_ context.Context, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok || !u.Active {
		return nil, fmt.Errorf("FindUserByID: %w", apperr.ErrNotFound)
	}
	return &u, nil
}

func (m *MemoryUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Active && u.Email == email {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("FindUserByEmail: %w", apperr.ErrNotFound)
}

func (m *MemoryUsers) UpdateNames(_ context.Context, id string, firstName, lastName *string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok || !u.Active {
		return nil, fmt.Errorf("UpdateUserNames: %w", apperr.ErrNotFound)
	}
	if firstName != nil {
		u.FirstName = *firstName
	}
	if lastName != nil {
		u.LastName = *lastName
	}
	u.UpdatedAt = m.now()
	m.users[id] = u
	return &u, nil
}

func (m *MemoryUsers) Deactivate(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok || !u.Active {
		return fmt.Errorf("DeactivateUser: %w", apperr.ErrNotFound)
	}
	u.Active = false
	u.UpdatedAt = m.now()
	m.users[id] = u
	return nil
}

func (m *MemoryUsers) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return fmt.Errorf("DeleteUser: %w", apperr.ErrNotFound)
	}
	delete(m.users, id)
	return nil
}

// Len 含停用帳號的總筆數
func (m *MemoryUsers) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

// MemoryTemplates 以記憶體實作 TemplateStore 的行為（含 owner+name 唯一），供測試使用
type MemoryTemplates struct {
	mu        sync.Mutex
	templates map[string]model.Template
	now       func() time.Time
}

func NewMemoryTemplates() *MemoryTemplates {
	return &MemoryTemplates{templates: map[string]model.Template{}, now: time.Now}
}

func (m *MemoryTemplates) nameTaken(ownerID, name, exceptID string) bool {
	for id, t := range m.templates {
		if id != exceptID && t.OwnerID == ownerID && t.Name == name {
			return true
		}
	}
	return false
}

func (m *MemoryTemplates) Create(_ context.Context, t *model.Template) error {
	if _, err := parseID("CreateTemplate", t.OwnerID); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.nameTaken(t.OwnerID, t.Name, "") {
		return fmt.Errorf("CreateTemplate: %w (templates_owner_name_key)", apperr.ErrConflict)
	}
	t.ID = uuid.NewString()
	t.CreatedAt = m.now()
	t.UpdatedAt = t.CreatedAt
	m.templates[t.ID] = *t
	return nil
}

func (m *MemoryTemplates) FindByID(_ context.Context, id string) (*model.Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.templates[id]
	if !ok {
		return nil, fmt.Errorf("FindTemplateByID: %w", apperr.ErrNotFound)
	}
	return &t, nil
}

func (m *MemoryTemplates) FindByOwnerAndName(_ context.Context, ownerID, name string) (*model.Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.templates {
		if t.OwnerID == ownerID && t.Name == name {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("FindTemplateByOwnerAndName: %w", apperr.ErrNotFound)
}

func (m *MemoryTemplates) ListByOwner(_ context.Context, ownerID string) ([]model.Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Template{}
	for _, t := range m.templates {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Name < out[j].Name
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryTemplates) Update(_ context.Context, id string, p model.TemplatePatch) (*model.Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.templates[id]
	if !ok {
		return nil, fmt.Errorf("UpdateTemplate: %w", apperr.ErrNotFound)
	}
	if p.Name != nil {
		if m.nameTaken(t.OwnerID, *p.Name, id) {
			return nil, fmt.Errorf("UpdateTemplate: %w (templates_owner_name_key)", apperr.ErrConflict)
		}
		t.Name = *p.Name
	}
	if p.Subject != nil {
		t.Subject = *p.Subject
	}
	if p.Body != nil {
		t.Body = *p.Body
	}
	t.UpdatedAt = m.now()
	m.templates[id] = t
	return &t, nil
}

func (m *MemoryTemplates) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.templates[id]; !ok {
		return fmt.Errorf("DeleteTemplate: %w", apperr.ErrNotFound)
	}
	delete(m.templates, id)
	return nil
}

func (m *MemoryTemplates) DeleteByOwner(_ context.Context, ownerID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, t := range m.templates {
		if t.OwnerID == ownerID {
			delete(m.templates, id)
			n++
		}
	}
	return n, nil
}
