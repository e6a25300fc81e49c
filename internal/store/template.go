// File: internal/store/template.go
package store

import (
	"context"
	"fmt"

	"template-vault/internal/apperr"
	"template-vault/internal/database"
	"template-vault/internal/model"

	"github.com/jackc/pgx/v5"
)

const templateColumns = `id::text, owner_id::text, name, subject, body, created_at, updated_at`

// TemplateStore 存取 templates collection
type TemplateStore struct {
	db database.DB
}

func NewTemplateStore(db database.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

func (s *TemplateStore) Create(ctx context.Context, t *model.Template) error {
	owner, err := parseID("CreateTemplate", t.OwnerID)
	if err != nil {
		return err
	}
	row := s.db.QueryRow(ctx,
		`INSERT INTO templates (owner_id, name, subject, body)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id::text, created_at, updated_at`,
		owner,
		t.Name,
		t.Subject,
		t.Body,
	)
	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return wrapErr("CreateTemplate", err)
	}
	return nil
}

func (s *TemplateStore) FindByID(ctx context.Context, id string) (*model.Template, error) {
	tid, err := parseID("FindTemplateByID", id)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRow(ctx, `SELECT `+templateColumns+` FROM templates WHERE id = $1`, tid)
	t := &model.Template{}
	if err := scanTemplate(row, t); err != nil {
		return nil, wrapErr("FindTemplateByID", err)
	}
	return t, nil
}

func (s *TemplateStore) FindByOwnerAndName(ctx context.Context, ownerID, name string) (*model.Template, error) {
	owner, err := parseID("FindTemplateByOwnerAndName", ownerID)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRow(ctx,
		`SELECT `+templateColumns+` FROM templates WHERE owner_id = $1 AND name = $2`,
		owner,
		name,
	)
	t := &model.Template{}
	if err := scanTemplate(row, t); err != nil {
		return nil, wrapErr("FindTemplateByOwnerAndName", err)
	}
	return t, nil
}

// ListByOwner 依建立時間排序；無資料時回傳空 slice
func (s *TemplateStore) ListByOwner(ctx context.Context, ownerID string) ([]model.Template, error) {
	out := []model.Template{}
	owner, err := parseID("ListTemplatesByOwner", ownerID)
	if err != nil {
		return out, nil
	}
	rows, err := s.db.Query(ctx,
		`SELECT `+templateColumns+` FROM templates WHERE owner_id = $1 ORDER BY created_at, name`,
		owner,
	)
	if err != nil {
		return nil, wrapErr("ListTemplatesByOwner", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t model.Template
		if err := scanTemplate(rows, &t); err != nil {
			return nil, wrapErr("ListTemplatesByOwner", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("ListTemplatesByOwner", err)
	}
	return out, nil
}

// Update 只寫入 patch 中非 nil 的欄位
func (s *TemplateStore) Update(ctx context.Context, id string, p model.TemplatePatch) (*model.Template, error) {
	tid, err := parseID("UpdateTemplate", id)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRow(ctx,
		`UPDATE templates SET
		     name = COALESCE($2, name),
		     subject = COALESCE($3, subject),
		     body = COALESCE($4, body),
		     updated_at = now()
		 WHERE id = $1
		 RETURNING `+templateColumns,
		tid,
		p.Name,
		p.Subject,
		p.Body,
	)
	t := &model.Template{}
	if err := scanTemplate(row, t); err != nil {
		return nil, wrapErr("UpdateTemplate", err)
	}
	return t, nil
}

func (s *TemplateStore) Delete(ctx context.Context, id string) error {
	tid, err := parseID("DeleteTemplate", id)
	if err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx, `DELETE FROM templates WHERE id = $1`, tid)
	if err != nil {
		return wrapErr("DeleteTemplate", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteTemplate: %w", apperr.ErrNotFound)
	}
	return nil
}

// DeleteByOwner 回傳刪除筆數；格式錯誤的 owner id 視為 0 筆
func (s *TemplateStore) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	owner, err := parseID("DeleteTemplatesByOwner", ownerID)
	if err != nil {
		return 0, nil
	}
	tag, err := s.db.Exec(ctx, `DELETE FROM templates WHERE owner_id = $1`, owner)
	if err != nil {
		return 0, wrapErr("DeleteTemplatesByOwner", err)
	}
	return tag.RowsAffected(), nil
}

func scanTemplate(row pgx.Row, t *model.Template) error {
	return row.Scan(
		&t.ID,
		&t.OwnerID,
		&t.Name,
		&t.Subject,
		&t.Body,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
}
