// File: internal/model/template.go
package model

import "time"

type Template struct {
	ID        string    `db:"id" json:"id"`
	OwnerID   string    `db:"owner_id" json:"owner_id"`
	Name      string    `db:"name" json:"name"`
	Subject   string    `db:"subject" json:"subject"`
	Body      string    `db:"body" json:"body"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// TemplatePatch 部分更新；nil 欄位保持原值
type TemplatePatch struct {
	Name    *string
	Subject *string
	Body    *string
}

func (p TemplatePatch) Empty() bool {
	return p.Name == nil && p.Subject == nil && p.Body == nil
}
