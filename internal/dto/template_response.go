package dto

import (
	"time"

	"template-vault/internal/model"
)

// swagger:model dto.TemplateResponse
type TemplateResponse struct {
	ID        string    `json:"id" example:"0b9f3c1e-7a52-4d8e-9c41-2f6e8a0d4b17"`
	OwnerID   string    `json:"owner_id" example:"6f1c2a9e-3b4d-4c5e-8f70-1a2b3c4d5e6f"`
	Name      string    `json:"name" example:"welcome"`
	Subject   string    `json:"subject" example:"Welcome aboard"`
	Body      string    `json:"body" example:"Hello and welcome"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-05-01T15:04:05Z"`
}

func NewTemplateResponse(t *model.Template) TemplateResponse {
	return TemplateResponse{
		ID:        t.ID,
		OwnerID:   t.OwnerID,
		Name:      t.Name,
		Subject:   t.Subject,
		Body:      t.Body,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func NewTemplateList(ts []model.Template) []TemplateResponse {
	out := make([]TemplateResponse, 0, len(ts))
	for i := range ts {
		out = append(out, NewTemplateResponse(&ts[i]))
	}
	return out
}
