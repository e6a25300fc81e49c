package dto

// swagger:model dto.CreateTemplateRequest
type CreateTemplateRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=200" example:"welcome"`
	Subject string `json:"subject" form:"subject" validate:"required,max=500" example:"Welcome aboard"`
	Body    string `json:"body" form:"body" validate:"required" example:"Hello and welcome"`
}

// UpdateTemplateRequest 省略或空字串的欄位不會寫入
// swagger:model dto.UpdateTemplateRequest
type UpdateTemplateRequest struct {
	Name    *string `json:"name" form:"name" validate:"omitempty,max=200" example:"welcome"`
	Subject *string `json:"subject" form:"subject" validate:"omitempty,max=500" example:"Welcome aboard"`
	Body    *string `json:"body" form:"body" example:"Hello and welcome"`
}
