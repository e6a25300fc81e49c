package dto

// swagger:model dto.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email_address" example:"a@b.com"`
	Password string `json:"password" form:"password" validate:"required,password" example:"Aa1!aaaa"`
}
