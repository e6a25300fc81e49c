package dto

// swagger:model dto.RegisterRequest
type RegisterRequest struct {
	FirstName string `json:"first_name" form:"first_name" validate:"required,max=100" example:"Ann"`
	LastName  string `json:"last_name" form:"last_name" validate:"required,max=100" example:"Lee"`
	Email     string `json:"email" form:"email" validate:"required,email_address" example:"a@b.com"`
	Password  string `json:"password" form:"password" validate:"required,password" example:"Aa1!aaaa"`
}
