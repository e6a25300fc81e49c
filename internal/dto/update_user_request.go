package dto

// UpdateUserRequest 兩個欄位皆可省略，但至少需提供一個
// swagger:model dto.UpdateUserRequest
type UpdateUserRequest struct {
	FirstName *string `json:"first_name" form:"first_name" validate:"omitempty,min=1,max=100" example:"Ann"`
	LastName  *string `json:"last_name" form:"last_name" validate:"omitempty,min=1,max=100" example:"Lee"`
}
