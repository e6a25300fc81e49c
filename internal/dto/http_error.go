package dto

// HTTPError 全域錯誤響應模型
// swagger:model dto.HTTPError
type HTTPError struct {
	// code 錯誤分類：validation_failed, unauthorized, not_found, conflict, internal
	Code string `json:"code" example:"not_found"`
	// message 錯誤描述
	Message string `json:"message" example:"template not found"`
	// fields 逐欄位的驗證錯誤，只在 validation_failed 時出現
	Fields map[string]string `json:"fields,omitempty"`
}
