package dto

// ── 确认模块 DTO ──

// ConfirmationResponse 待确认动作响应
// 客户端凭 action_id 在有效期内二次确认或取消
type ConfirmationResponse struct {
	ActionID  string `json:"action_id"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	ExpiresAt string `json:"expires_at"`
}
