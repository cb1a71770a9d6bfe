package dto

// ── 偏好模块 DTO ──

// UpdateThemeRequest 切换主题请求
type UpdateThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=dark light"`
}

// ThemeResponse 主题响应
type ThemeResponse struct {
	Theme string `json:"theme"`
}
