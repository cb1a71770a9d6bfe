package dto

// ── 助手模块 DTO ──

// ChatSendRequest 发送消息请求
type ChatSendRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatSendResponse 助手回复响应
type ChatSendResponse struct {
	Reply string `json:"reply"`
}

// ChatMessageResponse 会话记录中的一条消息
type ChatMessageResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
