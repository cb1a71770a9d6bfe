package dto

// ── 笔记模块 DTO ──

// CreateNoteRequest 创建笔记请求
// 标题与颜色允许留空，服务层补默认值
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
	Color   string `json:"color"`
}

// UpdateNoteRequest 更新笔记请求
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Color   *string `json:"color"`
}

// NoteResponse 笔记响应
type NoteResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Color   string `json:"color"`
}
