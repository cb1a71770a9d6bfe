package dto

// ── 科目模块 DTO ──

// CreateSubjectRequest 创建科目请求
// objectives 为逐行目标文本，服务层负责去空白与剔除空行
type CreateSubjectRequest struct {
	Name        string   `json:"name"          binding:"required"`
	StartDate   string   `json:"start_date"    binding:"required"` // "2026-09-01"
	EndDate     string   `json:"end_date"      binding:"required"`
	HoursPerDay int      `json:"hours_per_day" binding:"required"`
	Color       string   `json:"color"`
	Objectives  []string `json:"objectives"    binding:"required"`
}

// UpdateSubjectRequest 更新科目请求（原子整体更新，id 保持不变）
// objective_texts 为 nil 时保留现有目标清单，非 nil 时按新文本重建
type UpdateSubjectRequest struct {
	Name           *string   `json:"name"`
	StartDate      *string   `json:"start_date"`
	EndDate        *string   `json:"end_date"`
	HoursPerDay    *int      `json:"hours_per_day"`
	Color          *string   `json:"color"`
	ObjectiveTexts *[]string `json:"objective_texts"`
}

// EditObjectiveRequest 修改目标文本请求
type EditObjectiveRequest struct {
	Text string `json:"text" binding:"required"`
}

// ObjectiveResponse 目标响应
type ObjectiveResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// SubjectResponse 科目信息响应，附带进度快照
type SubjectResponse struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	StartDate   string              `json:"start_date"`
	EndDate     string              `json:"end_date"`
	HoursPerDay int                 `json:"hours_per_day"`
	Color       string              `json:"color"`
	Objectives  []ObjectiveResponse `json:"objectives"`
	Percent     int                 `json:"percent"`
	DoneCount   int                 `json:"done_count"`
	TotalCount  int                 `json:"total_count"`
}
