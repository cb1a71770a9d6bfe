package dto

// ── 进度模块 DTO ──

// SubjectProgress 单科进度条目
type SubjectProgress struct {
	SubjectID int64  `json:"subject_id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Percent   int    `json:"percent"`
	Done      int    `json:"done"`
	Total     int    `json:"total"`
}

// ProgressOverviewResponse 全局进度概览响应
// 全局百分比按目标总数加权，而非各科目百分比的平均
type ProgressOverviewResponse struct {
	GlobalPercent   int               `json:"global_percent"`
	TotalObjectives int               `json:"total_objectives"`
	DoneObjectives  int               `json:"done_objectives"`
	Subjects        []SubjectProgress `json:"subjects"`
}
