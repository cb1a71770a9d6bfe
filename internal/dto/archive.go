package dto

// ── 归档模块 DTO ──

// ArchivedSubjectResponse 归档科目响应
// days_left 为剩余保留天数，0 表示当天到期
type ArchivedSubjectResponse struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	StartDate   string              `json:"start_date"`
	EndDate     string              `json:"end_date"`
	HoursPerDay int                 `json:"hours_per_day"`
	Color       string              `json:"color"`
	Objectives  []ObjectiveResponse `json:"objectives"`
	Percent     int                 `json:"percent"`
	ArchivedAt  string              `json:"archived_at"`
	DaysLeft    int                 `json:"days_left"`
}
