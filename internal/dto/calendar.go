package dto

// ── 日历模块 DTO ──

// CalendarSegment 日历单元格内的科目色块
// start_percent / end_percent 为色块在单元格内的均分区间
type CalendarSegment struct {
	SubjectID    int64   `json:"subject_id"`
	Name         string  `json:"name"`
	Color        string  `json:"color"`
	StartPercent float64 `json:"start_percent"`
	EndPercent   float64 `json:"end_percent"`
}

// CalendarDayResponse 单日视图响应
type CalendarDayResponse struct {
	Date     string            `json:"date"`
	Subjects []SubjectResponse `json:"subjects"`
}

// CalendarDayCell 月视图中的一天
type CalendarDayCell struct {
	Date     string            `json:"date"` // YYYY-MM-DD
	Day      int               `json:"day"`
	Segments []CalendarSegment `json:"segments"`
}

// CalendarMonthResponse 月视图响应
type CalendarMonthResponse struct {
	Year  int               `json:"year"`
	Month int               `json:"month"`
	Days  []CalendarDayCell `json:"days"`
}
