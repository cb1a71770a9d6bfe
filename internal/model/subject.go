package model

import "time"

// Subject 科目（matière）：一段复习日期区间加一份目标清单
// 以整值 JSON 形式存入集合存储，不单独建表
type Subject struct {
	ID          int64       `json:"id"` // 创建时刻 Unix 毫秒，作为代理主键
	Name        string      `json:"name"`
	StartDate   string      `json:"start_date"` // YYYY-MM-DD，字典序与日历序一致
	EndDate     string      `json:"end_date"`
	HoursPerDay int         `json:"hours_per_day"`
	Color       string      `json:"color"`
	Objectives  []Objective `json:"objectives"`
}

// Objective 学习目标：科目内可勾选的单个复习任务
type Objective struct {
	ID   string `json:"id"` // obj_<毫秒>_<序号>，科目生命周期内不复用
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// CoversDate 判断日期是否落在科目的复习区间内（含边界）
func (s *Subject) CoversDate(date string) bool {
	return s.StartDate <= date && date <= s.EndDate
}

// ArchivedSubject 归档科目：科目快照加归档时间戳
// 科目任一时刻只存在于活动集合或归档集合之一
type ArchivedSubject struct {
	Subject
	ArchivedAt time.Time `json:"archived_at"`
}
