package model

// GradeModule 成绩模块：三次平时测验加一次期末考试
// complete 状态始终由当前分数推导，不落库
type GradeModule struct {
	ID          int64    `json:"id"` // 创建时刻 Unix 毫秒
	Name        string   `json:"name"`
	Checkpoint1 *float64 `json:"checkpoint1"`
	Checkpoint2 *float64 `json:"checkpoint2"`
	Checkpoint3 *float64 `json:"checkpoint3"`
	FinalExam   *float64 `json:"final_exam"`
}

// GradeMin 和 GradeMax 界定合法分数区间
const (
	GradeMin = 0.0
	GradeMax = 20.0
)

// IsComplete 四项分数全部填写且都在 [0,20] 区间内
func (m *GradeModule) IsComplete() bool {
	for _, score := range []*float64{m.Checkpoint1, m.Checkpoint2, m.Checkpoint3, m.FinalExam} {
		if score == nil || *score < GradeMin || *score > GradeMax {
			return false
		}
	}
	return true
}
