package dto

// ── 成绩模块 DTO ──

// CreateGradeModuleRequest 创建成绩模块请求
type CreateGradeModuleRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateGradeScoresRequest 录入分数请求
// 四个分项整体覆盖，缺省的分项即被清除
type UpdateGradeScoresRequest struct {
	Checkpoint1 *float64 `json:"checkpoint1" binding:"omitempty,gte=0,lte=20"`
	Checkpoint2 *float64 `json:"checkpoint2" binding:"omitempty,gte=0,lte=20"`
	Checkpoint3 *float64 `json:"checkpoint3" binding:"omitempty,gte=0,lte=20"`
	FinalExam   *float64 `json:"final_exam"  binding:"omitempty,gte=0,lte=20"`
}

// GradeModuleResponse 成绩模块响应
type GradeModuleResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Checkpoint1 *float64 `json:"checkpoint1"`
	Checkpoint2 *float64 `json:"checkpoint2"`
	Checkpoint3 *float64 `json:"checkpoint3"`
	FinalExam   *float64 `json:"final_exam"`
	Complete    bool     `json:"complete"`
}
