package model

import "time"

// ── 集合存储固定 key ──

const (
	KeySubjects = "session"
	KeyArchive  = "archive"
	KeyNotes    = "notes"
	KeyModules  = "modules"
	KeyChat     = "aiConversationHistory"
	KeyTheme    = "studyflow-theme"
)

// Collection 集合存储表 — 对应 collections
// 每个固定 key 存一份完整的 JSON 集合，写入始终整值覆盖
type Collection struct {
	Key       string    `gorm:"type:varchar(64);primaryKey"       json:"key"`
	Value     []byte    `gorm:"type:jsonb;not null"               json:"value"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Collection) TableName() string { return "collections" }
