package model

// Note 独立笔记，与科目无任何关联
type Note struct {
	ID      int64  `json:"id"` // 创建时刻 Unix 毫秒
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"` // YYYY-MM-DD 创建日期
	Color   string `json:"color"`
}

// DefaultNoteTitle 标题留空时的占位标题
const DefaultNoteTitle = "Sans titre"

// DefaultNoteColor 新笔记默认底色
const DefaultNoteColor = "#303a44"
