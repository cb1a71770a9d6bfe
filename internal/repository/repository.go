package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	Collections CollectionRepository
	Subject     SubjectRepository
	Archive     ArchiveRepository
	Note        NoteRepository
	GradeModule GradeModuleRepository
	Chat        ChatRepository
	Preference  PreferenceRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	store := NewCollectionRepo(db)
	return &Repository{
		db:          db,
		Collections: store,
		Subject:     NewSubjectRepo(store),
		Archive:     NewArchiveRepo(store),
		Note:        NewNoteRepo(store),
		GradeModule: NewGradeModuleRepo(store),
		Chat:        NewChatRepo(store),
		Preference:  NewPreferenceRepo(store),
	}
}

// BeginTx 开启事务；无底层连接时（如单测 mock）返回 nil
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, nil
	}
	tx := r.db.WithContext(ctx).Begin()
	return tx, tx.Error
}

// WithTx 返回绑定到事务的 Repository 聚合
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return NewRepository(tx)
}
