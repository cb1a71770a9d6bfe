package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/model"
)

// CollectionRepository 集合存储适配器
// 读写都作用于完整集合：Load 返回 key 对应的整份 JSON（不存在时返回 nil），
// Save 整值覆盖，不做局部合并
type CollectionRepository interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

type collectionRepo struct {
	db *gorm.DB
}

func NewCollectionRepo(db *gorm.DB) CollectionRepository {
	return &collectionRepo{db: db}
}

func (r *collectionRepo) Load(ctx context.Context, key string) ([]byte, error) {
	var row model.Collection
	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return row.Value, nil
}

func (r *collectionRepo) Save(ctx context.Context, key string, value []byte) error {
	row := model.Collection{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"value": value, "updated_at": gorm.Expr("CURRENT_TIMESTAMP")}),
		}).
		Create(&row).Error
}
