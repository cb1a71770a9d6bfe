package repository

import (
	"context"
	"encoding/json"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/model"
)

// SubjectRepository 活动科目集合数据访问接口
type SubjectRepository interface {
	LoadAll(ctx context.Context) ([]model.Subject, error)
	SaveAll(ctx context.Context, subjects []model.Subject) error
}

type subjectRepo struct {
	store CollectionRepository
}

func NewSubjectRepo(store CollectionRepository) SubjectRepository {
	return &subjectRepo{store: store}
}

func (r *subjectRepo) LoadAll(ctx context.Context) ([]model.Subject, error) {
	raw, err := r.store.Load(ctx, model.KeySubjects)
	if err != nil {
		return nil, err
	}

	subjects := []model.Subject{}
	if raw == nil {
		// 未初始化：写回空集合
		return subjects, r.SaveAll(ctx, subjects)
	}
	if err := json.Unmarshal(raw, &subjects); err != nil {
		// 存储内容损坏：静默重置为空集合
		return []model.Subject{}, r.SaveAll(ctx, []model.Subject{})
	}
	return subjects, nil
}

func (r *subjectRepo) SaveAll(ctx context.Context, subjects []model.Subject) error {
	if subjects == nil {
		subjects = []model.Subject{}
	}
	raw, err := json.Marshal(subjects)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, model.KeySubjects, raw)
}
