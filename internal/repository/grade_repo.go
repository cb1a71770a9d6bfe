package repository

import (
	"context"
	"encoding/json"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/model"
)

// GradeModuleRepository 成绩模块集合数据访问接口
type GradeModuleRepository interface {
	LoadAll(ctx context.Context) ([]model.GradeModule, error)
	SaveAll(ctx context.Context, modules []model.GradeModule) error
}

type gradeModuleRepo struct {
	store CollectionRepository
}

func NewGradeModuleRepo(store CollectionRepository) GradeModuleRepository {
	return &gradeModuleRepo{store: store}
}

func (r *gradeModuleRepo) LoadAll(ctx context.Context) ([]model.GradeModule, error) {
	raw, err := r.store.Load(ctx, model.KeyModules)
	if err != nil {
		return nil, err
	}

	modules := []model.GradeModule{}
	if raw == nil {
		return modules, r.SaveAll(ctx, modules)
	}
	if err := json.Unmarshal(raw, &modules); err != nil {
		return []model.GradeModule{}, r.SaveAll(ctx, []model.GradeModule{})
	}
	return modules, nil
}

func (r *gradeModuleRepo) SaveAll(ctx context.Context, modules []model.GradeModule) error {
	if modules == nil {
		modules = []model.GradeModule{}
	}
	raw, err := json.Marshal(modules)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, model.KeyModules, raw)
}
