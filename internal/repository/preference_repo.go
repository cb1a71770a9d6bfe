package repository

import (
	"context"
	"encoding/json"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/model"
)

// DefaultTheme 主题偏好默认值
const DefaultTheme = "dark"

// PreferenceRepository 标量偏好项数据访问接口
type PreferenceRepository interface {
	GetTheme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
}

type preferenceRepo struct {
	store CollectionRepository
}

func NewPreferenceRepo(store CollectionRepository) PreferenceRepository {
	return &preferenceRepo{store: store}
}

func (r *preferenceRepo) GetTheme(ctx context.Context) (string, error) {
	raw, err := r.store.Load(ctx, model.KeyTheme)
	if err != nil {
		return "", err
	}

	if raw == nil {
		return DefaultTheme, r.SetTheme(ctx, DefaultTheme)
	}
	var theme string
	if err := json.Unmarshal(raw, &theme); err != nil || theme == "" {
		return DefaultTheme, r.SetTheme(ctx, DefaultTheme)
	}
	return theme, nil
}

func (r *preferenceRepo) SetTheme(ctx context.Context, theme string) error {
	raw, err := json.Marshal(theme)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, model.KeyTheme, raw)
}
