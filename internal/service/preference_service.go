package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/dto"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/repository"
)

// PreferenceService 界面偏好业务接口
type PreferenceService interface {
	GetTheme(ctx context.Context) (*dto.ThemeResponse, error)
	SetTheme(ctx context.Context, theme string) (*dto.ThemeResponse, error)
}

type preferenceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPreferenceService 创建 PreferenceService 实例
func NewPreferenceService(repo *repository.Repository, logger *zap.Logger) PreferenceService {
	return &preferenceService{repo: repo, logger: logger}
}

func (s *preferenceService) GetTheme(ctx context.Context) (*dto.ThemeResponse, error) {
	theme, err := s.repo.Preference.GetTheme(ctx)
	if err != nil {
		s.logger.Error("读取主题偏好失败", zap.Error(err))
		return nil, err
	}
	return &dto.ThemeResponse{Theme: theme}, nil
}

func (s *preferenceService) SetTheme(ctx context.Context, theme string) (*dto.ThemeResponse, error) {
	if err := s.repo.Preference.SetTheme(ctx, theme); err != nil {
		s.logger.Error("保存主题偏好失败", zap.Error(err))
		return nil, err
	}
	return &dto.ThemeResponse{Theme: theme}, nil
}
