package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/dto"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/repository"
)

// ProgressService 进度概览业务接口
type ProgressService interface {
	Overview(ctx context.Context) (*dto.ProgressOverviewResponse, error)
}

type progressService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProgressService 创建 ProgressService 实例
func NewProgressService(repo *repository.Repository, logger *zap.Logger) ProgressService {
	return &progressService{repo: repo, logger: logger}
}

// Overview 全局进度概览
// 全局百分比按所有科目的目标总数加权，而非各科百分比的平均值
func (s *progressService) Overview(ctx context.Context) (*dto.ProgressOverviewResponse, error) {
	subjects, err := s.repo.Subject.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载科目集合失败", zap.Error(err))
		return nil, err
	}

	var totalDone, totalAll int
	perSubject := make([]dto.SubjectProgress, 0, len(subjects))
	for i := range subjects {
		done, total := CountObjectives(subjects[i].Objectives)
		totalDone += done
		totalAll += total
		perSubject = append(perSubject, dto.SubjectProgress{
			SubjectID: subjects[i].ID,
			Name:      subjects[i].Name,
			Color:     subjects[i].Color,
			Percent:   Percent(done, total),
			Done:      done,
			Total:     total,
		})
	}

	return &dto.ProgressOverviewResponse{
		GlobalPercent:   Percent(totalDone, totalAll),
		TotalObjectives: totalAll,
		DoneObjectives:  totalDone,
		Subjects:        perSubject,
	}, nil
}
