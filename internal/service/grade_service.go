package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/dto"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/model"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/repository"
)

// ── 成绩模块业务错误 ──

var (
	ErrGradeModuleNotFound = errors.New("成绩模块不存在")
	ErrGradeNameRequired   = errors.New("模块名称不能为空")
	ErrGradeScoreInvalid   = errors.New("分数必须在 0 到 20 之间")
	ErrGradeModulesEmpty   = errors.New("没有可移除的成绩模块")
)

// GradeService 成绩模块业务接口
type GradeService interface {
	Create(ctx context.Context, req *dto.CreateGradeModuleRequest) (*dto.GradeModuleResponse, error)
	List(ctx context.Context) ([]dto.GradeModuleResponse, error)
	UpdateScores(ctx context.Context, id int64, req *dto.UpdateGradeScoresRequest) (*dto.GradeModuleResponse, error)
	DeleteLast(ctx context.Context) error
}

type gradeService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewGradeService 创建 GradeService 实例
func NewGradeService(repo *repository.Repository, logger *zap.Logger) GradeService {
	return &gradeService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── Create ──────────────────────

func (s *gradeService) Create(ctx context.Context, req *dto.CreateGradeModuleRequest) (*dto.GradeModuleResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrGradeNameRequired
	}

	modules, err := s.repo.GradeModule.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载成绩模块集合失败", zap.Error(err))
		return nil, err
	}

	id := s.now().UnixMilli()
	for containsGradeModuleID(modules, id) {
		id++
	}

	module := model.GradeModule{ID: id, Name: name}
	modules = append(modules, module)
	if err := s.repo.GradeModule.SaveAll(ctx, modules); err != nil {
		s.logger.Error("保存成绩模块集合失败", zap.Error(err))
		return nil, err
	}

	resp := toGradeModuleResponse(&module)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *gradeService) List(ctx context.Context) ([]dto.GradeModuleResponse, error) {
	modules, err := s.repo.GradeModule.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载成绩模块集合失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.GradeModuleResponse, 0, len(modules))
	for i := range modules {
		result = append(result, toGradeModuleResponse(&modules[i]))
	}
	return result, nil
}

// ────────────────────── UpdateScores ──────────────────────

// UpdateScores 整体覆盖四个分项：缺省的分项即被清除
func (s *gradeService) UpdateScores(ctx context.Context, id int64, req *dto.UpdateGradeScoresRequest) (*dto.GradeModuleResponse, error) {
	for _, score := range []*float64{req.Checkpoint1, req.Checkpoint2, req.Checkpoint3, req.FinalExam} {
		if score != nil && (*score < model.GradeMin || *score > model.GradeMax) {
			return nil, ErrGradeScoreInvalid
		}
	}

	modules, err := s.repo.GradeModule.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载成绩模块集合失败", zap.Error(err))
		return nil, err
	}

	idx := -1
	for i := range modules {
		if modules[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrGradeModuleNotFound
	}
	module := &modules[idx]

	module.Checkpoint1 = req.Checkpoint1
	module.Checkpoint2 = req.Checkpoint2
	module.Checkpoint3 = req.Checkpoint3
	module.FinalExam = req.FinalExam

	if err := s.repo.GradeModule.SaveAll(ctx, modules); err != nil {
		s.logger.Error("保存成绩模块集合失败", zap.Error(err))
		return nil, err
	}

	resp := toGradeModuleResponse(module)
	return &resp, nil
}

// ────────────────────── DeleteLast ──────────────────────

// DeleteLast 移除最近加入的成绩模块
func (s *gradeService) DeleteLast(ctx context.Context) error {
	modules, err := s.repo.GradeModule.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载成绩模块集合失败", zap.Error(err))
		return err
	}
	if len(modules) == 0 {
		return ErrGradeModulesEmpty
	}
	return s.repo.GradeModule.SaveAll(ctx, modules[:len(modules)-1])
}

// ────────────────────── 内部工具 ──────────────────────

func containsGradeModuleID(modules []model.GradeModule, id int64) bool {
	for i := range modules {
		if modules[i].ID == id {
			return true
		}
	}
	return false
}

func toGradeModuleResponse(module *model.GradeModule) dto.GradeModuleResponse {
	return dto.GradeModuleResponse{
		ID:          module.ID,
		Name:        module.Name,
		Checkpoint1: module.Checkpoint1,
		Checkpoint2: module.Checkpoint2,
		Checkpoint3: module.Checkpoint3,
		FinalExam:   module.FinalExam,
		Complete:    module.IsComplete(),
	}
}
