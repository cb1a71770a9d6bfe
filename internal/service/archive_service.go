package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/dto"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/model"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/repository"
)

// ArchiveRetention 归档保留期限
const ArchiveRetention = 30 * 24 * time.Hour

// ArchiveService 归档业务接口
// 科目任一时刻只存在于活动集合或归档集合之一，跨集合移动在事务内完成
type ArchiveService interface {
	Archive(ctx context.Context, subjectID int64) (*dto.ArchivedSubjectResponse, error)
	List(ctx context.Context) ([]dto.ArchivedSubjectResponse, error)
	Restore(ctx context.Context, id int64) (*dto.SubjectResponse, error)
	Delete(ctx context.Context, id int64) error
	Purge(ctx context.Context) error
}

type archiveService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewArchiveService 创建 ArchiveService 实例
func NewArchiveService(repo *repository.Repository, logger *zap.Logger) ArchiveService {
	return &archiveService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── Archive ──────────────────────

// Archive 将科目从活动集合移入归档集合
// 科目不存在（如确认前已被删除）时静默忽略
func (s *archiveService) Archive(ctx context.Context, subjectID int64) (*dto.ArchivedSubjectResponse, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("开启事务失败", zap.Error(err))
		return nil, err
	}
	r := s.repo.WithTx(tx)

	subjects, err := r.Subject.LoadAll(ctx)
	if err != nil {
		rollback(tx)
		return nil, err
	}

	idx := indexOfSubject(subjects, subjectID)
	if idx < 0 {
		rollback(tx)
		return nil, nil
	}
	entry := model.ArchivedSubject{Subject: subjects[idx], ArchivedAt: s.now()}
	subjects = append(subjects[:idx], subjects[idx+1:]...)

	entries, err := r.Archive.LoadAll(ctx)
	if err != nil {
		rollback(tx)
		return nil, err
	}
	entries = append(entries, entry)

	if err := r.Subject.SaveAll(ctx, subjects); err != nil {
		rollback(tx)
		return nil, err
	}
	if err := r.Archive.SaveAll(ctx, entries); err != nil {
		rollback(tx)
		return nil, err
	}
	if err := commit(tx); err != nil {
		s.logger.Error("提交事务失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("科目已归档", zap.Int64("subject_id", subjectID), zap.String("name", entry.Name))
	resp := s.toArchivedResponse(&entry)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

// List 返回未过期的归档条目，过期条目（超过 30 天）在读取时惰性清除
func (s *archiveService) List(ctx context.Context) ([]dto.ArchivedSubjectResponse, error) {
	entries, err := s.repo.Archive.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载归档集合失败", zap.Error(err))
		return nil, err
	}

	now := s.now()
	kept := make([]model.ArchivedSubject, 0, len(entries))
	for _, entry := range entries {
		if now.Sub(entry.ArchivedAt) <= ArchiveRetention {
			kept = append(kept, entry)
		}
	}
	if len(kept) != len(entries) {
		if err := s.repo.Archive.SaveAll(ctx, kept); err != nil {
			s.logger.Error("清除过期归档失败", zap.Error(err))
			return nil, err
		}
		s.logger.Info("已清除过期归档条目", zap.Int("count", len(entries)-len(kept)))
	}

	result := make([]dto.ArchivedSubjectResponse, 0, len(kept))
	for i := range kept {
		result = append(result, s.toArchivedResponse(&kept[i]))
	}
	return result, nil
}

// ────────────────────── Restore ──────────────────────

// Restore 将归档条目移回活动集合，归档时间戳随之丢弃
// 条目不存在（已过期或已清除）时静默忽略
func (s *archiveService) Restore(ctx context.Context, id int64) (*dto.SubjectResponse, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("开启事务失败", zap.Error(err))
		return nil, err
	}
	r := s.repo.WithTx(tx)

	entries, err := r.Archive.LoadAll(ctx)
	if err != nil {
		rollback(tx)
		return nil, err
	}

	idx := -1
	for i := range entries {
		if entries[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		rollback(tx)
		return nil, nil
	}
	subject := entries[idx].Subject
	entries = append(entries[:idx], entries[idx+1:]...)

	subjects, err := r.Subject.LoadAll(ctx)
	if err != nil {
		rollback(tx)
		return nil, err
	}
	subjects = append(subjects, subject)

	if err := r.Archive.SaveAll(ctx, entries); err != nil {
		rollback(tx)
		return nil, err
	}
	if err := r.Subject.SaveAll(ctx, subjects); err != nil {
		rollback(tx)
		return nil, err
	}
	if err := commit(tx); err != nil {
		s.logger.Error("提交事务失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("归档科目已恢复", zap.Int64("subject_id", id), zap.String("name", subject.Name))
	resp := ToSubjectResponse(&subject)
	return &resp, nil
}

// ────────────────────── Delete / Purge ──────────────────────

// Delete 永久删除单个归档条目；条目不存在时静默忽略
func (s *archiveService) Delete(ctx context.Context, id int64) error {
	entries, err := s.repo.Archive.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载归档集合失败", zap.Error(err))
		return err
	}

	kept := make([]model.ArchivedSubject, 0, len(entries))
	for _, entry := range entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(entries) {
		return nil
	}
	return s.repo.Archive.SaveAll(ctx, kept)
}

// Purge 清空归档集合，活动科目不受影响
func (s *archiveService) Purge(ctx context.Context) error {
	if err := s.repo.Archive.SaveAll(ctx, []model.ArchivedSubject{}); err != nil {
		s.logger.Error("清空归档集合失败", zap.Error(err))
		return err
	}
	s.logger.Info("归档集合已清空")
	return nil
}

// ────────────────────── 内部工具 ──────────────────────

func (s *archiveService) toArchivedResponse(entry *model.ArchivedSubject) dto.ArchivedSubjectResponse {
	done, total := CountObjectives(entry.Objectives)
	objectives := make([]dto.ObjectiveResponse, 0, len(entry.Objectives))
	for _, obj := range entry.Objectives {
		objectives = append(objectives, dto.ObjectiveResponse{ID: obj.ID, Text: obj.Text, Done: obj.Done})
	}

	elapsed := int(s.now().Sub(entry.ArchivedAt).Hours() / 24)
	daysLeft := 30 - elapsed
	if daysLeft < 0 {
		daysLeft = 0
	}

	return dto.ArchivedSubjectResponse{
		ID:          entry.ID,
		Name:        entry.Name,
		StartDate:   entry.StartDate,
		EndDate:     entry.EndDate,
		HoursPerDay: entry.HoursPerDay,
		Color:       entry.Color,
		Objectives:  objectives,
		Percent:     Percent(done, total),
		ArchivedAt:  entry.ArchivedAt.UTC().Format(time.RFC3339),
		DaysLeft:    daysLeft,
	}
}
