package service

import (
	"go.uber.org/zap"

	"github.com/fatimaezzahramahouat/StudyFlow1/config"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Subject      SubjectService
	Archive      ArchiveService
	Progress     ProgressService
	Calendar     CalendarService
	Note         NoteService
	Grade        GradeService
	Assistant    AssistantService
	Confirmation ConfirmationService
	Export       ExportService
	Preference   PreferenceService
}

// NewService 创建 Service 聚合
func NewService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) *Service {
	subjectSvc := NewSubjectService(repo, logger)
	archiveSvc := NewArchiveService(repo, logger)

	return &Service{
		Subject:      subjectSvc,
		Archive:      archiveSvc,
		Progress:     NewProgressService(repo, logger),
		Calendar:     NewCalendarService(repo, logger),
		Note:         NewNoteService(repo, logger),
		Grade:        NewGradeService(repo, logger),
		Assistant:    NewAssistantService(&cfg.Assistant, repo, logger),
		Confirmation: NewConfirmationService(subjectSvc, archiveSvc, logger),
		Export:       NewExportService(repo, logger),
		Preference:   NewPreferenceService(repo, logger),
	}
}
