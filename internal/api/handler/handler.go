package handler

import "github.com/fatimaezzahramahouat/StudyFlow1/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Subject      *SubjectHandler
	Archive      *ArchiveHandler
	Confirmation *ConfirmationHandler
	Progress     *ProgressHandler
	Calendar     *CalendarHandler
	Note         *NoteHandler
	Grade        *GradeHandler
	Assistant    *AssistantHandler
	Export       *ExportHandler
	Preference   *PreferenceHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Subject:      NewSubjectHandler(svc.Subject, svc.Confirmation),
		Archive:      NewArchiveHandler(svc.Archive, svc.Confirmation),
		Confirmation: NewConfirmationHandler(svc.Confirmation),
		Progress:     NewProgressHandler(svc.Progress),
		Calendar:     NewCalendarHandler(svc.Calendar),
		Note:         NewNoteHandler(svc.Note),
		Grade:        NewGradeHandler(svc.Grade),
		Assistant:    NewAssistantHandler(svc.Assistant),
		Export:       NewExportHandler(svc.Export, svc.Calendar),
		Preference:   NewPreferenceHandler(svc.Preference),
	}
}
