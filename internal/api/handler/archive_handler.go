package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/service"
	"github.com/fatimaezzahramahouat/StudyFlow1/pkg/response"
)

// ArchiveHandler 归档模块 HTTP 处理器
type ArchiveHandler struct {
	archiveSvc service.ArchiveService
	confirmSvc service.ConfirmationService
}

// NewArchiveHandler 创建 ArchiveHandler
func NewArchiveHandler(archiveSvc service.ArchiveService, confirmSvc service.ConfirmationService) *ArchiveHandler {
	return &ArchiveHandler{archiveSvc: archiveSvc, confirmSvc: confirmSvc}
}

// RequestArchive 申请归档科目（需二次确认）
// POST /api/v1/subjects/:id/archive
func (h *ArchiveHandler) RequestArchive(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	action, err := h.confirmSvc.Request(c.Request.Context(), service.ConfirmArchiveSubject, id)
	if err != nil {
		if errors.Is(err, service.ErrSubjectNotFound) {
			response.NotFound(c, 11001, "科目不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.Accepted(c, toConfirmationResponse(action))
}

// ListArchive 获取归档列表（读取时惰性清除过期条目）
// GET /api/v1/archive
func (h *ArchiveHandler) ListArchive(c *gin.Context) {
	entries, err := h.archiveSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": entries})
}

// RestoreArchived 恢复归档科目到活动集合
// POST /api/v1/archive/:id/restore
func (h *ArchiveHandler) RestoreArchived(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	subject, err := h.archiveSvc.Restore(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, subject)
}

// RequestDeleteArchived 申请永久删除单个归档条目（需二次确认）
// DELETE /api/v1/archive/:id
func (h *ArchiveHandler) RequestDeleteArchived(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	action, err := h.confirmSvc.Request(c.Request.Context(), service.ConfirmPurgeArchiveEntry, id)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Accepted(c, toConfirmationResponse(action))
}

// RequestPurge 申请清空归档（需二次确认）
// DELETE /api/v1/archive
func (h *ArchiveHandler) RequestPurge(c *gin.Context) {
	action, err := h.confirmSvc.Request(c.Request.Context(), service.ConfirmPurgeArchive, 0)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Accepted(c, toConfirmationResponse(action))
}
