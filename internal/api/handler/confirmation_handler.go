package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/dto"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/service"
	"github.com/fatimaezzahramahouat/StudyFlow1/pkg/response"
)

// ConfirmationHandler 破坏性操作确认 HTTP 处理器
type ConfirmationHandler struct {
	confirmSvc service.ConfirmationService
}

// NewConfirmationHandler 创建 ConfirmationHandler
func NewConfirmationHandler(confirmSvc service.ConfirmationService) *ConfirmationHandler {
	return &ConfirmationHandler{confirmSvc: confirmSvc}
}

// Confirm 执行待确认动作
// POST /api/v1/confirmations/:id/confirm
func (h *ConfirmationHandler) Confirm(c *gin.Context) {
	kind, err := h.confirmSvc.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleConfirmationError(c, err)
		return
	}

	response.OK(c, gin.H{"kind": kind})
}

// Cancel 取消待确认动作，状态保持不变
// DELETE /api/v1/confirmations/:id
func (h *ConfirmationHandler) Cancel(c *gin.Context) {
	if err := h.confirmSvc.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		h.handleConfirmationError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleConfirmationError 确认模块错误码映射
func (h *ConfirmationHandler) handleConfirmationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrConfirmationNotFound):
		response.NotFound(c, 16001, "确认令牌不存在或已过期")
	case errors.Is(err, service.ErrConfirmationKindInvalid):
		response.BadRequest(c, 16002, "不支持的确认动作类型")
	case errors.Is(err, service.ErrSubjectNotFound):
		response.NotFound(c, 11001, "科目不存在")
	default:
		response.InternalError(c)
	}
}

// toConfirmationResponse 待确认动作到视图模型的映射
func toConfirmationResponse(action *service.PendingAction) dto.ConfirmationResponse {
	return dto.ConfirmationResponse{
		ActionID:  action.Token,
		Kind:      action.Kind,
		Message:   action.Message,
		ExpiresAt: action.ExpiresAt.UTC().Format(time.RFC3339),
	}
}
