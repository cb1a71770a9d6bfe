package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/dto"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/service"
	"github.com/fatimaezzahramahouat/StudyFlow1/pkg/response"
)

// AssistantHandler 学习助手 HTTP 处理器
type AssistantHandler struct {
	assistantSvc service.AssistantService
}

// NewAssistantHandler 创建 AssistantHandler
func NewAssistantHandler(assistantSvc service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantSvc: assistantSvc}
}

// SendMessage 发送消息并取回助手回复
// POST /api/v1/assistant/messages
func (h *AssistantHandler) SendMessage(c *gin.Context) {
	var req dto.ChatSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	reply, err := h.assistantSvc.Send(c.Request.Context(), req.Message)
	if err != nil {
		h.handleAssistantError(c, err)
		return
	}

	response.OK(c, reply)
}

// GetHistory 获取完整会话记录
// GET /api/v1/assistant/messages
func (h *AssistantHandler) GetHistory(c *gin.Context) {
	history, err := h.assistantSvc.History(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": history})
}

// ClearHistory 清空会话记录（开启新会话）
// DELETE /api/v1/assistant/messages
func (h *AssistantHandler) ClearHistory(c *gin.Context) {
	if err := h.assistantSvc.Clear(c.Request.Context()); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// handleAssistantError 助手模块错误码映射
// 上游失败细节只进日志，对外统一 502
func (h *AssistantHandler) handleAssistantError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAssistantMessageEmpty):
		response.BadRequest(c, 15001, "消息内容不能为空")
	case errors.Is(err, service.ErrAssistantUnavailable):
		response.BadGateway(c, 15002, "学习助手暂时不可用")
	default:
		response.InternalError(c)
	}
}
