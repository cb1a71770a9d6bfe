package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/dto"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/service"
	"github.com/fatimaezzahramahouat/StudyFlow1/pkg/response"
)

// NoteHandler 笔记模块 HTTP 处理器
type NoteHandler struct {
	noteSvc service.NoteService
}

// NewNoteHandler 创建 NoteHandler
func NewNoteHandler(noteSvc service.NoteService) *NoteHandler {
	return &NoteHandler{noteSvc: noteSvc}
}

// ListNotes 获取笔记列表（新建在前）
// GET /api/v1/notes
func (h *NoteHandler) ListNotes(c *gin.Context) {
	notes, err := h.noteSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": notes})
}

// CreateNote 创建笔记
// POST /api/v1/notes
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	note, err := h.noteSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleNoteError(c, err)
		return
	}

	response.Created(c, note)
}

// UpdateNote 更新笔记
// PUT /api/v1/notes/:id
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	note, err := h.noteSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleNoteError(c, err)
		return
	}

	response.OK(c, note)
}

// DeleteNote 删除笔记
// DELETE /api/v1/notes/:id
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.noteSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleNoteError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleNoteError 笔记模块错误码映射
func (h *NoteHandler) handleNoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoteNotFound):
		response.NotFound(c, 13001, "笔记不存在")
	case errors.Is(err, service.ErrNoteContentRequired):
		response.BadRequest(c, 13002, "笔记内容不能为空")
	default:
		response.InternalError(c)
	}
}
