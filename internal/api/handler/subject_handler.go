package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/dto"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/service"
	"github.com/fatimaezzahramahouat/StudyFlow1/pkg/response"
)

// SubjectHandler 科目模块 HTTP 处理器
type SubjectHandler struct {
	subjectSvc service.SubjectService
	confirmSvc service.ConfirmationService
}

// NewSubjectHandler 创建 SubjectHandler
func NewSubjectHandler(subjectSvc service.SubjectService, confirmSvc service.ConfirmationService) *SubjectHandler {
	return &SubjectHandler{subjectSvc: subjectSvc, confirmSvc: confirmSvc}
}

// ListSubjects 获取科目列表（分页）
// GET /api/v1/subjects
func (h *SubjectHandler) ListSubjects(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	subjects, total, err := h.subjectSvc.List(c.Request.Context(), &page)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, subjects, total, page.GetPage(), page.GetPageSize())
}

// CreateSubject 创建科目
// POST /api/v1/subjects
func (h *SubjectHandler) CreateSubject(c *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	subject, err := h.subjectSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}

	response.Created(c, subject)
}

// GetSubject 获取科目详情
// GET /api/v1/subjects/:id
func (h *SubjectHandler) GetSubject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	subject, err := h.subjectSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}

	response.OK(c, subject)
}

// UpdateSubject 更新科目（原子整体更新，id 不变）
// PUT /api/v1/subjects/:id
func (h *SubjectHandler) UpdateSubject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	subject, err := h.subjectSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}

	response.OK(c, subject)
}

// ToggleObjective 翻转目标勾选状态
// POST /api/v1/subjects/:id/objectives/:oid/toggle
func (h *SubjectHandler) ToggleObjective(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	subject, err := h.subjectSvc.ToggleObjective(c.Request.Context(), id, c.Param("oid"))
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}

	response.OK(c, subject)
}

// EditObjective 修改目标文本
// PUT /api/v1/subjects/:id/objectives/:oid
func (h *SubjectHandler) EditObjective(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.EditObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	subject, err := h.subjectSvc.EditObjective(c.Request.Context(), id, c.Param("oid"), req.Text)
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}

	response.OK(c, subject)
}

// DeleteObjective 删除单个目标
// DELETE /api/v1/subjects/:id/objectives/:oid
func (h *SubjectHandler) DeleteObjective(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	subject, err := h.subjectSvc.DeleteObjective(c.Request.Context(), id, c.Param("oid"))
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}

	response.OK(c, subject)
}

// RequestDeleteAll 申请清空全部科目（需二次确认）
// DELETE /api/v1/subjects
func (h *SubjectHandler) RequestDeleteAll(c *gin.Context) {
	action, err := h.confirmSvc.Request(c.Request.Context(), service.ConfirmDeleteAllSubjects, 0)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Accepted(c, toConfirmationResponse(action))
}

// handleSubjectError 科目模块错误码映射
func (h *SubjectHandler) handleSubjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSubjectNotFound):
		response.NotFound(c, 11001, "科目不存在")
	case errors.Is(err, service.ErrSubjectNameRequired):
		response.BadRequest(c, 11002, "科目名称不能为空")
	case errors.Is(err, service.ErrSubjectDateInvalid):
		response.BadRequest(c, 11003, "日期格式无效，应为 YYYY-MM-DD")
	case errors.Is(err, service.ErrSubjectHoursInvalid):
		response.BadRequest(c, 11004, "每日学习时长必须为正数")
	case errors.Is(err, service.ErrSubjectObjectivesRequired):
		response.BadRequest(c, 11005, "目标清单不能为空")
	default:
		response.InternalError(c)
	}
}
