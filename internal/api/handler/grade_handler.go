package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/dto"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/service"
	"github.com/fatimaezzahramahouat/StudyFlow1/pkg/response"
)

// GradeHandler 成绩模块 HTTP 处理器
type GradeHandler struct {
	gradeSvc service.GradeService
}

// NewGradeHandler 创建 GradeHandler
func NewGradeHandler(gradeSvc service.GradeService) *GradeHandler {
	return &GradeHandler{gradeSvc: gradeSvc}
}

// ListGradeModules 获取成绩模块列表
// GET /api/v1/grade-modules
func (h *GradeHandler) ListGradeModules(c *gin.Context) {
	modules, err := h.gradeSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": modules})
}

// CreateGradeModule 创建成绩模块
// POST /api/v1/grade-modules
func (h *GradeHandler) CreateGradeModule(c *gin.Context) {
	var req dto.CreateGradeModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	module, err := h.gradeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleGradeError(c, err)
		return
	}

	response.Created(c, module)
}

// UpdateGradeScores 录入分数（四个分项整体覆盖）
// PUT /api/v1/grade-modules/:id
func (h *GradeHandler) UpdateGradeScores(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateGradeScoresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	module, err := h.gradeSvc.UpdateScores(c.Request.Context(), id, &req)
	if err != nil {
		h.handleGradeError(c, err)
		return
	}

	response.OK(c, module)
}

// DeleteLastGradeModule 移除最近加入的成绩模块
// DELETE /api/v1/grade-modules/last
func (h *GradeHandler) DeleteLastGradeModule(c *gin.Context) {
	if err := h.gradeSvc.DeleteLast(c.Request.Context()); err != nil {
		h.handleGradeError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleGradeError 成绩模块错误码映射
func (h *GradeHandler) handleGradeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGradeModuleNotFound):
		response.NotFound(c, 14001, "成绩模块不存在")
	case errors.Is(err, service.ErrGradeNameRequired):
		response.BadRequest(c, 14002, "模块名称不能为空")
	case errors.Is(err, service.ErrGradeScoreInvalid):
		response.BadRequest(c, 14003, "分数必须在 0 到 20 之间")
	case errors.Is(err, service.ErrGradeModulesEmpty):
		response.BadRequest(c, 14004, "没有可移除的成绩模块")
	default:
		response.InternalError(c)
	}
}
