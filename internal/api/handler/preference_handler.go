package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/dto"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/service"
	"github.com/fatimaezzahramahouat/StudyFlow1/pkg/response"
)

// PreferenceHandler 界面偏好 HTTP 处理器
type PreferenceHandler struct {
	preferenceSvc service.PreferenceService
}

// NewPreferenceHandler 创建 PreferenceHandler
func NewPreferenceHandler(preferenceSvc service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceSvc: preferenceSvc}
}

// GetTheme 获取主题偏好
// GET /api/v1/preferences/theme
func (h *PreferenceHandler) GetTheme(c *gin.Context) {
	theme, err := h.preferenceSvc.GetTheme(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, theme)
}

// UpdateTheme 切换主题偏好
// PUT /api/v1/preferences/theme
func (h *PreferenceHandler) UpdateTheme(c *gin.Context) {
	var req dto.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "theme 必须为 dark 或 light")
		return
	}

	theme, err := h.preferenceSvc.SetTheme(c.Request.Context(), req.Theme)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, theme)
}
