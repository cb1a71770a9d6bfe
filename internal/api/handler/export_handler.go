package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/service"
	"github.com/fatimaezzahramahouat/StudyFlow1/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc   service.ExportService
	calendarSvc service.CalendarService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService, calendarSvc service.CalendarService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc, calendarSvc: calendarSvc}
}

// ExportProgress 导出进度报告
// GET /api/v1/export/progress
func (h *ExportHandler) ExportProgress(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportProgress(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	writeAttachment(c, filename, xlsxContentType, buf.Bytes())
}

// ExportGrades 导出成绩表
// GET /api/v1/export/grades
func (h *ExportHandler) ExportGrades(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportGrades(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	writeAttachment(c, filename, xlsxContentType, buf.Bytes())
}

// ExportCalendar 导出日历订阅文件
// GET /api/v1/export/calendar
func (h *ExportHandler) ExportCalendar(c *gin.Context) {
	data, err := h.calendarSvc.ExportICS(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	writeAttachment(c, "planning.ics", "text/calendar; charset=utf-8", data)
}

// writeAttachment 设置下载响应头并写入文件内容
func writeAttachment(c *gin.Context, filename, contentType string, data []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", contentType)
	c.Data(http.StatusOK, contentType, data)
}
