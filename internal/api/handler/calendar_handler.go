package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/service"
	"github.com/fatimaezzahramahouat/StudyFlow1/pkg/response"
)

// CalendarHandler 日历模块 HTTP 处理器
type CalendarHandler struct {
	calendarSvc service.CalendarService
}

// NewCalendarHandler 创建 CalendarHandler
func NewCalendarHandler(calendarSvc service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarSvc: calendarSvc}
}

// GetDay 单日视图：复习区间覆盖该日期的科目
// GET /api/v1/calendar/day/:date
func (h *CalendarHandler) GetDay(c *gin.Context) {
	day, err := h.calendarSvc.Day(c.Request.Context(), c.Param("date"))
	if err != nil {
		h.handleCalendarError(c, err)
		return
	}

	response.OK(c, day)
}

// GetMonth 月视图：按天给出科目色块区间
// GET /api/v1/calendar/month?year=2026&month=9
func (h *CalendarHandler) GetMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		response.BadRequest(c, 10001, "year 参数无效")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		response.BadRequest(c, 10001, "month 参数无效")
		return
	}

	view, err := h.calendarSvc.Month(c.Request.Context(), year, month)
	if err != nil {
		h.handleCalendarError(c, err)
		return
	}

	response.OK(c, view)
}

// handleCalendarError 日历模块错误码映射
func (h *CalendarHandler) handleCalendarError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCalendarDateInvalid):
		response.BadRequest(c, 10001, "日期格式无效，应为 YYYY-MM-DD")
	case errors.Is(err, service.ErrCalendarMonthInvalid):
		response.BadRequest(c, 10001, "年月参数无效")
	default:
		response.InternalError(c)
	}
}
