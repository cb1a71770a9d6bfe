package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/dto"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/model"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/repository"
)

// ── 日历模块业务错误 ──

var (
	ErrCalendarDateInvalid  = errors.New("日期格式无效，应为 YYYY-MM-DD")
	ErrCalendarMonthInvalid = errors.New("年月参数无效")
)

// CalendarService 日历视图业务接口
type CalendarService interface {
	Day(ctx context.Context, date string) (*dto.CalendarDayResponse, error)
	Month(ctx context.Context, year, month int) (*dto.CalendarMonthResponse, error)
	ExportICS(ctx context.Context) ([]byte, error)
}

type calendarService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCalendarService 创建 CalendarService 实例
func NewCalendarService(repo *repository.Repository, logger *zap.Logger) CalendarService {
	return &calendarService{repo: repo, logger: logger}
}

// ────────────────────── Day ──────────────────────

// Day 单日视图：返回复习区间覆盖该日期的全部科目（含边界日）
func (s *calendarService) Day(ctx context.Context, date string) (*dto.CalendarDayResponse, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrCalendarDateInvalid
	}

	subjects, err := s.repo.Subject.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载科目集合失败", zap.Error(err))
		return nil, err
	}

	matching := make([]dto.SubjectResponse, 0)
	for i := range subjects {
		if subjects[i].CoversDate(date) {
			matching = append(matching, ToSubjectResponse(&subjects[i]))
		}
	}
	return &dto.CalendarDayResponse{Date: date, Subjects: matching}, nil
}

// ────────────────────── Month ──────────────────────

// Month 月视图：每个日期单元格内，覆盖该日的科目按加入顺序均分色块区间
func (s *calendarService) Month(ctx context.Context, year, month int) (*dto.CalendarMonthResponse, error) {
	if year < 1970 || year > 9999 || month < 1 || month > 12 {
		return nil, ErrCalendarMonthInvalid
	}

	subjects, err := s.repo.Subject.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载科目集合失败", zap.Error(err))
		return nil, err
	}

	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	days := make([]dto.CalendarDayCell, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		days = append(days, dto.CalendarDayCell{
			Date:     date,
			Day:      day,
			Segments: buildSegments(subjects, date),
		})
	}

	return &dto.CalendarMonthResponse{Year: year, Month: month, Days: days}, nil
}

// buildSegments 为单个日期生成均分色块：n 个科目中第 i 个占 [i/n·100, (i+1)/n·100]
func buildSegments(subjects []model.Subject, date string) []dto.CalendarSegment {
	matching := make([]*model.Subject, 0)
	for i := range subjects {
		if subjects[i].CoversDate(date) {
			matching = append(matching, &subjects[i])
		}
	}

	n := len(matching)
	segments := make([]dto.CalendarSegment, 0, n)
	for i, subject := range matching {
		segments = append(segments, dto.CalendarSegment{
			SubjectID:    subject.ID,
			Name:         subject.Name,
			Color:        subject.Color,
			StartPercent: float64(i) / float64(n) * 100,
			EndPercent:   float64(i+1) / float64(n) * 100,
		})
	}
	return segments
}

// ────────────────────── ExportICS ──────────────────────

// ExportICS 将全部活动科目导出为 iCalendar 全天事件，每个科目一个事件
func (s *calendarService) ExportICS(ctx context.Context) ([]byte, error) {
	subjects, err := s.repo.Subject.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载科目集合失败", zap.Error(err))
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//StudyFlow//Planning//FR")

	for i := range subjects {
		subject := &subjects[i]
		start, err := time.Parse("2006-01-02", subject.StartDate)
		if err != nil {
			continue
		}
		end, err := time.Parse("2006-01-02", subject.EndDate)
		if err != nil {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("subject-%d@studyflow", subject.ID))
		event.SetSummary(subject.Name)
		event.SetDescription(fmt.Sprintf("Révision : %d h/jour", subject.HoursPerDay))
		event.SetAllDayStartAt(start)
		// DTEND 在 iCalendar 中为排他边界，结束日 +1 天才含当天
		event.SetAllDayEndAt(end.AddDate(0, 0, 1))
	}

	return []byte(cal.Serialize()), nil
}
