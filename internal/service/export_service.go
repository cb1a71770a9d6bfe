package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/repository"
)

// ── 导出模块业务错误 ──

var ErrExportGenerateFail = errors.New("生成 Excel 文件失败")

// ExportService 导出业务接口
//
// 设计说明：
//   - 进度报告与成绩表各自导出为独立的 Excel (.xlsx)
//   - 日历导出 (.ics) 由 CalendarService 提供
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportProgress 导出进度报告为 Excel
	ExportProgress(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportGrades 导出成绩表为 Excel
	ExportGrades(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

// headerStyle 表头样式：白字加品牌底色
func headerStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4F46E5"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	return style
}

// ═══════════════════════════════════════════════════════════
// ExportProgress — 导出进度报告为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 标题 "Rapport de progression" + 全局完成率概览
//   - 按科目一行明细：日期区间、每日时长、目标完成数、百分比
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportProgress(ctx context.Context) (*bytes.Buffer, string, error) {
	subjects, err := s.repo.Subject.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载科目集合失败", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Progression"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "G", 14)
	style := headerStyle(f)

	f.SetCellValue(sheet, "A1", "Rapport de progression")
	f.MergeCell(sheet, "A1", "G1")
	f.SetCellStyle(sheet, "A1", "G1", style)

	var totalDone, totalAll int
	for i := range subjects {
		done, total := CountObjectives(subjects[i].Objectives)
		totalDone += done
		totalAll += total
	}
	f.SetCellValue(sheet, "A2", "Progression globale")
	f.SetCellValue(sheet, "B2", fmt.Sprintf("%d %%", Percent(totalDone, totalAll)))
	f.SetCellValue(sheet, "A3", "Objectifs complétés")
	f.SetCellValue(sheet, "B3", fmt.Sprintf("%d / %d", totalDone, totalAll))

	headers := []string{"Matière", "Début", "Fin", "Heures/jour", "Objectifs faits", "Objectifs total", "Progression"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 5)
		f.SetCellValue(sheet, cell, header)
	}
	f.SetCellStyle(sheet, "A5", "G5", style)

	for i := range subjects {
		subject := &subjects[i]
		done, total := CountObjectives(subject.Objectives)
		values := []interface{}{
			subject.Name,
			subject.StartDate,
			subject.EndDate,
			subject.HoursPerDay,
			done,
			total,
			fmt.Sprintf("%d %%", Percent(done, total)),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, 6+i)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("写入 Excel 缓冲失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("rapport_progression_%s.xlsx", s.now().Format("2006-01-02"))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportGrades — 导出成绩表为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：每个成绩模块一行，三次测验 + 期末分数，附派生的完成状态列

func (s *exportService) ExportGrades(ctx context.Context) (*bytes.Buffer, string, error) {
	modules, err := s.repo.GradeModule.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载成绩模块集合失败", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Notes"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "F", 14)
	style := headerStyle(f)

	headers := []string{"Module", "Contrôle 1", "Contrôle 2", "Contrôle 3", "Examen final", "Complet"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	f.SetCellStyle(sheet, "A1", "F1", style)

	for i := range modules {
		module := &modules[i]
		values := []interface{}{
			module.Name,
			scoreCell(module.Checkpoint1),
			scoreCell(module.Checkpoint2),
			scoreCell(module.Checkpoint3),
			scoreCell(module.FinalExam),
			completeCell(module.IsComplete()),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, 2+i)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("写入 Excel 缓冲失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("notes_%s.xlsx", s.now().Format("2006-01-02"))
	return buf, filename, nil
}

func scoreCell(score *float64) interface{} {
	if score == nil {
		return "—"
	}
	return *score
}

func completeCell(complete bool) string {
	if complete {
		return "Oui"
	}
	return "Non"
}
