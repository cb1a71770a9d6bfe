package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/dto"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/model"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/repository"
)

// ── 科目模块业务错误 ──

var (
	ErrSubjectNotFound           = errors.New("科目不存在")
	ErrSubjectNameRequired       = errors.New("科目名称不能为空")
	ErrSubjectDateInvalid        = errors.New("科目日期格式无效")
	ErrSubjectHoursInvalid       = errors.New("每日学习时长必须为正数")
	ErrSubjectObjectivesRequired = errors.New("目标清单不能为空")
)

// DefaultSubjectColor 创建时未指定颜色的默认值
const DefaultSubjectColor = "#4f46e5"

// SubjectService 科目业务接口
type SubjectService interface {
	Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.SubjectResponse, error)
	List(ctx context.Context, page *dto.PaginationRequest) ([]dto.SubjectResponse, int64, error)
	Update(ctx context.Context, id int64, req *dto.UpdateSubjectRequest) (*dto.SubjectResponse, error)
	ToggleObjective(ctx context.Context, subjectID int64, objectiveID string) (*dto.SubjectResponse, error)
	EditObjective(ctx context.Context, subjectID int64, objectiveID string, text string) (*dto.SubjectResponse, error)
	DeleteObjective(ctx context.Context, subjectID int64, objectiveID string) (*dto.SubjectResponse, error)
	DeleteAll(ctx context.Context) error
}

type subjectService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewSubjectService 创建 SubjectService 实例
func NewSubjectService(repo *repository.Repository, logger *zap.Logger) SubjectService {
	return &subjectService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── Create ──────────────────────

func (s *subjectService) Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrSubjectNameRequired
	}
	if err := validateDateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	if req.HoursPerDay <= 0 {
		return nil, ErrSubjectHoursInvalid
	}

	texts := trimObjectiveTexts(req.Objectives)
	if len(texts) == 0 {
		return nil, ErrSubjectObjectivesRequired
	}

	color := req.Color
	if color == "" {
		color = DefaultSubjectColor
	}

	subjects, err := s.repo.Subject.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载科目集合失败", zap.Error(err))
		return nil, err
	}

	id := s.nextID(subjects)
	subject := model.Subject{
		ID:          id,
		Name:        name,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		HoursPerDay: req.HoursPerDay,
		Color:       color,
		Objectives:  buildObjectives(id, texts),
	}

	subjects = append(subjects, subject)
	if err := s.repo.Subject.SaveAll(ctx, subjects); err != nil {
		s.logger.Error("保存科目集合失败", zap.Error(err))
		return nil, err
	}

	resp := ToSubjectResponse(&subject)
	return &resp, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *subjectService) GetByID(ctx context.Context, id int64) (*dto.SubjectResponse, error) {
	subjects, err := s.repo.Subject.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载科目集合失败", zap.Error(err))
		return nil, err
	}
	for i := range subjects {
		if subjects[i].ID == id {
			resp := ToSubjectResponse(&subjects[i])
			return &resp, nil
		}
	}
	return nil, ErrSubjectNotFound
}

// ────────────────────── List ──────────────────────

// List 按创建顺序分页返回科目
func (s *subjectService) List(ctx context.Context, page *dto.PaginationRequest) ([]dto.SubjectResponse, int64, error) {
	subjects, err := s.repo.Subject.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载科目集合失败", zap.Error(err))
		return nil, 0, err
	}

	total := int64(len(subjects))
	offset := page.GetOffset()
	if offset >= len(subjects) {
		return []dto.SubjectResponse{}, total, nil
	}
	end := offset + page.GetPageSize()
	if end > len(subjects) {
		end = len(subjects)
	}

	result := make([]dto.SubjectResponse, 0, end-offset)
	for i := offset; i < end; i++ {
		result = append(result, ToSubjectResponse(&subjects[i]))
	}
	return result, total, nil
}

// ────────────────────── Update ──────────────────────

// Update 原子整体更新：保留 id，目标仅在提交新文本时重建（勾选状态随之清零）
func (s *subjectService) Update(ctx context.Context, id int64, req *dto.UpdateSubjectRequest) (*dto.SubjectResponse, error) {
	subjects, err := s.repo.Subject.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载科目集合失败", zap.Error(err))
		return nil, err
	}

	idx := indexOfSubject(subjects, id)
	if idx < 0 {
		return nil, ErrSubjectNotFound
	}
	subject := &subjects[idx]

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrSubjectNameRequired
		}
		subject.Name = name
	}

	startDate := subject.StartDate
	endDate := subject.EndDate
	if req.StartDate != nil {
		startDate = *req.StartDate
	}
	if req.EndDate != nil {
		endDate = *req.EndDate
	}
	if err := validateDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	subject.StartDate = startDate
	subject.EndDate = endDate

	if req.HoursPerDay != nil {
		if *req.HoursPerDay <= 0 {
			return nil, ErrSubjectHoursInvalid
		}
		subject.HoursPerDay = *req.HoursPerDay
	}
	if req.Color != nil && *req.Color != "" {
		subject.Color = *req.Color
	}
	if req.ObjectiveTexts != nil {
		texts := trimObjectiveTexts(*req.ObjectiveTexts)
		if len(texts) == 0 {
			return nil, ErrSubjectObjectivesRequired
		}
		subject.Objectives = buildObjectives(s.now().UnixMilli(), texts)
	}

	if err := s.repo.Subject.SaveAll(ctx, subjects); err != nil {
		s.logger.Error("保存科目集合失败", zap.Error(err))
		return nil, err
	}

	resp := ToSubjectResponse(subject)
	return &resp, nil
}

// ────────────────────── 目标操作 ──────────────────────

// ToggleObjective 翻转目标勾选状态；目标或科目不存在时静默忽略
func (s *subjectService) ToggleObjective(ctx context.Context, subjectID int64, objectiveID string) (*dto.SubjectResponse, error) {
	return s.mutateObjective(ctx, subjectID, objectiveID, func(obj *model.Objective) {
		obj.Done = !obj.Done
	})
}

// EditObjective 修改目标文本，勾选状态不变
// 目标不存在或新文本为空白时静默丢弃本次修改，不落库
func (s *subjectService) EditObjective(ctx context.Context, subjectID int64, objectiveID string, text string) (*dto.SubjectResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		subjects, err := s.repo.Subject.LoadAll(ctx)
		if err != nil {
			s.logger.Error("加载科目集合失败", zap.Error(err))
			return nil, err
		}
		idx := indexOfSubject(subjects, subjectID)
		if idx < 0 {
			return nil, nil
		}
		resp := ToSubjectResponse(&subjects[idx])
		return &resp, nil
	}
	return s.mutateObjective(ctx, subjectID, objectiveID, func(obj *model.Objective) {
		obj.Text = text
	})
}

// DeleteObjective 删除单个目标；目标不存在时静默忽略
func (s *subjectService) DeleteObjective(ctx context.Context, subjectID int64, objectiveID string) (*dto.SubjectResponse, error) {
	subjects, err := s.repo.Subject.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载科目集合失败", zap.Error(err))
		return nil, err
	}

	idx := indexOfSubject(subjects, subjectID)
	if idx < 0 {
		return nil, nil
	}
	subject := &subjects[idx]

	kept := subject.Objectives[:0]
	removed := false
	for _, obj := range subject.Objectives {
		if obj.ID == objectiveID {
			removed = true
			continue
		}
		kept = append(kept, obj)
	}
	subject.Objectives = kept

	if removed {
		if err := s.repo.Subject.SaveAll(ctx, subjects); err != nil {
			s.logger.Error("保存科目集合失败", zap.Error(err))
			return nil, err
		}
	}

	resp := ToSubjectResponse(subject)
	return &resp, nil
}

func (s *subjectService) mutateObjective(ctx context.Context, subjectID int64, objectiveID string, fn func(*model.Objective)) (*dto.SubjectResponse, error) {
	subjects, err := s.repo.Subject.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载科目集合失败", zap.Error(err))
		return nil, err
	}

	idx := indexOfSubject(subjects, subjectID)
	if idx < 0 {
		return nil, nil
	}
	subject := &subjects[idx]

	changed := false
	for i := range subject.Objectives {
		if subject.Objectives[i].ID == objectiveID {
			fn(&subject.Objectives[i])
			changed = true
			break
		}
	}

	if changed {
		if err := s.repo.Subject.SaveAll(ctx, subjects); err != nil {
			s.logger.Error("保存科目集合失败", zap.Error(err))
			return nil, err
		}
	}

	resp := ToSubjectResponse(subject)
	return &resp, nil
}

// ────────────────────── DeleteAll ──────────────────────

// DeleteAll 清空活动科目集合，归档集合不受影响
func (s *subjectService) DeleteAll(ctx context.Context) error {
	if err := s.repo.Subject.SaveAll(ctx, []model.Subject{}); err != nil {
		s.logger.Error("清空科目集合失败", zap.Error(err))
		return err
	}
	s.logger.Info("已清空全部活动科目")
	return nil
}

// ────────────────────── 内部工具 ──────────────────────

// nextID 以当前毫秒为代理主键；与已有 id 冲突时递增避让
func (s *subjectService) nextID(subjects []model.Subject) int64 {
	id := s.now().UnixMilli()
	for containsSubjectID(subjects, id) {
		id++
	}
	return id
}

func containsSubjectID(subjects []model.Subject, id int64) bool {
	for i := range subjects {
		if subjects[i].ID == id {
			return true
		}
	}
	return false
}

func indexOfSubject(subjects []model.Subject, id int64) int {
	for i := range subjects {
		if subjects[i].ID == id {
			return i
		}
	}
	return -1
}

// trimObjectiveTexts 逐行去空白并剔除空行
func trimObjectiveTexts(texts []string) []string {
	result := make([]string, 0, len(texts))
	for _, t := range texts {
		if t = strings.TrimSpace(t); t != "" {
			result = append(result, t)
		}
	}
	return result
}

// buildObjectives 生成目标清单，id 形如 obj_<毫秒>_<序号>
func buildObjectives(millis int64, texts []string) []model.Objective {
	objectives := make([]model.Objective, 0, len(texts))
	for i, text := range texts {
		objectives = append(objectives, model.Objective{
			ID:   fmt.Sprintf("obj_%d_%d", millis, i),
			Text: text,
		})
	}
	return objectives
}

// validateDateRange 仅校验格式；不强制 start ≤ end，倒序区间自然覆盖不到任何日期
func validateDateRange(start, end string) error {
	if _, err := time.Parse("2006-01-02", start); err != nil {
		return ErrSubjectDateInvalid
	}
	if _, err := time.Parse("2006-01-02", end); err != nil {
		return ErrSubjectDateInvalid
	}
	return nil
}

// ── 视图映射 ──

// CountObjectives 统计已完成与总数
func CountObjectives(objectives []model.Objective) (done, total int) {
	for _, obj := range objectives {
		if obj.Done {
			done++
		}
	}
	return done, len(objectives)
}

// Percent 完成百分比，四舍五入；无目标时为 0
func Percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(done)/float64(total)*100 + 0.5)
}

// ToSubjectResponse 科目模型到视图模型的纯映射
func ToSubjectResponse(subject *model.Subject) dto.SubjectResponse {
	done, total := CountObjectives(subject.Objectives)
	objectives := make([]dto.ObjectiveResponse, 0, len(subject.Objectives))
	for _, obj := range subject.Objectives {
		objectives = append(objectives, dto.ObjectiveResponse{ID: obj.ID, Text: obj.Text, Done: obj.Done})
	}
	return dto.SubjectResponse{
		ID:          subject.ID,
		Name:        subject.Name,
		StartDate:   subject.StartDate,
		EndDate:     subject.EndDate,
		HoursPerDay: subject.HoursPerDay,
		Color:       subject.Color,
		Objectives:  objectives,
		Percent:     Percent(done, total),
		DoneCount:   done,
		TotalCount:  total,
	}
}
