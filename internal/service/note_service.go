package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/dto"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/model"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/repository"
)

// ── 笔记模块业务错误 ──

var (
	ErrNoteNotFound        = errors.New("笔记不存在")
	ErrNoteContentRequired = errors.New("笔记内容不能为空")
)

// NoteService 笔记业务接口
type NoteService interface {
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	List(ctx context.Context) ([]dto.NoteResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id int64) error
}

type noteService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewNoteService 创建 NoteService 实例
func NewNoteService(repo *repository.Repository, logger *zap.Logger) NoteService {
	return &noteService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── Create ──────────────────────

// Create 创建笔记；标题与颜色留空时补默认值
func (s *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrNoteContentRequired
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = model.DefaultNoteTitle
	}
	color := req.Color
	if color == "" {
		color = model.DefaultNoteColor
	}

	notes, err := s.repo.Note.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载笔记集合失败", zap.Error(err))
		return nil, err
	}

	now := s.now()
	id := now.UnixMilli()
	for containsNoteID(notes, id) {
		id++
	}

	note := model.Note{
		ID:      id,
		Title:   title,
		Content: content,
		Date:    now.Format("2006-01-02"),
		Color:   color,
	}

	// 新笔记置于列表最前
	notes = append([]model.Note{note}, notes...)
	if err := s.repo.Note.SaveAll(ctx, notes); err != nil {
		s.logger.Error("保存笔记集合失败", zap.Error(err))
		return nil, err
	}

	resp := toNoteResponse(&note)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *noteService) List(ctx context.Context) ([]dto.NoteResponse, error) {
	notes, err := s.repo.Note.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载笔记集合失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.NoteResponse, 0, len(notes))
	for i := range notes {
		result = append(result, toNoteResponse(&notes[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *noteService) Update(ctx context.Context, id int64, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	notes, err := s.repo.Note.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载笔记集合失败", zap.Error(err))
		return nil, err
	}

	idx := -1
	for i := range notes {
		if notes[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNoteNotFound
	}
	note := &notes[idx]

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			title = model.DefaultNoteTitle
		}
		note.Title = title
	}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return nil, ErrNoteContentRequired
		}
		note.Content = content
	}
	if req.Color != nil && *req.Color != "" {
		note.Color = *req.Color
	}

	if err := s.repo.Note.SaveAll(ctx, notes); err != nil {
		s.logger.Error("保存笔记集合失败", zap.Error(err))
		return nil, err
	}

	resp := toNoteResponse(note)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *noteService) Delete(ctx context.Context, id int64) error {
	notes, err := s.repo.Note.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载笔记集合失败", zap.Error(err))
		return err
	}

	kept := make([]model.Note, 0, len(notes))
	for _, note := range notes {
		if note.ID != id {
			kept = append(kept, note)
		}
	}
	if len(kept) == len(notes) {
		return ErrNoteNotFound
	}
	return s.repo.Note.SaveAll(ctx, kept)
}

// ────────────────────── 内部工具 ──────────────────────

func containsNoteID(notes []model.Note, id int64) bool {
	for i := range notes {
		if notes[i].ID == id {
			return true
		}
	}
	return false
}

func toNoteResponse(note *model.Note) dto.NoteResponse {
	return dto.NoteResponse{
		ID:      note.ID,
		Title:   note.Title,
		Content: note.Content,
		Date:    note.Date,
		Color:   note.Color,
	}
}
