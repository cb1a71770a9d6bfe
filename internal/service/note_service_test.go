package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/dto"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/model"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/repository"
)

func setupTestNoteService() (NoteService, *repository.Repository) {
	repo, _ := newTestRepository()
	return NewNoteService(repo, zap.NewNop()), repo
}

// ── Create 测试 ──

func TestNoteService_Create_Defaults(t *testing.T) {
	svc, _ := setupTestNoteService()

	note, err := svc.Create(context.Background(), &dto.CreateNoteRequest{Content: "Réviser le chapitre 3"})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if note.Title != model.DefaultNoteTitle {
		t.Errorf("空标题应回退为 %q，实际=%q", model.DefaultNoteTitle, note.Title)
	}
	if note.Color != model.DefaultNoteColor {
		t.Errorf("空颜色应回退为 %q，实际=%q", model.DefaultNoteColor, note.Color)
	}
	if note.Date == "" {
		t.Error("创建日期应被填充")
	}
}

func TestNoteService_Create_EmptyContent(t *testing.T) {
	svc, _ := setupTestNoteService()

	_, err := svc.Create(context.Background(), &dto.CreateNoteRequest{Content: "   "})
	if !errors.Is(err, ErrNoteContentRequired) {
		t.Errorf("期望 ErrNoteContentRequired，实际: %v", err)
	}
}

// ── List 测试 ──

func TestNoteService_List_NewestFirst(t *testing.T) {
	svc, _ := setupTestNoteService()

	first, err := svc.Create(context.Background(), &dto.CreateNoteRequest{Title: "première", Content: "a"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Create(context.Background(), &dto.CreateNoteRequest{Title: "seconde", Content: "b"})
	if err != nil {
		t.Fatal(err)
	}

	notes, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("期望 2 条笔记，实际=%d", len(notes))
	}
	if notes[0].ID != second.ID || notes[1].ID != first.ID {
		t.Error("新笔记应排在最前")
	}
}

// ── Update 测试 ──

func TestNoteService_Update(t *testing.T) {
	svc, _ := setupTestNoteService()
	note, err := svc.Create(context.Background(), &dto.CreateNoteRequest{Title: "brouillon", Content: "v1"})
	if err != nil {
		t.Fatal(err)
	}

	newContent := "v2"
	blankTitle := "  "
	updated, err := svc.Update(context.Background(), note.ID, &dto.UpdateNoteRequest{
		Title:   &blankTitle,
		Content: &newContent,
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.Content != "v2" {
		t.Errorf("内容应更新，实际=%q", updated.Content)
	}
	if updated.Title != model.DefaultNoteTitle {
		t.Errorf("空白标题应回退为占位标题，实际=%q", updated.Title)
	}
}

func TestNoteService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestNoteService()

	_, err := svc.Update(context.Background(), 42, &dto.UpdateNoteRequest{})
	if !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("期望 ErrNoteNotFound，实际: %v", err)
	}
}

// ── Delete 测试 ──

func TestNoteService_Delete(t *testing.T) {
	svc, repo := setupTestNoteService()
	note, err := svc.Create(context.Background(), &dto.CreateNoteRequest{Content: "à supprimer"})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(context.Background(), note.ID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	notes, _ := repo.Note.LoadAll(context.Background())
	if len(notes) != 0 {
		t.Errorf("笔记应被删除，实际 %d 条", len(notes))
	}

	if err := svc.Delete(context.Background(), note.ID); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("期望 ErrNoteNotFound，实际: %v", err)
	}
}
