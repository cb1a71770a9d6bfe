package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/model"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/repository"
)

// ── 测试辅助 ──

func setupTestArchiveService() (ArchiveService, *repository.Repository) {
	repo, _ := newTestRepository()
	return NewArchiveService(repo, zap.NewNop()), repo
}

func seedSubject(t *testing.T, repo *repository.Repository, id int64, name string) {
	t.Helper()
	subjects, _ := repo.Subject.LoadAll(context.Background())
	subjects = append(subjects, model.Subject{
		ID: id, Name: name, StartDate: "2026-09-01", EndDate: "2026-09-30", HoursPerDay: 2,
		Objectives: []model.Objective{{ID: "obj_1_0", Text: "Ch1", Done: true}, {ID: "obj_1_1", Text: "Ch2"}},
	})
	if err := repo.Subject.SaveAll(context.Background(), subjects); err != nil {
		t.Fatal(err)
	}
}

// ── Archive 测试 ──

func TestArchiveService_Archive_MovesBetweenCollections(t *testing.T) {
	svc, repo := setupTestArchiveService()
	seedSubject(t, repo, 1, "Maths")

	entry, err := svc.Archive(context.Background(), 1)
	if err != nil {
		t.Fatalf("Archive 应成功: %v", err)
	}
	if entry.Name != "Maths" || entry.Percent != 50 {
		t.Errorf("归档条目应保留科目快照，实际=%+v", entry)
	}
	if entry.DaysLeft != 30 {
		t.Errorf("新归档条目剩余天数应为 30，实际=%d", entry.DaysLeft)
	}

	subjects, _ := repo.Subject.LoadAll(context.Background())
	if len(subjects) != 0 {
		t.Errorf("归档后活动集合应为空，实际 %d 条", len(subjects))
	}
	entries, _ := repo.Archive.LoadAll(context.Background())
	if len(entries) != 1 {
		t.Errorf("归档集合应有 1 条，实际 %d 条", len(entries))
	}
}

func TestArchiveService_Archive_MissingIsNoop(t *testing.T) {
	svc, repo := setupTestArchiveService()

	result, err := svc.Archive(context.Background(), 42)
	if err != nil {
		t.Fatalf("归档不存在的科目应静默忽略: %v", err)
	}
	if result != nil {
		t.Errorf("静默忽略应返回空结果，实际=%+v", result)
	}
	entries, _ := repo.Archive.LoadAll(context.Background())
	if len(entries) != 0 {
		t.Errorf("归档集合应保持为空，实际 %d 条", len(entries))
	}
}

// ── List / 过期清除测试 ──

func TestArchiveService_List_ExpiryBoundary(t *testing.T) {
	svc, repo := setupTestArchiveService()
	now := time.Now()
	svc.(*archiveService).now = func() time.Time { return now }

	entries := []model.ArchivedSubject{
		{Subject: model.Subject{ID: 1, Name: "récent"}, ArchivedAt: now.Add(-29 * 24 * time.Hour)},
		{Subject: model.Subject{ID: 2, Name: "périmé"}, ArchivedAt: now.Add(-31 * 24 * time.Hour)},
	}
	if err := repo.Archive.SaveAll(context.Background(), entries); err != nil {
		t.Fatal(err)
	}

	result, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(result) != 1 || result[0].Name != "récent" {
		t.Fatalf("31 天的条目应被清除，29 天的应保留，实际=%v", result)
	}
	if result[0].DaysLeft != 1 {
		t.Errorf("29 天的条目剩余天数应为 1，实际=%d", result[0].DaysLeft)
	}

	// 过期清除应已持久化
	stored, _ := repo.Archive.LoadAll(context.Background())
	if len(stored) != 1 {
		t.Errorf("过期条目应从存储中移除，实际 %d 条", len(stored))
	}
}

func TestArchiveService_List_DaysLeftNeverNegative(t *testing.T) {
	svc, repo := setupTestArchiveService()
	now := time.Now()
	svc.(*archiveService).now = func() time.Time { return now }

	// 恰好 30 天：保留且剩余 0 天
	entries := []model.ArchivedSubject{
		{Subject: model.Subject{ID: 1, Name: "limite"}, ArchivedAt: now.Add(-30 * 24 * time.Hour)},
	}
	if err := repo.Archive.SaveAll(context.Background(), entries); err != nil {
		t.Fatal(err)
	}

	result, err := svc.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(result) != 1 {
		t.Fatalf("恰好 30 天的条目应保留，实际 %d 条", len(result))
	}
	if result[0].DaysLeft != 0 {
		t.Errorf("期望剩余 0 天，实际=%d", result[0].DaysLeft)
	}
}

// ── Restore 测试 ──

func TestArchiveService_Restore_RoundTrip(t *testing.T) {
	svc, repo := setupTestArchiveService()
	seedSubject(t, repo, 1, "Maths")

	if _, err := svc.Archive(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	restored, err := svc.Restore(context.Background(), 1)
	if err != nil {
		t.Fatalf("Restore 应成功: %v", err)
	}
	if restored.Name != "Maths" || restored.DoneCount != 1 {
		t.Errorf("恢复后科目应与归档前一致，实际=%+v", restored)
	}

	subjects, _ := repo.Subject.LoadAll(context.Background())
	if len(subjects) != 1 {
		t.Errorf("恢复后活动集合应有 1 条，实际 %d 条", len(subjects))
	}
	entries, _ := repo.Archive.LoadAll(context.Background())
	if len(entries) != 0 {
		t.Errorf("恢复后归档集合应为空，实际 %d 条", len(entries))
	}
}

func TestArchiveService_Restore_MissingIsNoop(t *testing.T) {
	svc, _ := setupTestArchiveService()

	result, err := svc.Restore(context.Background(), 42)
	if err != nil || result != nil {
		t.Errorf("不存在的条目应静默忽略，实际 result=%v err=%v", result, err)
	}
}

// ── Delete / Purge 测试 ──

func TestArchiveService_Delete(t *testing.T) {
	svc, repo := setupTestArchiveService()
	seedSubject(t, repo, 1, "Maths")
	if _, err := svc.Archive(context.Background(), 1); err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	entries, _ := repo.Archive.LoadAll(context.Background())
	if len(entries) != 0 {
		t.Errorf("条目应被永久删除，实际 %d 条", len(entries))
	}

	// 重复删除静默忽略
	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Errorf("重复删除应静默忽略: %v", err)
	}
}

func TestArchiveService_Purge_LeavesSubjectsUntouched(t *testing.T) {
	svc, repo := setupTestArchiveService()
	seedSubject(t, repo, 1, "Maths")
	seedSubject(t, repo, 2, "Physique")
	if _, err := svc.Archive(context.Background(), 2); err != nil {
		t.Fatal(err)
	}

	if err := svc.Purge(context.Background()); err != nil {
		t.Fatalf("Purge 应成功: %v", err)
	}

	entries, _ := repo.Archive.LoadAll(context.Background())
	if len(entries) != 0 {
		t.Errorf("归档集合应清空，实际 %d 条", len(entries))
	}
	subjects, _ := repo.Subject.LoadAll(context.Background())
	if len(subjects) != 1 {
		t.Errorf("活动集合不应受影响，实际 %d 条", len(subjects))
	}
}
