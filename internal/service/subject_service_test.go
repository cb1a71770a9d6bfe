package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/dto"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/model"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/repository"
)

// ── 测试辅助 ──

func setupTestSubjectService() (SubjectService, *repository.Repository) {
	repo, _ := newTestRepository()
	svc := NewSubjectService(repo, zap.NewNop())
	return svc, repo
}

func fixedClock(millis int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(millis) }
}

func createTestSubject(t *testing.T, svc SubjectService, name string, objectives ...string) *dto.SubjectResponse {
	t.Helper()
	result, err := svc.Create(context.Background(), &dto.CreateSubjectRequest{
		Name:        name,
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-30",
		HoursPerDay: 2,
		Objectives:  objectives,
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	return result
}

// ── Create 测试 ──

func TestSubjectService_Create_Success(t *testing.T) {
	svc, _ := setupTestSubjectService()
	svc.(*subjectService).now = fixedClock(1757000000000)

	result, err := svc.Create(context.Background(), &dto.CreateSubjectRequest{
		Name:        "Mathématiques",
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-30",
		HoursPerDay: 3,
		Objectives:  []string{"Chapitre 1", "Chapitre 2"},
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.ID != 1757000000000 {
		t.Errorf("期望 ID=1757000000000（创建时刻毫秒），实际=%d", result.ID)
	}
	if result.Color != DefaultSubjectColor {
		t.Errorf("未指定颜色时应使用默认值，实际=%s", result.Color)
	}
	if len(result.Objectives) != 2 {
		t.Fatalf("期望 2 个目标，实际=%d", len(result.Objectives))
	}
	if result.Objectives[0].ID != "obj_1757000000000_0" {
		t.Errorf("目标 ID 格式错误: %s", result.Objectives[0].ID)
	}
	if result.Objectives[1].ID != "obj_1757000000000_1" {
		t.Errorf("目标 ID 格式错误: %s", result.Objectives[1].ID)
	}
	if result.Percent != 0 || result.DoneCount != 0 {
		t.Errorf("新科目进度应为 0，实际 percent=%d done=%d", result.Percent, result.DoneCount)
	}
}

func TestSubjectService_Create_TrimsObjectives(t *testing.T) {
	svc, _ := setupTestSubjectService()

	result := createTestSubject(t, svc, "Physique", "  Optique  ", "", "   ", "Mécanique")
	if len(result.Objectives) != 2 {
		t.Fatalf("空白目标行应被剔除，期望 2 个，实际=%d", len(result.Objectives))
	}
	if result.Objectives[0].Text != "Optique" {
		t.Errorf("目标文本应去除首尾空白，实际=%q", result.Objectives[0].Text)
	}
}

func TestSubjectService_Create_ValidationErrors(t *testing.T) {
	svc, _ := setupTestSubjectService()

	cases := []struct {
		name string
		req  *dto.CreateSubjectRequest
		want error
	}{
		{"空名称", &dto.CreateSubjectRequest{Name: "  ", StartDate: "2026-09-01", EndDate: "2026-09-30", HoursPerDay: 2, Objectives: []string{"a"}}, ErrSubjectNameRequired},
		{"日期格式错误", &dto.CreateSubjectRequest{Name: "x", StartDate: "01/09/2026", EndDate: "2026-09-30", HoursPerDay: 2, Objectives: []string{"a"}}, ErrSubjectDateInvalid},
		{"时长为零", &dto.CreateSubjectRequest{Name: "x", StartDate: "2026-09-01", EndDate: "2026-09-30", HoursPerDay: 0, Objectives: []string{"a"}}, ErrSubjectHoursInvalid},
		{"目标全为空白", &dto.CreateSubjectRequest{Name: "x", StartDate: "2026-09-01", EndDate: "2026-09-30", HoursPerDay: 2, Objectives: []string{" ", ""}}, ErrSubjectObjectivesRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.req)
			if !errors.Is(err, tc.want) {
				t.Errorf("期望 %v，实际: %v", tc.want, err)
			}
		})
	}
}

func TestSubjectService_Create_ValidationFailurePersistsNothing(t *testing.T) {
	svc, repo := setupTestSubjectService()

	_, err := svc.Create(context.Background(), &dto.CreateSubjectRequest{
		Name: "", StartDate: "2026-09-01", EndDate: "2026-09-30", HoursPerDay: 2, Objectives: []string{"a"},
	})
	if err == nil {
		t.Fatal("期望校验失败")
	}

	subjects, _ := repo.Subject.LoadAll(context.Background())
	if len(subjects) != 0 {
		t.Errorf("校验失败时不应有任何持久化，实际 %d 条", len(subjects))
	}
}

// 倒序日期区间不报错，只是覆盖不到任何日期
func TestSubjectService_Create_InvertedDateRangeAllowed(t *testing.T) {
	svc, _ := setupTestSubjectService()

	result, err := svc.Create(context.Background(), &dto.CreateSubjectRequest{
		Name: "x", StartDate: "2026-09-30", EndDate: "2026-09-01", HoursPerDay: 2, Objectives: []string{"a"},
	})
	if err != nil {
		t.Fatalf("倒序区间应被接受: %v", err)
	}
	if result.StartDate != "2026-09-30" {
		t.Errorf("日期应原样保存，实际=%s", result.StartDate)
	}
}

// ── List 测试 ──

func TestSubjectService_List_Pagination(t *testing.T) {
	svc, _ := setupTestSubjectService()
	for _, name := range []string{"A", "B", "C"} {
		createTestSubject(t, svc, name, "obj")
	}

	page := &dto.PaginationRequest{Page: 2, PageSize: 2}
	result, total, err := svc.List(context.Background(), page)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if total != 3 {
		t.Errorf("期望 total=3，实际=%d", total)
	}
	if len(result) != 1 || result[0].Name != "C" {
		t.Errorf("第二页应只含 C，实际=%v", result)
	}
}

// ── Update 测试 ──

func TestSubjectService_Update_KeepsIDAndObjectives(t *testing.T) {
	svc, _ := setupTestSubjectService()
	created := createTestSubject(t, svc, "Maths", "Ch1", "Ch2")

	// 勾选一个目标后更新名称
	if _, err := svc.ToggleObjective(context.Background(), created.ID, created.Objectives[0].ID); err != nil {
		t.Fatalf("ToggleObjective 应成功: %v", err)
	}

	newName := "Mathématiques avancées"
	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateSubjectRequest{Name: &newName})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("更新不应改变 id：期望 %d，实际 %d", created.ID, updated.ID)
	}
	if updated.Name != newName {
		t.Errorf("期望 Name=%s，实际=%s", newName, updated.Name)
	}
	if updated.DoneCount != 1 {
		t.Errorf("未提交新目标文本时勾选状态应保留，实际 done=%d", updated.DoneCount)
	}
	if updated.Objectives[0].ID != created.Objectives[0].ID {
		t.Error("未提交新目标文本时目标 id 应保持不变")
	}
}

func TestSubjectService_Update_RebuildsObjectives(t *testing.T) {
	svc, _ := setupTestSubjectService()
	created := createTestSubject(t, svc, "Maths", "Ch1", "Ch2")
	svc.(*subjectService).now = fixedClock(1758000000000)

	texts := []string{"Nouveau 1", "Nouveau 2", "Nouveau 3"}
	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateSubjectRequest{ObjectiveTexts: &texts})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if len(updated.Objectives) != 3 {
		t.Fatalf("期望 3 个目标，实际=%d", len(updated.Objectives))
	}
	if updated.DoneCount != 0 {
		t.Error("重建目标后勾选状态应清零")
	}
	if !strings.HasPrefix(updated.Objectives[0].ID, "obj_1758000000000_") {
		t.Errorf("重建目标应使用新 id，实际=%s", updated.Objectives[0].ID)
	}
}

func TestSubjectService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestSubjectService()

	_, err := svc.Update(context.Background(), 42, &dto.UpdateSubjectRequest{})
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("期望 ErrSubjectNotFound，实际: %v", err)
	}
}

// ── 目标操作测试 ──

func TestSubjectService_ToggleObjective_TwiceRestores(t *testing.T) {
	svc, _ := setupTestSubjectService()
	created := createTestSubject(t, svc, "Maths", "Ch1")
	oid := created.Objectives[0].ID

	once, err := svc.ToggleObjective(context.Background(), created.ID, oid)
	if err != nil || !once.Objectives[0].Done {
		t.Fatalf("第一次翻转后应为已完成: %v", err)
	}
	twice, err := svc.ToggleObjective(context.Background(), created.ID, oid)
	if err != nil || twice.Objectives[0].Done {
		t.Fatalf("第二次翻转应恢复未完成: %v", err)
	}
}

// 勾选 2 个目标中的 1 个 → 50%
func TestSubjectService_ToggleObjective_PercentRounding(t *testing.T) {
	svc, _ := setupTestSubjectService()
	created := createTestSubject(t, svc, "Maths", "Ch1", "Ch2")

	result, err := svc.ToggleObjective(context.Background(), created.ID, created.Objectives[0].ID)
	if err != nil {
		t.Fatalf("ToggleObjective 应成功: %v", err)
	}
	if result.Percent != 50 {
		t.Errorf("期望 percent=50，实际=%d", result.Percent)
	}
}

func TestSubjectService_ToggleObjective_MissingIsNoop(t *testing.T) {
	svc, repo := setupTestSubjectService()
	created := createTestSubject(t, svc, "Maths", "Ch1")

	// 目标不存在
	result, err := svc.ToggleObjective(context.Background(), created.ID, "obj_0_99")
	if err != nil {
		t.Fatalf("不存在的目标应静默忽略: %v", err)
	}
	if result.DoneCount != 0 {
		t.Error("静默忽略不应改变状态")
	}

	// 科目不存在
	result, err = svc.ToggleObjective(context.Background(), 42, "obj_0_0")
	if err != nil || result != nil {
		t.Errorf("不存在的科目应静默忽略，实际 result=%v err=%v", result, err)
	}

	subjects, _ := repo.Subject.LoadAll(context.Background())
	if subjects[0].Objectives[0].Done {
		t.Error("静默忽略后存储不应变化")
	}
}

func TestSubjectService_EditObjective(t *testing.T) {
	svc, _ := setupTestSubjectService()
	created := createTestSubject(t, svc, "Maths", "Ch1")
	oid := created.Objectives[0].ID

	if _, err := svc.ToggleObjective(context.Background(), created.ID, oid); err != nil {
		t.Fatal(err)
	}
	result, err := svc.EditObjective(context.Background(), created.ID, oid, "  Chapitre premier  ")
	if err != nil {
		t.Fatalf("EditObjective 应成功: %v", err)
	}
	if result.Objectives[0].Text != "Chapitre premier" {
		t.Errorf("目标文本应更新并去空白，实际=%q", result.Objectives[0].Text)
	}
	if !result.Objectives[0].Done {
		t.Error("修改文本不应改变勾选状态")
	}

	// 空白文本：丢弃修改，返回当前状态，不落库
	discarded, err := svc.EditObjective(context.Background(), created.ID, oid, "   ")
	if err != nil {
		t.Fatalf("空白文本应静默丢弃而非报错: %v", err)
	}
	if discarded.Objectives[0].Text != "Chapitre premier" {
		t.Errorf("丢弃后文本应保持不变，实际=%q", discarded.Objectives[0].Text)
	}
	if !discarded.Objectives[0].Done {
		t.Error("丢弃修改不应改变勾选状态")
	}
}

func TestSubjectService_DeleteObjective(t *testing.T) {
	svc, _ := setupTestSubjectService()
	created := createTestSubject(t, svc, "Maths", "Ch1", "Ch2")

	result, err := svc.DeleteObjective(context.Background(), created.ID, created.Objectives[0].ID)
	if err != nil {
		t.Fatalf("DeleteObjective 应成功: %v", err)
	}
	if len(result.Objectives) != 1 || result.Objectives[0].Text != "Ch2" {
		t.Errorf("应只剩 Ch2，实际=%v", result.Objectives)
	}

	// 再删一次同一目标：静默忽略
	result, err = svc.DeleteObjective(context.Background(), created.ID, created.Objectives[0].ID)
	if err != nil || len(result.Objectives) != 1 {
		t.Errorf("重复删除应静默忽略: %v", err)
	}
}

// ── DeleteAll 测试 ──

func TestSubjectService_DeleteAll_LeavesArchiveUntouched(t *testing.T) {
	svc, repo := setupTestSubjectService()
	createTestSubject(t, svc, "Maths", "Ch1")

	// 预置一条归档
	archived := []model.ArchivedSubject{{
		Subject:    model.Subject{ID: 1, Name: "Histoire"},
		ArchivedAt: time.Now(),
	}}
	if err := repo.Archive.SaveAll(context.Background(), archived); err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteAll(context.Background()); err != nil {
		t.Fatalf("DeleteAll 应成功: %v", err)
	}

	subjects, _ := repo.Subject.LoadAll(context.Background())
	if len(subjects) != 0 {
		t.Errorf("活动科目应清空，实际 %d 条", len(subjects))
	}
	entries, _ := repo.Archive.LoadAll(context.Background())
	if len(entries) != 1 {
		t.Errorf("归档集合不应受影响，实际 %d 条", len(entries))
	}
}

// ── 进度计算 ──

func TestPercent(t *testing.T) {
	cases := []struct {
		done, total, want int
	}{
		{0, 0, 0},
		{1, 2, 50},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
	}
	for _, tc := range cases {
		if got := Percent(tc.done, tc.total); got != tc.want {
			t.Errorf("Percent(%d,%d)=%d，期望 %d", tc.done, tc.total, got, tc.want)
		}
	}
}
