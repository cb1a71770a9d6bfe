package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/fatimaezzahramahouat/StudyFlow1/config"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/model"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/repository"
)

func setupTestAssistantService(t *testing.T, upstream http.HandlerFunc) (AssistantService, *repository.Repository) {
	t.Helper()
	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	repo, _ := newTestRepository()
	cfg := &config.AssistantConfig{
		Endpoint:    server.URL,
		APIKey:      "test-key",
		Model:       "route-llm",
		Temperature: 0.7,
		MaxTokens:   800,
	}
	return NewAssistantService(cfg, repo, zap.NewNop()), repo
}

func completionReply(content string) []byte {
	raw, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return raw
}

// ── Send 测试 ──

func TestAssistantService_Send_Success(t *testing.T) {
	var captured completionRequest
	svc, repo := setupTestAssistantService(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("期望 Bearer 鉴权头，实际=%q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("解析上游请求失败: %v", err)
		}
		w.Write(completionReply("Bonjour ! Comment puis-je t'aider ?"))
	})

	result, err := svc.Send(context.Background(), "Explique-moi les dérivées")
	if err != nil {
		t.Fatalf("Send 应成功: %v", err)
	}
	if result.Reply != "Bonjour ! Comment puis-je t'aider ?" {
		t.Errorf("回复不符，实际=%q", result.Reply)
	}

	// 上游请求：系统提示词在前，随后是完整历史
	if captured.Model != "route-llm" || captured.Temperature != 0.7 || captured.MaxTokens != 800 {
		t.Errorf("采样参数不符: %+v", captured)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != model.ChatRoleSystem {
		t.Fatalf("期望 [system, user]，实际=%v", captured.Messages)
	}
	if captured.Messages[1].Content != "Explique-moi les dérivées" {
		t.Errorf("用户消息不符: %q", captured.Messages[1].Content)
	}

	// 落库：user + assistant 两条，system 不入库
	history, _ := repo.Chat.LoadAll(context.Background())
	if len(history) != 2 {
		t.Fatalf("期望 2 条会话记录，实际=%d", len(history))
	}
	if history[0].Role != model.ChatRoleUser || history[1].Role != model.ChatRoleAssistant {
		t.Errorf("会话记录角色不符: %v", history)
	}
}

func TestAssistantService_Send_CarriesFullHistory(t *testing.T) {
	var captured completionRequest
	svc, repo := setupTestAssistantService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		w.Write(completionReply("ok"))
	})

	// 预置两轮历史
	seed := []model.ChatMessage{
		{Role: model.ChatRoleUser, Content: "q1"},
		{Role: model.ChatRoleAssistant, Content: "r1"},
	}
	if err := repo.Chat.SaveAll(context.Background(), seed); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Send(context.Background(), "q2"); err != nil {
		t.Fatal(err)
	}
	// system + q1 + r1 + q2
	if len(captured.Messages) != 4 {
		t.Errorf("历史应完整随请求发送，期望 4 条，实际=%d", len(captured.Messages))
	}
}

func TestAssistantService_Send_EmptyChoicesFallback(t *testing.T) {
	svc, _ := setupTestAssistantService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	result, err := svc.Send(context.Background(), "question")
	if err != nil {
		t.Fatalf("Send 应成功: %v", err)
	}
	if result.Reply != assistantFallbackReply {
		t.Errorf("空回复应使用占位文案，实际=%q", result.Reply)
	}
}

func TestAssistantService_Send_UpstreamFailureKeepsUserMessage(t *testing.T) {
	svc, repo := setupTestAssistantService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := svc.Send(context.Background(), "question perdue")
	if !errors.Is(err, ErrAssistantUnavailable) {
		t.Fatalf("期望 ErrAssistantUnavailable，实际: %v", err)
	}

	// 用户消息保留在记录中，不做重试
	history, _ := repo.Chat.LoadAll(context.Background())
	if len(history) != 1 || history[0].Role != model.ChatRoleUser {
		t.Errorf("上游失败时应只保留用户消息，实际=%v", history)
	}
}

func TestAssistantService_Send_EmptyMessage(t *testing.T) {
	svc, _ := setupTestAssistantService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("空消息不应触达上游")
	})

	_, err := svc.Send(context.Background(), "   ")
	if !errors.Is(err, ErrAssistantMessageEmpty) {
		t.Errorf("期望 ErrAssistantMessageEmpty，实际: %v", err)
	}
}

// ── History / Clear 测试 ──

func TestAssistantService_Clear(t *testing.T) {
	svc, repo := setupTestAssistantService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionReply("ok"))
	})

	if _, err := svc.Send(context.Background(), "bonjour"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Clear(context.Background()); err != nil {
		t.Fatalf("Clear 应成功: %v", err)
	}

	history, err := svc.History(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 0 {
		t.Errorf("清空后会话记录应为空，实际=%d", len(history))
	}
	stored, _ := repo.Chat.LoadAll(context.Background())
	if len(stored) != 0 {
		t.Errorf("存储中的会话记录也应为空，实际=%d", len(stored))
	}
}
