package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/fatimaezzahramahouat/StudyFlow1/config"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/dto"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/model"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/repository"
)

// ── 助手模块业务错误 ──

var (
	ErrAssistantMessageEmpty = errors.New("消息内容不能为空")
	ErrAssistantUnavailable  = errors.New("学习助手暂时不可用")
)

// assistantSystemPrompt 对话补全的固定系统提示词，每次请求都随完整历史一并发送
const assistantSystemPrompt = "Tu es un assistant d'étude bienveillant et pédagogue. " +
	"Tu aides les étudiants à comprendre leurs cours, à réviser efficacement " +
	"et à répondre à leurs questions académiques en français. " +
	"Sois clair, précis et encourageant."

// assistantFallbackReply 上游返回空内容时的占位回复
const assistantFallbackReply = "Aucune réponse reçue."

// AssistantService 学习助手业务接口
type AssistantService interface {
	Send(ctx context.Context, message string) (*dto.ChatSendResponse, error)
	History(ctx context.Context) ([]dto.ChatMessageResponse, error)
	Clear(ctx context.Context) error
}

type assistantService struct {
	cfg    *config.AssistantConfig
	repo   *repository.Repository
	client *http.Client
	logger *zap.Logger
}

// NewAssistantService 创建 AssistantService 实例
// 不设请求超时：上游补全耗时不可预估，由调用方通过 ctx 控制取消
func NewAssistantService(cfg *config.AssistantConfig, repo *repository.Repository, logger *zap.Logger) AssistantService {
	return &assistantService{
		cfg:    cfg,
		repo:   repo,
		client: &http.Client{},
		logger: logger,
	}
}

// ── 上游对话补全协议 ──

type completionRequest struct {
	Model       string              `json:"model"`
	Messages    []model.ChatMessage `json:"messages"`
	Stream      bool                `json:"stream"`
	Temperature float64             `json:"temperature"`
	MaxTokens   int                 `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ────────────────────── Send ──────────────────────

// Send 发送一条用户消息并取回助手回复
// 用户消息先落库再调用上游；上游失败时用户消息保留在记录中
func (s *assistantService) Send(ctx context.Context, message string) (*dto.ChatSendResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrAssistantMessageEmpty
	}

	history, err := s.repo.Chat.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载会话记录失败", zap.Error(err))
		return nil, err
	}

	history = append(history, model.ChatMessage{Role: model.ChatRoleUser, Content: message})
	if err := s.repo.Chat.SaveAll(ctx, history); err != nil {
		s.logger.Error("保存会话记录失败", zap.Error(err))
		return nil, err
	}

	reply, err := s.complete(ctx, history)
	if err != nil {
		s.logger.Error("上游对话补全失败", zap.Error(err))
		return nil, ErrAssistantUnavailable
	}

	history = append(history, model.ChatMessage{Role: model.ChatRoleAssistant, Content: reply})
	if err := s.repo.Chat.SaveAll(ctx, history); err != nil {
		s.logger.Error("保存会话记录失败", zap.Error(err))
		return nil, err
	}

	return &dto.ChatSendResponse{Reply: reply}, nil
}

// complete 携带系统提示词与完整历史调用上游
func (s *assistantService) complete(ctx context.Context, history []model.ChatMessage) (string, error) {
	messages := make([]model.ChatMessage, 0, len(history)+1)
	messages = append(messages, model.ChatMessage{Role: model.ChatRoleSystem, Content: assistantSystemPrompt})
	messages = append(messages, history...)

	body, err := json.Marshal(completionRequest{
		Model:       s.cfg.Model,
		Messages:    messages,
		Stream:      false,
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("上游返回 %d: %s", resp.StatusCode, string(detail))
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return assistantFallbackReply, nil
	}
	return completion.Choices[0].Message.Content, nil
}

// ────────────────────── History ──────────────────────

func (s *assistantService) History(ctx context.Context) ([]dto.ChatMessageResponse, error) {
	history, err := s.repo.Chat.LoadAll(ctx)
	if err != nil {
		s.logger.Error("加载会话记录失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ChatMessageResponse, 0, len(history))
	for _, msg := range history {
		result = append(result, dto.ChatMessageResponse{Role: msg.Role, Content: msg.Content})
	}
	return result, nil
}

// ────────────────────── Clear ──────────────────────

// Clear 开启新会话：清空持久化的会话记录
func (s *assistantService) Clear(ctx context.Context) error {
	if err := s.repo.Chat.SaveAll(ctx, []model.ChatMessage{}); err != nil {
		s.logger.Error("清空会话记录失败", zap.Error(err))
		return err
	}
	s.logger.Info("会话记录已清空")
	return nil
}
