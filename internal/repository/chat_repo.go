package repository

import (
	"context"
	"encoding/json"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/model"
)

// ChatRepository 助手会话记录数据访问接口
// 会话记录整份存取，不截断、不分页
type ChatRepository interface {
	LoadAll(ctx context.Context) ([]model.ChatMessage, error)
	SaveAll(ctx context.Context, messages []model.ChatMessage) error
}

type chatRepo struct {
	store CollectionRepository
}

func NewChatRepo(store CollectionRepository) ChatRepository {
	return &chatRepo{store: store}
}

func (r *chatRepo) LoadAll(ctx context.Context) ([]model.ChatMessage, error) {
	raw, err := r.store.Load(ctx, model.KeyChat)
	if err != nil {
		return nil, err
	}

	messages := []model.ChatMessage{}
	if raw == nil {
		return messages, r.SaveAll(ctx, messages)
	}
	if err := json.Unmarshal(raw, &messages); err != nil {
		return []model.ChatMessage{}, r.SaveAll(ctx, []model.ChatMessage{})
	}
	return messages, nil
}

func (r *chatRepo) SaveAll(ctx context.Context, messages []model.ChatMessage) error {
	if messages == nil {
		messages = []model.ChatMessage{}
	}
	raw, err := json.Marshal(messages)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, model.KeyChat, raw)
}
