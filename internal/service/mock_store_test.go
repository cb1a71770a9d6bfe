package service

import (
	"context"
	"errors"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/repository"
)

// ── Mock CollectionRepository ──
// 以内存 map 模拟 KV 集合存储，类型化 Repo 使用真实实现

type mockCollectionStore struct {
	data    map[string][]byte
	loadErr error
	saveErr error
}

func newMockCollectionStore() *mockCollectionStore {
	return &mockCollectionStore{data: make(map[string][]byte)}
}

func (m *mockCollectionStore) Load(_ context.Context, key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	raw, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return raw, nil
}

func (m *mockCollectionStore) Save(_ context.Context, key string, value []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data[key] = value
	return nil
}

var errStoreBroken = errors.New("存储故障")

// newTestRepository 在 mock 存储之上构建完整的 Repository 聚合
func newTestRepository() (*repository.Repository, *mockCollectionStore) {
	store := newMockCollectionStore()
	repo := &repository.Repository{
		Collections: store,
		Subject:     repository.NewSubjectRepo(store),
		Archive:     repository.NewArchiveRepo(store),
		Note:        repository.NewNoteRepo(store),
		GradeModule: repository.NewGradeModuleRepo(store),
		Chat:        repository.NewChatRepo(store),
		Preference:  repository.NewPreferenceRepo(store),
	}
	return repo, store
}
