package repository

import (
	"context"
	"encoding/json"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/model"
)

// ArchiveRepository 归档集合数据访问接口
type ArchiveRepository interface {
	LoadAll(ctx context.Context) ([]model.ArchivedSubject, error)
	SaveAll(ctx context.Context, entries []model.ArchivedSubject) error
}

type archiveRepo struct {
	store CollectionRepository
}

func NewArchiveRepo(store CollectionRepository) ArchiveRepository {
	return &archiveRepo{store: store}
}

func (r *archiveRepo) LoadAll(ctx context.Context) ([]model.ArchivedSubject, error) {
	raw, err := r.store.Load(ctx, model.KeyArchive)
	if err != nil {
		return nil, err
	}

	entries := []model.ArchivedSubject{}
	if raw == nil {
		return entries, r.SaveAll(ctx, entries)
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return []model.ArchivedSubject{}, r.SaveAll(ctx, []model.ArchivedSubject{})
	}
	return entries, nil
}

func (r *archiveRepo) SaveAll(ctx context.Context, entries []model.ArchivedSubject) error {
	if entries == nil {
		entries = []model.ArchivedSubject{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, model.KeyArchive, raw)
}
