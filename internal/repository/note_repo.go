package repository

import (
	"context"
	"encoding/json"

	"github.com/fatimaezzahramahouat/StudyFlow1/internal/model"
)

// NoteRepository 笔记集合数据访问接口
type NoteRepository interface {
	LoadAll(ctx context.Context) ([]model.Note, error)
	SaveAll(ctx context.Context, notes []model.Note) error
}

type noteRepo struct {
	store CollectionRepository
}

func NewNoteRepo(store CollectionRepository) NoteRepository {
	return &noteRepo{store: store}
}

func (r *noteRepo) LoadAll(ctx context.Context) ([]model.Note, error) {
	raw, err := r.store.Load(ctx, model.KeyNotes)
	if err != nil {
		return nil, err
	}

	notes := []model.Note{}
	if raw == nil {
		return notes, r.SaveAll(ctx, notes)
	}
	if err := json.Unmarshal(raw, &notes); err != nil {
		return []model.Note{}, r.SaveAll(ctx, []model.Note{})
	}
	return notes, nil
}

func (r *noteRepo) SaveAll(ctx context.Context, notes []model.Note) error {
	if notes == nil {
		notes = []model.Note{}
	}
	raw, err := json.Marshal(notes)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, model.KeyNotes, raw)
}
