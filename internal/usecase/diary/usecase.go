package diary

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/entity"
	"github.com/daybook-app/daybook/pkg/logger/slogx"
)

type diaryRepository interface {
	GetAllDiaryEntries(ctx context.Context) ([]entity.DiaryEntry, error)
	GetDiaryEntry(ctx context.Context, id string) (entity.DiaryEntry, error)
	CreateDiaryEntry(ctx context.Context, title, content, emotion string) (entity.DiaryEntry, error)
	UpdateDiaryEntry(ctx context.Context, id string, upd entity.DiaryEntryUpdate) (entity.DiaryEntry, error)
	DeleteDiaryEntry(ctx context.Context, id string) (bool, error)
	SearchDiaryEntries(ctx context.Context, query string) ([]entity.DiaryEntry, error)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.2 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo diaryRepository `option:"mandatory" validate:"required"`
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate diary usecase options: %v", err)
	}

	return &Usecase{Options: opts}, nil
}

func (u *Usecase) ListEntries(ctx context.Context) ([]entity.DiaryEntry, error) {
	entries, err := u.repo.GetAllDiaryEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase list diary entries: %w", err)
	}

	return entries, nil
}

func (u *Usecase) GetEntry(ctx context.Context, id string) (entity.DiaryEntry, error) {
	entry, err := u.repo.GetDiaryEntry(ctx, id)
	if err != nil {
		return entity.DiaryEntry{}, fmt.Errorf("usecase get diary entry: %w", err)
	}

	return entry, nil
}

func (u *Usecase) CreateEntry(ctx context.Context, title, content, emotion string) (entity.DiaryEntry, error) {
	entry, err := u.repo.CreateDiaryEntry(ctx, title, content, emotion)
	if err != nil {
		return entity.DiaryEntry{}, fmt.Errorf("usecase create diary entry: %w", err)
	}

	slogx.Info(ctx, "success to create diary entry", slogx.EntryID(entry.ID))
	return entry, nil
}

func (u *Usecase) UpdateEntry(ctx context.Context, id string, upd entity.DiaryEntryUpdate) (entity.DiaryEntry, error) {
	entry, err := u.repo.UpdateDiaryEntry(ctx, id, upd)
	if err != nil {
		return entity.DiaryEntry{}, fmt.Errorf("usecase update diary entry: %w", err)
	}

	return entry, nil
}

func (u *Usecase) DeleteEntry(ctx context.Context, id string) error {
	deleted, err := u.repo.DeleteDiaryEntry(ctx, id)
	if err != nil {
		return fmt.Errorf("usecase delete diary entry: %w", err)
	}
	if !deleted {
		return entity.ErrDiaryEntryNotFound
	}

	slogx.Info(ctx, "success to delete diary entry", slogx.EntryID(id))
	return nil
}

func (u *Usecase) SearchEntries(ctx context.Context, query string) ([]entity.DiaryEntry, error) {
	entries, err := u.repo.SearchDiaryEntries(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("usecase search diary entries: %w", err)
	}

	return entries, nil
}
