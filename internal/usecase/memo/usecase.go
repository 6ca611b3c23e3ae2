package memo

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/entity"
	"github.com/daybook-app/daybook/pkg/logger/slogx"
)

type memoRepository interface {
	GetAllMemos(ctx context.Context) ([]entity.Memo, error)
	GetMemo(ctx context.Context, id string) (entity.Memo, error)
	CreateMemo(ctx context.Context, content string) (entity.Memo, error)
	UpdateMemo(ctx context.Context, id string, upd entity.MemoUpdate) (entity.Memo, error)
	DeleteMemo(ctx context.Context, id string) (bool, error)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.2 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo memoRepository `option:"mandatory" validate:"required"`
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate memo usecase options: %v", err)
	}

	return &Usecase{Options: opts}, nil
}

func (u *Usecase) ListMemos(ctx context.Context) ([]entity.Memo, error) {
	memos, err := u.repo.GetAllMemos(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase list memos: %w", err)
	}

	return memos, nil
}

func (u *Usecase) GetMemo(ctx context.Context, id string) (entity.Memo, error) {
	memo, err := u.repo.GetMemo(ctx, id)
	if err != nil {
		return entity.Memo{}, fmt.Errorf("usecase get memo: %w", err)
	}

	return memo, nil
}

func (u *Usecase) CreateMemo(ctx context.Context, content string) (entity.Memo, error) {
	memo, err := u.repo.CreateMemo(ctx, content)
	if err != nil {
		return entity.Memo{}, fmt.Errorf("usecase create memo: %w", err)
	}

	slogx.Info(ctx, "success to create memo", slogx.MemoID(memo.ID))
	return memo, nil
}

func (u *Usecase) UpdateMemo(ctx context.Context, id string, upd entity.MemoUpdate) (entity.Memo, error) {
	memo, err := u.repo.UpdateMemo(ctx, id, upd)
	if err != nil {
		return entity.Memo{}, fmt.Errorf("usecase update memo: %w", err)
	}

	return memo, nil
}

func (u *Usecase) DeleteMemo(ctx context.Context, id string) error {
	deleted, err := u.repo.DeleteMemo(ctx, id)
	if err != nil {
		return fmt.Errorf("usecase delete memo: %w", err)
	}
	if !deleted {
		return entity.ErrMemoNotFound
	}

	slogx.Info(ctx, "success to delete memo", slogx.MemoID(id))
	return nil
}
