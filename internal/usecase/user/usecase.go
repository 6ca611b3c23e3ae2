package user

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/entity"
	"github.com/daybook-app/daybook/pkg/logger/slogx"
)

type userRepository interface {
	CreateUser(ctx context.Context, username, password string) (entity.User, error)
	GetUser(ctx context.Context, id string) (entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (entity.User, error)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.2 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo userRepository `option:"mandatory" validate:"required"`
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate user usecase options: %v", err)
	}

	return &Usecase{Options: opts}, nil
}

func (u *Usecase) CreateUser(ctx context.Context, username, password string) (entity.User, error) {
	user, err := u.repo.CreateUser(ctx, username, password)
	if err != nil {
		return entity.User{}, fmt.Errorf("usecase create user: %w", err)
	}

	slogx.Info(ctx, "success to create user", slogx.UserID(user.ID))
	return user, nil
}

func (u *Usecase) GetUser(ctx context.Context, id string) (entity.User, error) {
	user, err := u.repo.GetUser(ctx, id)
	if err != nil {
		return entity.User{}, fmt.Errorf("usecase get user: %w", err)
	}

	return user, nil
}

func (u *Usecase) GetUserByUsername(ctx context.Context, username string) (entity.User, error) {
	user, err := u.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return entity.User{}, fmt.Errorf("usecase get user by username: %w", err)
	}

	return user, nil
}
