package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/daybook-app/daybook/internal/entity"
)

// CreateUser checks and inserts inside one transaction; the unique
// index on username backs it up should two transactions race.
func (r *Repo) CreateUser(ctx context.Context, username, password string) (entity.User, error) {
	var user entity.User

	err := r.db.RunInTx(ctx, func(ctx context.Context) error {
		var exists bool
		if err := r.db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`,
			username,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check username: %v", err)
		}
		if exists {
			return entity.ErrUsernameTaken
		}

		return r.db.QueryRow(ctx,
			`INSERT INTO users (username, password)
			 VALUES ($1, $2)
			 RETURNING id, username, password`,
			username, password,
		).Scan(&user.ID, &user.Username, &user.Password)
	})
	if err != nil {
		if errors.Is(err, entity.ErrUsernameTaken) {
			return entity.User{}, entity.ErrUsernameTaken
		}
		return entity.User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *Repo) GetUser(ctx context.Context, id string) (entity.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, username, password FROM users WHERE id = $1`,
		id,
	)

	var user entity.User
	if err := row.Scan(&user.ID, &user.Username, &user.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrUserNotFound
		}
		return entity.User{}, fmt.Errorf("get user: %v", err)
	}

	return user, nil
}

func (r *Repo) GetUserByUsername(ctx context.Context, username string) (entity.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, username, password FROM users WHERE username = $1`,
		username,
	)

	var user entity.User
	if err := row.Scan(&user.ID, &user.Username, &user.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrUserNotFound
		}
		return entity.User{}, fmt.Errorf("get user by username: %v", err)
	}

	return user, nil
}
