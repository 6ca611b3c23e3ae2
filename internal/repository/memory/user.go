package memory

import (
	"context"

	"github.com/daybook-app/daybook/internal/entity"
)

func (r *Repo) CreateUser(_ context.Context, username, password string) (entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return entity.User{}, entity.ErrUsernameTaken
		}
	}

	user := entity.User{
		ID:       newID(),
		Username: username,
		Password: password,
	}
	r.users[user.ID] = user

	return user, nil
}

func (r *Repo) GetUser(_ context.Context, id string) (entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return entity.User{}, entity.ErrUserNotFound
	}

	return user, nil
}

func (r *Repo) GetUserByUsername(_ context.Context, username string) (entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}

	return entity.User{}, entity.ErrUserNotFound
}
