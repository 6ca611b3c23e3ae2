package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/internal/entity"
	"github.com/daybook-app/daybook/internal/repository/memory"
)

func TestUserLifecycle(t *testing.T) {
	ctx := context.Background()

	uc, err := New(NewOptions(memory.New()))
	require.NoError(t, err)

	created, err := uc.CreateUser(ctx, "alice", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	byID, err := uc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)

	byName, err := uc.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created, byName)

	_, err = uc.CreateUser(ctx, "alice", "other")
	assert.ErrorIs(t, err, entity.ErrUsernameTaken)

	_, err = uc.GetUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}
