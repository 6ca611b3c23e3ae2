package diary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/internal/entity"
	"github.com/daybook-app/daybook/internal/repository/memory"
)

func newUsecase(t *testing.T) *Usecase {
	t.Helper()

	uc, err := New(NewOptions(memory.New()))
	require.NoError(t, err)

	return uc
}

func TestNewRequiresRepo(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestCreateAndListEntries(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase(t)

	created, err := uc.CreateEntry(ctx, "Day 1", "Good day", "😊")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	entries, err := uc.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, created, entries[0])
}

func TestDeleteEntryNotFound(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase(t)

	err := uc.DeleteEntry(ctx, "missing")
	assert.ErrorIs(t, err, entity.ErrDiaryEntryNotFound)
}

func TestDeleteEntryOnlyOnce(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase(t)

	created, err := uc.CreateEntry(ctx, "Day 1", "Good day", "😊")
	require.NoError(t, err)

	require.NoError(t, uc.DeleteEntry(ctx, created.ID))
	assert.ErrorIs(t, uc.DeleteEntry(ctx, created.ID), entity.ErrDiaryEntryNotFound)
}

func TestUpdateEntryKeepsSentinel(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase(t)

	title := "anything"
	_, err := uc.UpdateEntry(ctx, "missing", entity.DiaryEntryUpdate{Title: &title})
	assert.ErrorIs(t, err, entity.ErrDiaryEntryNotFound)
}

func TestRepositoryErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	repoErr := errors.New("backend down")

	uc, err := New(NewOptions(failingRepo{err: repoErr}))
	require.NoError(t, err)

	_, err = uc.ListEntries(ctx)
	assert.ErrorIs(t, err, repoErr)

	_, err = uc.SearchEntries(ctx, "anything")
	assert.ErrorIs(t, err, repoErr)
}

type failingRepo struct {
	err error
}

func (f failingRepo) GetAllDiaryEntries(context.Context) ([]entity.DiaryEntry, error) {
	return nil, f.err
}

func (f failingRepo) GetDiaryEntry(context.Context, string) (entity.DiaryEntry, error) {
	return entity.DiaryEntry{}, f.err
}

func (f failingRepo) CreateDiaryEntry(context.Context, string, string, string) (entity.DiaryEntry, error) {
	return entity.DiaryEntry{}, f.err
}

func (f failingRepo) UpdateDiaryEntry(context.Context, string, entity.DiaryEntryUpdate) (entity.DiaryEntry, error) {
	return entity.DiaryEntry{}, f.err
}

func (f failingRepo) DeleteDiaryEntry(context.Context, string) (bool, error) {
	return false, f.err
}

func (f failingRepo) SearchDiaryEntries(context.Context, string) ([]entity.DiaryEntry, error) {
	return nil, f.err
}
