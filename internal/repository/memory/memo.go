package memory

import (
	"context"
	"sort"

	"github.com/daybook-app/daybook/internal/entity"
)

func (r *Repo) GetAllMemos(_ context.Context) ([]entity.Memo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]memoRecord, 0, len(r.memos))
	for _, rec := range r.memos {
		records = append(records, rec)
	}

	return sortedMemos(records), nil
}

func (r *Repo) GetMemo(_ context.Context, id string) (entity.Memo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.memos[id]
	if !ok {
		return entity.Memo{}, entity.ErrMemoNotFound
	}

	return rec.Memo, nil
}

func (r *Repo) CreateMemo(_ context.Context, content string) (entity.Memo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	memo := entity.Memo{
		ID:        newID(),
		Content:   content,
		CreatedAt: now(),
	}

	r.memos[memo.ID] = memoRecord{Memo: memo, seq: r.nextSeqLocked()}

	return memo, nil
}

func (r *Repo) UpdateMemo(_ context.Context, id string, upd entity.MemoUpdate) (entity.Memo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.memos[id]
	if !ok {
		return entity.Memo{}, entity.ErrMemoNotFound
	}

	if upd.Content != nil {
		rec.Content = *upd.Content
	}

	r.memos[id] = rec

	return rec.Memo, nil
}

func (r *Repo) DeleteMemo(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.memos[id]; !ok {
		return false, nil
	}
	delete(r.memos, id)

	return true, nil
}

func sortedMemos(records []memoRecord) []entity.Memo {
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].seq > records[j].seq
	})

	memos := make([]entity.Memo, 0, len(records))
	for _, rec := range records {
		memos = append(memos, rec.Memo)
	}

	return memos
}
