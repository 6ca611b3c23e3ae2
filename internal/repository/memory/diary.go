package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/daybook-app/daybook/internal/entity"
)

func (r *Repo) GetAllDiaryEntries(_ context.Context) ([]entity.DiaryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]diaryRecord, 0, len(r.entries))
	for _, rec := range r.entries {
		records = append(records, rec)
	}

	return sortedEntries(records), nil
}

func (r *Repo) GetDiaryEntry(_ context.Context, id string) (entity.DiaryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.entries[id]
	if !ok {
		return entity.DiaryEntry{}, entity.ErrDiaryEntryNotFound
	}

	return rec.DiaryEntry, nil
}

func (r *Repo) CreateDiaryEntry(_ context.Context, title, content, emotion string) (entity.DiaryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := entity.DiaryEntry{
		ID:        newID(),
		Title:     title,
		Content:   content,
		Emotion:   emotion,
		CreatedAt: now(),
	}

	r.entries[entry.ID] = diaryRecord{DiaryEntry: entry, seq: r.nextSeqLocked()}

	return entry, nil
}

func (r *Repo) UpdateDiaryEntry(_ context.Context, id string, upd entity.DiaryEntryUpdate) (entity.DiaryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.entries[id]
	if !ok {
		return entity.DiaryEntry{}, entity.ErrDiaryEntryNotFound
	}

	if upd.Title != nil {
		rec.Title = *upd.Title
	}
	if upd.Content != nil {
		rec.Content = *upd.Content
	}
	if upd.Emotion != nil {
		rec.Emotion = *upd.Emotion
	}

	r.entries[id] = rec

	return rec.DiaryEntry, nil
}

func (r *Repo) DeleteDiaryEntry(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return false, nil
	}
	delete(r.entries, id)

	return true, nil
}

func (r *Repo) SearchDiaryEntries(_ context.Context, query string) ([]entity.DiaryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)

	records := make([]diaryRecord, 0)
	for _, rec := range r.entries {
		if strings.Contains(strings.ToLower(rec.Title), q) ||
			strings.Contains(strings.ToLower(rec.Content), q) {
			records = append(records, rec)
		}
	}

	return sortedEntries(records), nil
}

// sortedEntries orders newest first, falling back to insertion order
// when two entries share a timestamp.
func sortedEntries(records []diaryRecord) []entity.DiaryEntry {
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].seq > records[j].seq
	})

	entries := make([]entity.DiaryEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, rec.DiaryEntry)
	}

	return entries
}
