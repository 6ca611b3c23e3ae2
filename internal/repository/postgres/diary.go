package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/daybook-app/daybook/internal/entity"
)

const diaryColumns = `id, title, content, emotion, created_at`

func (r *Repo) GetAllDiaryEntries(ctx context.Context) ([]entity.DiaryEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+diaryColumns+` FROM diary_entries ORDER BY created_at DESC, seq DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("get all diary entries: %v", err)
	}

	return scanDiaryEntries(rows)
}

func (r *Repo) GetDiaryEntry(ctx context.Context, id string) (entity.DiaryEntry, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+diaryColumns+` FROM diary_entries WHERE id = $1`,
		id,
	)

	entry, err := scanDiaryEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.DiaryEntry{}, entity.ErrDiaryEntryNotFound
		}
		return entity.DiaryEntry{}, fmt.Errorf("get diary entry: %v", err)
	}

	return entry, nil
}

func (r *Repo) CreateDiaryEntry(ctx context.Context, title, content, emotion string) (entity.DiaryEntry, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO diary_entries (title, content, emotion)
		 VALUES ($1, $2, $3)
		 RETURNING `+diaryColumns,
		title, content, emotion,
	)

	entry, err := scanDiaryEntry(row)
	if err != nil {
		return entity.DiaryEntry{}, fmt.Errorf("create diary entry: %v", err)
	}

	return entry, nil
}

// UpdateDiaryEntry merges the provided fields in a single statement, so
// concurrent partial updates to one entry cannot lose each other.
func (r *Repo) UpdateDiaryEntry(ctx context.Context, id string, upd entity.DiaryEntryUpdate) (entity.DiaryEntry, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE diary_entries
		 SET title   = COALESCE($2, title),
		     content = COALESCE($3, content),
		     emotion = COALESCE($4, emotion)
		 WHERE id = $1
		 RETURNING `+diaryColumns,
		id, upd.Title, upd.Content, upd.Emotion,
	)

	entry, err := scanDiaryEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.DiaryEntry{}, entity.ErrDiaryEntryNotFound
		}
		return entity.DiaryEntry{}, fmt.Errorf("update diary entry: %v", err)
	}

	return entry, nil
}

func (r *Repo) DeleteDiaryEntry(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM diary_entries WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete diary entry: %v", err)
	}

	return tag.RowsAffected() > 0, nil
}

// SearchDiaryEntries matches the query as a plain case-insensitive
// substring. POSITION is used instead of ILIKE so that % and _ in the
// query carry no wildcard meaning.
func (r *Repo) SearchDiaryEntries(ctx context.Context, query string) ([]entity.DiaryEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+diaryColumns+` FROM diary_entries
		 WHERE POSITION(LOWER($1) IN LOWER(title)) > 0
		    OR POSITION(LOWER($1) IN LOWER(content)) > 0
		 ORDER BY created_at DESC, seq DESC`,
		query,
	)
	if err != nil {
		return nil, fmt.Errorf("search diary entries: %v", err)
	}

	return scanDiaryEntries(rows)
}

func scanDiaryEntry(row pgx.Row) (entity.DiaryEntry, error) {
	var e entity.DiaryEntry
	if err := row.Scan(&e.ID, &e.Title, &e.Content, &e.Emotion, &e.CreatedAt); err != nil {
		return entity.DiaryEntry{}, err
	}

	return e, nil
}

func scanDiaryEntries(rows pgx.Rows) ([]entity.DiaryEntry, error) {
	defer rows.Close()

	entries := make([]entity.DiaryEntry, 0)
	for rows.Next() {
		entry, err := scanDiaryEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan diary entry: %v", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate diary entries: %v", err)
	}

	return entries, nil
}
